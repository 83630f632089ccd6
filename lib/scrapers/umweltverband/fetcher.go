package umweltverband

import (
	"context"
	"errors"
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// ErrFetchFailure wraps network, status and render timeout failures.
var ErrFetchFailure = errors.New("failed to fetch portal page")

// Fetcher returns the parsed portal page for a query payload.
type Fetcher interface {
	Fetch(ctx context.Context, payload url.Values) (*goquery.Document, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, payload url.Values) (*goquery.Document, error)

func (f FetcherFunc) Fetch(ctx context.Context, payload url.Values) (*goquery.Document, error) {
	return f(ctx, payload)
}
