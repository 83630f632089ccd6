package umweltverband

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultRenderTimeout = time.Second * 20

type RenderFetcherOptions struct {
	BaseUrl   string
	UserAgent string
	// bounds the wait for client-side rendering, not the navigation itself
	RenderTimeout time.Duration
	ShowBrowser   bool
	// path to a chrome/chromium binary, found on PATH if empty
	ExecPath string
}

// RenderFetcher loads portal pages in headless chrome so that content the
// portal fills in with javascript is present in the returned document.
type RenderFetcher struct {
	baseUrl       string
	renderTimeout time.Duration
	browser       context.Context
	cancel        context.CancelFunc
}

// NewRenderFetcher starts a browser that lives until Close is called or
// `ctx` is done.
func NewRenderFetcher(ctx context.Context, opts RenderFetcherOptions) (*RenderFetcher, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.RenderTimeout == 0 {
		opts.RenderTimeout = DefaultRenderTimeout
	}

	allocatorOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", !opts.ShowBrowser),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.NoSandbox,
		chromedp.UserAgent(opts.UserAgent),
	)
	if opts.ExecPath != "" {
		allocatorOpts = append(allocatorOpts, chromedp.ExecPath(opts.ExecPath))
	}

	allocatorCtx, cancelAllocator := chromedp.NewExecAllocator(ctx, allocatorOpts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocatorCtx)
	cancel := func() {
		cancelBrowser()
		cancelAllocator()
	}

	// the first run on the browser context starts the browser
	err := chromedp.Run(browserCtx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: start browser: %w", ErrFetchFailure, err)
	}

	return &RenderFetcher{
		baseUrl:       opts.BaseUrl,
		renderTimeout: opts.RenderTimeout,
		browser:       browserCtx,
		cancel:        cancel,
	}, nil
}

func (f *RenderFetcher) Close() {
	f.cancel()
}

func (f *RenderFetcher) Fetch(ctx context.Context, payload url.Values) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "RenderFetcher:Fetch")
	defer span.End()

	link, err := PageURL(f.baseUrl, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}
	span.SetAttributes(attribute.String("url", link))

	tab, closeTab := chromedp.NewContext(f.browser)
	defer closeTab()

	// tie the tab to the caller's cancellation as well as the browser's
	stop := context.AfterFunc(ctx, closeTab)
	defer stop()

	err = chromedp.Run(tab, chromedp.Navigate(link))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "navigation failed")
		return nil, fmt.Errorf("%w: navigate to %s: %w", ErrFetchFailure, link, err)
	}

	renderCtx, cancelRender := context.WithTimeout(tab, f.renderTimeout)
	defer cancelRender()

	var rendered string
	err = chromedp.Run(renderCtx,
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &rendered, chromedp.ByQuery),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return nil, fmt.Errorf("%w: render %s: %w", ErrFetchFailure, link, err)
	}
	slog.DebugContext(ctx, "rendered page", "url", link, "length", len(rendered))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rendered))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}
	return doc, nil
}
