package umweltverband

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"abfuhrkalender/lib/restyutil"
	"abfuhrkalender/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html/charset"
)

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type HttpFetcherOptions struct {
	BaseUrl   string
	UserAgent string
	Timeout   time.Duration
	// routes requests through a transport that mimics a browser's tls
	// handshake and headers
	CloudflareBypass bool
	// if set, every request/response pair is dumped here
	InstrumentOutput restyutil.InstrumentOutput
}

// HttpFetcher requests portal pages without running any javascript.
type HttpFetcher struct {
	BaseUrl string
	Http    *resty.Client
}

func NewHttpFetcher(opts HttpFetcherOptions) (*HttpFetcher, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}

	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(opts.Timeout)

	telemetry.InstrumentResty(client, "abfuhrkalender.lib.scrapers.umweltverband/http")
	restyutil.InstrumentClient(client, opts.InstrumentOutput)

	return &HttpFetcher{
		BaseUrl: opts.BaseUrl,
		Http:    client,
	}, nil
}

func (f *HttpFetcher) Fetch(ctx context.Context, payload url.Values) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "HttpFetcher:Fetch")
	defer span.End()

	res, err := f.Http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(payload).
		Get("/")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "unexpected status")
		return nil, fmt.Errorf("%w: unexpected status %s", ErrFetchFailure, res.Status())
	}

	contentType := res.Header().Get("Content-Type")
	span.SetAttributes(attribute.String("content_type", contentType))

	body, err := charset.NewReader(bytes.NewReader(res.Body()), contentType)
	if err != nil {
		slog.WarnContext(ctx, "failed to determine page charset, assuming utf-8", "content_type", contentType, "err", err)
		body = bytes.NewReader(res.Body())
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}
	return doc, nil
}
