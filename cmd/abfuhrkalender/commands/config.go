package commands

import (
	"context"
	"time"

	"abfuhrkalender/lib/calendar"
	"abfuhrkalender/lib/configutil"
	"abfuhrkalender/lib/restyutil"
	"abfuhrkalender/lib/scrapers/umweltverband"
	"abfuhrkalender/lib/timezone"
)

const ConfigFile = "abfuhrkalender.json5"

type RenderConfig struct {
	Enabled        bool   `json:"enabled"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	ShowBrowser    bool   `json:"show_browser"`
	ExecPath       string `json:"exec_path"`
}

type Config struct {
	Year       int                  `json:"year"`
	OutputRoot string               `json:"output_root"`
	ProductId  string               `json:"prodid"`
	KeepGoing  bool                 `json:"keep_going"`
	UserAgent  string               `json:"user_agent"`
	Cities     []string             `json:"cities"`
	Portal     umweltverband.Portal `json:"portal"`
	Render     RenderConfig         `json:"render"`
	// the bypass transport fetches browser fingerprints over the network on
	// startup, turn it off when that isn't possible
	DisableCloudflareBypass bool `json:"disable_cloudflare_bypass"`
}

func defaultConfig() Config {
	return Config{
		Year:       timezone.CurrentYear(),
		OutputRoot: ".",
		ProductId:  calendar.DefaultProductId,
		UserAgent:  umweltverband.DefaultUserAgent,
		Portal:     umweltverband.DefaultPortal,
		Render: RenderConfig{
			TimeoutSeconds: int(umweltverband.DefaultRenderTimeout / time.Second),
		},
	}
}

func loadConfig() (Config, error) {
	return configutil.Load(*configPath, defaultConfig())
}

// newFetcher returns the fetcher selected by the config and a function that
// releases whatever it holds on to.
func newFetcher(ctx context.Context, cfg Config) (umweltverband.Fetcher, func(), error) {
	if cfg.Render.Enabled {
		fetcher, err := umweltverband.NewRenderFetcher(ctx, umweltverband.RenderFetcherOptions{
			BaseUrl:       cfg.Portal.BaseUrl,
			UserAgent:     cfg.UserAgent,
			RenderTimeout: time.Duration(cfg.Render.TimeoutSeconds) * time.Second,
			ShowBrowser:   cfg.Render.ShowBrowser,
			ExecPath:      cfg.Render.ExecPath,
		})
		if err != nil {
			return nil, nil, err
		}
		return fetcher, fetcher.Close, nil
	}

	opts := umweltverband.HttpFetcherOptions{
		BaseUrl:          cfg.Portal.BaseUrl,
		UserAgent:        cfg.UserAgent,
		CloudflareBypass: !cfg.DisableCloudflareBypass,
	}
	if *verbose {
		output, err := restyutil.NewFilesystemOutput(".dev/resty/portal")
		if err != nil {
			return nil, nil, err
		}
		opts.InstrumentOutput = output
	}
	fetcher, err := umweltverband.NewHttpFetcher(opts)
	if err != nil {
		return nil, nil, err
	}
	return fetcher, func() {}, nil
}
