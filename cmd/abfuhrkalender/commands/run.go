package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"abfuhrkalender/lib/calendar"
	"abfuhrkalender/lib/osutil"
	"abfuhrkalender/lib/scrapers/umweltverband"
	"abfuhrkalender/lib/telemetry"
	"abfuhrkalender/services/calendars"

	"github.com/spf13/cobra"
)

const outputSubdir = "calendars"

var runOut *string
var runYear *int
var runRender *bool
var runKeepGoing *bool
var runCities *[]string

func init() {
	runOut = runCmd.Flags().String("out", "", "The directory under which calendars/ is created, overrides output_root.")
	runYear = runCmd.Flags().Int("year", 0, "The year to fetch pickup dates for, overrides year.")
	runRender = runCmd.Flags().Bool("render", false, "Render pages in headless chrome instead of fetching them over plain http.")
	runKeepGoing = runCmd.Flags().Bool("keep-going", false, "Continue with the next municipality after a failure.")
	runCities = runCmd.Flags().StringSlice("city", nil, "Only process municipalities matching this name, can be repeated.")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [--out <dir>] [--year <year>] [--render] [--keep-going] [--city <name>]...",
	Short: "Writes one calendar file per municipality and collection district.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			osutil.Fatal("failed to read config", err)
		}
		if *runOut != "" {
			cfg.OutputRoot = *runOut
		}
		if *runYear != 0 {
			cfg.Year = *runYear
		}
		if *runRender {
			cfg.Render.Enabled = true
		}
		if *runKeepGoing {
			cfg.KeepGoing = true
		}
		if len(*runCities) > 0 {
			cfg.Cities = *runCities
		}

		var hooks exitHooks
		defer hooks.run()
		fatal := func(message string, err error) {
			hooks.run()
			osutil.Fatal(message, err)
		}

		tel, err := telemetry.SetupFromEnv(ctx, "abfuhrkalender")
		if err != nil {
			osutil.Fatal("failed to setup telemetry", err)
		}
		hooks.add(func() { shutdownTelemetry(ctx, tel) })
		if tel.Enabled() {
			telemetry.InstrumentPerfStats(ctx, time.Second*5)
		}

		outputDir, err := createOutputDir(cfg.OutputRoot)
		if err != nil {
			fatal("failed to create output directory", err)
		}

		fetcher, release, err := newFetcher(ctx, cfg)
		if err != nil {
			fatal("failed to create page fetcher", err)
		}
		hooks.add(release)

		service := calendars.Service{
			Client:    umweltverband.NewClient(fetcher, cfg.Portal),
			Emitter:   calendar.NewEmitter(cfg.ProductId),
			Year:      cfg.Year,
			OutputDir: outputDir,
			KeepGoing: cfg.KeepGoing,
			Cities:    cfg.Cities,
		}

		t1 := time.Now()
		paths, err := service.Run(ctx)
		t2 := time.Now()

		slog.Info(
			"run finished",
			"files", len(paths),
			"output", service.OutputDir,
			"seconds", t2.Sub(t1).Seconds(),
		)
		if err != nil {
			fatal("failed to write calendars", err)
		}
	},
}

// createOutputDir creates <root>/calendars if it is absent and returns its
// path.
func createOutputDir(root string) (string, error) {
	dir := filepath.Join(root, outputSubdir)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return "", err
	}
	return dir, nil
}

// flushes pending spans and metrics, the signal may already have cancelled
// ctx
func shutdownTelemetry(ctx context.Context, tel telemetry.Telemetry) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second*10)
	defer cancel()
	err := tel.Shutdown(ctx)
	if err != nil {
		slog.Warn("failed to shutdown telemetry", "err", err)
	}
}

// exitHooks are run before a fatal exit as well as on return, os.Exit
// skips deferred calls.
type exitHooks []func()

func (h *exitHooks) add(hook func()) {
	*h = append(*h, hook)
}

// run calls the hooks in reverse order of registration, each one once.
func (h *exitHooks) run() {
	hooks := *h
	*h = nil
	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}
}
