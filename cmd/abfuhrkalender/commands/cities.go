package commands

import (
	"os"
	"strconv"

	"abfuhrkalender/lib/osutil"
	"abfuhrkalender/lib/scrapers/umweltverband"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(citiesCmd)
}

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "Prints the municipality directory.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			osutil.Fatal("failed to read config", err)
		}
		fetcher, release, err := newFetcher(ctx, cfg)
		if err != nil {
			osutil.Fatal("failed to create page fetcher", err)
		}
		defer release()

		cities, err := umweltverband.NewClient(fetcher, cfg.Portal).Cities(ctx)
		if err != nil {
			release()
			osutil.Fatal("failed to fetch municipality directory", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Id", "Name"})
		for _, city := range cities {
			t.AppendRow(table.Row{strconv.Itoa(city.Id), city.Name})
		}
		t.AppendFooter(table.Row{"", strconv.Itoa(len(cities)) + " municipalities"})
		t.Render()
	},
}
