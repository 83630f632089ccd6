package commands

import (
	"context"
	"fmt"
	"os"

	"abfuhrkalender/lib/telemetry"

	"github.com/spf13/cobra"
)

var verbose *bool
var configPath *string

var rootCmd = &cobra.Command{
	Use:   "abfuhrkalender",
	Short: "abfuhrkalender turns the GVA Baden waste-collection portal into iCalendar files.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	},
}

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output and dump http traffic to .dev/resty.")
	configPath = rootCmd.PersistentFlags().String("config", ConfigFile, "The config file, searched for upwards from the working directory if it is a bare file name.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
