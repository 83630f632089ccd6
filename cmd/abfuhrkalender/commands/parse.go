package commands

import (
	"bufio"
	"os"
	"strings"

	"abfuhrkalender/lib/calendar"
	"abfuhrkalender/lib/osutil"
	"abfuhrkalender/lib/timetable"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(parseCmd)
}

func readNotices(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var notices []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		notices = append(notices, line)
	}
	return notices, scanner.Err()
}

var parseCmd = &cobra.Command{
	Use:   "parse <notices.txt>",
	Short: "Parses a file of raw notices, one per line, and prints the resulting schedule.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		notices, err := readNotices(args[0])
		if err != nil {
			osutil.Fatal("failed to read notices", err)
		}
		schedule, err := timetable.ParseNotices(notices)
		if err != nil {
			osutil.Fatal("failed to parse notices", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Date", "Category", "District"})
		for _, event := range schedule {
			t.AppendRow(table.Row{
				event.Date.Format("2006-01-02"),
				event.Category.String(),
				event.DistrictOr("-"),
			})
		}
		t.Render()

		for _, district := range calendar.Districts(schedule) {
			group := calendar.Group(schedule, district)
			cmd.Printf("%s: %d events\n", district, len(group.Events))
		}
	},
}
