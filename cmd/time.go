package cmd

import (
	"fmt"
	"strconv"

	"github.com/icemarkom/syncfmt/internal/errors"
	"github.com/spf13/cobra"
)

var (
	timeNow      int64
	timeAbsolute bool
)

var timeCmd = &cobra.Command{
	Use:   "time <epoch-ms>...",
	Short: "Format UNIX timestamps in milliseconds",
	Long: `Format UNIX timestamps (milliseconds) relative to now.

Timestamps under a minute old print the seconds-ago label, older ones a
relative phrase such as "3 days ago" and, from a week on, a date. Future
timestamps and --absolute print the full localized date and time.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTime,
}

func init() {
	rootCmd.AddCommand(timeCmd)

	timeCmd.Flags().Int64Var(&timeNow, "now", 0, "Reference time in epoch milliseconds (default: current time)")
	timeCmd.Flags().BoolVar(&timeAbsolute, "absolute", false, "Print the absolute date and time")
	labelFlags(timeCmd.Flags(), false, true)
}

func runTime(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	ts, err := settings.Timestamps()
	if err != nil {
		return errors.Wrap(err, "Failed to set up date formatting", "Check the --locale and --timezone values")
	}

	for _, arg := range args {
		ms, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return errors.InvalidArgument(arg, "not a timestamp",
				"Pass milliseconds since 1970-01-01 UTC, e.g. 1760875200000")
		}

		var out string
		switch {
		case timeAbsolute:
			out = ts.FormatAbsolute(ms)
		case cmd.Flags().Changed("now"):
			out = ts.FormatRelative(timeNow, ms)
		default:
			out = ts.Relative(ms)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}

	return nil
}
