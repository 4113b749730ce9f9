package cmd

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/icemarkom/syncfmt/internal/errors"
	"github.com/spf13/cobra"
)

var (
	sizeExact bool
)

var sizeCmd = &cobra.Command{
	Use:   "size <bytes>...",
	Short: "Format byte counts",
	Long: `Format byte counts with a unit suffix (B, KB, MB, ... YB).

KB values are whole numbers, MB to TB carry one decimal and larger units two,
rounded half up with trailing zeros dropped. Negative counts mean the size is
not known yet and print the pending label; pass them after "--":

  syncfmt size 1536 1048576 -- -1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSize,
}

func init() {
	rootCmd.AddCommand(sizeCmd)

	sizeCmd.Flags().BoolVar(&sizeExact, "exact", false, "Also print the exact byte count")
	labelFlags(sizeCmd.Flags(), true, false)
}

func runSize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	sizer := settings.Sizer()

	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return errors.InvalidArgument(arg, "not a byte count",
				"Pass a whole number of bytes such as 1536, or -1 for an unknown size")
		}

		out := sizer.Format(n)
		if sizeExact && n >= 0 {
			out = fmt.Sprintf("%s (%s bytes)", out, humanize.Comma(n))
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}

	return nil
}
