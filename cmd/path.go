package cmd

import (
	"fmt"

	"github.com/icemarkom/syncfmt/internal/format"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <path>...",
	Short: "Remove a trailing path separator",
	Long:  `Remove one trailing separator from each path. The root path is kept as it is.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)

	pathCmd.Flags().String("separator", string(format.PathSeparator), "Path separator (env: SYNCFMT_SEPARATOR)")
}

func runPath(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	strip := settings.StripSeparator()

	for _, arg := range args {
		fmt.Fprintln(cmd.OutOrStdout(), strip(arg))
	}
	return nil
}
