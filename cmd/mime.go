package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mimeCmd = &cobra.Command{
	Use:   "mime <type>...",
	Short: "Describe MIME types",
	Long: `Print a human-readable label for each MIME type, e.g. "image/png" becomes
"PNG image". Types without a label become "<SUBTYPE> file"; strings without a
subtype become "Unknown type". Extra labels can be set in the mime_types
section of the config file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMime,
}

func init() {
	rootCmd.AddCommand(mimeCmd)
}

func runMime(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	table := settings.MimeTable()

	for _, arg := range args {
		fmt.Fprintln(cmd.OutOrStdout(), table.Prettify(arg))
	}
	return nil
}
