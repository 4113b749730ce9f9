package cmd

import (
	"fmt"
	"os"

	"github.com/icemarkom/syncfmt/internal/errors"
	"github.com/icemarkom/syncfmt/internal/listing"
	"github.com/spf13/cobra"
)

var (
	listDir       string
	listRecursive bool
	listHidden    bool
	listJSON      bool
	listExact     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a directory with sizes, types and modification times",
	Long: `List the files in a directory the way a sync client shows them: size,
file type detected from content, and relative modification time, newest
first. With --recursive, folder sizes are the total of the files below them.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listDir, "dir", "", "Directory to list (required)")
	listCmd.Flags().BoolVarP(&listRecursive, "recursive", "r", false, "Descend into subdirectories")
	listCmd.Flags().BoolVarP(&listHidden, "all", "a", false, "Include hidden files")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print JSON with raw and formatted values")
	listCmd.Flags().BoolVar(&listExact, "exact", false, "Also print exact byte counts")
	listCmd.Flags().Int("workers", defaultWorkers(), "Parallel file type detection (env: SYNCFMT_WORKERS)")
	labelFlags(listCmd.Flags(), true, true)
}

func runList(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if listDir == "" {
		return errors.MissingRequired("--dir", "Provide the directory to list with --dir")
	}
	info, err := os.Stat(listDir)
	if os.IsNotExist(err) {
		return errors.MissingPath(listDir, "Check the --dir value")
	}
	if err == nil && !info.IsDir() {
		return errors.New(fmt.Sprintf("Not a directory: %s", listDir),
			"Pass a directory to --dir; use 'syncfmt size' or 'syncfmt mime' for single values")
	}

	ts, err := settings.Timestamps()
	if err != nil {
		return errors.Wrap(err, "Failed to set up date formatting", "Check the --locale and --timezone values")
	}

	entries, err := listing.List(cmd.Context(), listDir, listing.Options{
		Recursive: listRecursive,
		Hidden:    listHidden,
		Workers:   settings.Workers,
		Verbose:   verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", listDir, err)
	}

	f := listing.Formatters{
		Sizes: settings.Sizer(),
		Types: settings.MimeTable(),
		Times: ts,
		Exact: listExact,
	}

	out := cmd.OutOrStdout()
	if listJSON {
		return f.WriteJSON(out, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintf(out, "No files found in %s\n", listDir)
		return nil
	}

	fmt.Fprintf(out, "Found %d item(s) in %s:\n\n", len(entries), listDir)
	return f.WriteTable(out, entries)
}
