package cmd

import (
	"fmt"

	"github.com/icemarkom/syncfmt/internal/errors"
	"github.com/icemarkom/syncfmt/internal/format"
	"github.com/spf13/cobra"
)

var (
	idnToUnicode bool
)

var idnCmd = &cobra.Command{
	Use:   "idn <url>...",
	Short: "Convert internationalized host names in URLs",
	Long: `Convert the host name of each URL to its ASCII (punycode) form, or back to
Unicode with --to-unicode. Scheme, path and query are left as they are.

  syncfmt idn https://例え.jp/remote.php/webdav
  https://xn--r8jz45g.jp/remote.php/webdav`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIDN,
}

func init() {
	rootCmd.AddCommand(idnCmd)

	idnCmd.Flags().BoolVar(&idnToUnicode, "to-unicode", false, "Convert from ASCII to Unicode")
}

func runIDN(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	for _, arg := range args {
		converted, err := format.ConvertIDN(arg, !idnToUnicode)
		if err != nil {
			return errors.InvalidHost(arg, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), converted)
	}
	return nil
}
