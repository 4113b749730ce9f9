package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/icemarkom/syncfmt/internal/config"
	"github.com/icemarkom/syncfmt/internal/format"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

var (
	appVersion = "dev"
	appCommit  = "unknown"
	appDate    = "unknown"
)

var (
	cfgFile  string
	verbose  bool
	settings = config.Defaults()
)

var rootCmd = &cobra.Command{
	Use:   "syncfmt",
	Short: "Human-friendly sizes, types, dates and host names for synced files",
	Long: `syncfmt turns raw values from a file sync client into the strings a
user should see.

Features:
  - Byte counts with per-unit rounding (12 MB, 1.5 GB, 2.25 PB)
  - MIME types as labels (PNG image, PDF file)
  - Relative timestamps (5 minutes ago, 3 days ago) and localized dates
  - Internationalized domain names in server URLs (to and from punycode)
  - Directory listings combining all of the above

Settings come from --config (TOML, YAML or JSON), SYNCFMT_* environment
variables and flags, in increasing order of precedence.`,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "syncfmt %s\n", appVersion)
		fmt.Fprintf(out, "  commit: %s\n", appCommit)
		fmt.Fprintf(out, "  built:  %s\n", appDate)
	},
}

// SetVersion sets version information from build-time ldflags
func SetVersion(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// GetVersion returns the current application version
func GetVersion() string {
	return appVersion
}

// ExecuteContext runs the root command with ctx, used for cancellation on signals
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.AddCommand(versionCmd)
	// Note: other commands (size, mime, time, idn, path, list) register
	// themselves in their respective init() functions

	pf := rootCmd.PersistentFlags()
	pf.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	pf.StringVar(&cfgFile, "config", "", "Config file (TOML, YAML or JSON)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	pf.String("locale", "en-US", "Locale for dates (env: SYNCFMT_LOCALE)")
	pf.String("timezone", "", "Time zone for dates, empty for local time (env: SYNCFMT_TIMEZONE)")
}

// loadSettings configures logging and resolves settings for the command being run.
func loadSettings(cmd *cobra.Command, args []string) error {
	setupLogging(cmd.ErrOrStderr(), verbose)

	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	settings = cfg

	slog.Debug("settings loaded",
		"config", cfgFile,
		"locale", cfg.Locale,
		"timezone", cfg.Timezone,
		"mime_types", len(cfg.MimeTypes))
	return nil
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	})))
}

// labelFlags registers the display label flags shared by several commands.
func labelFlags(fs *pflag.FlagSet, pending, secondsAgo bool) {
	if pending {
		fs.String("pending-label", format.DefaultPending, "Label for unknown sizes (env: SYNCFMT_PENDING_LABEL)")
	}
	if secondsAgo {
		fs.String("seconds-ago-label", format.DefaultSecondsAgo, "Label for timestamps under a minute old (env: SYNCFMT_SECONDS_AGO_LABEL)")
	}
}

func defaultWorkers() int {
	return runtime.NumCPU()
}
