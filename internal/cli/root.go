package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/seabearDEV/minigrep-go/internal/config"
	"github.com/seabearDEV/minigrep-go/internal/format"
	"github.com/seabearDEV/minigrep-go/internal/search"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags.
	Version = "dev"
	// Commit is set at build time via ldflags.
	Commit = "none"
	// Debug enables debug output when true.
	Debug bool
)

// lookupEnv is swapped out in tests.
var lookupEnv config.EnvLookup = config.OSLookup

// NewRootCmd creates the root cobra command. Flags are only read before the
// query; a query that starts with '-' must follow "--".
func NewRootCmd() *cobra.Command {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "minigrep <query> <filename> [style]",
		Short: "Print the lines of a file that contain a query",
		Long: `Print every line of <filename> that contains <query>.

If the CASE_INSENSITIVE environment variable is set, the search ignores case.
An optional [style] highlights each match:
  1 bold, 2 dim, 3 italic, 4 underline, 5 blink, 7 reversed, 8 hidden, 9 strikethrough`,
		Example: "  minigrep you poem.txt 1\n  CASE_INSENSITIVE=1 minigrep to poem.txt\n  minigrep -- -v flags.txt",
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if Debug {
				os.Setenv("DEBUG", "true")
			}
			format.SetColorsEnabled(colorsWanted(cmd.ErrOrStderr(), noColor))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "Enable debug output")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored warnings and errors")
	// no -v shorthand, so "-v" reads as an unknown flag rather than a version request
	rootCmd.Flags().Bool("version", false, "Print the version")
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.SetVersionTemplate(fmt.Sprintf("minigrep version %s (commit: %s)\n", Version, Commit))

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	errOut := cmd.ErrOrStderr()

	cfg, warnings, err := config.New(append([]string{cmd.Name()}, args...), lookupEnv)
	for _, w := range warnings {
		fmt.Fprintln(errOut, format.Warning(w.Error()))
	}
	if err != nil {
		return err
	}
	debugLog(errOut, "query=%q filename=%q style=%d case_sensitive=%v",
		cfg.Query, cfg.Filename, cfg.Style, cfg.CaseSensitive)

	return search.Run(cfg, cmd.OutOrStdout())
}

// Execute runs the root command with args (program name excluded) and
// returns the process exit status.
func Execute(args []string, stdout, stderr io.Writer) int {
	format.SetOutput(stderr)
	format.SetColorsEnabled(colorsWanted(stderr, false))

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, format.Error(err.Error()))
		return 1
	}
	return 0
}

// debugLog prints a debug message if debug mode is enabled.
func debugLog(w io.Writer, msg string, args ...any) {
	if Debug || os.Getenv("DEBUG") == "true" {
		fmt.Fprintln(w, format.Debug(fmt.Sprintf(msg, args...)))
	}
}
