package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xll-gen/binembed/internal/embedder"
	"github.com/xll-gen/binembed/internal/ui"
	"github.com/xll-gen/binembed/pkg/log"
)

// Exit codes returned by the binembed process.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	exitSymbol  = 3
)

var (
	logLevel     string
	logFile      string
	checkSymbols bool
	inPlace      bool
	showProgress bool
)

// rootCmd converts binary files when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "binembed <definitions-output> <declarations-output> <input>...",
	Short: "Embed binary files in C sources as byte arrays",
	Long: `binembed converts binary files into a C definitions file and a matching
declarations header, so the data can be compiled into an executable instead of
being loaded from disk at runtime.

Each input becomes an array named after its file name without directory and
extension:

  extern const unsigned char sound[20];

The definitions file includes the declarations file by its base name.`,
	Args:          requireArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init(logFile, logLevel)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0], args[1], args[2:])
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	c, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	code := exitCode(err)
	if code == exitUsage {
		fmt.Fprint(os.Stderr, c.UsageString())
	}
	os.Exit(code)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default warn)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file instead of stderr")

	rootCmd.Flags().BoolVar(&checkSymbols, "check-symbols", false, "Fail if an array name is not a unique C identifier")
	rootCmd.Flags().BoolVar(&inPlace, "in-place", false, "Write outputs directly instead of through temporary files")
	rootCmd.Flags().BoolVar(&showProgress, "progress", false, "Show a progress bar on stderr")

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})
}

// runConvert embeds inputs into the definitions and declarations files using
// the options given on the command line.
func runConvert(definitions, declarations string, inputs []string) error {
	if filepath.Clean(definitions) == filepath.Clean(declarations) {
		return &usageError{msg: "definitions and declarations outputs must be different files"}
	}

	opts := embedder.Options{
		InPlace:      inPlace,
		CheckSymbols: checkSymbols,
	}
	if showProgress && len(inputs) > 0 {
		opts.Progress = ui.NewProgress("Embedding", len(inputs)).Update
	}
	return embedder.Convert(definitions, declarations, inputs, opts)
}

// usageError reports a malformed command line.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// requireArgs returns an argument validator accepting at least n arguments.
func requireArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return &usageError{msg: fmt.Sprintf("requires at least %d arg(s), only received %d", n, len(args))}
		}
		return nil
	}
}

// noArgs rejects positional arguments with a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &usageError{msg: fmt.Sprintf("unknown command %q for %q", args[0], cmd.CommandPath())}
	}
	return nil
}

// exitCode maps an error returned by a command to the process exit status.
func exitCode(err error) int {
	var ue *usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ue):
		return exitUsage
	case errors.Is(err, embedder.ErrInvalidSymbol), errors.Is(err, embedder.ErrDuplicateSymbol):
		return exitSymbol
	default:
		return exitFailure
	}
}
