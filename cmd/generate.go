package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xll-gen/binembed/internal/config"
	"github.com/xll-gen/binembed/internal/embedder"
	"github.com/xll-gen/binembed/internal/ui"
	"github.com/xll-gen/binembed/pkg/log"
)

// manifestPath is the manifest read by generate and written by init.
var manifestPath string

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate embedded sources from embed.yaml",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(manifestPath)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&manifestPath, "file", "f", config.DefaultFile, "Manifest to read")
	rootCmd.AddCommand(generateCmd)
}

// runGenerate parses the manifest and embeds the inputs it lists.
// Logging flags given on the command line take precedence over the manifest.
//
// Returns:
//   - error: An error if the manifest is invalid or conversion fails.
func runGenerate(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	level, file := cfg.Logging.Level, cfg.Logging.Path
	if logLevel != "" {
		level = logLevel
	}
	if logFile != "" {
		file = logFile
	}
	if err := log.Init(file, level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	ui.PrintHeader("Generating embedded sources:")

	opts := embedder.Options{
		InPlace:      !*cfg.Gen.Atomic,
		CheckSymbols: cfg.Gen.CheckSymbols,
	}
	if !opts.CheckSymbols {
		// Still emitted, but the C compiler will reject it.
		if err := embedder.CheckSymbols(cfg.Inputs); err != nil {
			ui.PrintWarning("Warning", err.Error())
		}
	}
	if len(cfg.Inputs) > 0 {
		opts.Progress = ui.NewProgress("Embedding", len(cfg.Inputs)).Update
	}

	if err := embedder.Convert(cfg.Output.Definitions, cfg.Output.Declarations, cfg.Inputs, opts); err != nil {
		return err
	}

	ui.PrintSuccess("Generated", cfg.Output.Definitions)
	ui.PrintSuccess("Generated", cfg.Output.Declarations)
	ui.PrintSuccess("Embedded", fmt.Sprintf("%d file(s)", len(cfg.Inputs)))
	return nil
}
