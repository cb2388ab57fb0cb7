package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/xll-gen/binembed/internal/config"
	"github.com/xll-gen/binembed/internal/templates"
	"github.com/xll-gen/binembed/version"
)

var (
	initDefinitions  string
	initDeclarations string
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [input]...",
	Short: "Create an embed.yaml manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(manifestPath, initDefinitions, initDeclarations, args)
	},
}

func init() {
	initCmd.Flags().StringVarP(&manifestPath, "file", "f", config.DefaultFile, "Manifest to create")
	initCmd.Flags().StringVar(&initDefinitions, "definitions", "generated/embedded.c", "Definitions output path")
	initCmd.Flags().StringVar(&initDeclarations, "declarations", "generated/embedded.h", "Declarations output path")
	rootCmd.AddCommand(initCmd)
}

// runInit writes a starter manifest to path listing the given inputs.
//
// Returns:
//   - error: An error if the manifest already exists or cannot be written.
func runInit(path, definitions, declarations string, inputs []string) error {
	cfg := config.Config{
		Output: config.OutputConfig{Definitions: definitions, Declarations: declarations},
		Inputs: inputs,
	}
	if err := config.Validate(&cfg); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s already exists", path)
		}
		return err
	}
	defer f.Close()

	data := struct {
		Version      string
		Definitions  string
		Declarations string
		Inputs       []string
	}{
		Version:      version.Version,
		Definitions:  definitions,
		Declarations: declarations,
		Inputs:       inputs,
	}
	if err := templates.Execute(f, "embed.yaml.tmpl", data); err != nil {
		return err
	}

	fmt.Printf("Created %s\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  binembed generate  # (Run this to write the sources)")
	return nil
}
