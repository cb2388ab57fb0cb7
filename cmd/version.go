package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xll-gen/binembed/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Args:  noArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "binembed %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
