package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosection/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosection",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
		fmt.Fprintln(cmd.OutOrStdout(), "Cross-Section Properties Calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
