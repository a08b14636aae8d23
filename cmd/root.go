package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosection/internal/config"
	"github.com/alexiusacademia/gosection/internal/version"
	"github.com/spf13/cobra"
)

var (
	// cfg holds the settings from the environment and .env, with the
	// persistent flags applied on top
	cfg config.Config

	rootUnit      string
	rootPrecision int
)

var rootCmd = &cobra.Command{
	Use:   "gosection",
	Short: "Cross-section properties calculator",
	Long: `gosection - Go Cross-Section Properties Calculator

A CLI tool for the geometric properties of structural cross-sections
built from standard shapes.

This tool computes:
  - Area and center of gravity
  - Moments of inertia about the centroidal axes
  - Section moduli and radii of gyration
  - Member contributions using the parallel axis theorem

Sections are defined on the command line for single shapes or in
JSON, YAML or Excel files for composites.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("unit") {
			loaded.Unit = rootUnit
		}
		if cmd.Flags().Changed("precision") {
			if rootPrecision < 0 {
				return fmt.Errorf("precision must not be negative")
			}
			loaded.Precision = rootPrecision
		}
		cfg = loaded
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gosection v%-45s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Cross-Section Properties Calculator                  ║")
		fmt.Fprintf(out, "  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Geometric properties of rods, pipes, bars, box beams,")
		fmt.Fprintln(out, "  I-beams and composites assembled from them.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Single shape properties from the command line")
		fmt.Fprintln(out, "    • Composite sections from JSON, YAML or Excel files")
		fmt.Fprintln(out, "    • ASCII and image drawings of the section")
		fmt.Fprintln(out, "    • PDF and Excel reports")
		fmt.Fprintln(out, "    • HTTP API")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gosection --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVar(&rootUnit, "unit", "", "Length unit label (default from GOSECTION_UNIT or mm)")
	rootCmd.PersistentFlags().IntVar(&rootPrecision, "precision", 2, "Decimals printed in tables and reports")
}
