package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Composite section analysis and reports",
	Long: `Analyze composite cross-sections defined in JSON, YAML or
Excel files.

Each shape is placed by its center of gravity in a shared frame with
x to the right and y upward. Nested composites offset their members
by their own x and y.

Subcommands:
  analyze  - Calculate the section properties and member contributions
  report   - Write the results as a PDF or Excel report

Example JSON file structure:
{
  "name": "Tee",
  "unit": "mm",
  "shapes": [
    {"kind": "bar", "label": "flange", "width": 100, "height": 20, "y": 90},
    {"kind": "bar", "label": "stem", "width": 20, "height": 80, "y": 40}
  ]
}

Excel files use the first sheet, with a header row naming the columns
(kind, label, x, y, radius, width, height, ...) and one shape per row.`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
