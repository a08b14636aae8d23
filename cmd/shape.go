package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosection/internal/diagram"
	"github.com/alexiusacademia/gosection/internal/section"
	"github.com/alexiusacademia/gosection/internal/shape"
	"github.com/spf13/cobra"
)

var (
	shapeX float64
	shapeY float64
)

var shapeCmd = &cobra.Command{
	Use:   "shape",
	Short: "Properties of a single standard shape",
	Long: `Calculate the properties of one standard shape given its
dimensions. The shape is placed with its center of gravity at (--x, --y).

Subcommands:
  rod    - Solid circular rod
  pipe   - Hollow circular pipe
  bar    - Solid rectangular bar
  box    - Rectangular hollow box beam
  ibeam  - Doubly symmetric I-beam`,
}

func init() {
	rootCmd.AddCommand(shapeCmd)

	shapeCmd.PersistentFlags().Float64Var(&shapeX, "x", 0, "x coordinate of the center of gravity")
	shapeCmd.PersistentFlags().Float64Var(&shapeY, "y", 0, "y coordinate of the center of gravity")
}

// printShape prints the properties of a primitive under a title
func printShape(cmd *cobra.Command, title string, s shape.Primitive) error {
	out := cmd.OutOrStdout()
	unit := cfg.Unit

	props, err := section.CalculateProperties(s)
	if err != nil {
		return err
	}

	printHeader(out, title)
	printProperties(out, props, unit)

	fmt.Fprint(out, diagram.DrawSummaryBox(s.Kind().String(), []string{
		fmt.Sprintf("A  = %s %s²", num(props.Area), unit),
		fmt.Sprintf("Ix = %s %s⁴", num(props.Ix), unit),
		fmt.Sprintf("Iy = %s %s⁴", num(props.Iy), unit),
	}))
	fmt.Fprintln(out)
	return nil
}
