package cmd

import (
	"github.com/alexiusacademia/gosection/internal/shape"
	"github.com/spf13/cobra"
)

var (
	rodRadius float64

	pipeOuterRadius float64
	pipeInnerRadius float64
	pipeThickness   float64

	barWidth  float64
	barHeight float64

	boxWidth       float64
	boxHeight      float64
	boxInnerWidth  float64
	boxInnerHeight float64
	boxThickness   float64

	ibeamFlangeWidth     float64
	ibeamFlangeThickness float64
	ibeamWebHeight       float64
	ibeamWebThickness    float64
	ibeamDepth           float64
)

var rodCmd = &cobra.Command{
	Use:   "rod",
	Short: "Solid circular rod",
	Long: `Properties of a solid circular rod.

Examples:
  gosection shape rod --radius 2
  gosection shape rod -r 10 --x 50 --y 25`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := shape.NewRod(rodRadius)
		if err != nil {
			return err
		}
		return printShape(cmd, "SOLID ROD", r.At(shapeX, shapeY))
	},
}

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Hollow circular pipe",
	Long: `Properties of a hollow circular pipe given the outer radius and
either the inner radius or the wall thickness.

Examples:
  gosection shape pipe --outer-radius 4 --inner-radius 3
  gosection shape pipe --outer-radius 4 --thickness 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var p shape.Pipe
		var err error
		if cmd.Flags().Changed("thickness") {
			p, err = shape.NewPipeWithThickness(pipeOuterRadius, pipeThickness)
		} else {
			p, err = shape.NewPipe(pipeOuterRadius, pipeInnerRadius)
		}
		if err != nil {
			return err
		}
		return printShape(cmd, "HOLLOW PIPE", p.At(shapeX, shapeY))
	},
}

var barCmd = &cobra.Command{
	Use:   "bar",
	Short: "Solid rectangular bar",
	Long: `Properties of a solid rectangular bar.

Examples:
  gosection shape bar --width 300 --height 500`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := shape.NewRectangularBar(barWidth, barHeight)
		if err != nil {
			return err
		}
		return printShape(cmd, "RECTANGULAR BAR", b.At(shapeX, shapeY))
	},
}

var boxCmd = &cobra.Command{
	Use:   "box",
	Short: "Rectangular hollow box beam",
	Long: `Properties of a rectangular hollow box beam given the outer
dimensions and either the inner dimensions or a uniform wall thickness.

Examples:
  gosection shape box --width 200 --height 300 --inner-width 180 --inner-height 280
  gosection shape box --width 200 --height 300 --thickness 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var b shape.BoxBeam
		var err error
		if cmd.Flags().Changed("thickness") {
			b, err = shape.NewBoxBeamWithThickness(boxWidth, boxHeight, boxThickness)
		} else {
			b, err = shape.NewBoxBeam(boxWidth, boxHeight, boxInnerWidth, boxInnerHeight)
		}
		if err != nil {
			return err
		}
		return printShape(cmd, "BOX BEAM", b.At(shapeX, shapeY))
	},
}

var ibeamCmd = &cobra.Command{
	Use:   "ibeam",
	Short: "Doubly symmetric I-beam",
	Long: `Properties of a doubly symmetric I-beam given the flange and web
dimensions. With --depth the web height is the depth less both flanges.

Examples:
  gosection shape ibeam --flange-width 200 --flange-thickness 15 --web-height 370 --web-thickness 10
  gosection shape ibeam --flange-width 200 --flange-thickness 15 --depth 400 --web-thickness 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var b shape.IBeam
		var err error
		if cmd.Flags().Changed("depth") {
			b, err = shape.NewIBeamOverall(ibeamFlangeWidth, ibeamDepth, ibeamWebThickness, ibeamFlangeThickness)
		} else {
			b, err = shape.NewIBeam(ibeamFlangeWidth, ibeamFlangeThickness, ibeamWebHeight, ibeamWebThickness)
		}
		if err != nil {
			return err
		}
		return printShape(cmd, "I-BEAM", b.At(shapeX, shapeY))
	},
}

func init() {
	shapeCmd.AddCommand(rodCmd, pipeCmd, barCmd, boxCmd, ibeamCmd)

	rodCmd.Flags().Float64VarP(&rodRadius, "radius", "r", 0, "Radius [required]")
	rodCmd.MarkFlagRequired("radius")

	pipeCmd.Flags().Float64Var(&pipeOuterRadius, "outer-radius", 0, "Outer radius [required]")
	pipeCmd.Flags().Float64Var(&pipeInnerRadius, "inner-radius", 0, "Inner radius")
	pipeCmd.Flags().Float64VarP(&pipeThickness, "thickness", "t", 0, "Wall thickness, instead of --inner-radius")
	pipeCmd.MarkFlagRequired("outer-radius")
	pipeCmd.MarkFlagsMutuallyExclusive("inner-radius", "thickness")
	pipeCmd.MarkFlagsOneRequired("inner-radius", "thickness")

	barCmd.Flags().Float64VarP(&barWidth, "width", "b", 0, "Width [required]")
	barCmd.Flags().Float64Var(&barHeight, "height", 0, "Height [required]")
	barCmd.MarkFlagRequired("width")
	barCmd.MarkFlagRequired("height")

	boxCmd.Flags().Float64VarP(&boxWidth, "width", "b", 0, "Outer width [required]")
	boxCmd.Flags().Float64Var(&boxHeight, "height", 0, "Outer height [required]")
	boxCmd.Flags().Float64Var(&boxInnerWidth, "inner-width", 0, "Inner width")
	boxCmd.Flags().Float64Var(&boxInnerHeight, "inner-height", 0, "Inner height")
	boxCmd.Flags().Float64VarP(&boxThickness, "thickness", "t", 0, "Wall thickness, instead of the inner dimensions")
	boxCmd.MarkFlagRequired("width")
	boxCmd.MarkFlagRequired("height")
	boxCmd.MarkFlagsRequiredTogether("inner-width", "inner-height")
	boxCmd.MarkFlagsMutuallyExclusive("inner-width", "thickness")
	boxCmd.MarkFlagsOneRequired("inner-width", "thickness")

	ibeamCmd.Flags().Float64Var(&ibeamFlangeWidth, "flange-width", 0, "Flange width [required]")
	ibeamCmd.Flags().Float64Var(&ibeamFlangeThickness, "flange-thickness", 0, "Flange thickness [required]")
	ibeamCmd.Flags().Float64Var(&ibeamWebHeight, "web-height", 0, "Clear web height between flanges")
	ibeamCmd.Flags().Float64Var(&ibeamWebThickness, "web-thickness", 0, "Web thickness [required]")
	ibeamCmd.Flags().Float64Var(&ibeamDepth, "depth", 0, "Overall depth, instead of --web-height")
	ibeamCmd.MarkFlagRequired("flange-width")
	ibeamCmd.MarkFlagRequired("flange-thickness")
	ibeamCmd.MarkFlagRequired("web-thickness")
	ibeamCmd.MarkFlagsMutuallyExclusive("web-height", "depth")
	ibeamCmd.MarkFlagsOneRequired("web-height", "depth")
}
