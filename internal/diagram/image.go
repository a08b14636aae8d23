package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gosection/internal/shape"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// memberColors are cycled through when filling members
var memberColors = []color.RGBA{
	{R: 100, G: 149, B: 237, A: 160},
	{R: 244, G: 164, B: 96, A: 160},
	{R: 60, G: 179, B: 113, A: 160},
	{R: 186, G: 85, B: 211, A: 160},
	{R: 205, G: 92, B: 92, A: 160},
}

// ExportSectionDiagram exports the section outline, centroid and neutral
// axes to an image file. The format follows the extension (.png, .svg,
// .pdf); anything else is saved as PNG.
func ExportSectionDiagram(data SectionDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Cross Section"
	}
	p.X.Label.Text = fmt.Sprintf("x (%s)", data.Unit)
	p.Y.Label.Text = fmt.Sprintf("y (%s)", data.Unit)

	for i, m := range data.Members {
		fill := memberColors[i%len(memberColors)]
		for j, loops := range m.Parts {
			poly, err := polygon(loops)
			if err != nil {
				return err
			}
			if poly == nil {
				continue
			}
			poly.Color = fill
			poly.LineStyle.Width = vg.Points(1.5)
			poly.LineStyle.Color = color.Black
			p.Add(poly)
			if j == 0 && m.Label != "" {
				p.Legend.Add(m.Label, poly)
			}
		}
	}

	// Keep a 1:1 aspect ratio around the section
	b := data.Bounds
	span := max(b.Width(), b.Height()) * 1.2
	if span == 0 {
		span = 1
	}
	cx, cy := (b.MinX+b.MaxX)/2, (b.MinY+b.MaxY)/2
	p.X.Min, p.X.Max = cx-span/2, cx+span/2
	p.Y.Min, p.Y.Max = cy-span/2, cy+span/2

	// Neutral axes through the centroid
	axisStyle := func(l *plotter.Line) {
		l.LineStyle.Width = vg.Points(1)
		l.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	}
	xAxis, err := plotter.NewLine(plotter.XYs{
		{X: p.X.Min, Y: data.Centroid.Y},
		{X: p.X.Max, Y: data.Centroid.Y},
	})
	if err != nil {
		return err
	}
	axisStyle(xAxis)
	p.Add(xAxis)

	yAxis, err := plotter.NewLine(plotter.XYs{
		{X: data.Centroid.X, Y: p.Y.Min},
		{X: data.Centroid.X, Y: p.Y.Max},
	})
	if err != nil {
		return err
	}
	axisStyle(yAxis)
	p.Add(yAxis)

	centroid, err := plotter.NewScatter(plotter.XYs{{X: data.Centroid.X, Y: data.Centroid.Y}})
	if err != nil {
		return err
	}
	centroid.GlyphStyle.Color = color.RGBA{R: 139, G: 0, B: 0, A: 255}
	centroid.GlyphStyle.Radius = vg.Points(4)
	centroid.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(centroid)

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: data.Centroid.X + span*0.02, Y: data.Centroid.Y + span*0.02}},
		Labels: []string{fmt.Sprintf("C.G. (%.1f, %.1f)", data.Centroid.X, data.Centroid.Y)},
	})
	if err != nil {
		return err
	}
	p.Add(label)

	return save(p, 8*vg.Inch, 8*vg.Inch, filename)
}

// polygon builds one filled polygon from a part's loops, or nil when the
// part has none
func polygon(loops [][]shape.Point) (*plotter.Polygon, error) {
	if len(loops) == 0 {
		return nil, nil
	}
	rings := make([]plotter.XYer, 0, len(loops))
	for _, loop := range loops {
		xys := make(plotter.XYs, len(loop))
		for k, v := range loop {
			xys[k] = plotter.XY{X: v.X, Y: v.Y}
		}
		rings = append(rings, xys)
	}
	return plotter.NewPolygon(rings...)
}

// ExportWidthProfile exports the width of the section against height
func ExportWidthProfile(widths []float64, minY, maxY float64, unit, filename string) error {
	if len(widths) == 0 {
		return fmt.Errorf("no width samples to plot")
	}

	p := plot.New()
	p.Title.Text = "Width Profile"
	p.X.Label.Text = fmt.Sprintf("Width (%s)", unit)
	p.Y.Label.Text = fmt.Sprintf("y (%s)", unit)

	dy := (maxY - minY) / float64(len(widths))
	pts := make(plotter.XYs, len(widths))
	for i, w := range widths {
		pts[i] = plotter.XY{X: w, Y: minY + (float64(i)+0.5)*dy}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(line)

	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
