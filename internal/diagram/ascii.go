package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gosection/internal/shape"
	"github.com/guptarohit/asciigraph"
)

// Member is one drawn member of a section. A nested composite member has
// one part per primitive; each part is a set of loops filled even-odd.
type Member struct {
	Label string
	Parts [][][]shape.Point
}

// SectionDiagramData holds data for drawing a composite section
type SectionDiagramData struct {
	Title string
	Unit  string

	Members  []Member
	Bounds   shape.Bounds
	Centroid shape.Point
}

// NewSectionDiagramData collects the outlines of a composite's members.
// Labels are matched to members by position; missing labels are left empty.
func NewSectionDiagramData(title, unit string, labels []string, c shape.Composite) (SectionDiagramData, error) {
	cg, err := c.CenterOfGravity()
	if err != nil {
		return SectionDiagramData{}, err
	}
	data := SectionDiagramData{
		Title:    title,
		Unit:     unit,
		Bounds:   c.Bounds(),
		Centroid: cg,
	}
	for i, s := range c.Members() {
		parts := outlineParts(s)
		if len(parts) == 0 {
			continue
		}
		m := Member{Parts: parts}
		if i < len(labels) {
			m.Label = labels[i]
		}
		data.Members = append(data.Members, m)
	}
	return data, nil
}

// outlineParts keeps the outlines of nested composites apart so overlapping
// children are not cut out of each other
func outlineParts(s shape.Shape) [][][]shape.Point {
	if c, ok := s.(shape.Composite); ok {
		var parts [][][]shape.Point
		for _, child := range c.Members() {
			parts = append(parts, outlineParts(child)...)
		}
		return parts
	}
	if p, ok := s.(shape.Profile); ok {
		return [][][]shape.Point{p.Outline()}
	}
	return nil
}

func (d SectionDiagramData) contains(p shape.Point) bool {
	for _, m := range d.Members {
		for _, loops := range m.Parts {
			if shape.Contains(loops, p) {
				return true
			}
		}
	}
	return false
}

// DrawASCIISectionDiagram rasterises the section onto a character grid and
// marks the centroid and the horizontal neutral axis
func DrawASCIISectionDiagram(data SectionDiagramData) string {
	var sb strings.Builder

	widthChars := 40
	b := data.Bounds
	if b.Width() <= 0 || b.Height() <= 0 {
		return "  (empty section)\n"
	}

	// Characters are about twice as tall as they are wide
	heightChars := int(math.Round(float64(widthChars) * b.Height() / b.Width() / 2))
	heightChars = max(3, min(heightChars, 30))

	cellW := b.Width() / float64(widthChars)
	cellH := b.Height() / float64(heightChars)

	cgCol := int((data.Centroid.X - b.MinX) / cellW)
	cgRow := int((b.MaxY - data.Centroid.Y) / cellH)
	cgCol = max(0, min(cgCol, widthChars-1))
	cgRow = max(0, min(cgRow, heightChars-1))

	sb.WriteString("\n")
	if data.Title != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(data.Title)))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", utf8.RuneCountInString(data.Title))))
	}
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))

	for row := 0; row < heightChars; row++ {
		y := b.MaxY - (float64(row)+0.5)*cellH
		var line strings.Builder
		for col := 0; col < widthChars; col++ {
			x := b.MinX + (float64(col)+0.5)*cellW
			switch {
			case row == cgRow && col == cgCol:
				line.WriteString("+")
			case data.contains(shape.Point{X: x, Y: y}):
				line.WriteString("█")
			case row == cgRow:
				line.WriteString("·")
			default:
				line.WriteString(" ")
			}
		}
		sb.WriteString(fmt.Sprintf("  │%s│", line.String()))
		if row == cgRow {
			sb.WriteString(" ◄─ N.A.")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ███ = Material\n")
	sb.WriteString(fmt.Sprintf("  +   = Centroid at (%.2f, %.2f) %s\n", data.Centroid.X, data.Centroid.Y, data.Unit))
	sb.WriteString(fmt.Sprintf("  Extents: %.2f x %.2f %s\n", b.Width(), b.Height(), data.Unit))

	return sb.String()
}

// DrawWidthProfile charts the material width from the bottom of the
// section (left) to the top (right)
func DrawWidthProfile(widths []float64, unit string) string {
	if len(widths) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  WIDTH PROFILE\n")
	sb.WriteString("  ─────────────\n\n")
	sb.WriteString(asciigraph.Plot(widths,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Offset(4),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("width (%s), bottom → top", unit)),
	))
	sb.WriteString("\n")
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	border := strings.Repeat("═", width+4)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", width, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", width, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
