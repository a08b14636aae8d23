package section

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// workbookColumns maps header names to the ShapeSpec field they fill
var workbookColumns = map[string]func(*ShapeSpec, float64){
	"x":                func(s *ShapeSpec, v float64) { s.X = v },
	"y":                func(s *ShapeSpec, v float64) { s.Y = v },
	"radius":           func(s *ShapeSpec, v float64) { s.Radius = v },
	"outer_radius":     func(s *ShapeSpec, v float64) { s.OuterRadius = v },
	"inner_radius":     func(s *ShapeSpec, v float64) { s.InnerRadius = v },
	"width":            func(s *ShapeSpec, v float64) { s.Width = v },
	"height":           func(s *ShapeSpec, v float64) { s.Height = v },
	"inner_width":      func(s *ShapeSpec, v float64) { s.InnerWidth = v },
	"inner_height":     func(s *ShapeSpec, v float64) { s.InnerHeight = v },
	"thickness":        func(s *ShapeSpec, v float64) { s.Thickness = v },
	"flange_width":     func(s *ShapeSpec, v float64) { s.FlangeWidth = v },
	"flange_thickness": func(s *ShapeSpec, v float64) { s.FlangeThickness = v },
	"web_height":       func(s *ShapeSpec, v float64) { s.WebHeight = v },
	"web_thickness":    func(s *ShapeSpec, v float64) { s.WebThickness = v },
}

// LoadFromWorkbook reads a section from the first sheet of an Excel
// workbook. The first row names the columns (kind, label, x, y and the
// dimension names used in JSON files); every following row is one shape.
// Blank rows are skipped. The sheet name becomes the section name.
func LoadFromWorkbook(r io.Reader) (*Section, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, &ValidationError{msg: fmt.Sprintf("sheet %q has no shape rows", sheet)}
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(name))
	}

	section := &Section{Name: sheet}
	for i := 1; i < len(rows); i++ {
		spec, ok, err := parseShapeRow(header, rows[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if ok {
			section.Shapes = append(section.Shapes, spec)
		}
	}

	if err := section.Validate(); err != nil {
		return nil, err
	}
	return section, nil
}

// parseShapeRow returns false for a blank row
func parseShapeRow(header, row []string) (ShapeSpec, bool, error) {
	var spec ShapeSpec
	blank := true
	for col, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" || col >= len(header) {
			continue
		}
		blank = false

		name := header[col]
		switch name {
		case "kind":
			spec.Kind = strings.ToLower(cell)
		case "label":
			spec.Label = cell
		case "unit", "":
			// informational
		default:
			set, ok := workbookColumns[name]
			if !ok {
				return spec, false, fmt.Errorf("unknown column %q", name)
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return spec, false, fmt.Errorf("column %q: %w", name, err)
			}
			set(&spec, v)
		}
	}
	return spec, !blank, nil
}
