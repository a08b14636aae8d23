// Package report renders section analysis results as PDF documents and
// Excel workbooks.
package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexiusacademia/gosection/internal/section"
)

// DefaultPrecision is the number of decimals used when none is given
const DefaultPrecision = 2

// Report is an analysis result ready for rendering
type Report struct {
	Title     string
	Result    *section.AnalysisResult
	Precision int
	Generated time.Time
}

// New creates a report for an analysis result
func New(result *section.AnalysisResult, precision int) Report {
	title := result.Name
	if title == "" {
		title = "Section Properties"
	}
	if precision < 0 {
		precision = DefaultPrecision
	}
	return Report{
		Title:     title,
		Result:    result,
		Precision: precision,
		Generated: time.Now(),
	}
}

// row is one labelled value of the properties table
type row struct {
	Name   string
	Symbol string
	Value  float64
	Power  int // unit exponent, 0 for dimensionless
}

func (r Report) rows() []row {
	p := r.Result.Properties
	return []row{
		{"Area", "A", p.Area, 2},
		{"Centroid x", "x_c", p.CentroidX, 1},
		{"Centroid y", "y_c", p.CentroidY, 1},
		{"Moment of inertia (horizontal axis)", "Ix", p.Ix, 4},
		{"Moment of inertia (vertical axis)", "Iy", p.Iy, 4},
		{"Polar moment", "J", p.J, 4},
		{"Width", "b", p.Width, 1},
		{"Height", "h", p.Height, 1},
		{"Section modulus, top", "Sx_top", p.SxTop, 3},
		{"Section modulus, bottom", "Sx_bot", p.SxBottom, 3},
		{"Section modulus, left", "Sy_left", p.SyLeft, 3},
		{"Section modulus, right", "Sy_right", p.SyRight, 3},
		{"Radius of gyration x", "rx", p.Rx, 1},
		{"Radius of gyration y", "ry", p.Ry, 1},
	}
}

func (r Report) unit(power int) string {
	u := r.Result.Unit
	switch power {
	case 0:
		return ""
	case 1:
		return u
	default:
		return fmt.Sprintf("%s^%d", u, power)
	}
}

func (r Report) format(v float64) string {
	return strconv.FormatFloat(v, 'f', r.Precision, 64)
}
