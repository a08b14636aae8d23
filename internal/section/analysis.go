package section

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gosection/internal/shape"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a section definition
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatWorkbook Format = "xlsx"
)

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xlsx":
		return FormatWorkbook, nil
	}
	return "", fmt.Errorf("unsupported section file %q: use .json, .yaml, .yml or .xlsx", path)
}

// LoadFromFile loads a section definition from a JSON, YAML or Excel file
func LoadFromFile(path string) (*Section, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	if format == FormatWorkbook {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return LoadFromWorkbook(f)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, format)
}

// Parse decodes and validates a JSON or YAML section definition
func Parse(data []byte, format Format) (*Section, error) {
	var section Section
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &section); err != nil {
			return nil, fmt.Errorf("parsing section JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &section); err != nil {
			return nil, fmt.Errorf("parsing section YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported section format %q", format)
	}

	if err := section.Validate(); err != nil {
		return nil, err
	}
	return &section, nil
}

// AnalysisResult holds the results of section analysis
type AnalysisResult struct {
	Name string `json:"name"`
	Unit string `json:"unit"`

	Properties *SectionProperties `json:"properties"`
	Members    []MemberResult     `json:"members"`
}

// MemberResult is one member's share of the section properties
type MemberResult struct {
	Label     string  `json:"label"`
	Kind      string  `json:"kind"`
	Area      float64 `json:"area"`
	CentroidX float64 `json:"centroid_x"`
	CentroidY float64 `json:"centroid_y"`

	// About the member's own centroid
	Ix float64 `json:"ix"`
	Iy float64 `json:"iy"`

	// Parallel-axis terms relative to the section centroid
	ShiftX float64 `json:"shift_x"`
	ShiftY float64 `json:"shift_y"`

	// About the section's centroidal axes
	TotalIx float64 `json:"total_ix"`
	TotalIy float64 `json:"total_iy"`
}

// Analyze builds the section and calculates its properties
func (s *Section) Analyze() (*AnalysisResult, error) {
	a, err := s.Build()
	if err != nil {
		return nil, err
	}
	return a.Analyze()
}

// Analyze calculates the properties of a built section
func (a *Assembly) Analyze() (*AnalysisResult, error) {
	props, err := CalculateProperties(a.Composite)
	if err != nil {
		return nil, err
	}
	contribs, err := a.Composite.Contributions()
	if err != nil {
		return nil, err
	}

	result := &AnalysisResult{Name: a.Name, Unit: a.Unit, Properties: props}
	for i, c := range contribs {
		err := checkFinite(
			namedValue{"area", c.Area},
			namedValue{"centroid_x", c.CenterOfGravity.X},
			namedValue{"centroid_y", c.CenterOfGravity.Y},
			namedValue{"total_ix", c.TotalX()},
			namedValue{"total_iy", c.TotalY()},
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.Labels[i], err)
		}
		result.Members = append(result.Members, MemberResult{
			Label:     a.Labels[i],
			Kind:      KindOf(c.Shape),
			Area:      c.Area,
			CentroidX: c.CenterOfGravity.X,
			CentroidY: c.CenterOfGravity.Y,
			Ix:        c.MomentOfInertia,
			Iy:        c.MomentOfInertiaY,
			ShiftX:    c.ShiftX,
			ShiftY:    c.ShiftY,
			TotalIx:   c.TotalX(),
			TotalIy:   c.TotalY(),
		})
	}
	return result, nil
}

// KindOf names the kind of any shape, including nested composites
func KindOf(s shape.Shape) string {
	switch v := s.(type) {
	case shape.Primitive:
		return v.Kind().String()
	case shape.Composite:
		return KindComposite
	}
	return fmt.Sprintf("%T", s)
}
