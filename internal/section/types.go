package section

import (
	"fmt"
	"slices"

	"github.com/alexiusacademia/gosection/internal/shape"
)

// Section is a composite cross-section defined in a JSON, YAML or Excel
// file. All members share one coordinate system where:
// - Y-axis points upward
// - X-axis points to the right
// - Origin can be at any convenient location
type Section struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Unit of length used by every dimension, for labelling only
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`

	Shapes []ShapeSpec `json:"shapes" yaml:"shapes"`
}

// ShapeSpec describes one member of the section. Which dimensions are read
// depends on Kind:
//
//	rod        radius
//	pipe       outer_radius and inner_radius, or outer_radius and thickness
//	bar        width, height
//	box        width, height and inner_width, inner_height, or thickness
//	ibeam      flange_width, flange_thickness, web_height, web_thickness,
//	           or width, height, web_thickness, flange_thickness
//	composite  shapes, offset by x and y
type ShapeSpec struct {
	Kind  string `json:"kind" yaml:"kind"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Center of gravity, or the offset of a nested composite
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`

	Radius      float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	OuterRadius float64 `json:"outer_radius,omitempty" yaml:"outer_radius,omitempty"`
	InnerRadius float64 `json:"inner_radius,omitempty" yaml:"inner_radius,omitempty"`

	Width       float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height      float64 `json:"height,omitempty" yaml:"height,omitempty"`
	InnerWidth  float64 `json:"inner_width,omitempty" yaml:"inner_width,omitempty"`
	InnerHeight float64 `json:"inner_height,omitempty" yaml:"inner_height,omitempty"`

	// Uniform wall thickness for pipes and box beams
	Thickness float64 `json:"thickness,omitempty" yaml:"thickness,omitempty"`

	FlangeWidth     float64 `json:"flange_width,omitempty" yaml:"flange_width,omitempty"`
	FlangeThickness float64 `json:"flange_thickness,omitempty" yaml:"flange_thickness,omitempty"`
	WebHeight       float64 `json:"web_height,omitempty" yaml:"web_height,omitempty"`
	WebThickness    float64 `json:"web_thickness,omitempty" yaml:"web_thickness,omitempty"`

	// Members of a nested composite
	Shapes []ShapeSpec `json:"shapes,omitempty" yaml:"shapes,omitempty"`
}

// KindComposite marks a nested composite in a ShapeSpec
const KindComposite = "composite"

// DefaultUnit is used when a section does not name its unit
const DefaultUnit = "mm"

// UnitOr returns the section unit, or def when none is set
func (s *Section) UnitOr(def string) string {
	if s.Unit != "" {
		return s.Unit
	}
	if def != "" {
		return def
	}
	return DefaultUnit
}

// Validate checks the structure of the definition. Geometric rules are
// enforced by the shape constructors when the section is built.
func (s *Section) Validate() error {
	if len(s.Shapes) == 0 {
		return &ValidationError{"section must have at least one shape"}
	}
	return validateSpecs(s.Shapes, "shapes")
}

func validateSpecs(specs []ShapeSpec, path string) error {
	for i, spec := range specs {
		p := fmt.Sprintf("%s[%d]", path, i)
		switch spec.Kind {
		case KindComposite:
			if len(spec.Shapes) == 0 {
				return &ValidationError{msg: fmt.Sprintf("%s: composite must have at least one shape", p)}
			}
			if err := validateSpecs(spec.Shapes, p+".shapes"); err != nil {
				return err
			}
		case "":
			return &ValidationError{msg: fmt.Sprintf("%s: kind is required", p)}
		default:
			if slices.Contains(shape.Kinds, shape.Kind(spec.Kind)) {
				if conflict := spec.conflictingDimensions(); conflict != "" {
					return &ValidationError{msg: fmt.Sprintf("%s: %s", p, conflict)}
				}
				continue
			}
			return &ValidationError{msg: fmt.Sprintf("%s: unknown kind %q", p, spec.Kind)}
		}
	}
	return nil
}

// conflictingDimensions reports a shape given in two alternative forms at
// once, since only one of them could be used
func (spec ShapeSpec) conflictingDimensions() string {
	switch spec.Kind {
	case "pipe":
		if spec.Thickness != 0 && spec.InnerRadius != 0 {
			return "pipe takes inner_radius or thickness, not both"
		}
	case "box":
		if spec.Thickness != 0 && (spec.InnerWidth != 0 || spec.InnerHeight != 0) {
			return "box takes inner_width and inner_height or thickness, not both"
		}
	case "ibeam":
		if spec.Height != 0 && spec.WebHeight != 0 {
			return "ibeam takes web_height or height, not both"
		}
		if spec.Height != 0 && spec.FlangeWidth != 0 {
			return "ibeam takes flange_width with web_height, or width with height"
		}
	}
	return ""
}

// ValidationError represents a section definition error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
