package section

import (
	"fmt"

	"github.com/alexiusacademia/gosection/internal/shape"
)

// Assembly is a built section ready for analysis
type Assembly struct {
	Name      string
	Unit      string
	Composite shape.Composite

	// Labels of the top-level members, in the composite's order
	Labels []string
}

// Build validates the definition and constructs its shapes. Geometric
// errors are wrapped with the path of the offending shape.
func (s *Section) Build() (*Assembly, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	a := &Assembly{Name: s.Name, Unit: s.UnitOr("")}
	c := shape.NewComposite()
	for i, spec := range s.Shapes {
		path := fmt.Sprintf("shapes[%d]", i)
		member, err := buildSpec(spec, shape.Point{}, path)
		if err != nil {
			return nil, err
		}
		c = c.Add(member)
		a.Labels = append(a.Labels, spec.labelOr(i))
	}
	a.Composite = c
	return a, nil
}

func (spec ShapeSpec) labelOr(i int) string {
	if spec.Label != "" {
		return spec.Label
	}
	return fmt.Sprintf("%s %d", spec.Kind, i+1)
}

// buildSpec constructs one shape placed at its x, y plus the origin of the
// enclosing composite
func buildSpec(spec ShapeSpec, origin shape.Point, path string) (shape.Shape, error) {
	x, y := origin.X+spec.X, origin.Y+spec.Y

	switch spec.Kind {
	case "rod":
		r, err := shape.NewRod(spec.Radius)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return r.At(x, y), nil

	case "pipe":
		var p shape.Pipe
		var err error
		if spec.Thickness != 0 {
			p, err = shape.NewPipeWithThickness(spec.OuterRadius, spec.Thickness)
		} else {
			p, err = shape.NewPipe(spec.OuterRadius, spec.InnerRadius)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return p.At(x, y), nil

	case "bar":
		b, err := shape.NewRectangularBar(spec.Width, spec.Height)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return b.At(x, y), nil

	case "box":
		var b shape.BoxBeam
		var err error
		if spec.Thickness != 0 {
			b, err = shape.NewBoxBeamWithThickness(spec.Width, spec.Height, spec.Thickness)
		} else {
			b, err = shape.NewBoxBeam(spec.Width, spec.Height, spec.InnerWidth, spec.InnerHeight)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return b.At(x, y), nil

	case "ibeam":
		var b shape.IBeam
		var err error
		if spec.WebHeight == 0 && spec.Height != 0 {
			// Overall dimensions
			b, err = shape.NewIBeamOverall(spec.Width, spec.Height, spec.WebThickness, spec.FlangeThickness)
		} else {
			b, err = shape.NewIBeam(spec.FlangeWidth, spec.FlangeThickness, spec.WebHeight, spec.WebThickness)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return b.At(x, y), nil

	case KindComposite:
		c := shape.NewComposite()
		for i, child := range spec.Shapes {
			member, err := buildSpec(child, shape.Point{X: x, Y: y}, fmt.Sprintf("%s.shapes[%d]", path, i))
			if err != nil {
				return nil, err
			}
			c = c.Add(member)
		}
		return c, nil
	}

	return nil, &ValidationError{msg: fmt.Sprintf("%s: unknown kind %q", path, spec.Kind)}
}
