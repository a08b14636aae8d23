package section

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gosection/internal/shape"
)

// ErrNonFiniteResult is returned when a property overflows to infinity or
// NaN, which happens for dimensions or coordinates near the float64 limit
var ErrNonFiniteResult = errors.New("result is not a finite number")

type namedValue struct {
	name  string
	value float64
}

func checkFinite(values ...namedValue) error {
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%w: %s = %g", ErrNonFiniteResult, v.name, v.value)
		}
	}
	return nil
}

// SectionProperties holds calculated geometric properties
type SectionProperties struct {
	Area float64 `json:"area"`

	// Centroid location
	CentroidX float64 `json:"centroid_x"`
	CentroidY float64 `json:"centroid_y"`

	// Second moments of area about the centroidal axes
	Ix float64 `json:"ix"`
	Iy float64 `json:"iy"`
	J  float64 `json:"j"` // polar, Ix + Iy

	// Bounding box
	MinX   float64 `json:"min_x"`
	MaxX   float64 `json:"max_x"`
	MinY   float64 `json:"min_y"`
	MaxY   float64 `json:"max_y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Distance from the centroid to the extreme fibres
	CTop    float64 `json:"c_top"`
	CBottom float64 `json:"c_bottom"`
	CLeft   float64 `json:"c_left"`
	CRight  float64 `json:"c_right"`

	// Elastic section moduli, I / c
	SxTop    float64 `json:"sx_top"`
	SxBottom float64 `json:"sx_bottom"`
	SyLeft   float64 `json:"sy_left"`
	SyRight  float64 `json:"sy_right"`

	// Radii of gyration, √(I/A)
	Rx float64 `json:"rx"`
	Ry float64 `json:"ry"`
}

// CalculateProperties computes geometric properties of any shape. Fibre
// distances and section moduli are only filled in when the shape also
// implements shape.Profile.
func CalculateProperties(s shape.Shape) (*SectionProperties, error) {
	area, err := s.Area()
	if err != nil {
		return nil, err
	}
	cg, err := s.CenterOfGravity()
	if err != nil {
		return nil, err
	}
	ix, err := s.MomentOfInertia()
	if err != nil {
		return nil, err
	}
	iy, err := s.MomentOfInertiaY()
	if err != nil {
		return nil, err
	}

	props := &SectionProperties{
		Area:      area,
		CentroidX: cg.X,
		CentroidY: cg.Y,
		Ix:        ix,
		Iy:        iy,
		J:         ix + iy,
	}
	if area > 0 {
		props.Rx = math.Sqrt(ix / area)
		props.Ry = math.Sqrt(iy / area)
	}

	p, ok := s.(shape.Profile)
	if !ok {
		if err := props.checkFinite(); err != nil {
			return nil, err
		}
		return props, nil
	}

	b := p.Bounds()
	props.MinX, props.MaxX = b.MinX, b.MaxX
	props.MinY, props.MaxY = b.MinY, b.MaxY
	props.Width = b.Width()
	props.Height = b.Height()

	props.CTop = b.MaxY - cg.Y
	props.CBottom = cg.Y - b.MinY
	props.CLeft = cg.X - b.MinX
	props.CRight = b.MaxX - cg.X

	props.SxTop = modulus(ix, props.CTop)
	props.SxBottom = modulus(ix, props.CBottom)
	props.SyLeft = modulus(iy, props.CLeft)
	props.SyRight = modulus(iy, props.CRight)

	if err := props.checkFinite(); err != nil {
		return nil, err
	}
	return props, nil
}

func (p *SectionProperties) checkFinite() error {
	return checkFinite(
		namedValue{"area", p.Area},
		namedValue{"centroid_x", p.CentroidX},
		namedValue{"centroid_y", p.CentroidY},
		namedValue{"ix", p.Ix},
		namedValue{"iy", p.Iy},
		namedValue{"j", p.J},
		namedValue{"width", p.Width},
		namedValue{"height", p.Height},
		namedValue{"sx_top", p.SxTop},
		namedValue{"sx_bottom", p.SxBottom},
		namedValue{"sy_left", p.SyLeft},
		namedValue{"sy_right", p.SyRight},
		namedValue{"rx", p.Rx},
		namedValue{"ry", p.Ry},
	)
}

func modulus(i, c float64) float64 {
	if c <= 0 {
		return 0
	}
	return i / c
}

// WidthProfile samples the material width of a shape at the middle of
// steps equal bands, from the bottom of its bounding box to the top
func WidthProfile(p shape.Profile, steps int) []float64 {
	if steps <= 0 {
		return nil
	}
	b := p.Bounds()
	dy := b.Height() / float64(steps)

	widths := make([]float64, steps)
	for i := range widths {
		y := b.MinY + (float64(i)+0.5)*dy
		widths[i] = p.WidthAt(y)
	}
	return widths
}

// ProfileArea integrates a width profile over the height of the bounding
// box. It approaches the true area as the number of steps grows and is
// used as a cross-check of the closed-form result.
func ProfileArea(p shape.Profile, steps int) float64 {
	b := p.Bounds()
	if steps <= 0 || b.Height() == 0 {
		return 0
	}
	dy := b.Height() / float64(steps)

	var area float64
	for _, w := range WidthProfile(p, steps) {
		area += w * dy
	}
	return area
}
