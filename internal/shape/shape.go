// Package shape computes geometric cross-section properties for a closed
// catalog of structural shapes and for composites assembled from them.
//
// All shapes live in a shared 2D reference frame where:
//   - X-axis points to the right
//   - Y-axis points upward
//
// MomentOfInertia is the second moment of area about the horizontal
// (x-directed) axis through the shape's own centroid. MomentOfInertiaY is
// about the vertical axis through the centroid. When shapes are combined,
// MomentOfInertia shifts each member by its vertical (y) centroid offset and
// MomentOfInertiaY by its horizontal (x) offset.
package shape

import "math"

// Point represents a 2D coordinate in the shared reference frame
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Shape is the capability set shared by primitives and composites.
type Shape interface {
	// Area returns the cross-sectional area.
	Area() (float64, error)
	// CenterOfGravity returns the centroid in the shared frame.
	CenterOfGravity() (Point, error)
	// MomentOfInertia returns the second moment of area about the
	// horizontal centroidal axis.
	MomentOfInertia() (float64, error)
	// MomentOfInertiaY returns the second moment of area about the
	// vertical centroidal axis.
	MomentOfInertiaY() (float64, error)
}

// Bounds is an axis-aligned bounding box
type Bounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Union returns the smallest box containing both b and o
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Profile describes where a shape's material lies in the shared frame.
// It is used for drawings, width profiles and extreme fibre distances.
type Profile interface {
	Bounds() Bounds
	// WidthAt returns the total material width cut by the horizontal
	// line at height y.
	WidthAt(y float64) float64
	// Outline returns closed loops of vertices. Material boundaries run
	// counter-clockwise and holes clockwise.
	Outline() [][]Point
}

// PolarMoment returns the polar second moment of area Ix + Iy about the
// centroid.
func PolarMoment(s Shape) (float64, error) {
	ix, err := s.MomentOfInertia()
	if err != nil {
		return 0, err
	}
	iy, err := s.MomentOfInertiaY()
	if err != nil {
		return 0, err
	}
	return ix + iy, nil
}

// MomentOfInertiaXAt returns the moment of inertia about a horizontal axis
// located a distance d from the centroid.
func MomentOfInertiaXAt(s Shape, d float64) (float64, error) {
	i, err := s.MomentOfInertia()
	if err != nil {
		return 0, err
	}
	a, err := s.Area()
	if err != nil {
		return 0, err
	}
	return ParallelAxis(i, a, d), nil
}

// MomentOfInertiaYAt returns the moment of inertia about a vertical axis
// located a distance d from the centroid.
func MomentOfInertiaYAt(s Shape, d float64) (float64, error) {
	i, err := s.MomentOfInertiaY()
	if err != nil {
		return 0, err
	}
	a, err := s.Area()
	if err != nil {
		return 0, err
	}
	return ParallelAxis(i, a, d), nil
}

// ParallelAxis shifts a centroidal moment of inertia to a parallel axis
// at distance d: I + A·d²
func ParallelAxis(centroidal, area, d float64) float64 {
	return centroidal + area*d*d
}
