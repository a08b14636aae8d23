package shape

import "fmt"

// Composite is an ordered assembly of shapes analysed as one section.
//
// A Composite is a persistent value: Add returns a new composite that shares
// the members already added, so previously returned composites never change
// and may be read from several goroutines at once. A Composite is itself a
// Shape and may be added to another Composite.
type Composite struct {
	last *member
	n    int
}

type member struct {
	shape Shape
	prev  *member
}

var _ Shape = Composite{}

// NewComposite returns an empty composite
func NewComposite() Composite {
	return Composite{}
}

// Add returns the composite extended with s. A nil shape is ignored.
func (c Composite) Add(s Shape) Composite {
	if s == nil {
		return c
	}
	return Composite{last: &member{shape: s, prev: c.last}, n: c.n + 1}
}

// Len returns the number of members
func (c Composite) Len() int { return c.n }

// Members returns the members in insertion order
func (c Composite) Members() []Shape {
	out := make([]Shape, c.n)
	i := c.n - 1
	for m := c.last; m != nil; m = m.prev {
		out[i] = m.shape
		i--
	}
	return out
}

// Contribution is one member's share of the composite properties
type Contribution struct {
	Shape           Shape
	Area            float64
	CenterOfGravity Point
	// Self moments about the member's own centroid
	MomentOfInertia  float64
	MomentOfInertiaY float64
	// Parallel-axis terms A·d² relative to the composite centroid
	ShiftX float64
	ShiftY float64
}

// TotalX returns the member's moment of inertia about the composite's
// horizontal centroidal axis
func (c Contribution) TotalX() float64 { return c.MomentOfInertia + c.ShiftX }

// TotalY returns the member's moment of inertia about the composite's
// vertical centroidal axis
func (c Contribution) TotalY() float64 { return c.MomentOfInertiaY + c.ShiftY }

// Properties are the aggregate values of a composite
type Properties struct {
	Area             float64 `json:"area"`
	CenterOfGravity  Point   `json:"center_of_gravity"`
	MomentOfInertia  float64 `json:"moment_of_inertia"`
	MomentOfInertiaY float64 `json:"moment_of_inertia_y"`
}

// Contributions evaluates every member and applies the parallel-axis
// theorem relative to the composite centroid. The centroid needs every
// member's area and position, so the shift terms are computed in a second
// pass.
func (c Composite) Contributions() ([]Contribution, error) {
	contribs, _, err := c.evaluate()
	return contribs, err
}

// Properties returns area, centroid and both centroidal moments of inertia
func (c Composite) Properties() (Properties, error) {
	contribs, p, err := c.evaluate()
	if err != nil {
		return Properties{}, err
	}
	for _, ct := range contribs {
		p.MomentOfInertia += ct.TotalX()
		p.MomentOfInertiaY += ct.TotalY()
	}
	return p, nil
}

// Area returns the sum of member areas
func (c Composite) Area() (float64, error) {
	_, p, err := c.evaluate()
	return p.Area, err
}

// CenterOfGravity returns the area-weighted average of member centroids
func (c Composite) CenterOfGravity() (Point, error) {
	_, p, err := c.evaluate()
	return p.CenterOfGravity, err
}

// MomentOfInertia returns Σ[Ixᵢ + Aᵢ(yᵢ − ȳ)²] about the composite's
// horizontal centroidal axis
func (c Composite) MomentOfInertia() (float64, error) {
	p, err := c.Properties()
	return p.MomentOfInertia, err
}

// MomentOfInertiaY returns Σ[Iyᵢ + Aᵢ(xᵢ − x̄)²] about the composite's
// vertical centroidal axis
func (c Composite) MomentOfInertiaY() (float64, error) {
	p, err := c.Properties()
	return p.MomentOfInertiaY, err
}

// evaluate runs both passes and returns the contributions together with
// the area and centroid; the moment fields of the returned Properties are
// left zero.
func (c Composite) evaluate() ([]Contribution, Properties, error) {
	if c.n == 0 {
		return nil, Properties{}, fmt.Errorf("%w: no members", ErrDegenerateComposite)
	}

	contribs := make([]Contribution, 0, c.n)
	var area, momentX, momentY float64
	for i, s := range c.Members() {
		ct, err := evaluateMember(s)
		if err != nil {
			return nil, Properties{}, fmt.Errorf("member %d: %w", i, err)
		}
		area += ct.Area
		momentX += ct.Area * ct.CenterOfGravity.X
		momentY += ct.Area * ct.CenterOfGravity.Y
		contribs = append(contribs, ct)
	}
	if area == 0 {
		return nil, Properties{}, fmt.Errorf("%w: %d members with zero total area", ErrDegenerateComposite, c.n)
	}

	cg := Point{X: momentX / area, Y: momentY / area}
	for i := range contribs {
		ct := &contribs[i]
		ct.ShiftX = ct.Area * sq(ct.CenterOfGravity.Y-cg.Y)
		ct.ShiftY = ct.Area * sq(ct.CenterOfGravity.X-cg.X)
	}
	return contribs, Properties{Area: area, CenterOfGravity: cg}, nil
}

func evaluateMember(s Shape) (Contribution, error) {
	a, err := s.Area()
	if err != nil {
		return Contribution{}, err
	}
	cg, err := s.CenterOfGravity()
	if err != nil {
		return Contribution{}, err
	}
	ix, err := s.MomentOfInertia()
	if err != nil {
		return Contribution{}, err
	}
	iy, err := s.MomentOfInertiaY()
	if err != nil {
		return Contribution{}, err
	}
	return Contribution{Shape: s, Area: a, CenterOfGravity: cg, MomentOfInertia: ix, MomentOfInertiaY: iy}, nil
}

func sq(x float64) float64 { return x * x }

// Bounds returns the union of the members' bounding boxes. Members that do
// not implement Profile are skipped.
func (c Composite) Bounds() Bounds {
	var b Bounds
	first := true
	for _, s := range c.Members() {
		p, ok := s.(Profile)
		if !ok {
			continue
		}
		if first {
			b, first = p.Bounds(), false
			continue
		}
		b = b.Union(p.Bounds())
	}
	return b
}

// WidthAt sums the members' widths at y. Overlapping members are counted
// once per member.
func (c Composite) WidthAt(y float64) float64 {
	var w float64
	for _, s := range c.Members() {
		if p, ok := s.(Profile); ok {
			w += p.WidthAt(y)
		}
	}
	return w
}

// Outline concatenates the members' outlines
func (c Composite) Outline() [][]Point {
	var loops [][]Point
	for _, s := range c.Members() {
		if p, ok := s.(Profile); ok {
			loops = append(loops, p.Outline()...)
		}
	}
	return loops
}
