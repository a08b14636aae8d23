package shape

import "math"

// Kind identifies a primitive cross-section variant
type Kind string

const (
	KindRod            Kind = "rod"
	KindPipe           Kind = "pipe"
	KindRectangularBar Kind = "bar"
	KindBoxBeam        Kind = "box"
	KindIBeam          Kind = "ibeam"
)

// Kinds lists the primitive catalog in a stable order
var Kinds = []Kind{KindRod, KindPipe, KindRectangularBar, KindBoxBeam, KindIBeam}

func (k Kind) String() string { return string(k) }

// Primitive is one of Rod, Pipe, RectangularBar, BoxBeam or IBeam.
// The set is closed; values can only be obtained from the validating
// constructors, so a Primitive never carries invalid parameters.
type Primitive interface {
	Shape
	Profile
	Kind() Kind
	primitive()
}

var (
	_ Primitive = Rod{}
	_ Primitive = Pipe{}
	_ Primitive = RectangularBar{}
	_ Primitive = BoxBeam{}
	_ Primitive = IBeam{}
)

// Rod is a solid circular section
type Rod struct {
	radius float64
	cg     Point
}

// NewRod creates a rod centred on the origin
func NewRod(radius float64) (Rod, error) {
	if err := checkLength(KindRod, "radius", radius); err != nil {
		return Rod{}, err
	}
	return Rod{radius: radius}, nil
}

// At returns a copy of the rod centred on (x, y)
func (r Rod) At(x, y float64) Rod {
	r.cg = Point{X: x, Y: y}
	return r
}

func (r Rod) Radius() float64 { return r.radius }
func (r Rod) Kind() Kind      { return KindRod }
func (Rod) primitive()        {}

func (r Rod) Area() (float64, error) {
	return math.Pi * r.radius * r.radius, nil
}

func (r Rod) CenterOfGravity() (Point, error) { return r.cg, nil }

func (r Rod) MomentOfInertia() (float64, error) {
	return math.Pi * math.Pow(r.radius, 4) / 4, nil
}

func (r Rod) MomentOfInertiaY() (float64, error) { return r.MomentOfInertia() }

func (r Rod) Bounds() Bounds { return squareBounds(r.cg, r.radius) }

func (r Rod) WidthAt(y float64) float64 { return chord(r.radius, y-r.cg.Y) }

func (r Rod) Outline() [][]Point {
	return [][]Point{circleLoop(r.cg, r.radius)}
}

// Pipe is an annular section
type Pipe struct {
	outerRadius float64
	innerRadius float64
	cg          Point
}

// NewPipe creates a pipe centred on the origin. The inner radius must be
// strictly less than the outer radius.
func NewPipe(outerRadius, innerRadius float64) (Pipe, error) {
	err := checkLengths(KindPipe,
		namedLength{"outer_radius", outerRadius},
		namedLength{"inner_radius", innerRadius},
	)
	if err != nil {
		return Pipe{}, err
	}
	if innerRadius >= outerRadius {
		return Pipe{}, &ValidationError{Kind: KindPipe, Param: "inner_radius", Value: innerRadius,
			Rule: "must be less than outer_radius"}
	}
	return Pipe{outerRadius: outerRadius, innerRadius: innerRadius}, nil
}

// NewPipeWithThickness creates a pipe from its outer radius and wall thickness
func NewPipeWithThickness(outerRadius, thickness float64) (Pipe, error) {
	if err := checkLength(KindPipe, "thickness", thickness); err != nil {
		return Pipe{}, err
	}
	if thickness == 0 || thickness > outerRadius {
		return Pipe{}, &ValidationError{Kind: KindPipe, Param: "thickness", Value: thickness,
			Rule: "must be greater than zero and at most outer_radius"}
	}
	return NewPipe(outerRadius, outerRadius-thickness)
}

// At returns a copy of the pipe centred on (x, y)
func (p Pipe) At(x, y float64) Pipe {
	p.cg = Point{X: x, Y: y}
	return p
}

func (p Pipe) OuterRadius() float64 { return p.outerRadius }
func (p Pipe) InnerRadius() float64 { return p.innerRadius }
func (p Pipe) Thickness() float64   { return p.outerRadius - p.innerRadius }
func (p Pipe) Kind() Kind           { return KindPipe }
func (Pipe) primitive()             {}

func (p Pipe) Area() (float64, error) {
	return math.Pi * (p.outerRadius*p.outerRadius - p.innerRadius*p.innerRadius), nil
}

func (p Pipe) CenterOfGravity() (Point, error) { return p.cg, nil }

func (p Pipe) MomentOfInertia() (float64, error) {
	return math.Pi * (math.Pow(p.outerRadius, 4) - math.Pow(p.innerRadius, 4)) / 4, nil
}

func (p Pipe) MomentOfInertiaY() (float64, error) { return p.MomentOfInertia() }

func (p Pipe) Bounds() Bounds { return squareBounds(p.cg, p.outerRadius) }

func (p Pipe) WidthAt(y float64) float64 {
	dy := y - p.cg.Y
	return chord(p.outerRadius, dy) - chord(p.innerRadius, dy)
}

func (p Pipe) Outline() [][]Point {
	loops := [][]Point{circleLoop(p.cg, p.outerRadius)}
	if p.innerRadius > 0 {
		loops = append(loops, reversed(circleLoop(p.cg, p.innerRadius)))
	}
	return loops
}

// RectangularBar is a solid rectangle
type RectangularBar struct {
	width  float64
	height float64
	cg     Point
}

// NewRectangularBar creates a bar centred on the origin
func NewRectangularBar(width, height float64) (RectangularBar, error) {
	err := checkLengths(KindRectangularBar,
		namedLength{"width", width},
		namedLength{"height", height},
	)
	if err != nil {
		return RectangularBar{}, err
	}
	return RectangularBar{width: width, height: height}, nil
}

// At returns a copy of the bar centred on (x, y)
func (b RectangularBar) At(x, y float64) RectangularBar {
	b.cg = Point{X: x, Y: y}
	return b
}

func (b RectangularBar) Width() float64  { return b.width }
func (b RectangularBar) Height() float64 { return b.height }
func (b RectangularBar) Kind() Kind      { return KindRectangularBar }
func (RectangularBar) primitive()        {}

func (b RectangularBar) Area() (float64, error) { return b.width * b.height, nil }

func (b RectangularBar) CenterOfGravity() (Point, error) { return b.cg, nil }

func (b RectangularBar) MomentOfInertia() (float64, error) {
	return b.width * math.Pow(b.height, 3) / 12, nil
}

func (b RectangularBar) MomentOfInertiaY() (float64, error) {
	return b.height * math.Pow(b.width, 3) / 12, nil
}

func (b RectangularBar) Bounds() Bounds { return rectBounds(b.cg, b.width, b.height) }

func (b RectangularBar) WidthAt(y float64) float64 {
	if math.Abs(y-b.cg.Y) > b.height/2 {
		return 0
	}
	return b.width
}

func (b RectangularBar) Outline() [][]Point {
	return [][]Point{rectLoop(b.cg, b.width, b.height)}
}

// BoxBeam is a rectangular tube
type BoxBeam struct {
	outerWidth  float64
	outerHeight float64
	innerWidth  float64
	innerHeight float64
	cg          Point
}

// NewBoxBeam creates a box beam centred on the origin. Inner dimensions may
// equal but not exceed the outer ones.
func NewBoxBeam(outerWidth, outerHeight, innerWidth, innerHeight float64) (BoxBeam, error) {
	err := checkLengths(KindBoxBeam,
		namedLength{"outer_width", outerWidth},
		namedLength{"outer_height", outerHeight},
		namedLength{"inner_width", innerWidth},
		namedLength{"inner_height", innerHeight},
	)
	if err != nil {
		return BoxBeam{}, err
	}
	if innerWidth > outerWidth {
		return BoxBeam{}, &ValidationError{Kind: KindBoxBeam, Param: "inner_width", Value: innerWidth,
			Rule: "must not exceed outer_width"}
	}
	if innerHeight > outerHeight {
		return BoxBeam{}, &ValidationError{Kind: KindBoxBeam, Param: "inner_height", Value: innerHeight,
			Rule: "must not exceed outer_height"}
	}
	return BoxBeam{
		outerWidth:  outerWidth,
		outerHeight: outerHeight,
		innerWidth:  innerWidth,
		innerHeight: innerHeight,
	}, nil
}

// NewBoxBeamWithThickness creates a box beam with the same wall thickness
// on all four sides
func NewBoxBeamWithThickness(width, height, thickness float64) (BoxBeam, error) {
	if err := checkLength(KindBoxBeam, "thickness", thickness); err != nil {
		return BoxBeam{}, err
	}
	if 2*thickness > math.Min(width, height) {
		return BoxBeam{}, &ValidationError{Kind: KindBoxBeam, Param: "thickness", Value: thickness,
			Rule: "must be at most half of the smaller outer dimension"}
	}
	return NewBoxBeam(width, height, width-2*thickness, height-2*thickness)
}

// At returns a copy of the box beam centred on (x, y)
func (b BoxBeam) At(x, y float64) BoxBeam {
	b.cg = Point{X: x, Y: y}
	return b
}

func (b BoxBeam) OuterWidth() float64  { return b.outerWidth }
func (b BoxBeam) OuterHeight() float64 { return b.outerHeight }
func (b BoxBeam) InnerWidth() float64  { return b.innerWidth }
func (b BoxBeam) InnerHeight() float64 { return b.innerHeight }
func (b BoxBeam) Kind() Kind           { return KindBoxBeam }
func (BoxBeam) primitive()             {}

func (b BoxBeam) Area() (float64, error) {
	return b.outerWidth*b.outerHeight - b.innerWidth*b.innerHeight, nil
}

func (b BoxBeam) CenterOfGravity() (Point, error) { return b.cg, nil }

func (b BoxBeam) MomentOfInertia() (float64, error) {
	return (b.outerWidth*math.Pow(b.outerHeight, 3) - b.innerWidth*math.Pow(b.innerHeight, 3)) / 12, nil
}

func (b BoxBeam) MomentOfInertiaY() (float64, error) {
	return (b.outerHeight*math.Pow(b.outerWidth, 3) - b.innerHeight*math.Pow(b.innerWidth, 3)) / 12, nil
}

func (b BoxBeam) Bounds() Bounds { return rectBounds(b.cg, b.outerWidth, b.outerHeight) }

func (b BoxBeam) WidthAt(y float64) float64 {
	dy := math.Abs(y - b.cg.Y)
	if dy > b.outerHeight/2 {
		return 0
	}
	if dy < b.innerHeight/2 {
		return b.outerWidth - b.innerWidth
	}
	return b.outerWidth
}

func (b BoxBeam) Outline() [][]Point {
	loops := [][]Point{rectLoop(b.cg, b.outerWidth, b.outerHeight)}
	if b.innerWidth > 0 && b.innerHeight > 0 {
		loops = append(loops, reversed(rectLoop(b.cg, b.innerWidth, b.innerHeight)))
	}
	return loops
}

// IBeam is a doubly symmetric wide-flange section. The web height is
// measured between the inner faces of the flanges.
type IBeam struct {
	flangeWidth     float64
	flangeThickness float64
	webHeight       float64
	webThickness    float64
	cg              Point
}

// NewIBeam creates an I-beam centred on the origin
func NewIBeam(flangeWidth, flangeThickness, webHeight, webThickness float64) (IBeam, error) {
	err := checkLengths(KindIBeam,
		namedLength{"flange_width", flangeWidth},
		namedLength{"flange_thickness", flangeThickness},
		namedLength{"web_height", webHeight},
		namedLength{"web_thickness", webThickness},
	)
	if err != nil {
		return IBeam{}, err
	}
	return IBeam{
		flangeWidth:     flangeWidth,
		flangeThickness: flangeThickness,
		webHeight:       webHeight,
		webThickness:    webThickness,
	}, nil
}

// NewIBeamOverall creates an I-beam from its overall width and depth
func NewIBeamOverall(width, height, webThickness, flangeThickness float64) (IBeam, error) {
	if err := checkLength(KindIBeam, "height", height); err != nil {
		return IBeam{}, err
	}
	if 2*flangeThickness > height {
		return IBeam{}, &ValidationError{Kind: KindIBeam, Param: "flange_thickness", Value: flangeThickness,
			Rule: "must be at most half of height"}
	}
	return NewIBeam(width, flangeThickness, height-2*flangeThickness, webThickness)
}

// At returns a copy of the I-beam centred on (x, y)
func (b IBeam) At(x, y float64) IBeam {
	b.cg = Point{X: x, Y: y}
	return b
}

func (b IBeam) FlangeWidth() float64     { return b.flangeWidth }
func (b IBeam) FlangeThickness() float64 { return b.flangeThickness }
func (b IBeam) WebHeight() float64       { return b.webHeight }
func (b IBeam) WebThickness() float64    { return b.webThickness }
func (b IBeam) Depth() float64           { return b.webHeight + 2*b.flangeThickness }
func (b IBeam) Kind() Kind               { return KindIBeam }
func (IBeam) primitive()                 {}

func (b IBeam) Area() (float64, error) {
	return 2*b.flangeWidth*b.flangeThickness + b.webHeight*b.webThickness, nil
}

func (b IBeam) CenterOfGravity() (Point, error) { return b.cg, nil }

// MomentOfInertia shifts each flange to the neutral axis, (hw+tf)/2 away,
// and adds the web about its own centroid.
func (b IBeam) MomentOfInertia() (float64, error) {
	bf, tf := b.flangeWidth, b.flangeThickness
	hw, tw := b.webHeight, b.webThickness
	flange := ParallelAxis(bf*math.Pow(tf, 3)/12, bf*tf, (hw+tf)/2)
	return 2*flange + tw*math.Pow(hw, 3)/12, nil
}

func (b IBeam) MomentOfInertiaY() (float64, error) {
	bf, tf := b.flangeWidth, b.flangeThickness
	hw, tw := b.webHeight, b.webThickness
	return 2*tf*math.Pow(bf, 3)/12 + hw*math.Pow(tw, 3)/12, nil
}

func (b IBeam) Bounds() Bounds {
	return rectBounds(b.cg, math.Max(b.flangeWidth, b.webThickness), b.Depth())
}

func (b IBeam) WidthAt(y float64) float64 {
	dy := math.Abs(y - b.cg.Y)
	switch {
	case dy <= b.webHeight/2:
		return b.webThickness
	case dy <= b.webHeight/2+b.flangeThickness:
		return b.flangeWidth
	}
	return 0
}

// Outline returns the flanges and web as three touching rectangles
func (b IBeam) Outline() [][]Point {
	offset := (b.webHeight + b.flangeThickness) / 2
	top := Point{X: b.cg.X, Y: b.cg.Y + offset}
	bottom := Point{X: b.cg.X, Y: b.cg.Y - offset}
	return [][]Point{
		rectLoop(top, b.flangeWidth, b.flangeThickness),
		rectLoop(b.cg, b.webThickness, b.webHeight),
		rectLoop(bottom, b.flangeWidth, b.flangeThickness),
	}
}
