package shape

import "math"

// circleSegments is the number of straight segments used to draw a circle
const circleSegments = 72

func squareBounds(c Point, r float64) Bounds {
	return Bounds{MinX: c.X - r, MinY: c.Y - r, MaxX: c.X + r, MaxY: c.Y + r}
}

func rectBounds(c Point, w, h float64) Bounds {
	return Bounds{MinX: c.X - w/2, MinY: c.Y - h/2, MaxX: c.X + w/2, MaxY: c.Y + h/2}
}

// chord returns the length of the chord of a circle of radius r cut at
// distance dy from its centre
func chord(r, dy float64) float64 {
	d2 := r*r - dy*dy
	if d2 <= 0 {
		return 0
	}
	return 2 * math.Sqrt(d2)
}

// circleLoop approximates a circle counter-clockwise
func circleLoop(c Point, r float64) []Point {
	pts := make([]Point, circleSegments)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = Point{X: c.X + r*math.Cos(theta), Y: c.Y + r*math.Sin(theta)}
	}
	return pts
}

// rectLoop returns a rectangle counter-clockwise from bottom-left
func rectLoop(c Point, w, h float64) []Point {
	return []Point{
		{X: c.X - w/2, Y: c.Y - h/2},
		{X: c.X + w/2, Y: c.Y - h/2},
		{X: c.X + w/2, Y: c.Y + h/2},
		{X: c.X - w/2, Y: c.Y + h/2},
	}
}

// Contains reports whether p lies inside the loops using the even-odd rule
func Contains(loops [][]Point, p Point) bool {
	inside := false
	for _, loop := range loops {
		n := len(loop)
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			a, b := loop[i], loop[j]
			if (a.Y > p.Y) != (b.Y > p.Y) {
				x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
				if p.X < x {
					inside = !inside
				}
			}
		}
	}
	return inside
}

func reversed(loop []Point) []Point {
	out := make([]Point, len(loop))
	for i, p := range loop {
		out[len(loop)-1-i] = p
	}
	return out
}
