package voronoi

import (
	"math"
)

// Epsilon is the tolerance shared by every floating comparison in the package.
const Epsilon = 1e-9

// circleEpsilon bounds the orientation determinant below which three arcs are
// treated as diverging (or collinear) and produce no circle event.
const circleEpsilon = 2e-12

type Vertex struct {
	X float64
	Y float64
}

// NoVertex marks a position that has not been computed.
var NoVertex = Vertex{math.Inf(1), math.Inf(1)}

func (v Vertex) Add(o Vertex) Vertex { return Vertex{v.X + o.X, v.Y + o.Y} }

func (v Vertex) Sub(o Vertex) Vertex { return Vertex{v.X - o.X, v.Y - o.Y} }

func (v Vertex) Scale(k float64) Vertex { return Vertex{v.X * k, v.Y * k} }

func (v Vertex) Len() float64 { return math.Hypot(v.X, v.Y) }

// Equal compares two vertices within Epsilon on both axes.
func (v Vertex) Equal(o Vertex) bool {
	return equalWithEpsilon(v.X, o.X) && equalWithEpsilon(v.Y, o.Y)
}

func (v Vertex) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

func midpoint(a, b Vertex) Vertex {
	return Vertex{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

func equalWithEpsilon(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func lessThanWithEpsilon(a, b float64) bool {
	return b-a > Epsilon
}

func greaterThanWithEpsilon(a, b float64) bool {
	return a-b > Epsilon
}

// cross is the z component of (b-a) x (c-a). Positive when a, b, c turn left.
func cross(a, b, c Vertex) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Circumcenter returns the centre of the circle through a, b and c.
// ok is false when the points are collinear.
func Circumcenter(a, b, c Vertex) (Vertex, bool) {
	bx := b.X - a.X
	by := b.Y - a.Y
	cx := c.X - a.X
	cy := c.Y - a.Y
	d := 2 * (bx*cy - by*cx)
	if math.Abs(d) <= circleEpsilon {
		return NoVertex, false
	}
	hb := bx*bx + by*by
	hc := cx*cx + cy*cy
	return Vertex{(cy*hb-by*hc)/d + a.X, (bx*hc-cx*hb)/d + a.Y}, true
}

// circleBottom computes the circle event for the arc of c squeezed between
// the arcs of l and r. It returns the circle centre and the sweep coordinate
// at which the directrix touches the far side of the circle. ok is false when
// the breakpoints diverge, i.e. no vertex will ever form.
func circleBottom(l, c, r Vertex) (center Vertex, y float64, ok bool) {
	ax := l.X - c.X
	ay := l.Y - c.Y
	cx := r.X - c.X
	cy := r.Y - c.Y

	d := 2 * (ax*cy - ay*cx)
	if d >= -circleEpsilon {
		return NoVertex, 0, false
	}

	ha := ax*ax + ay*ay
	hc := cx*cx + cy*cy
	x := (cy*ha - ay*hc) / d
	yy := (ax*hc - cx*ha) / d
	center = Vertex{x + c.X, yy + c.Y}
	return center, center.Y + math.Sqrt(x*x+yy*yy), true
}

// OnSegment reports whether p lies on the closed segment ab.
func OnSegment(p, a, b Vertex) bool {
	l := b.Sub(a).Len()
	if l < Epsilon {
		return p.Equal(a)
	}
	if math.Abs(cross(a, b, p))/l > Epsilon {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-Epsilon && p.X <= math.Max(a.X, b.X)+Epsilon &&
		p.Y >= math.Min(a.Y, b.Y)-Epsilon && p.Y <= math.Max(a.Y, b.Y)+Epsilon
}

// SegmentIntersection returns a point shared by segments ab and cd.
// Touching endpoints count as an intersection. For overlapping collinear
// segments one of the shared endpoints is returned.
func SegmentIntersection(a, b, c, d Vertex) (Vertex, bool) {
	r := b.Sub(a)
	s := d.Sub(c)
	denom := r.X*s.Y - r.Y*s.X

	if math.Abs(denom) <= Epsilon*r.Len()*s.Len() {
		for _, p := range [...]Vertex{c, d} {
			if OnSegment(p, a, b) {
				return p, true
			}
		}
		for _, p := range [...]Vertex{a, b} {
			if OnSegment(p, c, d) {
				return p, true
			}
		}
		return NoVertex, false
	}

	qp := c.Sub(a)
	t := (qp.X*s.Y - qp.Y*s.X) / denom
	u := (qp.X*r.Y - qp.Y*r.X) / denom
	if t < -Epsilon || t > 1+Epsilon || u < -Epsilon || u > 1+Epsilon {
		return NoVertex, false
	}
	return Vertex{a.X + t*r.X, a.Y + t*r.Y}, true
}

// SignedArea is the shoelace area of the closed ring through points.
// Counter-clockwise rings are positive.
func SignedArea(points []Vertex) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	o := points[0]
	var area float64
	for i := 1; i < n-1; i++ {
		area += cross(o, points[i], points[i+1])
	}
	return area / 2
}

// IsSimple reports whether the closed ring through points has no two
// non-adjacent sides that touch.
func IsSimple(points []Vertex) bool {
	n := len(points)
	if n < 4 {
		return true
	}
	for i := 0; i < n; i++ {
		a, b := points[i], points[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			if _, ok := SegmentIntersection(a, b, points[j], points[(j+1)%n]); ok {
				return false
			}
		}
	}
	return true
}
