package voronoi

type clipClass uint8

const (
	// clipInside: both endpoints were already in the rectangle.
	clipInside clipClass = iota
	// clipCrossing: at least one endpoint was moved onto the boundary.
	clipCrossing
	// clipOutside: nothing of the segment is in the rectangle.
	clipOutside
	// clipDegenerate: what is left is a single point.
	clipDegenerate
)

func (c clipClass) String() string {
	switch c {
	case clipInside:
		return "inside"
	case clipCrossing:
		return "crossing"
	case clipOutside:
		return "outside"
	case clipDegenerate:
		return "degenerate"
	}
	return "unknown"
}

type clipResult struct {
	class  clipClass
	a, b   Vertex
	aMoved bool
	bMoved bool
}

// clipSegment trims segment ab to the rectangle (Liang-Barsky). Endpoints that
// are kept are returned bit-for-bit; new endpoints are snapped onto the side
// they were cut by. A segment lying on a side line is kept.
func clipSegment(a, b Vertex, bounds BoundingBox) clipResult {
	t0 := 0.0
	t1 := 1.0
	dx := b.X - a.X
	dy := b.Y - a.Y

	// each side constrains p*t <= q
	sides := [...]struct{ p, q float64 }{
		{-dx, a.X - bounds.MinX},
		{dx, bounds.MaxX - a.X},
		{-dy, a.Y - bounds.MinY},
		{dy, bounds.MaxY - a.Y},
	}
	for _, s := range sides {
		if s.p == 0 {
			if s.q < 0 {
				return clipResult{class: clipOutside}
			}
			continue
		}
		r := s.q / s.p
		if s.p < 0 {
			if r > t1 {
				return clipResult{class: clipOutside}
			} else if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return clipResult{class: clipOutside}
			} else if r < t1 {
				t1 = r
			}
		}
	}

	res := clipResult{class: clipInside, a: a, b: b}
	if t0 > 0 {
		res.a = bounds.snap(Vertex{a.X + t0*dx, a.Y + t0*dy})
		res.aMoved = true
		res.class = clipCrossing
	}
	if t1 < 1 {
		res.b = bounds.snap(Vertex{a.X + t1*dx, a.Y + t1*dy})
		res.bMoved = true
		res.class = clipCrossing
	}
	if res.a.Equal(res.b) {
		res.class = clipDegenerate
	}
	return res
}
