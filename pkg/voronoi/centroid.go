package voronoi

import "math"

// Centroid returns the area centroid of the closed ring through points.
// Rings too small or too flat for the area formula fall back to simpler
// answers: a single point is its own centroid, two points give their
// midpoint and a ring of (near) zero area gives the mean of its points.
// ok is false only for an empty ring.
func Centroid(points []Vertex) (Vertex, bool) {
	switch len(points) {
	case 0:
		return NoVertex, false
	case 1:
		return points[0], true
	case 2:
		return midpoint(points[0], points[1]), true
	}

	area := SignedArea(points)
	if math.Abs(area) < Epsilon {
		return mean(points), true
	}

	// shift to points[0] to keep the products small
	o := points[0]
	var cx, cy float64
	n := len(points)
	for i := 0; i < n; i++ {
		p := points[i].Sub(o)
		q := points[(i+1)%n].Sub(o)
		f := p.X*q.Y - q.X*p.Y
		cx += (p.X + q.X) * f
		cy += (p.Y + q.Y) * f
	}
	k := 1 / (6 * area)
	return Vertex{cx*k + o.X, cy*k + o.Y}, true
}

func mean(points []Vertex) Vertex {
	var sum Vertex
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}

// siteCentroid annotates a site. Cells that do not enclose any area (no
// points, or a chord along the boundary under the omit policy) are
// represented by the site itself.
func siteCentroid(site Vertex, polygon []Vertex) Vertex {
	if len(polygon) < 3 {
		return site
	}
	c, _ := Centroid(polygon)
	return c
}
