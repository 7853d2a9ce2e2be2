package voronoi

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Relax runs Lloyd relaxation: every iteration moves each site to the
// centroid of its cell. Cells are closed with AddBorderAndCornerEdges so
// border sites move inwards. Duplicate sites follow their first occurrence.
func Relax(sites []Vertex, bounds BoundingBox, iterations int, opts ...Option) ([]Vertex, error) {
	if iterations < 0 {
		return nil, errors.Newf("negative iteration count %d", iterations)
	}
	o := buildOptions(opts)

	out := make([]Vertex, len(sites))
	copy(out, sites)
	for it := 0; it < iterations; it++ {
		d, err := Tessellate(out, bounds, AddBorderAndCornerEdges, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "relax iteration %d", it)
		}
		var moved float64
		for i, s := range d.Sites {
			next := s.Centroid
			if s.DuplicateOf != noSite {
				next = d.Sites[s.DuplicateOf].Centroid
			}
			if m := next.Sub(out[i]).Len(); m > moved {
				moved = m
			}
			out[i] = next
		}
		o.log.Debug("[relax] iteration done", zap.Int("iteration", it), zap.Float64("maxMove", moved))
		if moved < Epsilon {
			break
		}
	}
	return out, nil
}
