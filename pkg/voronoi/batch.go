package voronoi

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// Request is one independent tessellation.
type Request struct {
	Sites  []Vertex
	Bounds BoundingBox
	Policy BorderPolicy
}

// TessellateAll runs the requests concurrently, at most limit at a time
// (no limit when limit <= 0). Results keep the order of reqs. The first
// failure, or ctx being cancelled, stops requests that have not started yet.
func TessellateAll(ctx context.Context, reqs []Request, limit int, opts ...Option) ([]*Diagram, error) {
	out := make([]*Diagram, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := Tessellate(req.Sites, req.Bounds, req.Policy, opts...)
			if err != nil {
				return errors.Wrapf(err, "request %d", i)
			}
			out[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
