package voronoi

import (
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"
)

// ErrInvariant is wrapped by every violation reported by Validate.
var ErrInvariant = errors.New("diagram invariant violated")

// Validate checks the structural guarantees of the diagram: every polygon is
// simple, every internal edge is listed by both of its sites, and under
// AddBorderAndCornerEdges the polygons tile the rectangle. All violations are
// combined into the returned error.
func (d *Diagram) Validate() error {
	var err error
	for _, s := range d.Sites {
		if !IsSimple(s.Polygon) {
			err = multierr.Append(err, errors.Wrapf(ErrInvariant, "site %d: polygon is not simple", s.Index))
		}
		if len(s.Polygon) >= 3 && SignedArea(s.Polygon) < -Epsilon {
			err = multierr.Append(err, errors.Wrapf(ErrInvariant, "site %d: polygon is clockwise", s.Index))
		}
	}

	for i, e := range d.Edges {
		if e.Border() {
			continue
		}
		for _, site := range [...]int{e.LeftSite, e.RightSite} {
			for _, v := range [...]int{e.Va, e.Vb} {
				if !d.lists(site, v) {
					err = multierr.Append(err, errors.Wrapf(ErrInvariant,
						"edge %d: site %d does not list vertex %d", i, site, v))
				}
			}
		}
	}

	if d.Policy == AddBorderAndCornerEdges {
		total := d.TotalArea()
		want := d.Bounds.Area()
		if math.Abs(total-want) > partitionTolerance(want) {
			err = multierr.Append(err, errors.Wrapf(ErrInvariant,
				"cells cover %g of %g", total, want))
		}
	}
	return err
}

// TotalArea sums the areas of all site polygons.
func (d *Diagram) TotalArea() float64 {
	var total float64
	for _, s := range d.Sites {
		total += math.Abs(SignedArea(s.Polygon))
	}
	return total
}

func partitionTolerance(area float64) float64 {
	return math.Max(Epsilon, area*1e-9)
}

func (d *Diagram) lists(site, vertex int) bool {
	p := d.Vertices[vertex]
	for _, id := range d.Sites[site].Vertices {
		if id == vertex || d.Vertices[id].Equal(p) {
			return true
		}
	}
	return false
}
