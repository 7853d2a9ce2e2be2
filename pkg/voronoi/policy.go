package voronoi

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// BorderPolicy selects how cells touching the rectangle are closed.
type BorderPolicy uint8

const (
	// OmitBorderEdges leaves cells open along the rectangle; the polygon is
	// closed implicitly by the straight segment joining its two boundary
	// points.
	OmitBorderEdges BorderPolicy = iota
	// AddBorderEdges inserts synthetic edges along the rectangle sides between
	// the boundary points of a cell. Polygons keep the same points as with
	// OmitBorderEdges.
	AddBorderEdges
	// AddBorderAndCornerEdges also inserts the rectangle corners a cell wraps,
	// so every polygon is fully explicit.
	AddBorderAndCornerEdges
)

func (p BorderPolicy) String() string {
	switch p {
	case OmitBorderEdges:
		return "omit"
	case AddBorderEdges:
		return "border"
	case AddBorderAndCornerEdges:
		return "corners"
	}
	return fmt.Sprintf("BorderPolicy(%d)", uint8(p))
}

func (p BorderPolicy) validate() error {
	if p > AddBorderAndCornerEdges {
		return errors.Wrapf(ErrInvalidPolicy, "%s", p)
	}
	return nil
}

// ParseBorderPolicy accepts the names printed by String.
func ParseBorderPolicy(s string) (BorderPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "omit", "":
		return OmitBorderEdges, nil
	case "border":
		return AddBorderEdges, nil
	case "corners":
		return AddBorderAndCornerEdges, nil
	}
	return 0, errors.Wrapf(ErrInvalidPolicy, "unknown policy %q", s)
}
