package voronoi

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestValidateReportsEveryViolation(t *testing.T) {
	vertices := []Vertex{{0, 0}, {10, 10}, {10, 0}, {0, 10}}
	d := &Diagram{
		Bounds: NewBoundingBox(0, 0, 10, 10),
		Policy: AddBorderEdges,
		Sites: []Site{
			{
				Index:       0,
				Vertices:    []int{0, 1, 2, 3},
				Polygon:     []Vertex{vertices[0], vertices[1], vertices[2], vertices[3]},
				DuplicateOf: noSite,
			},
			{
				Index:       1,
				Vertices:    []int{0, 3, 1, 2},
				Polygon:     []Vertex{vertices[0], vertices[3], vertices[1], vertices[2]},
				DuplicateOf: noSite,
			},
			{
				Index:       2,
				Vertices:    []int{0},
				Polygon:     []Vertex{vertices[0]},
				DuplicateOf: noSite,
			},
		},
		Edges: []Edge{
			{Va: 0, Vb: 1, LeftSite: 0, RightSite: 2},
			{Va: 2, Vb: 3, LeftSite: 2, RightSite: noSite},
		},
		Vertices: vertices,
	}

	err := d.Validate()
	require.Error(t, err)
	errs := multierr.Errors(err)
	// bow-tie, clockwise square, and site 2 missing vertex 1
	require.Len(t, errs, 3, err.Error())
	for _, e := range errs {
		assert.True(t, errors.Is(e, ErrInvariant), e.Error())
	}
	assert.Contains(t, errs[0].Error(), "site 0: polygon is not simple")
	assert.Contains(t, errs[1].Error(), "site 1: polygon is clockwise")
	assert.Contains(t, errs[2].Error(), "edge 0: site 2 does not list vertex 1")
}

func TestValidatePartition(t *testing.T) {
	sites := []Vertex{{250, 250}, {750, 250}, {250, 750}, {750, 750}, {500, 500}}
	d, err := Tessellate(sites, square, AddBorderAndCornerEdges)
	require.NoError(t, err)
	require.NoError(t, d.Validate())
	assert.InDelta(t, square.Area(), d.TotalArea(), 1e-6)

	d.Sites[4].Polygon = nil
	d.Sites[4].Vertices = nil
	err = d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cells cover")

	// other policies leave cells open, so coverage is not checked
	d.Policy = AddBorderEdges
	err = d.Validate()
	if err != nil {
		assert.NotContains(t, err.Error(), "cells cover")
	}
}

func TestValidateAcceptsEveryPolicy(t *testing.T) {
	sites := []Vertex{{100, 120}, {830, 90}, {420, 610}, {905, 940}, {60, 870}, {512, 333}}
	for _, policy := range []BorderPolicy{OmitBorderEdges, AddBorderEdges, AddBorderAndCornerEdges} {
		d, err := Tessellate(sites, square, policy)
		require.NoError(t, err)
		assert.NoError(t, d.Validate(), policy.String())
	}
}
