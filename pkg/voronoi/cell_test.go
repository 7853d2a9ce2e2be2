package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/go-tessellate/pkg/logger"
)

func TestCloseGap(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vertex
		policy   BorderPolicy
		edges    int
		pushed   []Vertex
	}{
		{name: "omit", from: Vertex{1000, 500}, to: Vertex{0, 500}, policy: OmitBorderEdges},
		{
			name: "border over the top", from: Vertex{1000, 500}, to: Vertex{0, 500},
			policy: AddBorderEdges, edges: 3,
		},
		{
			name: "corners over the top", from: Vertex{1000, 500}, to: Vertex{0, 500},
			policy: AddBorderAndCornerEdges, edges: 3,
			pushed: []Vertex{{1000, 1000}, {0, 1000}},
		},
		{
			name: "corners wrapping the origin", from: Vertex{0, 500}, to: Vertex{1000, 500},
			policy: AddBorderAndCornerEdges, edges: 3,
			pushed: []Vertex{{0, 0}, {1000, 0}},
		},
		{
			name: "same side", from: Vertex{200, 0}, to: Vertex{700, 0},
			policy: AddBorderAndCornerEdges, edges: 1,
		},
		{
			name: "starting on a corner", from: Vertex{1000, 0}, to: Vertex{1000, 1000},
			policy: AddBorderAndCornerEdges, edges: 1,
		},
		{
			name: "off the boundary", from: Vertex{500, 500}, to: Vertex{0, 500},
			policy: AddBorderAndCornerEdges, edges: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuilder(1, logger.NewNop())
			from := b.internVertex(tt.from)
			to := b.internVertex(tt.to)

			var pushed []Vertex
			b.closeGap(0, from, to, square, tt.policy, func(v int) {
				pushed = append(pushed, b.vertices[v])
			})
			assert.Equal(t, tt.pushed, pushed)
			require.Len(t, b.edges, tt.edges)

			// the border edges chain from -> ... -> to
			if tt.edges > 0 {
				assert.Equal(t, from, b.edges[0].va)
				assert.Equal(t, to, b.edges[len(b.edges)-1].vb)
			}
			for i, e := range b.edges {
				assert.Equal(t, 0, e.left)
				assert.Equal(t, noSite, e.right)
				if i > 0 {
					assert.Equal(t, b.edges[i-1].vb, e.va)
				}
			}
		})
	}
}

func TestInternVertexSharesNearPoints(t *testing.T) {
	b := newBuilder(0, logger.NewNop())
	a := b.internVertex(Vertex{1000, 333.3333333333333})
	assert.Equal(t, a, b.internVertex(Vertex{1000, 333.33333333333337}))
	assert.NotEqual(t, a, b.internVertex(Vertex{1000, 333.34}))
	assert.Len(t, b.vertices, 2)
}

func TestNearestSite(t *testing.T) {
	assert.Equal(t, noSite, nearestSite(nil, Vertex{}))
	sites := []Vertex{{0, 0}, {10, 0}, {0, 10}, {10, 0}}
	assert.Equal(t, 1, nearestSite(sites, Vertex{9, 1}))
	// ties go to the lowest index
	assert.Equal(t, 0, nearestSite(sites, Vertex{5, 5}))
	assert.Equal(t, 1, nearestSite(sites, Vertex{10, 0}))
}
