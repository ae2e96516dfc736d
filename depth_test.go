package cdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTriangleDepths(t *testing.T) {
	points, edges := squareWithHole()
	tr := New(Randomized, nil)
	require.NoError(t, tr.InsertVertices(points))
	require.NoError(t, tr.InsertEdges(edges))

	depths := CalculateTriangleDepths(tr.VertTris[0][0], tr.Triangles, tr.FixedEdges)
	require.Len(t, depths, len(tr.Triangles))

	histogram := make(map[LayerDepth]int)
	for iT, d := range depths {
		histogram[d]++
		// Depth must match the centroid's geometric nesting level.
		tri := tr.Triangles[iT]
		a := tr.Vertices[tri.Vertices[0]]
		b := tr.Vertices[tri.Vertices[1]]
		c := tr.Vertices[tri.Vertices[2]]
		cx := (a.X + b.X + c.X) / 3
		cy := (a.Y + b.Y + c.Y) / 3
		expected := LayerDepth(0)
		if cx > 0 && cx < 10 && cy > 0 && cy < 10 {
			expected = 1
			if cx > 3 && cx < 7 && cy > 3 && cy < 7 {
				expected = 2
			}
		}
		assert.Equal(t, expected, d, "depth of triangle %d with centroid (%v, %v)", iT, cx, cy)
	}
	assert.Equal(t, 8, histogram[1], "annulus layer")
	assert.Equal(t, 2, histogram[2], "hole layer")
}

func TestPeelLayerSingleLayer(t *testing.T) {
	points, edges := squareWithHole()
	tr := New(Randomized, nil)
	require.NoError(t, tr.InsertVertices(points))
	require.NoError(t, tr.InsertEdges(edges))

	triDepths := make([]LayerDepth, len(tr.Triangles))
	for i := range triDepths {
		triDepths[i] = unassignedDepth
	}
	nextSeeds := PeelLayer([]TriInd{tr.VertTris[0][0]}, tr.Triangles, tr.FixedEdges, 0, triDepths)

	// The first peel covers everything outside the outer square and stops
	// at its boundary; the seeds for the next layer lie in the annulus.
	require.NotEmpty(t, nextSeeds)
	for iT := range nextSeeds {
		assert.Equal(t, unassignedDepth, triDepths[iT], "next-layer seed %d must be unassigned", iT)
	}
	assigned := 0
	for _, d := range triDepths {
		if d != unassignedDepth {
			assert.Equal(t, LayerDepth(0), d)
			assigned++
		}
	}
	assert.Equal(t, len(tr.Triangles)-10, assigned, "everything but annulus and hole is outside")
}

func TestDepthsWithOverlapsSkipLayers(t *testing.T) {
	// Outer boundary inserted twice, inner hole once: crossing the outer
	// ring jumps straight to depth 2, the hole then sits at depth 3.
	points, edges := squareWithHole()
	tr := New(Randomized, nil)
	require.NoError(t, tr.InsertVertices(points))
	require.NoError(t, tr.InsertEdges(edges))
	require.NoError(t, tr.InsertEdges(quadEdges(0)))

	depths := CalculateTriangleDepthsWithOverlaps(tr.VertTris[0][0], tr.Triangles, tr.FixedEdges, tr.OverlapCount)
	histogram := make(map[LayerDepth]int)
	for _, d := range depths {
		histogram[d]++
	}
	assert.Zero(t, histogram[1], "no triangle can sit at depth 1")
	assert.Equal(t, 8, histogram[2], "annulus jumps to depth 2")
	assert.Equal(t, 2, histogram[3], "hole is one boundary deeper")
}

func TestDepthsWithoutOverlapsMatchPlainPeeling(t *testing.T) {
	points, edges := squareWithHole()
	tr := New(Randomized, nil)
	require.NoError(t, tr.InsertVertices(points))
	require.NoError(t, tr.InsertEdges(edges))

	seed := tr.VertTris[0][0]
	plain := CalculateTriangleDepths(seed, tr.Triangles, tr.FixedEdges)
	overlapAware := CalculateTriangleDepthsWithOverlaps(seed, tr.Triangles, tr.FixedEdges, tr.OverlapCount)
	assert.Equal(t, plain, overlapAware)
}
