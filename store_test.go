package cdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoTriangleQuad sets up a quad split along the diagonal (0, 2) as custom
// geometry, the smallest configuration with a shared edge.
func twoTriangleQuad(t *testing.T) *Triangulation {
	t.Helper()
	tr := New(AsProvided, nil)
	tr.Vertices = []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	tr.Triangles = []Triangle{
		{Vertices: [3]VertInd{0, 1, 2}, Neighbors: [3]TriInd{NoNeighbor, 1, NoNeighbor}},
		{Vertices: [3]VertInd{0, 2, 3}, Neighbors: [3]TriInd{NoNeighbor, NoNeighbor, 0}},
	}
	tr.VertTris = [][]TriInd{{0, 1}, {0}, {0, 1}, {1}}
	tr.InitializedWithCustomSuperGeometry()
	return tr
}

func TestAddTriangleAppendsAndRecycles(t *testing.T) {
	tr := twoTriangleQuad(t)
	iT := tr.addTriangle(Triangle{Vertices: [3]VertInd{1, 2, 3}})
	assert.Equal(t, TriInd(2), iT, "no dummies, so the slot is appended")

	tr.makeDummy(0)
	reused := tr.addTriangle(Triangle{Vertices: [3]VertInd{3, 1, 0}})
	assert.Equal(t, TriInd(0), reused, "the dummy slot must be recycled")
	assert.Len(t, tr.Triangles, 3)
}

func TestMakeDummyScrubsFans(t *testing.T) {
	tr := twoTriangleQuad(t)
	tr.makeDummy(1)
	for _, iV := range []VertInd{0, 2, 3} {
		for _, iT := range tr.VertTris[iV] {
			assert.NotEqual(t, TriInd(1), iT, "fan of vertex %d still lists the dummy", iV)
		}
	}
}

func TestEraseDummiesCompactsAndRemaps(t *testing.T) {
	tr := twoTriangleQuad(t)
	tr.makeDummy(0)
	tr.changeNeighbor(1, 0, NoNeighbor)

	tr.eraseDummies()
	require.Len(t, tr.Triangles, 1)
	assert.Equal(t, [3]VertInd{0, 2, 3}, tr.Triangles[0].Vertices)
	assert.Equal(t, [3]TriInd{NoNeighbor, NoNeighbor, NoNeighbor}, tr.Triangles[0].Neighbors)
	for _, fan := range tr.VertTris {
		for _, iT := range fan {
			assert.Equal(t, TriInd(0), iT)
		}
	}
	assert.Empty(t, tr.dummyTris)
}

func TestChangeNeighborOnEdge(t *testing.T) {
	tr := twoTriangleQuad(t)
	tr.changeNeighborOnEdge(0, 0, 2, NoNeighbor)
	assert.Equal(t, [3]TriInd{NoNeighbor, NoNeighbor, NoNeighbor}, tr.Triangles[0].Neighbors)
}

func TestRemoveAdjacentTriangle(t *testing.T) {
	tr := twoTriangleQuad(t)
	tr.removeAdjacentTriangle(0, 1)
	assert.Equal(t, []TriInd{0}, tr.VertTris[0])
}
