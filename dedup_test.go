package cdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDuplicates(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {2, 0}, {0, 0}, {3, 0}}
	di := FindDuplicates(points)
	assert.Equal(t, []VertInd{0, 1, 2, 0, 3}, di.Mapping)
	assert.Equal(t, []int{3}, di.Duplicates)
}

func TestFindDuplicatesNoDuplicates(t *testing.T) {
	di := FindDuplicates(unitSquare())
	assert.Equal(t, []VertInd{0, 1, 2, 3}, di.Mapping)
	assert.Empty(t, di.Duplicates)
}

func TestRemoveDuplicates(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {0, 0}, {2, 0}, {1, 0}}
	di := FindDuplicates(points)
	points = RemoveDuplicates(points, di.Duplicates)
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {2, 0}}, points)
}

func TestRemapEdges(t *testing.T) {
	edges := []Edge{NewEdge(0, 3), NewEdge(3, 4)}
	RemapEdges(edges, []VertInd{0, 1, 2, 0, 3})
	assert.Equal(t, []Edge{NewEdge(0, 0), NewEdge(0, 3)}, edges)
}

func TestRemoveDuplicatesAndRemapEdges(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 0}, {0, 1}}
	edges := []Edge{NewEdge(3, 4), NewEdge(1, 3)}
	points, di := RemoveDuplicatesAndRemapEdges(points, edges)
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, points)
	assert.Equal(t, []int{3}, di.Duplicates)
	assert.Equal(t, []Edge{NewEdge(0, 3), NewEdge(0, 1)}, edges)

	// Cleaned input triangulates; the duplicated point would have made
	// vertex insertion fail.
	tr := New(Randomized, nil)
	require.NoError(t, tr.InsertVertices(points))
	tr.EraseSuperTriangle()
	checkTriangulation(t, tr)
}

func TestExtractEdges(t *testing.T) {
	triangles := []Triangle{
		{Vertices: [3]VertInd{0, 1, 2}},
		{Vertices: [3]VertInd{2, 1, 3}},
	}
	edges := ExtractEdges(triangles)
	assert.Len(t, edges, 5)
	assert.True(t, edges.Contains(NewEdge(1, 2)), "shared edge appears once")
	assert.True(t, edges.Contains(NewEdge(0, 2)))
	assert.True(t, edges.Contains(NewEdge(1, 3)))
}
