package cdt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// Structural checks shared by the triangulation tests. They verify the
// relationships every valid triangulation must satisfy: counterclockwise
// winding, mutual neighbor links, vertex fans matching incidence, fixed
// edges present in the mesh, and the Delaunay property on non-fixed edges.

func checkTriangulation(t *testing.T, tr *Triangulation) {
	t.Helper()
	checkWinding(t, tr)
	checkNeighborSymmetry(t, tr)
	checkFans(t, tr)
	checkFixedEdgesPresent(t, tr)
	checkDelaunay(t, tr)
}

func checkWinding(t *testing.T, tr *Triangulation) {
	t.Helper()
	for iT, tri := range tr.Triangles {
		a := tr.Vertices[tri.Vertices[0]]
		b := tr.Vertices[tri.Vertices[1]]
		c := tr.Vertices[tri.Vertices[2]]
		require.True(t, orient2d(a, b, c) > 0, "triangle %d %v is not CCW", iT, tri.Vertices)
	}
}

func checkNeighborSymmetry(t *testing.T, tr *Triangulation) {
	t.Helper()
	for iT, tri := range tr.Triangles {
		for i := 0; i < 3; i++ {
			iN := tri.Neighbors[i]
			if iN == NoNeighbor {
				continue
			}
			require.Less(t, int(iN), len(tr.Triangles), "triangle %d has a stale neighbor", iT)
			n := tr.Triangles[iN]
			j := -1
			for k := 0; k < 3; k++ {
				if n.Neighbors[k] == TriInd(iT) {
					j = k
				}
			}
			require.NotEqual(t, -1, j, "neighbor %d does not link back to triangle %d", iN, iT)
			// The shared edge must appear reversed on the far side.
			require.Equal(t, tri.Vertices[ccw(i)], n.Vertices[cw(j)], "shared edge mismatch between %d and %d", iT, iN)
			require.Equal(t, tri.Vertices[cw(i)], n.Vertices[ccw(j)], "shared edge mismatch between %d and %d", iT, iN)
		}
	}
}

func checkFans(t *testing.T, tr *Triangulation) {
	t.Helper()
	for iV, fan := range tr.VertTris {
		seen := make(map[TriInd]bool)
		for _, iT := range fan {
			require.False(t, seen[iT], "fan of vertex %d lists triangle %d twice", iV, iT)
			seen[iT] = true
			require.True(t, tr.Triangles[iT].containsVertex(VertInd(iV)),
				"fan of vertex %d lists non-incident triangle %d", iV, iT)
		}
	}
	for iT, tri := range tr.Triangles {
		for _, iV := range tri.Vertices {
			found := false
			for _, adj := range tr.VertTris[iV] {
				if adj == TriInd(iT) {
					found = true
				}
			}
			require.True(t, found, "triangle %d is missing from the fan of vertex %d", iT, iV)
		}
	}
}

func checkFixedEdgesPresent(t *testing.T, tr *Triangulation) {
	t.Helper()
	edges := ExtractEdges(tr.Triangles)
	for e := range tr.FixedEdges {
		require.True(t, edges.Contains(e), "fixed edge (%d, %d) is not in the triangulation", e.V1(), e.V2())
	}
}

// checkDelaunay verifies the empty-circumcircle property on every interior
// non-fixed edge, with a tolerance scaled to the coordinate magnitude.
func checkDelaunay(t *testing.T, tr *Triangulation) {
	t.Helper()
	var scale float64
	for _, v := range tr.Vertices {
		scale = math.Max(scale, math.Max(math.Abs(v.X), math.Abs(v.Y)))
	}
	// Relative tolerance on the 4x4 in-circle determinant, which is of
	// order scale^4.
	eps := 1e-9 * scale * scale * scale * scale
	for iT, tri := range tr.Triangles {
		for i := 0; i < 3; i++ {
			iN := tri.Neighbors[i]
			if iN == NoNeighbor || iN < TriInd(iT) {
				continue // visit each shared edge once
			}
			if tr.FixedEdges.Contains(NewEdge(tri.Vertices[ccw(i)], tri.Vertices[cw(i)])) {
				continue
			}
			opposed := tr.Triangles[iN].opposedVertex(TriInd(iT))
			a := tr.Vertices[tri.Vertices[0]]
			b := tr.Vertices[tri.Vertices[1]]
			c := tr.Vertices[tri.Vertices[2]]
			d := tr.Vertices[opposed]
			require.LessOrEqual(t, circumcircleDet(d, a, b, c), eps,
				"edge between triangles %d and %d is not Delaunay", iT, iN)
		}
	}
}

// circumcircleDet is the raw in-circle determinant: positive when p is
// inside the circumcircle of CCW triangle (v1, v2, v3).
func circumcircleDet(p, v1, v2, v3 Point) float64 {
	adx := v1.X - p.X
	ady := v1.Y - p.Y
	bdx := v2.X - p.X
	bdy := v2.Y - p.Y
	cdx := v3.X - p.X
	cdy := v3.Y - p.Y
	abdet := adx*bdy - bdx*ady
	bcdet := bdx*cdy - cdx*bdy
	cadet := cdx*ady - adx*cdy
	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy
	return alift*bcdet + blift*cadet + clift*abdet
}

func triangleArea(a, b, c Point) float64 {
	return math.Abs(orient2d(a, b, c)) / 2
}

func triangulationArea(tr *Triangulation) float64 {
	var sum float64
	for _, tri := range tr.Triangles {
		sum += triangleArea(
			tr.Vertices[tri.Vertices[0]],
			tr.Vertices[tri.Vertices[1]],
			tr.Vertices[tri.Vertices[2]])
	}
	return sum
}
