package cdt

import "sort"

// The adjacency store keeps triangles in a flat array addressed by TriInd.
// Deleted triangles become dummies: their slot is recycled by the next
// addTriangle, and stale neighbor references into them are tolerated until
// eraseDummies compacts the array at a phase boundary.

// addTriangle stores t, reusing a dummy slot if one is available. Adding a
// triangle may invalidate previously held triangle indices.
func (tr *Triangulation) addTriangle(t Triangle) TriInd {
	if len(tr.dummyTris) == 0 {
		tr.Triangles = append(tr.Triangles, t)
		return TriInd(len(tr.Triangles) - 1)
	}
	iT := tr.dummyTris[len(tr.dummyTris)-1]
	tr.dummyTris = tr.dummyTris[:len(tr.dummyTris)-1]
	tr.Triangles[iT] = t
	return iT
}

// makeDummy logically deletes the triangle: it is removed from its vertex
// fans and its slot is queued for reuse. Neighbor slots pointing at it are
// left stale.
func (tr *Triangulation) makeDummy(iT TriInd) {
	t := tr.Triangles[iT]
	tr.removeAdjacentTriangle(t.Vertices[0], iT)
	tr.removeAdjacentTriangle(t.Vertices[1], iT)
	tr.removeAdjacentTriangle(t.Vertices[2], iT)
	tr.dummyTris = append(tr.dummyTris, iT)
}

// eraseDummies compacts the triangle array, removing all dummy slots and
// remapping triangle indices in neighbor fields and vertex fans. Any
// triangle index held by the caller is invalid afterwards.
func (tr *Triangulation) eraseDummies() {
	if len(tr.dummyTris) == 0 {
		return
	}
	dummySet := make(TriIndSet, len(tr.dummyTris))
	for _, iT := range tr.dummyTris {
		dummySet.insert(iT)
	}
	sort.Slice(tr.dummyTris, func(i, j int) bool { return tr.dummyTris[i] < tr.dummyTris[j] })

	triIndMap := make(map[TriInd]TriInd, len(tr.Triangles))
	triIndMap[NoNeighbor] = NoNeighbor
	iTnew := TriInd(0)
	for iT := TriInd(0); iT < TriInd(len(tr.Triangles)); iT++ {
		if dummySet.contains(iT) {
			continue
		}
		triIndMap[iT] = iTnew
		tr.Triangles[iTnew] = tr.Triangles[iT]
		iTnew++
	}
	tr.Triangles = tr.Triangles[:len(tr.Triangles)-len(tr.dummyTris)]

	// Fans contain no dummies (makeDummy scrubbed them), so only remap.
	for iV := range tr.VertTris {
		fan := tr.VertTris[iV]
		for i, iT := range fan {
			fan[i] = triIndMap[iT]
		}
	}
	for iT := range tr.Triangles {
		t := &tr.Triangles[iT]
		for i, iN := range t.Neighbors {
			// Stale references into removed triangles can linger on the
			// boundary of an erased region; they become outer edges.
			mapped, ok := triIndMap[iN]
			if !ok {
				mapped = NoNeighbor
			}
			t.Neighbors[i] = mapped
		}
	}
	tr.dummyTris = tr.dummyTris[:0]
}

// changeNeighbor replaces the neighbor slot of iT equal to oldNeighbor.
// A NoNeighbor triangle index is accepted and ignored.
func (tr *Triangulation) changeNeighbor(iT, oldNeighbor, newNeighbor TriInd) {
	if iT == NoNeighbor {
		return
	}
	t := &tr.Triangles[iT]
	t.Neighbors[t.neighborInd(oldNeighbor)] = newNeighbor
}

// changeNeighborOnEdge replaces the neighbor of iT across the edge
// (iVedge1, iVedge2).
func (tr *Triangulation) changeNeighborOnEdge(iT TriInd, iVedge1, iVedge2 VertInd, newNeighbor TriInd) {
	t := &tr.Triangles[iT]
	for i := 0; i < 3; i++ {
		e1, e2 := t.Vertices[ccw(i)], t.Vertices[cw(i)]
		if (e1 == iVedge1 && e2 == iVedge2) || (e1 == iVedge2 && e2 == iVedge1) {
			t.Neighbors[i] = newNeighbor
			return
		}
	}
	fatalf("triangle %v has no edge (%d, %d)", t.Vertices, iVedge1, iVedge2)
}

func (tr *Triangulation) addAdjacentTriangle(iV VertInd, iT TriInd) {
	tr.VertTris[iV] = append(tr.VertTris[iV], iT)
}

func (tr *Triangulation) removeAdjacentTriangle(iV VertInd, iT TriInd) {
	fan := tr.VertTris[iV]
	for i, adj := range fan {
		if adj == iT {
			fan[i] = fan[len(fan)-1]
			tr.VertTris[iV] = fan[:len(fan)-1]
			return
		}
	}
	fatalf("triangle %d is not adjacent to vertex %d", iT, iV)
}
