package cdt

// EraseSuperTriangle removes every triangle that touches a super-triangle
// vertex, then drops the super-triangle vertices themselves, remapping all
// vertex indices down by three. Does nothing when custom super geometry is
// used. Triangle indices held by the caller are invalid afterwards.
func (tr *Triangulation) EraseSuperTriangle() {
	if tr.superGeomType != SuperTriangle || tr.trimmed {
		return
	}
	var toErase []TriInd
	for iT := TriInd(0); iT < TriInd(len(tr.Triangles)); iT++ {
		t := tr.Triangles[iT]
		if t.Vertices[0] < 3 || t.Vertices[1] < 3 || t.Vertices[2] < 3 {
			toErase = append(toErase, iT)
		}
	}
	tr.eraseTrianglesAtIndices(toErase)
	tr.eraseSuperTriangleVertices()
	tr.markTrimmed()
}

// EraseOuterTriangles removes everything reachable from the super triangle
// without crossing a fixed edge, leaving only the constrained interior.
func (tr *Triangulation) EraseOuterTriangles() {
	if tr.trimmed {
		return
	}
	// A triangle incident to the first vertex is always on the outside.
	seed := tr.VertTris[0][0]
	toErase := tr.growToBoundary(triStack{seed})
	erase := make([]TriInd, 0, len(toErase))
	for iT := range toErase {
		erase = append(erase, iT)
	}
	tr.eraseTrianglesAtIndices(erase)
	tr.eraseSuperTriangleVertices()
	tr.markTrimmed()
}

// EraseOuterTrianglesAndHoles removes the outside plus auto-detected holes:
// triangle depths are computed by layer peeling, and even layers (outside,
// holes, holes inside islands' holes...) are erased. Overlapping boundaries
// are honored through the overlap counts.
func (tr *Triangulation) EraseOuterTrianglesAndHoles() {
	if tr.trimmed {
		return
	}
	seed := tr.VertTris[0][0]
	triDepths := CalculateTriangleDepthsWithOverlaps(seed, tr.Triangles, tr.FixedEdges, tr.OverlapCount)
	var toErase []TriInd
	for iT, depth := range triDepths {
		if depth%2 == 0 {
			toErase = append(toErase, TriInd(iT))
		}
	}
	tr.eraseTrianglesAtIndices(toErase)
	tr.eraseSuperTriangleVertices()
	tr.markTrimmed()
}

// growToBoundary collects all triangles reachable from the seeds without
// crossing a fixed edge.
func (tr *Triangulation) growToBoundary(seeds triStack) TriIndSet {
	traversed := make(TriIndSet)
	for !seeds.empty() {
		iT := seeds.pop()
		traversed.insert(iT)
		t := tr.Triangles[iT]
		for i := 0; i < 3; i++ {
			opEdge := NewEdge(t.Vertices[ccw(i)], t.Vertices[cw(i)])
			if tr.FixedEdges.Contains(opEdge) {
				continue
			}
			iN := t.Neighbors[i]
			if iN != NoNeighbor && !traversed.contains(iN) {
				seeds.push(iN)
			}
		}
	}
	return traversed
}

func (tr *Triangulation) eraseTrianglesAtIndices(indices []TriInd) {
	for _, iT := range indices {
		tr.makeDummy(iT)
	}
	tr.eraseDummies()
}

// eraseSuperTriangleVertices drops vertices 0..2 and shifts every vertex
// index in triangles, fixed edges and overlap counts down by three, so user
// indices line up at zero.
func (tr *Triangulation) eraseSuperTriangleVertices() {
	if tr.superGeomType != SuperTriangle {
		return
	}
	for iT := range tr.Triangles {
		t := &tr.Triangles[iT]
		for i := range t.Vertices {
			t.Vertices[i] -= 3
		}
	}
	remappedFixed := make(EdgeSet, len(tr.FixedEdges))
	for e := range tr.FixedEdges {
		remappedFixed.insert(NewEdge(e.V1()-3, e.V2()-3))
	}
	tr.FixedEdges = remappedFixed
	remappedOverlaps := make(map[Edge]BoundaryOverlapCount, len(tr.OverlapCount))
	for e, c := range tr.OverlapCount {
		remappedOverlaps[NewEdge(e.V1()-3, e.V2()-3)] = c
	}
	tr.OverlapCount = remappedOverlaps
	tr.Vertices = tr.Vertices[3:]
	tr.VertTris = tr.VertTris[3:]
}

// markTrimmed records that a trimming pass ran; trimming twice is a no-op.
func (tr *Triangulation) markTrimmed() {
	tr.trimmed = true
}
