package cdt

// insertVertex inserts an already-appended vertex into the triangulation
// and restores the Delaunay property with a Lawson flip cascade.
func (tr *Triangulation) insertVertex(iV VertInd) {
	pos := tr.Vertices[iV]
	trisAt := tr.walkingSearchTrianglesAt(pos)
	var stack triStack
	if trisAt[1] == NoNeighbor {
		stack = tr.insertPointInTriangle(iV, trisAt[0])
	} else {
		stack = tr.insertPointOnEdge(iV, trisAt[0], trisAt[1])
	}
	for !stack.empty() {
		iT := stack.pop()
		t := tr.Triangles[iT]
		iTopo := t.opposedTriangle(iV)
		if iTopo == NoNeighbor {
			continue
		}
		if tr.isFlipNeeded(pos, iT, iTopo, iV) {
			tr.flipEdge(iT, iTopo)
			stack.push(iT)
			stack.push(iTopo)
		}
	}
	tr.nearPtLocator.AddPoint(pos.X, pos.Y, int(iV))
}

// walkTriangles steps from a triangle incident to startVertex across edges
// whose far side contains pos, until pos is inside or on the boundary of
// the current triangle.
func (tr *Triangulation) walkTriangles(startVertex VertInd, pos Point) TriInd {
	if len(tr.VertTris[startVertex]) == 0 {
		fatalf("vertex %d has no incident triangles", startVertex)
	}
	currTri := tr.VertTris[startVertex][0]
	visited := make(TriIndSet)
	found := false
	for !found {
		found = true
		t := tr.Triangles[currTri]
		// Offset randomizes which edge is checked first so the walk cannot
		// cycle on cospherical configurations.
		offset := tr.rng.Intn(3)
		for c := 0; c < 3; c++ {
			i := (c + offset) % 3
			vStart := tr.Vertices[t.Vertices[ccw(i)]]
			vEnd := tr.Vertices[t.Vertices[cw(i)]]
			iN := t.Neighbors[i]
			if locatePointLine(pos, vStart, vEnd) == locRight &&
				iN != NoNeighbor && !visited.contains(iN) {
				visited.insert(iN)
				currTri = iN
				found = false
				break
			}
		}
	}
	return currTri
}

// walkingSearchTrianglesAt locates pos starting from the locator's nearest
// vertex. The result holds one triangle containing pos, plus the neighbor
// across the matched edge when pos lies exactly on an edge.
func (tr *Triangulation) walkingSearchTrianglesAt(pos Point) [2]TriInd {
	out := [2]TriInd{NoNeighbor, NoNeighbor}
	iStart := VertInd(tr.nearPtLocator.NearPoint(pos.X, pos.Y))
	iT := tr.walkTriangles(iStart, pos)
	t := tr.Triangles[iT]
	loc := locatePointTriangle(pos,
		tr.Vertices[t.Vertices[0]], tr.Vertices[t.Vertices[1]], tr.Vertices[t.Vertices[2]])
	if loc == locOutside {
		fatal(ErrDegenerateInput)
	}
	if loc == locOnVertex {
		fatalf("point (%v, %v) coincides with an existing vertex", pos.X, pos.Y)
	}
	out[0] = iT
	if isOnEdge(loc) {
		out[1] = t.Neighbors[edgeNeighborInd(loc)]
	}
	return out
}

// trianglesAt is the brute-force counterpart of walkingSearchTrianglesAt:
// a linear scan over all triangles.
func (tr *Triangulation) trianglesAt(pos Point) [2]TriInd {
	out := [2]TriInd{NoNeighbor, NoNeighbor}
	for iT := TriInd(0); iT < TriInd(len(tr.Triangles)); iT++ {
		t := tr.Triangles[iT]
		loc := locatePointTriangle(pos,
			tr.Vertices[t.Vertices[0]], tr.Vertices[t.Vertices[1]], tr.Vertices[t.Vertices[2]])
		if loc == locOutside {
			continue
		}
		out[0] = iT
		if isOnEdge(loc) {
			out[1] = t.Neighbors[edgeNeighborInd(loc)]
		}
		return out
	}
	fatalf("no triangle contains point (%v, %v)", pos.X, pos.Y)
	return out
}

// insertPointInTriangle splits triangle (a, b, c) into three triangles
// meeting at v. The slot of the old triangle is reused for (a, b, v).
//
//	          c
//	         / \
//	        / T2\
//	       /     \
//	      /.  v  .\
//	     /  .   .  \
//	    / T0 . . T1 \
//	   a-------------b
func (tr *Triangulation) insertPointInTriangle(iV VertInd, iT TriInd) triStack {
	iNewT1 := tr.addTriangle(Triangle{})
	iNewT2 := tr.addTriangle(Triangle{})

	t := tr.Triangles[iT]
	a, b, c := t.Vertices[0], t.Vertices[1], t.Vertices[2]
	// nA is across (b, c), nB across (c, a), nC across (a, b).
	nA, nB, nC := t.Neighbors[0], t.Neighbors[1], t.Neighbors[2]

	// iT becomes (a, b, v); the two new slots take (b, c, v) and (c, a, v).
	tr.Triangles[iT] = Triangle{
		Vertices:  [3]VertInd{a, b, iV},
		Neighbors: [3]TriInd{iNewT1, iNewT2, nC},
	}
	tr.Triangles[iNewT1] = Triangle{
		Vertices:  [3]VertInd{b, c, iV},
		Neighbors: [3]TriInd{iNewT2, iT, nA},
	}
	tr.Triangles[iNewT2] = Triangle{
		Vertices:  [3]VertInd{c, a, iV},
		Neighbors: [3]TriInd{iT, iNewT1, nB},
	}

	tr.addAdjacentTriangle(iV, iT)
	tr.addAdjacentTriangle(iV, iNewT1)
	tr.addAdjacentTriangle(iV, iNewT2)
	tr.addAdjacentTriangle(a, iNewT2)
	tr.addAdjacentTriangle(b, iNewT1)
	tr.addAdjacentTriangle(c, iNewT1)
	tr.addAdjacentTriangle(c, iNewT2)
	tr.removeAdjacentTriangle(c, iT)

	tr.changeNeighbor(nA, iT, iNewT1)
	tr.changeNeighbor(nB, iT, iNewT2)

	return triStack{iT, iNewT1, iNewT2}
}

// insertPointOnEdge splits the two triangles sharing the edge that v lies
// on into four triangles meeting at v. The slots of the old triangles are
// reused for two of them.
//
//	        u                    u
//	       / \                  /|\
//	      /   \                / | \
//	     /     \              /T0|T1\
//	    /       \            /   |   \
//	  e1---------e2   =>   e1----v----e2
//	    \       /            \   |   /
//	     \     /              \T3|T2/
//	      \   /                \ | /
//	       \ /                  \|/
//	        w                    w
func (tr *Triangulation) insertPointOnEdge(iV VertInd, iT1, iT2 TriInd) triStack {
	iTnew1 := tr.addTriangle(Triangle{})
	iTnew2 := tr.addTriangle(Triangle{})

	t1 := tr.Triangles[iT1]
	t2 := tr.Triangles[iT2]

	i := t1.neighborInd(iT2)
	u := t1.Vertices[i]
	e1 := t1.Vertices[ccw(i)]
	e2 := t1.Vertices[cw(i)]
	nA := t1.Neighbors[cw(i)]  // across (u, e1)
	nB := t1.Neighbors[ccw(i)] // across (e2, u)

	j := t2.neighborInd(iT1)
	w := t2.Vertices[j]
	nC := t2.Neighbors[ccw(j)] // across (e1, w)
	nD := t2.Neighbors[cw(j)]  // across (w, e2)

	// iT1 becomes (u, e1, v), iT2 becomes (w, e2, v); the new slots take
	// (u, v, e2) and (w, v, e1).
	tr.Triangles[iT1] = Triangle{
		Vertices:  [3]VertInd{u, e1, iV},
		Neighbors: [3]TriInd{iTnew2, iTnew1, nA},
	}
	tr.Triangles[iTnew1] = Triangle{
		Vertices:  [3]VertInd{u, iV, e2},
		Neighbors: [3]TriInd{iT2, nB, iT1},
	}
	tr.Triangles[iT2] = Triangle{
		Vertices:  [3]VertInd{w, e2, iV},
		Neighbors: [3]TriInd{iTnew1, iTnew2, nD},
	}
	tr.Triangles[iTnew2] = Triangle{
		Vertices:  [3]VertInd{w, iV, e1},
		Neighbors: [3]TriInd{iT1, nC, iT2},
	}

	tr.addAdjacentTriangle(iV, iT1)
	tr.addAdjacentTriangle(iV, iTnew1)
	tr.addAdjacentTriangle(iV, iT2)
	tr.addAdjacentTriangle(iV, iTnew2)
	tr.addAdjacentTriangle(u, iTnew1)
	tr.addAdjacentTriangle(e2, iTnew1)
	tr.addAdjacentTriangle(w, iTnew2)
	tr.addAdjacentTriangle(e1, iTnew2)
	tr.removeAdjacentTriangle(e2, iT1)
	tr.removeAdjacentTriangle(e1, iT2)

	tr.changeNeighbor(nB, iT1, iTnew1)
	tr.changeNeighbor(nC, iT2, iTnew2)

	return triStack{iT1, iTnew1, iT2, iTnew2}
}

// isFlipNeeded applies the empty-circumcircle test to the edge shared by iT
// and iTopo, where pos is the position of the newly inserted vertex iV in
// iT. A flip that would produce a clockwise or degenerate triangle is
// refused regardless of the circle test; this keeps collinear super
// triangle corners from breaking orientation.
func (tr *Triangulation) isFlipNeeded(pos Point, iT, iTopo TriInd, iV VertInd) bool {
	tOpo := tr.Triangles[iTopo]
	i := tOpo.neighborInd(iT)
	iVopo := tOpo.Vertices[i]
	iVe1 := tOpo.Vertices[cw(i)]  // shared edge, CCW around iT
	iVe2 := tOpo.Vertices[ccw(i)]

	if tr.FixedEdges.Contains(NewEdge(iVe1, iVe2)) {
		return false
	}
	vOpo := tr.Vertices[iVopo]
	e1 := tr.Vertices[iVe1]
	e2 := tr.Vertices[iVe2]
	if !inCircumcircle(vOpo, pos, e1, e2) {
		return false
	}
	// The flipped diagonal is (iV, iVopo); refuse non-CCW results.
	if orient2d(pos, e1, vOpo) <= 0 || orient2d(pos, vOpo, e2) <= 0 {
		return false
	}
	return true
}

// flipEdge replaces triangles (v, e1, e2) and (w, e2, e1) sharing edge
// (e1, e2) with triangles (v, e1, w) and (v, w, e2) sharing the diagonal
// (v, w). Triangle slots are reused.
func (tr *Triangulation) flipEdge(iT, iTopo TriInd) {
	t := tr.Triangles[iT]
	tOpo := tr.Triangles[iTopo]

	i := t.neighborInd(iTopo)
	v := t.Vertices[i]
	e1 := t.Vertices[ccw(i)]
	e2 := t.Vertices[cw(i)]
	n1 := t.Neighbors[ccw(i)] // across (e2, v)
	n2 := t.Neighbors[cw(i)]  // across (v, e1)

	j := tOpo.neighborInd(iT)
	w := tOpo.Vertices[j]
	n3 := tOpo.Neighbors[ccw(j)] // across (e1, w)
	n4 := tOpo.Neighbors[cw(j)]  // across (w, e2)

	tr.Triangles[iT] = Triangle{
		Vertices:  [3]VertInd{v, e1, w},
		Neighbors: [3]TriInd{n3, iTopo, n2},
	}
	tr.Triangles[iTopo] = Triangle{
		Vertices:  [3]VertInd{v, w, e2},
		Neighbors: [3]TriInd{n4, n1, iT},
	}

	tr.changeNeighbor(n3, iTopo, iT)
	tr.changeNeighbor(n1, iT, iTopo)

	tr.addAdjacentTriangle(v, iTopo)
	tr.addAdjacentTriangle(w, iT)
	tr.removeAdjacentTriangle(e1, iTopo)
	tr.removeAdjacentTriangle(e2, iT)
}
