package cdt

// InsertEdges inserts constraint edges. Edge vertex indices refer to the
// user's vertices: 0..N-1 regardless of super geometry. Inserting the same
// edge more than once marks it as overlapping boundaries and bumps its
// OverlapCount entry. Constraints must be applied after all vertices.
func (tr *Triangulation) InsertEdges(edges []Edge) (err error) {
	return tr.InsertEdgesCustom(len(edges),
		func(i int) VertInd { return edges[i].V1() },
		func(i int) VertInd { return edges[i].V2() })
}

// InsertEdgesCustom is InsertEdges for foreign edge types: n edges are
// pulled through the endpoint getters.
func (tr *Triangulation) InsertEdgesCustom(n int, getStart, getEnd func(i int) VertInd) (err error) {
	defer func() {
		err = handlePanicRecover(recover())
	}()
	for i := 0; i < n; i++ {
		// Offset accounts for the super geometry vertices.
		tr.insertEdge(NewEdge(
			getStart(i)+VertInd(tr.nTargetVerts),
			getEnd(i)+VertInd(tr.nTargetVerts)))
	}
	tr.eraseDummies()
	return nil
}

// insertEdge forces edge (a, b) into the triangulation: walk the corridor
// of triangles the segment crosses, remove them, and retriangulate the two
// pseudo-polygons bounding the corridor. A constraint passing exactly
// through another vertex is split there and both halves are processed.
func (tr *Triangulation) insertEdge(edge Edge) {
	iA, iB := edge.V1(), edge.V2()
	for iA != iB {
		if int(iA) >= len(tr.Vertices) || int(iB) >= len(tr.Vertices) {
			fatal(ErrVertexOutOfRange)
		}
		if tr.hasEdge(iA, iB) {
			tr.fixEdge(NewEdge(iA, iB))
			return
		}
		a := tr.Vertices[iA]
		b := tr.Vertices[iB]
		iT, iVleft, iVright, iVcol := tr.intersectedTriangle(iA, tr.VertTris[iA], a, b)
		if iVcol != noVertex {
			// First step of the walk already runs through a vertex.
			tr.fixEdge(NewEdge(iA, iVcol))
			iA = iVcol
			continue
		}

		intersected := []TriInd{iT}
		ptsLeft := []VertInd{iVleft}
		ptsRight := []VertInd{iVright}
		iBcur := iB
		iV := iA
		t := tr.Triangles[iT]
		for !t.containsVertex(iBcur) {
			if tr.FixedEdges.Contains(NewEdge(iVleft, iVright)) {
				fatal(ErrConstraintsIntersect)
			}
			iTopo := t.opposedTriangle(iV)
			tOpo := tr.Triangles[iTopo]
			iVopo := tOpo.opposedVertex(iT)

			intersected = append(intersected, iTopo)
			iT = iTopo
			t = tOpo

			switch locatePointLine(tr.Vertices[iVopo], a, b) {
			case locLeft:
				ptsLeft = append(ptsLeft, iVopo)
				iV = iVleft
				iVleft = iVopo
			case locRight:
				ptsRight = append(ptsRight, iVopo)
				iV = iVright
				iVright = iVopo
			default:
				// The segment runs through iVopo: finish the corridor there
				// and continue with the remainder afterwards.
				iBcur = iVopo
			}
		}

		for _, iTi := range intersected {
			tr.makeDummy(iTi)
		}
		iTleft := tr.triangulatePseudopolygon(iA, iBcur, ptsLeft)
		reverseVertInds(ptsRight)
		iTright := tr.triangulatePseudopolygon(iBcur, iA, ptsRight)
		// Both sides have at least one corridor point, so both roots are
		// fresh triangles whose base slot still faces the constraint.
		tr.Triangles[iTleft].Neighbors[2] = iTright
		tr.Triangles[iTright].Neighbors[2] = iTleft
		tr.fixEdge(NewEdge(iA, iBcur))

		iA = iBcur
	}
}

// hasEdge reports whether some triangle already has the edge (iA, iB).
func (tr *Triangulation) hasEdge(iA, iB VertInd) bool {
	for _, iT := range tr.VertTris[iA] {
		if tr.Triangles[iT].containsVertex(iB) {
			return true
		}
	}
	return false
}

// fixEdge marks the edge as a constraint. Fixing an edge that is already
// fixed records one more overlapping boundary.
func (tr *Triangulation) fixEdge(edge Edge) {
	if tr.FixedEdges.Contains(edge) {
		tr.OverlapCount[edge]++
		return
	}
	tr.FixedEdges.insert(edge)
}

// intersectedTriangle finds the triangle incident to iA whose opposite edge
// is crossed by segment ab, and returns it along with the edge's endpoints
// split by side of ab (left and right). If the segment instead runs exactly
// through a vertex adjacent to iA, that vertex is returned as iVcollinear
// and the rest of the result is unset.
func (tr *Triangulation) intersectedTriangle(iA VertInd, candidates []TriInd, a, b Point) (iT TriInd, iVleft, iVright, iVcollinear VertInd) {
	for _, iTc := range candidates {
		t := tr.Triangles[iTc]
		i := t.vertexInd(iA)
		iP1 := t.Vertices[cw(i)]  // left of a->b when the triangle is crossed
		iP2 := t.Vertices[ccw(i)] // right of a->b when the triangle is crossed
		locP1 := locatePointLine(tr.Vertices[iP1], a, b)
		locP2 := locatePointLine(tr.Vertices[iP2], a, b)
		if locP2 == locOnLine && pointsAlongRay(a, b, tr.Vertices[iP2]) {
			return NoNeighbor, noVertex, noVertex, iP2
		}
		if locP1 == locOnLine && pointsAlongRay(a, b, tr.Vertices[iP1]) {
			return NoNeighbor, noVertex, noVertex, iP1
		}
		if locP1 == locLeft && locP2 == locRight {
			return iTc, iP1, iP2, noVertex
		}
	}
	fatalf("could not find triangle incident to vertex %d intersected by edge", iA)
	return NoNeighbor, noVertex, noVertex, noVertex
}

// pointsAlongRay reports whether p lies ahead of a in the direction of b,
// that is on the ray from a through b rather than behind a. Callers have
// already established that p is on line ab.
func pointsAlongRay(a, b, p Point) bool {
	return (p.X-a.X)*(b.X-a.X)+(p.Y-a.Y)*(b.Y-a.Y) > 0
}

func reverseVertInds(vv []VertInd) {
	for i, j := 0, len(vv)-1; i < j; i, j = i+1, j-1 {
		vv[i], vv[j] = vv[j], vv[i]
	}
}

// A pending pseudo-polygon piece: triangulate the chain of points against
// base edge (ia, ib) and hook the result into the parent's neighbor slot.
type polygonJob struct {
	ia, ib     VertInd
	points     []VertInd
	parent     TriInd
	parentSlot int
}

// triangulatePseudopolygon retriangulates one side of a removed corridor:
// base edge (ia, ib) with an ordered chain of corridor points to its left.
// Triangulation is Delaunay within the pseudo-polygon: each base edge is
// joined to the chain point whose circumcircle is empty of the rest of the
// chain, and the two sub-chains are processed the same way. An explicit job
// stack keeps deep corridors from exhausting the call stack. Returns the
// triangle holding the base edge (ia, ib), with NoNeighbor in the slot
// across it.
func (tr *Triangulation) triangulatePseudopolygon(ia, ib VertInd, points []VertInd) TriInd {
	if len(points) == 0 {
		return tr.pseudopolyOuterTriangle(ia, ib, NoNeighbor)
	}
	root := NoNeighbor
	stack := []polygonJob{{ia, ib, points, NoNeighbor, -1}}
	for len(stack) > 0 {
		job := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(job.points) == 0 {
			iOuter := tr.pseudopolyOuterTriangle(job.ia, job.ib, job.parent)
			tr.Triangles[job.parent].Neighbors[job.parentSlot] = iOuter
			if iOuter != NoNeighbor {
				tr.changeNeighborOnEdge(iOuter, job.ia, job.ib, job.parent)
			}
			continue
		}

		ic := tr.findDelaunayPoint(job.ia, job.ib, job.points)
		icPos := 0
		for job.points[icPos] != ic {
			icPos++
		}

		// Triangle (ia, ib, ic): slot 0 faces the (ib, ic) piece, slot 1
		// the (ia, ic) piece, slot 2 the base edge.
		iT := tr.addTriangle(Triangle{
			Vertices:  [3]VertInd{job.ia, job.ib, ic},
			Neighbors: [3]TriInd{NoNeighbor, NoNeighbor, job.parent},
		})
		if job.parent != NoNeighbor {
			tr.Triangles[job.parent].Neighbors[job.parentSlot] = iT
		} else {
			root = iT
		}
		tr.addAdjacentTriangle(job.ia, iT)
		tr.addAdjacentTriangle(job.ib, iT)
		tr.addAdjacentTriangle(ic, iT)

		stack = append(stack,
			polygonJob{job.ia, ic, job.points[:icPos], iT, 1},
			polygonJob{ic, job.ib, job.points[icPos+1:], iT, 0})
	}
	return root
}

// findDelaunayPoint picks the chain point whose circumcircle with the base
// edge contains no other chain point.
func (tr *Triangulation) findDelaunayPoint(ia, ib VertInd, points []VertInd) VertInd {
	a := tr.Vertices[ia]
	b := tr.Vertices[ib]
	ic := points[0]
	c := tr.Vertices[ic]
	for _, iv := range points[1:] {
		v := tr.Vertices[iv]
		if inCircumcircle(v, a, b, c) {
			ic = iv
			c = v
		}
	}
	return ic
}

// pseudopolyOuterTriangle finds the triangle outside the removed corridor
// that borders edge (ia, ib). The corridor triangles are already dummied,
// so besides the in-progress triangle asking (excluded), at most one
// candidate remains in the fans.
func (tr *Triangulation) pseudopolyOuterTriangle(ia, ib VertInd, exclude TriInd) TriInd {
	for _, iT := range tr.VertTris[ia] {
		if iT != exclude && tr.Triangles[iT].containsVertex(ib) {
			return iT
		}
	}
	return NoNeighbor
}
