package cdt

// The triangulation kernel does not detect coincident input points; these
// helpers let callers clean their input first. Duplicates are points with
// exactly equal coordinates.

// DuplicatesInfo describes removed duplicated vertices. Vertices
// {a, b, c, a, d} produce Mapping {0, 1, 2, 0, 3} (into the deduplicated
// vertices {a, b, c, d}) and Duplicates {3}.
type DuplicatesInfo struct {
	Mapping    []VertInd
	Duplicates []int
}

// FindDuplicates maps every input point to its index among unique points.
func FindDuplicates(points []Point) DuplicatesInfo {
	return FindDuplicatesCustom(len(points),
		func(i int) float64 { return points[i].X },
		func(i int) float64 { return points[i].Y })
}

// FindDuplicatesCustom is FindDuplicates for foreign point types.
func FindDuplicatesCustom(n int, getX, getY func(i int) float64) DuplicatesInfo {
	uniqueVerts := make(map[Point]VertInd, n)
	di := DuplicatesInfo{Mapping: make([]VertInd, n)}
	iOut := VertInd(0)
	for iIn := 0; iIn < n; iIn++ {
		p := Point{getX(iIn), getY(iIn)}
		if iFirst, ok := uniqueVerts[p]; ok {
			di.Mapping[iIn] = iFirst
			di.Duplicates = append(di.Duplicates, iIn)
			continue
		}
		uniqueVerts[p] = iOut
		di.Mapping[iIn] = iOut
		iOut++
	}
	return di
}

// RemoveDuplicates drops the points at the given sorted duplicate indices
// and returns the compacted slice, reusing the input's backing array.
func RemoveDuplicates(points []Point, duplicates []int) []Point {
	if len(duplicates) == 0 {
		return points
	}
	dupSet := make(map[int]struct{}, len(duplicates))
	for _, i := range duplicates {
		dupSet[i] = struct{}{}
	}
	out := points[:0]
	for i, p := range points {
		if _, isDup := dupSet[i]; isDup {
			continue
		}
		out = append(out, p)
	}
	return out
}

// RemapEdges rewrites edge endpoints in place through a vertex index
// mapping, such as the one produced by FindDuplicates.
func RemapEdges(edges []Edge, mapping []VertInd) {
	for i, e := range edges {
		edges[i] = NewEdge(mapping[e.V1()], mapping[e.V2()])
	}
}

// RemoveDuplicatesAndRemapEdges chains FindDuplicates, RemoveDuplicates and
// RemapEdges: points are deduplicated and edges rewritten to the surviving
// indices. Returns the compacted points and the duplicate information.
func RemoveDuplicatesAndRemapEdges(points []Point, edges []Edge) ([]Point, DuplicatesInfo) {
	di := FindDuplicates(points)
	points = RemoveDuplicates(points, di.Duplicates)
	RemapEdges(edges, di.Mapping)
	return points, di
}

// ExtractEdges enumerates the unique undirected edges of the triangles.
func ExtractEdges(triangles []Triangle) EdgeSet {
	edges := make(EdgeSet, 3*len(triangles)/2)
	for _, t := range triangles {
		edges.insert(NewEdge(t.Vertices[0], t.Vertices[1]))
		edges.insert(NewEdge(t.Vertices[1], t.Vertices[2]))
		edges.insert(NewEdge(t.Vertices[2], t.Vertices[0]))
	}
	return edges
}
