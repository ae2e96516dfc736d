package cdt

// Depth peeling classifies triangles by how many constraint boundaries
// enclose them: depth 0 is outside the outermost boundary, 1 inside it, 2
// in a hole, 3 in an island inside the hole, and so on. Odd depths are
// material, even depths are outside or in a hole.

// PeelLayer BFS-traverses from the seed triangles, assigning layerDepth to
// every triangle reached. Traversal is blocked by fixed edges; triangles on
// the far side of a fixed edge are recorded as seeds of the next layer and
// returned.
func PeelLayer(seeds []TriInd, triangles []Triangle, fixedEdges EdgeSet, layerDepth LayerDepth, triDepths []LayerDepth) TriIndSet {
	behindBoundary := make(TriIndSet)
	stack := triStack(append([]TriInd(nil), seeds...))
	for !stack.empty() {
		iT := stack.pop()
		if triDepths[iT] <= layerDepth {
			continue // already reached through a shallower layer
		}
		triDepths[iT] = layerDepth
		delete(behindBoundary, iT)
		t := triangles[iT]
		for i := 0; i < 3; i++ {
			opEdge := NewEdge(t.Vertices[ccw(i)], t.Vertices[cw(i)])
			iN := t.Neighbors[i]
			if iN == NoNeighbor || triDepths[iN] <= layerDepth {
				continue
			}
			if fixedEdges.Contains(opEdge) {
				behindBoundary.insert(iN)
				continue
			}
			stack.push(iN)
		}
	}
	return behindBoundary
}

// PeelLayerWithOverlaps is PeelLayer honoring boundary overlap counts:
// crossing a fixed edge shared by n+1 boundaries advances the depth by n+1,
// so the returned seeds carry their own depths, which may skip layers.
func PeelLayerWithOverlaps(seeds []TriInd, triangles []Triangle, fixedEdges EdgeSet, overlapCount map[Edge]BoundaryOverlapCount, layerDepth LayerDepth, triDepths []LayerDepth) map[TriInd]LayerDepth {
	behindBoundary := make(map[TriInd]LayerDepth)
	stack := triStack(append([]TriInd(nil), seeds...))
	for !stack.empty() {
		iT := stack.pop()
		if triDepths[iT] <= layerDepth {
			continue // already reached through a shallower layer
		}
		triDepths[iT] = layerDepth
		delete(behindBoundary, iT)
		t := triangles[iT]
		for i := 0; i < 3; i++ {
			opEdge := NewEdge(t.Vertices[ccw(i)], t.Vertices[cw(i)])
			iN := t.Neighbors[i]
			if iN == NoNeighbor || triDepths[iN] <= layerDepth {
				continue
			}
			if fixedEdges.Contains(opEdge) {
				behindBoundary[iN] = layerDepth + 1 + LayerDepth(overlapCount[opEdge])
				continue
			}
			stack.push(iN)
		}
	}
	return behindBoundary
}

// CalculateTriangleDepths peels layer by layer from the seed triangle until
// every reachable triangle has a depth. The seed is expected to lie in the
// outermost layer (depth 0).
func CalculateTriangleDepths(seed TriInd, triangles []Triangle, fixedEdges EdgeSet) []LayerDepth {
	triDepths := make([]LayerDepth, len(triangles))
	for i := range triDepths {
		triDepths[i] = unassignedDepth
	}
	seeds := []TriInd{seed}
	layerDepth := LayerDepth(0)
	for len(seeds) > 0 {
		newSeeds := PeelLayer(seeds, triangles, fixedEdges, layerDepth, triDepths)
		layerDepth++
		seeds = seeds[:0]
		for iT := range newSeeds {
			seeds = append(seeds, iT)
		}
	}
	return triDepths
}

// CalculateTriangleDepthsWithOverlaps is CalculateTriangleDepths honoring
// boundary overlap counts. Seeds behind overlapping boundaries land at
// depths beyond the next layer; they are held back until their layer comes
// up. The loop ends when no seeds remain at the current depth or deeper.
func CalculateTriangleDepthsWithOverlaps(seed TriInd, triangles []Triangle, fixedEdges EdgeSet, overlapCount map[Edge]BoundaryOverlapCount) []LayerDepth {
	triDepths := make([]LayerDepth, len(triangles))
	for i := range triDepths {
		triDepths[i] = unassignedDepth
	}
	seeds := []TriInd{seed}
	layerDepth := LayerDepth(0)
	deepestSeedDepth := LayerDepth(0)

	seedsByDepth := make(map[LayerDepth]TriIndSet)
	for {
		newSeeds := PeelLayerWithOverlaps(seeds, triangles, fixedEdges, overlapCount, layerDepth, triDepths)
		delete(seedsByDepth, layerDepth)
		for iT, depth := range newSeeds {
			if depth > deepestSeedDepth {
				deepestSeedDepth = depth
			}
			if seedsByDepth[depth] == nil {
				seedsByDepth[depth] = make(TriIndSet)
			}
			seedsByDepth[depth].insert(iT)
		}
		layerDepth++
		seeds = seeds[:0]
		for iT := range seedsByDepth[layerDepth] {
			seeds = append(seeds, iT)
		}
		if len(seeds) == 0 && deepestSeedDepth <= layerDepth {
			break
		}
	}
	return triDepths
}
