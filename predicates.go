package cdt

// The predicates here are the only floating-point-sensitive code in the
// package. They use the standard determinant formulas with exact-zero
// tie-breaks: a point exactly on a line is OnLine, and a point exactly on a
// circumcircle counts as outside, so ties never trigger a flip.

type ptLineLocation int

const (
	locLeft ptLineLocation = iota
	locRight
	locOnLine
)

// orient2d is the signed doubled area of triangle abc. Positive means c is
// to the left of ab (the triangle winds counterclockwise), negative to the
// right, zero collinear.
func orient2d(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func locatePointLine(p, v1, v2 Point) ptLineLocation {
	orient := orient2d(v1, v2, p)
	if orient < 0 {
		return locRight
	}
	if orient > 0 {
		return locLeft
	}
	return locOnLine
}

// inCircumcircle reports whether p lies strictly inside the circumcircle of
// the counterclockwise triangle (v1, v2, v3).
func inCircumcircle(p, v1, v2, v3 Point) bool {
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

	return alift*bcdet+blift*cadet+clift*abdet > 0
}

type ptTriLocation int

const (
	locInside ptTriLocation = iota
	locOutside
	locOnEdge1 // edge (v1, v2)
	locOnEdge2 // edge (v2, v3)
	locOnEdge3 // edge (v3, v1)
	locOnVertex
)

func isOnEdge(loc ptTriLocation) bool {
	return loc == locOnEdge1 || loc == locOnEdge2 || loc == locOnEdge3
}

// edgeNeighborInd maps an on-edge location to the neighbor slot spanning
// that edge. Edge (v1,v2) is opposite vertex 3 and so on.
func edgeNeighborInd(loc ptTriLocation) int {
	switch loc {
	case locOnEdge1:
		return 2
	case locOnEdge2:
		return 0
	case locOnEdge3:
		return 1
	}
	fatalf("location %d is not on an edge", loc)
	return -1
}

// locatePointTriangle classifies p against the counterclockwise triangle
// (v1, v2, v3). Landing exactly on two edges at once means p coincides with
// one of the corners.
func locatePointTriangle(p, v1, v2, v3 Point) ptTriLocation {
	result := locInside
	onLineCount := 0
	check := func(s1, s2 Point, onEdge ptTriLocation) bool {
		switch locatePointLine(p, s1, s2) {
		case locRight:
			result = locOutside
			return false
		case locOnLine:
			result = onEdge
			onLineCount++
		}
		return true
	}
	if !check(v1, v2, locOnEdge1) {
		return locOutside
	}
	if !check(v2, v3, locOnEdge2) {
		return locOutside
	}
	if !check(v3, v1, locOnEdge3) {
		return locOutside
	}
	if onLineCount > 1 {
		return locOnVertex
	}
	return result
}

// segmentsIntersect reports whether the open segments ab and cd cross at a
// single interior point. Touching at an endpoint or overlapping collinearly
// does not count.
func segmentsIntersect(a, b, c, d Point) bool {
	d1 := orient2d(c, d, a)
	d2 := orient2d(c, d, b)
	d3 := orient2d(a, b, c)
	d4 := orient2d(a, b, d)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}
