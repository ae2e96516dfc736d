package cdt

import (
	"math"
	"math/rand"
)

// Triangulation is a 2D constrained Delaunay triangulation under
// construction. The exported fields are the outputs; they may be read at
// any time but must only be mutated directly when setting up custom super
// geometry (see InitializedWithCustomSuperGeometry).
type Triangulation struct {
	Vertices   []Point
	Triangles  []Triangle
	FixedEdges EdgeSet
	// VertTris lists the triangles incident to each vertex, in no
	// particular order.
	VertTris [][]TriInd
	// OverlapCount has an entry only for fixed edges shared by more than
	// one input boundary.
	OverlapCount map[Edge]BoundaryOverlapCount

	dummyTris            []TriInd
	nearPtLocator        NearPointLocator
	nTargetVerts         int
	superGeomType        SuperGeometryType
	vertexInsertionOrder VertexInsertionOrder
	rng                  *rand.Rand
	trimmed              bool
}

// InsertVertices appends a batch of points and inserts each into the
// triangulation. The first batch also builds the enclosing super-triangle
// from the batch bounding box (unless custom super geometry was set up).
// Points must be deduplicated beforehand; see RemoveDuplicates.
func (tr *Triangulation) InsertVertices(points []Point) (err error) {
	return tr.InsertVerticesCustom(len(points),
		func(i int) float64 { return points[i].X },
		func(i int) float64 { return points[i].Y })
}

// InsertVerticesCustom is InsertVertices for foreign point types: n points
// are pulled through the coordinate getters.
func (tr *Triangulation) InsertVerticesCustom(n int, getX, getY func(i int) float64) (err error) {
	defer func() {
		err = handlePanicRecover(recover())
	}()
	if n == 0 {
		return nil
	}
	if len(tr.Vertices) == 0 && tr.superGeomType == SuperTriangle {
		tr.addSuperTriangle(envelopBox(n, getX, getY))
	}
	nExisting := len(tr.Vertices)
	for i := 0; i < n; i++ {
		tr.addNewVertex(Point{getX(i), getY(i)}, nil)
	}
	switch tr.vertexInsertionOrder {
	case AsProvided:
		for i := 0; i < n; i++ {
			tr.insertVertex(VertInd(nExisting + i))
		}
	case Randomized:
		ii := make([]VertInd, n)
		for i := range ii {
			ii[i] = VertInd(nExisting + i)
		}
		tr.rng.Shuffle(len(ii), func(i, j int) { ii[i], ii[j] = ii[j], ii[i] })
		for _, iV := range ii {
			tr.insertVertex(iV)
		}
	}
	return nil
}

// InitializedWithCustomSuperGeometry must be called after populating
// Vertices, Triangles and VertTris directly with custom embedding geometry.
// Edge indices passed to InsertEdges afterwards are offset by the vertex
// count recorded here.
func (tr *Triangulation) InitializedWithCustomSuperGeometry() {
	for i, v := range tr.Vertices {
		tr.nearPtLocator.AddPoint(v.X, v.Y, i)
	}
	tr.nTargetVerts = len(tr.Vertices)
	tr.superGeomType = Custom
}

type box2d struct {
	min Point
	max Point
}

func envelopBox(n int, getX, getY func(i int) float64) box2d {
	b := box2d{
		min: Point{math.Inf(1), math.Inf(1)},
		max: Point{math.Inf(-1), math.Inf(-1)},
	}
	for i := 0; i < n; i++ {
		x, y := getX(i), getY(i)
		b.min.X = math.Min(b.min.X, x)
		b.min.Y = math.Min(b.min.Y, y)
		b.max.X = math.Max(b.max.X, x)
		b.max.Y = math.Max(b.max.Y, y)
	}
	return b
}

func (tr *Triangulation) addSuperTriangle(box box2d) {
	tr.nTargetVerts = 3
	tr.superGeomType = SuperTriangle

	center := Point{(box.min.X + box.max.X) / 2, (box.min.Y + box.max.Y) / 2}
	w := box.max.X - box.min.X
	h := box.max.Y - box.min.Y
	r := math.Sqrt(w*w+h*h) / 2 // half the box diagonal: incircle radius of the super-triangle
	if r == 0 {
		r = 1 // all input points coincide; any enclosing triangle will do
	}
	r *= 1.1
	R := 2 * r                    // excircle radius
	shiftX := R * math.Sqrt(3) / 2 // R cos(30°)
	posV1 := Point{center.X - shiftX, center.Y - r}
	posV2 := Point{center.X + shiftX, center.Y - r}
	posV3 := Point{center.X, center.Y + R}
	tr.addNewVertex(posV1, []TriInd{0})
	tr.addNewVertex(posV2, []TriInd{0})
	tr.addNewVertex(posV3, []TriInd{0})
	tr.addTriangle(Triangle{
		Vertices:  [3]VertInd{0, 1, 2},
		Neighbors: [3]TriInd{NoNeighbor, NoNeighbor, NoNeighbor},
	})
	tr.nearPtLocator.AddPoint(posV1.X, posV1.Y, 0)
	tr.nearPtLocator.AddPoint(posV2.X, posV2.Y, 1)
	tr.nearPtLocator.AddPoint(posV3.X, posV3.Y, 2)
}

func (tr *Triangulation) addNewVertex(pos Point, tris []TriInd) {
	tr.Vertices = append(tr.Vertices, pos)
	tr.VertTris = append(tr.VertTris, tris)
}
