// Package cdt computes 2D constrained Delaunay triangulations.
//
// A triangulation is built incrementally: feed it vertices, then constraint
// edges, then optionally trim away the super-triangle, everything outside
// the constrained boundary, or outside plus auto-detected holes. Every
// non-constraint edge of the result satisfies the Delaunay empty
// circumcircle property, and every constraint edge appears verbatim as a
// triangle edge.
package cdt

import (
	"math/rand"

	"github.com/osuushi/cdt/kdtree"
)

// VertexInsertionOrder selects the order in which a batch of vertices is
// inserted. Randomized insertion only shuffles the insertion sequence;
// vertex indices in the final triangulation stay as provided.
type VertexInsertionOrder int

const (
	Randomized VertexInsertionOrder = iota
	AsProvided
)

// SuperGeometryType selects what the triangulation is embedded into: a
// conventional enclosing super-triangle, or custom geometry supplied by the
// caller (e.g. a grid).
type SuperGeometryType int

const (
	SuperTriangle SuperGeometryType = iota
	Custom
)

// NearPointLocator finds a vertex close to a query position, used to seed
// walking point location. The returned vertex does not have to be the exact
// nearest; a closer answer just makes walks shorter.
type NearPointLocator interface {
	AddPoint(x, y float64, i int)
	NearPoint(x, y float64) int
}

// The shuffle seed is fixed so that a triangulation of the same input is
// reproducible run to run. Each triangulation owns its generator, so
// concurrent triangulations stay deterministic too.
const shuffleSeed = 9001

// New creates an empty triangulation. A nil locator falls back to the
// default kd-tree locator.
func New(order VertexInsertionOrder, locator NearPointLocator) *Triangulation {
	if locator == nil {
		locator = kdtree.New()
	}
	return &Triangulation{
		FixedEdges:           make(EdgeSet),
		OverlapCount:         make(map[Edge]BoundaryOverlapCount),
		nearPtLocator:        locator,
		superGeomType:        SuperTriangle,
		vertexInsertionOrder: order,
		rng:                  rand.New(rand.NewSource(shuffleSeed)),
	}
}
