package cdt

import "github.com/pkg/errors"

// Threading errors up and down through the insertion and retriangulation
// machinery would add a ton of complexity to the code. Instead, the kernel
// panics with a tagged error, and the public API recovers to convert it to
// a returned error.

var (
	// ErrDegenerateInput means the vertices could not support a valid
	// triangulation, e.g. a point could not be located in any triangle.
	ErrDegenerateInput = errors.New("cdt: degenerate input")
	// ErrConstraintsIntersect means a constraint edge crosses an edge that
	// was already fixed by an earlier constraint. The triangulation is left
	// in an inconsistent state and should be discarded.
	ErrConstraintsIntersect = errors.New("cdt: constraint edges intersect")
	// ErrVertexOutOfRange means a constraint edge referenced a vertex index
	// beyond the vertex array.
	ErrVertexOutOfRange = errors.New("cdt: edge vertex index out of range")
)

type kernelError struct {
	err error
}

func fatal(err error) {
	panic(kernelError{err})
}

func fatalf(format string, args ...interface{}) {
	panic(kernelError{errors.Errorf(format, args...)})
}

func handlePanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if ke, ok := r.(kernelError); ok {
		return ke.err
	}
	panic(r)
}
