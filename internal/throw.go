package internal

import "github.com/pkg/errors"

// Threading errors through every predicate, the cavity search and the fan
// walk would add a lot of noise to code that only fails on caller bugs or on
// sites outside the domain. Instead, we panic with a TriangulationError, and
// the public API recovers to convert to an error.

var (
	// No live simplex contains the site. The triangulation is unchanged.
	ErrOutsideDomain = errors.New("site outside triangulation domain")
	// Wrong vertex count or repeated vertices when building a simplex.
	ErrDegenerateConstruction = errors.New("degenerate simplex construction")
	// Points of different dimensions were mixed in one computation.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// A vertex was required to belong to a simplex, and does not.
	ErrNotAVertex = errors.New("point is not a vertex of simplex")
	// Walking the fan around a vertex hit the edge of the triangulation.
	ErrOpenFan = errors.New("fan around vertex is not closed")
)

// TriangulationError is the panic payload raised by fatalf. Runtime panics
// (nil dereferences, index errors) are not TriangulationErrors, so they are
// never swallowed by HandlePanicRecover.
type TriangulationError struct {
	err error
}

func (e *TriangulationError) Error() string { return e.err.Error() }
func (e *TriangulationError) Unwrap() error { return e.err }
func (e *TriangulationError) Cause() error  { return errors.Cause(e.err) }

// Panic with a TriangulationError wrapping cause.
func fatalf(cause error, format string, args ...interface{}) {
	panic(&TriangulationError{errors.Wrapf(cause, format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if triangulationError, ok := r.(*TriangulationError); ok {
			return triangulationError
		}
		panic(r)
	}
	return nil
}
