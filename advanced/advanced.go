// Package advanced exposes the triangulation engine directly. Unlike the
// top level package, nothing here recovers panics: operations that fail panic
// with a *TriangulationError, which callers can convert back to an error with
// HandlePanicRecover in a deferred function.
package advanced

import (
	"io"

	"github.com/osuushi/delaunay/internal"
	"github.com/osuushi/delaunay/internal/logger"
	"go.uber.org/zap/zapcore"
)

type (
	Point              = internal.Point
	Simplex            = internal.Simplex
	SimplexID          = internal.SimplexID
	VertexSet          = internal.VertexSet
	Triangulation      = internal.Triangulation
	Stats              = internal.Stats
	Builder            = internal.Builder
	Triangle           = internal.Triangle
	Region             = internal.Region
	Edge               = internal.Edge
	Circle             = internal.Circle
	Violation          = internal.Violation
	TriangulationError = internal.TriangulationError
	Logger             = logger.ZapLogger
)

var (
	ErrOutsideDomain          = internal.ErrOutsideDomain
	ErrDegenerateConstruction = internal.ErrDegenerateConstruction
	ErrDimensionMismatch      = internal.ErrDimensionMismatch
	ErrNotAVertex             = internal.ErrNotAVertex
	ErrOpenFan                = internal.ErrOpenFan
)

const (
	MaxDimension      = internal.MaxDimension
	Tolerance         = internal.Tolerance
	DefaultHalfExtent = internal.DefaultHalfExtent
)

// A logger writing lines at level and above to w, which may be nil. Everything
// logged is also kept in memory, see Logger.Text.
func NewLogger(level zapcore.Level, w io.Writer) *Logger {
	return logger.New(level, w)
}

func NewNopLogger() *Logger {
	return logger.NewNop()
}

// Parse a level name such as "debug" or "warn".
func ParseLogLevel(name string) (zapcore.Level, error) {
	return logger.ParseLevel(name)
}

func NewPoint(coords ...float64) Point { return internal.NewPoint(coords...) }
func Pt(x, y float64) Point            { return internal.Pt(x, y) }

// A triangulation whose domain is the given simplex. A nil logger discards
// everything.
func NewTriangulation(log *Logger, initial ...Point) *Triangulation {
	return internal.NewTriangulation(log, initial...)
}

func NewBuilder(halfExtent float64, log *Logger) *Builder {
	return internal.NewBuilder(halfExtent, log)
}

func NewNeighborGraph[N comparable]() *internal.NeighborGraph[N] {
	return internal.NewNeighborGraph[N]()
}

func Validate(t *Triangulation, sites []Point) []Violation {
	return internal.Validate(t, sites)
}

func HandlePanicRecover(r interface{}) error {
	return internal.HandlePanicRecover(r)
}
