// Incremental Delaunay triangulation and Voronoi diagrams for Go.
//
// Sites are added one at a time to a Builder, which keeps the triangulation
// Delaunay after every insertion. The Voronoi regions are derived from the
// triangulation whenever they are asked for, so sites can be added between
// queries (one per click, or per frame).
//
// The triangulation lives inside a large "super triangle", whose size is
// fixed when the Builder is created. Sites outside of it are rejected with
// ErrOutsideDomain. See the advanced package for direct access to the
// underlying triangulation.
package delaunay

import (
	"image/color"

	"github.com/osuushi/delaunay/advanced"
)

type Point = advanced.Point
type Triangle = advanced.Triangle
type Region = advanced.Region
type Edge = advanced.Edge
type Circle = advanced.Circle

var (
	ErrOutsideDomain          = advanced.ErrOutsideDomain
	ErrDegenerateConstruction = advanced.ErrDegenerateConstruction
)

const DefaultHalfExtent = advanced.DefaultHalfExtent

func Pt(x, y float64) Point { return advanced.Pt(x, y) }

type Option func(*options)

type options struct {
	logger *advanced.Logger
}

// Log to the given logger instead of discarding log output. Build one with
// advanced.NewLogger.
func WithLogger(log *advanced.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}

// Builder is a Voronoi diagram under construction. It is not safe for
// concurrent use.
type Builder struct {
	builder *advanced.Builder
}

// Create a builder whose super triangle has corners (-h, -h), (h, -h) and
// (0, h). Every site added later must lie inside it.
func NewBuilder(halfExtent float64, opts ...Option) (result *Builder, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{advanced.NewBuilder(halfExtent, o.logger)}, nil
}

// Add a site. Adding a site that is already present does nothing. A site
// outside the super triangle is rejected with ErrOutsideDomain, and leaves
// the builder unchanged.
func (b *Builder) AddPoint(x, y float64) (err error) {
	defer func() {
		err = advanced.HandlePanicRecover(recover())
	}()
	b.builder.AddPoint(Pt(x, y))
	return nil
}

// Add sites in order, stopping at the first error.
func (b *Builder) AddPoints(points ...Point) (added int, err error) {
	defer func() {
		if recoveredErr := advanced.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	for _, p := range points {
		if b.builder.AddPoint(p) {
			added++
		}
	}
	return added, nil
}

// Sites in insertion order.
func (b *Builder) Sites() []Point                  { return b.builder.Sites() }
func (b *Builder) Triangles() []Triangle           { return b.builder.Triangles() }
func (b *Builder) Edges() []Edge                   { return b.builder.Edges() }
func (b *Builder) Circumcircles() []Circle         { return b.builder.Circumcircles() }
func (b *Builder) Corners() []Point                { return b.builder.Corners() }
func (b *Builder) SiteColor(site Point) color.RGBA { return b.builder.SiteColor(site) }

// The Voronoi region of every site. Regions are recomputed on every call.
func (b *Builder) Regions() (regions []Region, err error) {
	defer func() {
		if recoveredErr := advanced.HandlePanicRecover(recover()); recoveredErr != nil {
			regions = nil
			err = recoveredErr
		}
	}()
	return b.builder.Regions(), nil
}

// The engine behind the builder.
func (b *Builder) Advanced() *advanced.Builder {
	return b.builder
}
