package internal

import (
	"image/color"
	"math"

	"github.com/osuushi/delaunay/internal/logger"
	"go.uber.org/zap"
)

// Default half extent of the super triangle. Every site must fall inside it.
const DefaultHalfExtent = 10000

type Triangle struct {
	A, B, C Point
	// Whether the triangle has a corner of the super triangle as a vertex.
	Synthetic bool
}

func (tri Triangle) Points() []Point {
	return []Point{tri.A, tri.B, tri.C}
}

// Voronoi cell of a site. Vertices are circumcenters of the Delaunay
// triangles around the site, in order around it.
type Region struct {
	Site     Point
	Vertices []Point
}

// Voronoi edge between two sites whose Delaunay triangles share a facet. A
// and B are the circumcenters of those two triangles.
type Edge struct {
	Sites [2]Point
	A, B  Point
}

type Circle struct {
	Center Point
	Radius float64
}

// Builder grows a Delaunay triangulation from sites added one at a time, and
// derives the Voronoi diagram from it on demand. The triangulation is seeded
// with a super triangle whose corners are never reported as sites.
type Builder struct {
	triangulation *Triangulation
	corners       [3]Point
	sites         []Point
	siteIndex     map[Point]int
	Logger        *logger.ZapLogger
}

func NewBuilder(halfExtent float64, log *logger.ZapLogger) *Builder {
	if !(halfExtent > 0) || math.IsInf(halfExtent, 1) {
		fatalf(ErrDegenerateConstruction, "super triangle half extent %v", halfExtent)
	}
	if log == nil {
		log = logger.NewNop()
	}
	corners := [3]Point{
		Pt(-halfExtent, -halfExtent),
		Pt(halfExtent, -halfExtent),
		Pt(0, halfExtent),
	}
	log.Info("created super triangle", zap.Float64("halfExtent", halfExtent))
	return &Builder{
		triangulation: NewTriangulation(log, corners[:]...),
		corners:       corners,
		siteIndex:     make(map[Point]int),
		Logger:        log,
	}
}

func (b *Builder) Triangulation() *Triangulation {
	return b.triangulation
}

func (b *Builder) Corners() []Point {
	return b.corners[:]
}

func (b *Builder) IsCorner(p Point) bool {
	return p == b.corners[0] || p == b.corners[1] || p == b.corners[2]
}

// Add a site. Returns false if the site was already present. Panics with
// ErrOutsideDomain if the site is outside the super triangle, in which case
// nothing changes.
func (b *Builder) AddPoint(p Point) bool {
	if p.Dimension() != 2 {
		fatalf(ErrDimensionMismatch, "site %v is not planar", p)
	}
	if !b.triangulation.Insert(p) {
		return false
	}
	b.siteIndex[p] = len(b.sites)
	b.sites = append(b.sites, p)
	return true
}

// Add several sites, returning how many were new.
func (b *Builder) AddPoints(points ...Point) int {
	added := 0
	for _, p := range points {
		if b.AddPoint(p) {
			added++
		}
	}
	return added
}

// Sites in insertion order.
func (b *Builder) Sites() []Point {
	return append([]Point(nil), b.sites...)
}

func (b *Builder) touchesCorner(s *Simplex) bool {
	for _, v := range s.vertices {
		if b.IsCorner(v) {
			return true
		}
	}
	return false
}

// Every live triangle, including those touching the super triangle.
func (b *Builder) Triangles() []Triangle {
	simplices := b.triangulation.Simplices()
	result := make([]Triangle, len(simplices))
	for i, s := range simplices {
		result[i] = Triangle{
			A:         s.vertices[0],
			B:         s.vertices[1],
			C:         s.vertices[2],
			Synthetic: b.touchesCorner(s),
		}
	}
	return result
}

// Voronoi cells of every site, recomputed from the current triangulation.
func (b *Builder) Regions() []Region {
	done := map[Point]struct{}{}
	for _, corner := range b.corners {
		done[corner] = struct{}{}
	}
	var regions []Region
	for _, simplex := range b.triangulation.Simplices() {
		for _, site := range simplex.vertices {
			if _, ok := done[site]; ok {
				continue
			}
			done[site] = struct{}{}
			fan := b.triangulation.SurroundingSimplices(site, simplex)
			vertices := make([]Point, len(fan))
			for i, s := range fan {
				vertices[i] = s.Circumcenter()
			}
			regions = append(regions, Region{Site: site, Vertices: vertices})
		}
	}
	return regions
}

// Voronoi edges between pairs of real sites.
func (b *Builder) Edges() []Edge {
	var edges []Edge
	for _, simplex := range b.triangulation.Simplices() {
		for _, neighbor := range b.triangulation.Neighbors(simplex) {
			// Each pair is seen from both sides.
			if neighbor.id < simplex.id {
				continue
			}
			var shared []Point
			for _, v := range simplex.vertices {
				if neighbor.Contains(v) {
					shared = append(shared, v)
				}
			}
			if len(shared) != 2 || b.IsCorner(shared[0]) || b.IsCorner(shared[1]) {
				continue
			}
			edges = append(edges, Edge{
				Sites: [2]Point{shared[0], shared[1]},
				A:     simplex.Circumcenter(),
				B:     neighbor.Circumcenter(),
			})
		}
	}
	return edges
}

// Circumcircles of the triangles between real sites. By the Delaunay
// property, none of them contains a site.
func (b *Builder) Circumcircles() []Circle {
	var circles []Circle
	for _, simplex := range b.triangulation.Simplices() {
		if b.touchesCorner(simplex) {
			continue
		}
		circles = append(circles, Circle{Center: simplex.Circumcenter(), Radius: simplex.Circumradius()})
	}
	return circles
}

// A fill colour for the region of site, stable for the lifetime of the
// builder. Hues are spread by the golden angle in insertion order, so
// neighbouring sites rarely look alike.
func (b *Builder) SiteColor(site Point) color.RGBA {
	index, ok := b.siteIndex[site]
	if !ok {
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	hue := math.Mod(float64(index)*137.508, 360)
	return hsvToRGBA(hue, 0.45, 0.95)
}

func hsvToRGBA(hue, saturation, value float64) color.RGBA {
	c := value * saturation
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := value - c
	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 255,
	}
}
