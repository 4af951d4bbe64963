package internal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osuushi/delaunay/internal/dbg"
)

// Simplex ids are handed out by the arena that owns the simplex. They are
// never reused, so a stale id can be detected by asking the arena.
type SimplexID int

// A simplex (a triangle, in the plane) is an immutable set of dimension+1
// distinct points. Identity is the id, not the vertex set: two simplices built
// from the same vertices are different simplices.
type Simplex struct {
	id       SimplexID
	vertices []Point
	// Computed on first request. Never invalidated, since the vertices never
	// change.
	circumcenter *Point
}

func newSimplex(id SimplexID, vertices []Point) *Simplex {
	if len(vertices) == 0 {
		fatalf(ErrDegenerateConstruction, "simplex with no vertices")
	}
	dim := vertices[0].Dimension()
	if len(vertices) != dim+1 {
		fatalf(ErrDegenerateConstruction, "%d vertices for a %d-dimensional simplex", len(vertices), dim)
	}
	for i, v := range vertices {
		if v.Dimension() != dim {
			fatalf(ErrDegenerateConstruction, "vertex %v is not %d-dimensional", v, dim)
		}
		for _, w := range vertices[:i] {
			if v == w {
				fatalf(ErrDegenerateConstruction, "repeated vertex %v", v)
			}
		}
	}
	return &Simplex{
		id:       id,
		vertices: append([]Point(nil), vertices...),
	}
}

func (s *Simplex) ID() SimplexID {
	return s.id
}

func (s *Simplex) Dimension() int {
	return len(s.vertices) - 1
}

// A copy of the vertices, in construction order.
func (s *Simplex) Vertices() []Point {
	return append([]Point(nil), s.vertices...)
}

func (s *Simplex) Contains(p Point) bool {
	for _, v := range s.vertices {
		if v == p {
			return true
		}
	}
	return false
}

// The vertices remaining after removing vertex.
func (s *Simplex) FacetOpposite(vertex Point) []Point {
	facet := make([]Point, 0, len(s.vertices)-1)
	for _, v := range s.vertices {
		if v != vertex {
			facet = append(facet, v)
		}
	}
	if len(facet) == len(s.vertices) {
		fatalf(ErrNotAVertex, "facet opposite %v in %v", vertex, s)
	}
	return facet
}

// Any vertex not among excluded.
func (s *Simplex) VertexButNot(excluded ...Point) Point {
outer:
	for _, v := range s.vertices {
		for _, e := range excluded {
			if v == e {
				continue outer
			}
		}
		return v
	}
	fatalf(ErrDegenerateConstruction, "every vertex of %v is excluded", s)
	return Point{}
}

// Two simplices are neighbors iff they share all vertices but one.
func (s *Simplex) IsNeighbor(other *Simplex) bool {
	if len(s.vertices) != len(other.vertices) {
		return false
	}
	differences := 0
	for _, v := range s.vertices {
		if !other.Contains(v) {
			differences++
		}
	}
	return differences == 1
}

func (s *Simplex) Circumcenter() Point {
	if s.circumcenter == nil {
		center := Circumcenter(s.vertices)
		s.circumcenter = &center
	}
	return *s.circumcenter
}

func (s *Simplex) Circumradius() float64 {
	return s.Circumcenter().Distance(s.vertices[0])
}

// Signed content; positive when the vertices are in counterclockwise order.
func (s *Simplex) Content() float64 {
	return Content(s.vertices)
}

func (s *Simplex) VertexSet() VertexSet {
	return NewVertexSet(s.vertices...)
}

func (s *Simplex) DbgName() string {
	return dbg.Name(s)
}

func (s *Simplex) String() string {
	parts := make([]string, len(s.vertices))
	for i, v := range s.vertices {
		parts[i] = v.String()
	}
	return fmt.Sprintf("Simplex#%d{%s}", s.id, strings.Join(parts, " "))
}

// VertexSet is a canonical, comparable form of a set of points, used as a map
// key for facets and for comparing simplices by shape instead of identity.
type VertexSet struct {
	n      int
	points [MaxDimension + 1]Point
}

func NewVertexSet(points ...Point) VertexSet {
	if len(points) > MaxDimension+1 {
		fatalf(ErrDimensionMismatch, "vertex set of %d points", len(points))
	}
	var set VertexSet
	set.n = len(points)
	copy(set.points[:], points)
	sorted := set.points[:set.n]
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	return set
}

func (v VertexSet) Points() []Point {
	return append([]Point(nil), v.points[:v.n]...)
}

func (v VertexSet) Len() int {
	return v.n
}

func (v VertexSet) String() string {
	parts := make([]string, v.n)
	for i, p := range v.points[:v.n] {
		parts[i] = p.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}
