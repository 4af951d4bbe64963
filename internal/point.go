package internal

import (
	"fmt"
	"math"
	"strings"
)

// Points of any dimension up to MaxDimension are supported by the predicates,
// but the predicates lift their inputs by up to two coordinates, so the
// highest usable site dimension is MaxDimension-2. Only 2D sites are exercised
// by the insertion algorithm.
const MaxDimension = 6

// Relative tolerance of the orientation predicate. The threshold scales with
// the content of the simplex being tested, because the super triangle is many
// orders of magnitude larger than the triangles between real sites.
const Tolerance = 1e-6

// Point is an immutable coordinate tuple. The unused tail of the coordinate
// array is always zero, so two points compare equal with == exactly when they
// have the same dimension and coordinates. This lets points be used as map
// keys.
type Point struct {
	dim    int
	coords [MaxDimension]float64
}

func NewPoint(coords ...float64) Point {
	if len(coords) == 0 || len(coords) > MaxDimension {
		fatalf(ErrDimensionMismatch, "cannot build a point with %d coordinates", len(coords))
	}
	p := Point{dim: len(coords)}
	copy(p.coords[:], coords)
	return p
}

// Shorthand for a planar point.
func Pt(x, y float64) Point {
	return Point{dim: 2, coords: [MaxDimension]float64{x, y}}
}

func (p Point) Dimension() int {
	return p.dim
}

func (p Point) Coord(i int) float64 {
	if i < 0 || i >= p.dim {
		fatalf(ErrDimensionMismatch, "coordinate %d of %d-dimensional point", i, p.dim)
	}
	return p.coords[i]
}

func (p Point) X() float64 { return p.coords[0] }
func (p Point) Y() float64 { return p.coords[1] }

func (p Point) Coords() []float64 {
	return append([]float64(nil), p.coords[:p.dim]...)
}

func (p Point) String() string {
	parts := make([]string, p.dim)
	for i := range parts {
		parts[i] = fmt.Sprintf("%g", p.coords[i])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Lexicographic ordering on coordinates, used to canonicalize vertex sets.
func (p Point) Less(q Point) bool {
	if p.dim != q.dim {
		return p.dim < q.dim
	}
	for i := 0; i < p.dim; i++ {
		if p.coords[i] != q.coords[i] {
			return p.coords[i] < q.coords[i]
		}
	}
	return false
}

// Return a new point with the given coordinates appended.
func (p Point) Extend(coords ...float64) Point {
	if p.dim+len(coords) > MaxDimension {
		fatalf(ErrDimensionMismatch, "cannot extend %d-dimensional point by %d", p.dim, len(coords))
	}
	result := p
	copy(result.coords[p.dim:], coords)
	result.dim += len(coords)
	return result
}

func (p Point) checkDimension(q Point) {
	if p.dim != q.dim {
		fatalf(ErrDimensionMismatch, "%v and %v", p, q)
	}
}

func (p Point) Add(q Point) Point {
	p.checkDimension(q)
	for i := 0; i < p.dim; i++ {
		p.coords[i] += q.coords[i]
	}
	return p
}

func (p Point) Subtract(q Point) Point {
	p.checkDimension(q)
	for i := 0; i < p.dim; i++ {
		p.coords[i] -= q.coords[i]
	}
	return p
}

func (p Point) Scale(f float64) Point {
	for i := 0; i < p.dim; i++ {
		p.coords[i] *= f
	}
	return p
}

func (p Point) Dot(q Point) float64 {
	p.checkDimension(q)
	var sum float64
	for i := 0; i < p.dim; i++ {
		sum += p.coords[i] * q.coords[i]
	}
	return sum
}

func (p Point) Magnitude() float64 {
	return math.Sqrt(p.Dot(p))
}

func (p Point) Distance(q Point) float64 {
	return p.Subtract(q).Magnitude()
}

// Perpendicular bisector of p and q, as a hyperplane equation. The result has
// one more coordinate than p: the normal followed by the constant term, so a
// point x lies on the bisector iff Bisector.Dot(x.Extend(1)) == 0.
func (p Point) Bisector(q Point) Point {
	diff := p.Subtract(q)
	sum := p.Add(q)
	return diff.Extend(-diff.Dot(sum) / 2)
}

// Determinant of a square matrix given as rows.
func Determinant(matrix []Point) float64 {
	if len(matrix) == 0 {
		fatalf(ErrDimensionMismatch, "determinant of empty matrix")
	}
	for _, row := range matrix {
		if row.dim != len(matrix) {
			fatalf(ErrDimensionMismatch, "determinant of non-square %dx%d matrix", len(matrix), row.dim)
		}
	}
	var columns [MaxDimension]bool
	for i := range matrix {
		columns[i] = true
	}
	return determinant(matrix, 0, columns[:len(matrix)])
}

// Laplace expansion along row, over the columns still marked available. The
// matrices here are at most MaxDimension wide, so the factorial cost doesn't
// matter.
func determinant(matrix []Point, row int, columns []bool) float64 {
	if row == len(matrix) {
		return 1
	}
	var sum float64
	sign := 1.0
	for col, available := range columns {
		if !available {
			continue
		}
		columns[col] = false
		sum += sign * matrix[row].coords[col] * determinant(matrix, row+1, columns)
		columns[col] = true
		sign = -sign
	}
	return sum
}

// Generalized cross product. Given n rows of n+1 coordinates, return the
// vector perpendicular to all of them, whose i-th coordinate is the signed
// minor obtained by deleting column i.
func Cross(matrix []Point) Point {
	width := len(matrix) + 1
	for _, row := range matrix {
		if row.dim != width {
			fatalf(ErrDimensionMismatch, "cross product needs %d rows of dimension %d", len(matrix), width)
		}
	}
	var columns [MaxDimension]bool
	for i := 0; i < width; i++ {
		columns[i] = true
	}
	result := Point{dim: width}
	sign := 1.0
	for i := 0; i < width; i++ {
		columns[i] = false
		result.coords[i] = sign * determinant(matrix, 0, columns[:width])
		columns[i] = true
		sign = -sign
	}
	return result
}

// Signed content (area in 2D) of a simplex. The sign follows the orientation
// of the vertex order: counterclockwise triangles are positive.
func Content(simplex []Point) float64 {
	matrix := make([]Point, len(simplex))
	for i, vertex := range simplex {
		matrix[i] = vertex.Extend(1)
	}
	fact := 1.0
	for i := 2; i < len(matrix); i++ {
		fact *= float64(i)
	}
	return Determinant(matrix) / fact
}

func checkSimplexDimension(p Point, simplex []Point) {
	if len(simplex) != p.dim+1 {
		fatalf(ErrDimensionMismatch, "%d-dimensional point against %d vertices", p.dim, len(simplex))
	}
	for _, vertex := range simplex {
		p.checkDimension(vertex)
	}
}

// Relation of p to each facet of the simplex. Entry i describes p relative to
// the facet opposite vertex i: -1 if p is on the same side as vertex i, 0 if
// it is on the facet (within Tolerance relative to the simplex content), and
// +1 if it is on the opposite side. A point is inside the simplex iff every
// entry is -1.
func (p Point) Relation(simplex []Point) []int {
	checkSimplexDimension(p, simplex)
	dim := p.dim

	// Row 0 is all ones. Row i+1 holds coordinate i of p and then of each vertex.
	matrix := make([]Point, dim+1)
	matrix[0] = Point{dim: dim + 2}
	for j := 0; j < dim+2; j++ {
		matrix[0].coords[j] = 1
	}
	for i := 0; i < dim; i++ {
		row := Point{dim: dim + 2}
		row.coords[0] = p.coords[i]
		for j, vertex := range simplex {
			row.coords[j+1] = vertex.coords[i]
		}
		matrix[i+1] = row
	}

	vector := Cross(matrix)
	content := vector.coords[0]
	result := make([]int, dim+1)
	for i := range result {
		value := vector.coords[i+1]
		switch {
		case math.Abs(value) <= Tolerance*math.Abs(content):
			result[i] = 0
		case value < 0:
			result[i] = -1
		default:
			result[i] = 1
		}
	}
	if content < 0 {
		for i := range result {
			result[i] = -result[i]
		}
	}
	if content == 0 {
		for i := range result {
			if result[i] < 0 {
				result[i] = -result[i]
			}
		}
	}
	return result
}

// Return a vertex of the simplex witnessing that p is outside of it: p lies
// strictly beyond the facet opposite that vertex.
func (p Point) IsOutside(simplex []Point) (Point, bool) {
	for i, r := range p.Relation(simplex) {
		if r > 0 {
			return simplex[i], true
		}
	}
	return Point{}, false
}

// Return a vertex of the simplex whose opposite facet p lies on, if any.
func (p Point) IsOn(simplex []Point) (Point, bool) {
	result := p.Relation(simplex)
	var witness Point
	found := false
	for i, r := range result {
		switch {
		case r > 0:
			return Point{}, false
		case r == 0:
			witness = simplex[i]
			found = true
		}
	}
	return witness, found
}

func (p Point) IsInside(simplex []Point) bool {
	for _, r := range p.Relation(simplex) {
		if r >= 0 {
			return false
		}
	}
	return true
}

// Circumcenter of a simplex, found as the intersection of the bisectors of
// consecutive vertices in homogeneous coordinates.
func Circumcenter(simplex []Point) Point {
	if len(simplex) == 0 {
		fatalf(ErrDimensionMismatch, "circumcenter of empty simplex")
	}
	dim := simplex[0].dim
	if len(simplex)-1 != dim {
		fatalf(ErrDimensionMismatch, "circumcenter of %d vertices in dimension %d", len(simplex), dim)
	}
	matrix := make([]Point, dim)
	for i := 0; i < dim; i++ {
		matrix[i] = simplex[i].Bisector(simplex[i+1])
	}
	hCenter := Cross(matrix)
	last := hCenter.coords[dim]
	result := Point{dim: dim}
	for i := 0; i < dim; i++ {
		result.coords[i] = hCenter.coords[i] / last
	}
	return result
}

// Test p against the circumsphere of the simplex: -1 inside, 0 on, +1
// outside. The points are lifted onto the paraboloid |x|^2, where the sphere
// test becomes an orientation test.
func (p Point) VsCircumcircle(simplex []Point) int {
	checkSimplexDimension(p, simplex)
	matrix := make([]Point, len(simplex)+1)
	for i, vertex := range simplex {
		matrix[i] = vertex.Extend(1, vertex.Dot(vertex))
	}
	matrix[len(simplex)] = p.Extend(1, p.Dot(p))
	d := Determinant(matrix)
	result := 0
	if d < 0 {
		result = -1
	} else if d > 0 {
		result = 1
	}
	if Content(simplex) < 0 {
		result = -result
	}
	return result
}
