package internal

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run f, converting a TriangulationError panic into an error.
func catch(f func()) (err error) {
	defer func() {
		err = HandlePanicRecover(recover())
	}()
	f()
	return nil
}

var unitTriangle = []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}

func reversed(points []Point) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		result[len(points)-1-i] = p
	}
	return result
}

func TestPointBasics(t *testing.T) {
	p := NewPoint(3, 4)
	assert.Equal(t, Pt(3, 4), p)
	assert.Equal(t, 2, p.Dimension())
	assert.Equal(t, []float64{3, 4}, p.Coords())
	assert.Equal(t, 5.0, p.Magnitude())
	assert.Equal(t, 11.0, p.Dot(Pt(1, 2)))
	assert.Equal(t, Pt(4, 6), p.Add(Pt(1, 2)))
	assert.Equal(t, Pt(2, 2), p.Subtract(Pt(1, 2)))
	assert.Equal(t, Pt(6, 8), p.Scale(2))
	assert.Equal(t, NewPoint(3, 4, 1, 25), p.Extend(1, 25))
	assert.Equal(t, "(3, 4)", p.String())
	assert.Equal(t, 4.0, p.Coord(1))

	// Extending doesn't change the original
	assert.Equal(t, 2, p.Dimension())
}

func TestPointLess(t *testing.T) {
	assert.True(t, Pt(0, 5).Less(Pt(1, 0)))
	assert.True(t, Pt(1, 0).Less(Pt(1, 2)))
	assert.False(t, Pt(1, 2).Less(Pt(1, 2)))
	assert.True(t, Pt(9, 9).Less(NewPoint(0, 0, 0)))
}

func TestPointDimensionErrors(t *testing.T) {
	for name, f := range map[string]func(){
		"empty point":    func() { NewPoint() },
		"too many":       func() { NewPoint(1, 2, 3, 4, 5, 6, 7) },
		"add":            func() { Pt(1, 2).Add(NewPoint(1, 2, 3)) },
		"dot":            func() { Pt(1, 2).Dot(NewPoint(1)) },
		"coord":          func() { Pt(1, 2).Coord(2) },
		"relation":       func() { NewPoint(1, 2, 3).Relation(unitTriangle) },
		"non-square det": func() { Determinant([]Point{Pt(1, 2)}) },
		"cross":          func() { Cross([]Point{Pt(1, 2)}) },
	} {
		t.Run(name, func(t *testing.T) {
			err := catch(f)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDimensionMismatch), "got %v", err)
		})
	}
}

func TestDeterminant(t *testing.T) {
	assert.Equal(t, -2.0, Determinant([]Point{Pt(1, 2), Pt(3, 4)}))
	assert.Equal(t, 1.0, Determinant([]Point{
		NewPoint(1, 0, 0),
		NewPoint(0, 1, 0),
		NewPoint(0, 0, 1),
	}))
	assert.Equal(t, 24.0, Determinant([]Point{
		NewPoint(2, 0, 0, 0),
		NewPoint(0, 3, 0, 0),
		NewPoint(0, 0, 4, 0),
		NewPoint(0, 0, 0, 1),
	}))
	// Swapping rows flips the sign
	assert.Equal(t, 2.0, Determinant([]Point{Pt(3, 4), Pt(1, 2)}))
}

func TestCross(t *testing.T) {
	assert.Equal(t, NewPoint(0, 0, 1), Cross([]Point{NewPoint(1, 0, 0), NewPoint(0, 1, 0)}))

	// The result is perpendicular to every row
	rows := []Point{NewPoint(1, 2, 3), NewPoint(-4, 0, 2)}
	cross := Cross(rows)
	for _, row := range rows {
		assert.InDelta(t, 0, cross.Dot(row), 1e-12)
	}
}

func TestContent(t *testing.T) {
	assert.Equal(t, 0.5, Content(unitTriangle))
	assert.Equal(t, -0.5, Content(reversed(unitTriangle)))
	assert.Equal(t, 0.0, Content([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)}))
	assert.InDelta(t, 1.0/6, Content([]Point{
		NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(0, 1, 0), NewPoint(0, 0, 1),
	}), 1e-12)
}

func TestBisector(t *testing.T) {
	p, q := Pt(1, 2), Pt(5, 4)
	bisector := p.Bisector(q)
	require.Equal(t, 3, bisector.Dimension())
	// The midpoint and any point equidistant from p and q are on it
	assert.InDelta(t, 0, bisector.Dot(Pt(3, 3).Extend(1)), 1e-12)
	assert.InDelta(t, 0, bisector.Dot(Pt(2, 5).Extend(1)), 1e-12)
	assert.NotEqual(t, 0.0, bisector.Dot(p.Extend(1)))
}

func TestRelation(t *testing.T) {
	for _, simplex := range [][]Point{unitTriangle, reversed(unitTriangle)} {
		assert.Equal(t, []int{-1, -1, -1}, Pt(0.2, 0.2).Relation(simplex))
	}

	// Beyond the facet opposite (0, 0)
	assert.Equal(t, []int{1, -1, -1}, Pt(2, 2).Relation(unitTriangle))
	// On the facet opposite (0, 0)
	assert.Equal(t, []int{0, -1, -1}, Pt(0.5, 0.5).Relation(unitTriangle))
	// Beyond the facet opposite (1, 0)
	assert.Equal(t, []int{-1, 1, -1}, Pt(-1, 0.5).Relation(unitTriangle))
	// Vertices lie on two facets
	assert.Equal(t, []int{-1, 0, 0}, Pt(0, 0).Relation(unitTriangle))
}

func TestRelation_Tolerance(t *testing.T) {
	// The tolerance is relative to the size of the simplex, so a tiny offset
	// from a huge simplex's edge counts as on it, but the same offset from a
	// tiny simplex doesn't.
	huge := []Point{Pt(-1e4, -1e4), Pt(1e4, -1e4), Pt(0, 1e4)}
	assert.Equal(t, []int{-1, -1, 0}, Pt(0, -1e4+1e-5).Relation(huge))

	tiny := []Point{Pt(0, 0), Pt(1e-3, 0), Pt(0, 1e-3)}
	assert.Equal(t, -1, Pt(1e-4, 1e-5).Relation(tiny)[2])
}

func TestRelation_DegenerateSimplex(t *testing.T) {
	flat := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)}
	for _, r := range Pt(5, 0).Relation(flat) {
		assert.GreaterOrEqual(t, r, 0)
	}
}

func TestIsOutside(t *testing.T) {
	corner, outside := Pt(2, 2).IsOutside(unitTriangle)
	assert.True(t, outside)
	assert.Equal(t, Pt(0, 0), corner)

	_, outside = Pt(0.2, 0.2).IsOutside(unitTriangle)
	assert.False(t, outside)

	// Boundary points are not outside
	_, outside = Pt(0.5, 0).IsOutside(unitTriangle)
	assert.False(t, outside)
}

func TestIsOnAndIsInside(t *testing.T) {
	corner, on := Pt(0.5, 0.5).IsOn(unitTriangle)
	assert.True(t, on)
	assert.Equal(t, Pt(0, 0), corner)

	_, on = Pt(0.2, 0.2).IsOn(unitTriangle)
	assert.False(t, on)
	_, on = Pt(3, 0).IsOn(unitTriangle)
	assert.False(t, on)

	assert.True(t, Pt(0.2, 0.2).IsInside(unitTriangle))
	assert.False(t, Pt(0.5, 0.5).IsInside(unitTriangle))
	assert.False(t, Pt(2, 2).IsInside(unitTriangle))
}

func TestCircumcenter(t *testing.T) {
	assert.Equal(t, Pt(0.5, 0.5), Circumcenter(unitTriangle))

	center := Circumcenter([]Point{Pt(0, 0), Pt(4, 0), Pt(0, 2)})
	assert.InDelta(t, 2, center.X(), 1e-12)
	assert.InDelta(t, 1, center.Y(), 1e-12)

	// Equidistant from every vertex of a less convenient triangle
	triangle := []Point{Pt(-3, 1), Pt(7, 2.5), Pt(1, 9)}
	center = Circumcenter(triangle)
	r := center.Distance(triangle[0])
	for _, v := range triangle[1:] {
		assert.InDelta(t, r, center.Distance(v), 1e-9)
	}
}

func TestVsCircumcircle(t *testing.T) {
	for _, simplex := range [][]Point{unitTriangle, reversed(unitTriangle)} {
		assert.Equal(t, -1, Pt(0.2, 0.2).VsCircumcircle(simplex))
		assert.Equal(t, 1, Pt(5, 5).VsCircumcircle(simplex))
		// (1, 1) is on the circle through the unit triangle
		assert.Equal(t, 0, Pt(1, 1).VsCircumcircle(simplex))
	}
	// Outside the triangle but inside its circumcircle
	assert.Equal(t, -1, Pt(0.9, 0.9).VsCircumcircle(unitTriangle))
}

func TestPredicates3D(t *testing.T) {
	tetrahedron := []Point{NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(0, 1, 0), NewPoint(0, 0, 1)}

	assert.Equal(t, []int{-1, -1, -1, -1}, NewPoint(0.1, 0.1, 0.1).Relation(tetrahedron))
	assert.Equal(t, []int{1, -1, -1, -1}, NewPoint(1, 1, 1).Relation(tetrahedron))

	center := Circumcenter(tetrahedron)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0.5, center.Coord(i), 1e-12)
	}

	assert.Equal(t, -1, NewPoint(0.1, 0.1, 0.1).VsCircumcircle(tetrahedron))
	assert.Equal(t, 1, NewPoint(2, 2, 2).VsCircumcircle(tetrahedron))
}

func TestCircumcenter_Collinear(t *testing.T) {
	center := Circumcenter([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)})
	assert.True(t, math.IsInf(center.X(), 0) || math.IsNaN(center.X()))
}
