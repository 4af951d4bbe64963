package internal

import (
	"fmt"
	"math"
)

// A broken invariant found by Validate.
type Violation struct {
	Simplex *Simplex
	Reason  string
}

func (v Violation) String() string {
	return fmt.Sprintf("%v: %s", v.Simplex, v.Reason)
}

// Check the structural and Delaunay invariants of a triangulation against the
// given sites. Quadratic, so this is for tests and offline checks only.
//
// The rules are:
// 1. Every simplex has at most dimension+1 neighbors.
// 2. Neighbor links are symmetric, and linked simplices share a facet.
// 3. No site lies inside the circumcircle of a simplex it is not a vertex of,
// by VsCircumcircle. Sites within Tolerance of the circle (relative to the
// circumradius) are treated as on it, since cocircular sites can land on
// either side in floating point.
// 4. Every simplex has finite, nonzero content.
func Validate(t *Triangulation, sites []Point) []Violation {
	var violations []Violation
	for _, simplex := range t.Simplices() {
		neighbors := t.Neighbors(simplex)
		if len(neighbors) > simplex.Dimension()+1 {
			violations = append(violations, Violation{simplex, fmt.Sprintf("%d neighbors", len(neighbors))})
		}
		for _, neighbor := range neighbors {
			if !simplex.IsNeighbor(neighbor) {
				violations = append(violations, Violation{simplex, fmt.Sprintf("linked to non-adjacent %v", neighbor)})
			}
			if !listContains(t.graph.NeighborsOf(neighbor.id), simplex.id) {
				violations = append(violations, Violation{simplex, fmt.Sprintf("link to %v is one way", neighbor)})
			}
		}

		content := simplex.Content()
		if content == 0 || math.IsNaN(content) || math.IsInf(content, 0) {
			violations = append(violations, Violation{simplex, fmt.Sprintf("content %v", content)})
			continue
		}

		center := simplex.Circumcenter()
		radius := simplex.Circumradius()
		for _, site := range sites {
			if simplex.Contains(site) || site.VsCircumcircle(simplex.vertices) >= 0 {
				continue
			}
			if math.Abs(center.Distance(site)-radius) <= radius*Tolerance {
				continue
			}
			violations = append(violations, Violation{simplex, fmt.Sprintf("%v inside circumcircle", site)})
		}
	}
	return violations
}
