package internal

import (
	"github.com/osuushi/delaunay/internal/logger"
	"go.uber.org/zap"
)

// Triangulation maintains a Delaunay triangulation under incremental site
// insertion (Bowyer-Watson): locate the simplex containing the site, grow the
// cavity of simplices whose circumcircle contains it, and replace the cavity
// with a fan of simplices around the site.
//
// The domain is fixed by the initial simplex. Sites outside of it are
// rejected. Not safe for concurrent use.
type Triangulation struct {
	arena *arena
	graph *NeighborGraph[SimplexID]
	// Last simplex created, used as the start of the next locate walk.
	mostRecent SimplexID
	Logger     *logger.ZapLogger
	stats      Stats
}

// Counters, mostly useful for spotting degenerate input.
type Stats struct {
	Insertions int
	Duplicates int
	Rejections int
	// Locate walks that fell back to scanning every simplex.
	LinearScans int
	// Total number of simplices removed by cavity rebuilds.
	CavitySimplices int
}

func NewTriangulation(log *logger.ZapLogger, initial ...Point) *Triangulation {
	if log == nil {
		log = logger.NewNop()
	}
	t := &Triangulation{
		arena:  newArena(),
		graph:  NewNeighborGraph[SimplexID](),
		Logger: log,
	}
	s := t.arena.alloc(initial)
	t.graph.Add(s.id)
	t.mostRecent = s.id
	return t
}

func (t *Triangulation) Size() int {
	return t.graph.Len()
}

func (t *Triangulation) Stats() Stats {
	return t.stats
}

// Live simplices, in a deterministic order.
func (t *Triangulation) Simplices() []*Simplex {
	ids := t.graph.Nodes()
	result := make([]*Simplex, len(ids))
	for i, id := range ids {
		result[i] = t.arena.get(id)
	}
	return result
}

func (t *Triangulation) Contains(s *Simplex) bool {
	return t.arena.live(s)
}

func (t *Triangulation) Neighbors(s *Simplex) []*Simplex {
	if !t.Contains(s) {
		return nil
	}
	ids := t.graph.NeighborsOf(s.id)
	result := make([]*Simplex, len(ids))
	for i, id := range ids {
		result[i] = t.arena.get(id)
	}
	return result
}

// The neighbor of s across the facet opposite vertex, or nil if that facet is
// on the boundary of the triangulation.
func (t *Triangulation) NeighborOpposite(vertex Point, s *Simplex) *Simplex {
	if !s.Contains(vertex) {
		fatalf(ErrNotAVertex, "%v in %v", vertex, s)
	}
	for _, id := range t.graph.NeighborsOf(s.id) {
		neighbor := t.arena.get(id)
		if !neighbor.Contains(vertex) {
			return neighbor
		}
	}
	return nil
}

// The simplices around site, in order, starting with start. The direction
// (clockwise or counterclockwise) depends on which vertex of start is picked
// as the first guide.
func (t *Triangulation) SurroundingSimplices(site Point, start *Simplex) []*Simplex {
	if !start.Contains(site) {
		fatalf(ErrNotAVertex, "%v in %v", site, start)
	}
	var result []*Simplex
	current := start
	guide := current.VertexButNot(site)
	for {
		result = append(result, current)
		previous := current
		current = t.NeighborOpposite(guide, current)
		if current == nil {
			fatalf(ErrOpenFan, "around %v", site)
		}
		guide = previous.VertexButNot(site, guide)
		if current == start {
			break
		}
	}
	return result
}

// Find a simplex containing p (on its boundary counts), or nil if there is
// none. Walks from the most recent simplex towards p. The domain is convex, so
// a walk that steps off the hull means p is outside it. A walk that loops, or
// has no live simplex to start from, falls back to checking every simplex.
func (t *Triangulation) Locate(p Point) *Simplex {
	simplex := t.arena.get(t.mostRecent)
	if simplex == nil {
		t.Logger.Warn("no simplex to start the locate walk from", zap.Stringer("site", p))
		return t.scan(p)
	}
	visited := make(map[SimplexID]struct{})
	for {
		if _, ok := visited[simplex.id]; ok {
			t.Logger.Warn("locate walk caught in a loop", zap.Stringer("site", p), zap.Int("steps", len(visited)))
			return t.scan(p)
		}
		visited[simplex.id] = struct{}{}
		corner, outside := p.IsOutside(simplex.vertices)
		if !outside {
			return simplex
		}
		simplex = t.NeighborOpposite(corner, simplex)
		if simplex == nil {
			return nil
		}
	}
}

func (t *Triangulation) scan(p Point) *Simplex {
	t.stats.LinearScans++
	t.Logger.Warn("checking all simplices", zap.Stringer("site", p), zap.Int("simplices", t.Size()))
	for _, id := range t.graph.Nodes() {
		candidate := t.arena.get(id)
		if _, outside := p.IsOutside(candidate.vertices); !outside {
			return candidate
		}
	}
	return nil
}

// Insert a site, restoring the Delaunay property. Returns false if the site
// is already a vertex. Panics with ErrOutsideDomain, before changing
// anything, if no simplex contains the site or the site lies on the boundary
// of the domain.
func (t *Triangulation) Insert(site Point) bool {
	simplex := t.Locate(site)
	if simplex == nil {
		t.stats.Rejections++
		t.Logger.Error("no simplex contains site", zap.Stringer("site", site))
		fatalf(ErrOutsideDomain, "inserting %v", site)
	}
	if simplex.Contains(site) {
		t.stats.Duplicates++
		t.Logger.Debug("site already present", zap.Stringer("site", site))
		return false
	}
	// A site on a hull facet would be joined to that facet by a flat simplex.
	if vertex, on := t.onHull(site, simplex); on {
		t.stats.Rejections++
		t.Logger.Error("site on the domain boundary", zap.Stringer("site", site))
		fatalf(ErrOutsideDomain, "inserting %v on the facet opposite %v", site, vertex)
	}

	cavity := t.cavity(site, simplex)
	if len(cavity) == 0 {
		// Only possible when the located simplex has zero content.
		fatalf(ErrDegenerateConstruction, "empty cavity for %v in %v", site, simplex)
	}
	created := t.update(site, cavity)
	t.mostRecent = created[0].id

	t.stats.Insertions++
	t.stats.CavitySimplices += len(cavity)
	t.Logger.Debug("inserted site",
		zap.Stringer("site", site),
		zap.Int("located", int(simplex.id)),
		zap.Int("cavity", len(cavity)),
		zap.Int("created", len(created)),
		zap.Int("simplices", t.Size()),
	)
	return true
}

// Whether site lies on a facet of simplex that has no neighbor across it.
// Returns the vertex opposite that facet.
func (t *Triangulation) onHull(site Point, simplex *Simplex) (Point, bool) {
	for i, r := range site.Relation(simplex.vertices) {
		if r != 0 {
			continue
		}
		vertex := simplex.vertices[i]
		if t.NeighborOpposite(vertex, simplex) == nil {
			return vertex, true
		}
	}
	return Point{}, false
}

// Breadth first search from start for the simplices whose circumcircle
// contains site. A simplex with site exactly on its circumcircle joins the
// cavity. The search only expands from simplices that joined, so the cavity is
// connected.
func (t *Triangulation) cavity(site Point, start *Simplex) []*Simplex {
	var encroached []*Simplex
	marked := map[SimplexID]struct{}{start.id: {}}
	queue := []*Simplex{start}
	for len(queue) > 0 {
		simplex := queue[0]
		queue = queue[1:]
		if site.VsCircumcircle(simplex.vertices) > 0 {
			continue
		}
		encroached = append(encroached, simplex)
		for _, id := range t.graph.NeighborsOf(simplex.id) {
			if _, ok := marked[id]; ok {
				continue
			}
			marked[id] = struct{}{}
			queue = append(queue, t.arena.get(id))
		}
	}
	return encroached
}

// Replace the cavity with new simplices joining site to each boundary facet,
// and link them to each other and to the simplices around the cavity.
func (t *Triangulation) update(site Point, cavity []*Simplex) []*Simplex {
	inCavity := make(map[SimplexID]struct{}, len(cavity))
	for _, simplex := range cavity {
		inCavity[simplex.id] = struct{}{}
	}

	// Interior facets are produced by two cavity simplices and toggle back
	// out. Facets are kept in first-seen order so the rebuild is
	// deterministic.
	boundary := make(map[VertexSet][]Point)
	var facetOrder []VertexSet
	var ring []*Simplex
	inRing := make(map[SimplexID]struct{})
	for _, simplex := range cavity {
		for _, id := range t.graph.NeighborsOf(simplex.id) {
			if _, ok := inCavity[id]; ok {
				continue
			}
			if _, ok := inRing[id]; ok {
				continue
			}
			inRing[id] = struct{}{}
			ring = append(ring, t.arena.get(id))
		}
		for _, vertex := range simplex.vertices {
			facet := simplex.FacetOpposite(vertex)
			key := NewVertexSet(facet...)
			if _, ok := boundary[key]; ok {
				delete(boundary, key)
			} else {
				boundary[key] = facet
				facetOrder = append(facetOrder, key)
			}
		}
	}

	for _, simplex := range cavity {
		t.graph.Remove(simplex.id)
		t.arena.free(simplex.id)
	}

	var created []*Simplex
	for _, key := range facetOrder {
		facet, ok := boundary[key]
		if !ok {
			continue
		}
		// A facet can toggle out and back in again; only build it once.
		delete(boundary, key)
		simplex := t.arena.alloc(append(facet, site))
		t.graph.Add(simplex.id)
		created = append(created, simplex)
	}

	candidates := append(ring, created...)
	for _, simplex := range created {
		for _, other := range candidates {
			if other != simplex && simplex.IsNeighbor(other) {
				t.graph.Connect(simplex.id, other.id)
			}
		}
	}
	return created
}
