package internal

import "github.com/osuushi/delaunay/internal/dbg"

// The arena owns every simplex of a triangulation and hands out ids from its
// own counter. The rest of the triangulation refers to simplices by id, so a
// simplex destroyed by a cavity rebuild can't be reached through a stale
// adjacency entry: looking it up simply fails.
type arena struct {
	nextID    SimplexID
	simplices map[SimplexID]*Simplex
}

func newArena() *arena {
	return &arena{simplices: make(map[SimplexID]*Simplex)}
}

func (a *arena) alloc(vertices []Point) *Simplex {
	s := newSimplex(a.nextID, vertices)
	a.nextID++
	a.simplices[s.id] = s
	return s
}

func (a *arena) free(id SimplexID) {
	if s, ok := a.simplices[id]; ok {
		dbg.Forget(s)
		delete(a.simplices, id)
	}
}

func (a *arena) get(id SimplexID) *Simplex {
	return a.simplices[id]
}

// Whether s is the live simplex with its id. A simplex from another arena
// may share the id, so the pointer is compared too.
func (a *arena) live(s *Simplex) bool {
	return s != nil && a.simplices[s.id] == s
}

func (a *arena) len() int {
	return len(a.simplices)
}
