package internal

// NeighborGraph is an undirected graph with no knowledge of geometry. Each
// node keeps a short adjacency list; in a planar triangulation that list never
// holds more than three entries, so linear scans beat a set.
//
// Nodes are kept in insertion order (with swap-removal), which makes iteration
// deterministic for a given sequence of operations.
type NeighborGraph[N comparable] struct {
	adjacency map[N][]N
	position  map[N]int
	order     []N
}

func NewNeighborGraph[N comparable]() *NeighborGraph[N] {
	return &NeighborGraph[N]{
		adjacency: make(map[N][]N),
		position:  make(map[N]int),
	}
}

// Add a node. Adding a node twice has no effect.
func (g *NeighborGraph[N]) Add(node N) {
	if _, ok := g.position[node]; ok {
		return
	}
	g.position[node] = len(g.order)
	g.order = append(g.order, node)
	g.adjacency[node] = nil
}

// Remove a node and all edges incident to it.
func (g *NeighborGraph[N]) Remove(node N) {
	i, ok := g.position[node]
	if !ok {
		return
	}
	for _, neighbor := range g.adjacency[node] {
		g.adjacency[neighbor] = removeFromList(g.adjacency[neighbor], node)
	}
	delete(g.adjacency, node)

	last := len(g.order) - 1
	g.order[i] = g.order[last]
	g.position[g.order[i]] = i
	g.order = g.order[:last]
	delete(g.position, node)
}

// Connect two nodes, adding them if necessary. Idempotent.
func (g *NeighborGraph[N]) Connect(a, b N) {
	g.Add(a)
	g.Add(b)
	if listContains(g.adjacency[a], b) {
		return
	}
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
}

func (g *NeighborGraph[N]) Contains(node N) bool {
	_, ok := g.position[node]
	return ok
}

// A copy of the current neighbors of node. Empty for isolated or unknown
// nodes.
func (g *NeighborGraph[N]) NeighborsOf(node N) []N {
	return append([]N(nil), g.adjacency[node]...)
}

func (g *NeighborGraph[N]) Nodes() []N {
	return append([]N(nil), g.order...)
}

func (g *NeighborGraph[N]) Len() int {
	return len(g.order)
}

func listContains[N comparable](list []N, node N) bool {
	for _, n := range list {
		if n == node {
			return true
		}
	}
	return false
}

func removeFromList[N comparable](list []N, node N) []N {
	for i, n := range list {
		if n == node {
			list[i] = list[len(list)-1]
			return list[:len(list)-1]
		}
	}
	return list
}
