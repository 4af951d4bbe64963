package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighborGraph(t *testing.T) {
	g := NewNeighborGraph[string]()
	g.Add("a")
	g.Add("b")
	g.Add("a")
	assert.Equal(t, 2, g.Len())
	assert.Empty(t, g.NeighborsOf("a"))
	assert.Empty(t, g.NeighborsOf("nope"))

	g.Connect("a", "b")
	g.Connect("b", "a")
	g.Connect("a", "c")
	assert.True(t, g.Contains("c"))
	assert.ElementsMatch(t, []string{"b", "c"}, g.NeighborsOf("a"))
	assert.Equal(t, []string{"a"}, g.NeighborsOf("b"))
	assert.Equal(t, []string{"a", "b", "c"}, g.Nodes())

	g.Remove("a")
	assert.False(t, g.Contains("a"))
	assert.Empty(t, g.NeighborsOf("b"))
	assert.Empty(t, g.NeighborsOf("c"))
	assert.ElementsMatch(t, []string{"b", "c"}, g.Nodes())

	// Removing something absent is harmless
	g.Remove("a")
	assert.Equal(t, 2, g.Len())
}

func TestNeighborGraph_RemoveKeepsOrderConsistent(t *testing.T) {
	g := NewNeighborGraph[int]()
	for i := 0; i < 5; i++ {
		g.Add(i)
	}
	g.Remove(1)
	g.Remove(4)
	g.Remove(0)
	assert.ElementsMatch(t, []int{2, 3}, g.Nodes())
	for _, n := range g.Nodes() {
		assert.True(t, g.Contains(n))
	}
	g.Add(7)
	assert.Len(t, g.Nodes(), 3)
}

func TestNeighborGraph_ReturnsCopies(t *testing.T) {
	g := NewNeighborGraph[int]()
	g.Connect(1, 2)
	neighbors := g.NeighborsOf(1)
	neighbors[0] = 99
	assert.Equal(t, []int{2}, g.NeighborsOf(1))
}
