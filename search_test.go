package hnsw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildLine constructs a graph with n nodes on the 1-D line i -> value i,
// all present at layer 0, connected to their immediate neighbors only, so
// layerSearch's traversal order is easy to reason about.
func buildLine(n int) *Graph {
	g := newTestGraph()
	nodes := make([]*node, n)
	for i := 0; i < n; i++ {
		nodes[i] = newNode(i, Vector{float32(i)}, 0)
	}
	g.nodes = nodes
	g.dim = 1
	g.entryPoint = 0
	g.currentMaxLevel = 0

	for i := 0; i < n-1; i++ {
		g.addEdge(i, i+1, 0)
	}
	return g
}

func TestLayerSearch_FindsNearest(t *testing.T) {
	g := buildLine(20)
	results := g.layerSearch(0, Vector{10}, 3, 0)
	require.Len(t, results, 3)
	require.Equal(t, 10, results[0].id)
}

func TestLayerSearch_StartIsOnlyCandidateWhenIsolated(t *testing.T) {
	g := newTestGraph()
	g.nodes = []*node{newNode(0, Vector{0}, 0)}
	g.dim = 1
	g.entryPoint = 0
	g.currentMaxLevel = 0

	results := g.layerSearch(0, Vector{5}, 10, 0)
	require.Len(t, results, 1)
	require.Equal(t, 0, results[0].id)
}

func TestLayerSearch_RespectsLayerMembership(t *testing.T) {
	// A line where only even-indexed nodes reach layer 1, disconnected at
	// that layer from anything but their own even neighbors.
	g := newTestGraph()
	nodes := make([]*node, 6)
	for i := 0; i < 6; i++ {
		top := 0
		if i%2 == 0 {
			top = 1
		}
		nodes[i] = newNode(i, Vector{float32(i)}, top)
	}
	g.nodes = nodes
	g.dim = 1
	g.entryPoint = 0
	g.currentMaxLevel = 1

	for i := 0; i < 4; i += 2 {
		g.addEdge(i, i+2, 1)
	}
	for i := 0; i < 5; i++ {
		g.addEdge(i, i+1, 0)
	}

	results := g.layerSearch(0, Vector{4}, 10, 1)
	for _, c := range results {
		require.Equal(t, 0, c.id%2, "layer-1 search must only return nodes present at layer 1")
	}
}

func TestLayerSearch_ReturnsAscendingByDistance(t *testing.T) {
	g := buildLine(30)
	results := g.layerSearch(0, Vector{15}, 8, 0)
	for i := 1; i < len(results); i++ {
		require.LessOrEqual(t, results[i-1].dist, results[i].dist)
	}
}
