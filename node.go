package hnsw

import (
	"slices"

	"golang.org/x/exp/maps"
)

// node is a stored point plus a per-layer adjacency list. Adjacency is kept
// as neighbor IDs rather than pointers: nodes live in Graph.nodes, a single
// growable slice, and every edge is resolved through that slice at
// traversal time. This means appending to Graph.nodes can never invalidate
// a reference held by an older node's adjacency list.
type node struct {
	id        int
	vec       Vector
	neighbors []map[int]struct{} // neighbors[layer] is the set of neighbor IDs at that layer
}

func newNode(id int, vec Vector, topLevel int) *node {
	neighbors := make([]map[int]struct{}, topLevel+1)
	for i := range neighbors {
		neighbors[i] = make(map[int]struct{})
	}
	return &node{id: id, vec: vec, neighbors: neighbors}
}

// topLevel returns the highest layer this node participates in.
func (n *node) topLevel() int {
	return len(n.neighbors) - 1
}

// sortedNeighborIDs returns a layer's neighbor IDs in ascending order, so
// that layer search expands neighbors in a deterministic, reproducible
// order given a fixed RNG seed.
func sortedNeighborIDs(layer map[int]struct{}) []int {
	ids := maps.Keys(layer)
	slices.Sort(ids)
	return ids
}

// Result is a single search result: the stored point and its stable,
// dense, zero-based id.
type Result struct {
	ID     int
	Vector Vector
}
