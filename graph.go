// Package hnsw implements an in-memory, single-writer/single-reader
// approximate nearest-neighbor index over fixed-dimension real vectors
// under Euclidean distance, using a Hierarchical Navigable Small World
// graph: a stack of proximity graphs where upper layers are sparse
// long-range skeletons and layer 0 holds every inserted point with denser
// local edges.
//
// The index trades exact correctness for sub-linear query time. It does
// not support deletion, concurrent mutation, or persistence across process
// lifetime.
package hnsw

import "fmt"

// Graph is a Hierarchical Navigable Small World index. The hyperparameters
// (M, EfConstruction, Ml, Distance, Rng) must be set, directly or via a
// constructor, before any call to Insert.
//
// Parameter guide:
//
//	M: maximum neighbors retained per node per layer after pruning.
//	   Higher improves recall at the cost of memory and insertion time.
//	   Default 16.
//	EfConstruction: candidate breadth used while inserting. Higher
//	   improves graph quality at the cost of insertion time. Default 200.
//	Ml: level generation multiplier. Larger values produce a taller
//	   hierarchy with more nodes promoted to upper layers. Default 0.62.
type Graph struct {
	// M is the maximum number of neighbors retained per node per layer
	// after pruning.
	M int

	// EfConstruction is the candidate breadth used during insertion.
	EfConstruction int

	// Ml is the level sampler multiplier.
	Ml float64

	// Distance is the distance function used to compare vectors. The
	// core only ever constructs graphs with EuclideanDistance; the field
	// is exported so tests can substitute a deterministic stand-in.
	Distance DistanceFunc

	// Rng supplies uniform samples to the level sampler. Set it to a
	// seeded *rand.Rand for reproducible tests.
	Rng randSource

	// nodes is the sole owner of all node storage; indices are stable
	// for the life of the index, so a node's position in this slice is
	// also its public ID.
	nodes []*node

	// entryPoint is the index into nodes of the current entry point, or
	// -1 if the index is empty.
	entryPoint int

	// currentMaxLevel is the largest topLevel of any inserted node.
	currentMaxLevel int

	// dim is the dimension established by the first insertion, or -1
	// before any insertion.
	dim int
}

// NewGraph returns a new graph with reasonable defaults: M=16,
// EfConstruction=200, Ml=0.62, EuclideanDistance.
func NewGraph() *Graph {
	g, err := NewGraphWithConfig(16, 200, 0.62, EuclideanDistance)
	if err != nil {
		// Unreachable: the defaults above always validate.
		panic(err)
	}
	return g
}

// NewGraphWithConfig returns a new graph with the given hyperparameters,
// validating them first.
func NewGraphWithConfig(m, efConstruction int, ml float64, distance DistanceFunc) (*Graph, error) {
	g := &Graph{
		M:               m,
		EfConstruction:  efConstruction,
		Ml:              ml,
		Distance:        distance,
		Rng:             defaultRandSource(),
		entryPoint:      -1,
		currentMaxLevel: -1,
		dim:             -1,
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate reports whether the graph's configuration is usable.
func (g *Graph) Validate() error {
	if g.M <= 0 {
		return fmt.Errorf("M must be positive, got %d: %w", g.M, ErrInvalidConfig)
	}
	if g.EfConstruction <= 0 {
		return fmt.Errorf("EfConstruction must be positive, got %d: %w", g.EfConstruction, ErrInvalidConfig)
	}
	if g.Ml <= 0 || g.Ml >= 1 {
		return fmt.Errorf("Ml must be in (0, 1), got %f: %w", g.Ml, ErrInvalidConfig)
	}
	if g.Distance == nil {
		return fmt.Errorf("Distance function must be set: %w", ErrInvalidConfig)
	}
	return nil
}

// Len returns the number of points in the index.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Dims returns the dimension established by the first insertion, or 0 if
// the index is empty.
func (g *Graph) Dims() int {
	if g.dim < 0 {
		return 0
	}
	return g.dim
}

// addEdge creates a bidirectional edge between nodes a and b at layer L:
// b is appended to a's layer-L list and a to b's. The map-based adjacency
// means a duplicate call is a no-op rather than a duplicate entry.
func (g *Graph) addEdge(a, b, layer int) {
	g.nodes[a].neighbors[layer][b] = struct{}{}
	g.nodes[b].neighbors[layer][a] = struct{}{}
}
