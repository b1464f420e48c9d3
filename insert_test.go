package hnsw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsert_FirstPointBecomesEntryPoint(t *testing.T) {
	g := newTestGraph()
	require.NoError(t, g.Insert(Vector{1, 2}))

	require.Equal(t, 0, g.entryPoint)
	require.Equal(t, g.nodes[0].topLevel(), g.currentMaxLevel)
	require.Equal(t, 2, g.Dims())
}

func TestInsert_IDsAreDenseAndStable(t *testing.T) {
	g := newTestGraph()
	for i := 0; i < 10; i++ {
		require.NoError(t, g.Insert(Vector{float32(i)}))
	}
	for i, n := range g.nodes {
		require.Equal(t, i, n.id)
	}
}

func TestInsert_NoSelfEdges(t *testing.T) {
	g := newTestGraph()
	for i := 0; i < 40; i++ {
		require.NoError(t, g.Insert(Vector{float32(i)}))
	}

	for _, n := range g.nodes {
		for l, layer := range n.neighbors {
			_, ok := layer[n.id]
			require.False(t, ok, "node %d must not be its own neighbor at layer %d", n.id, l)
		}
	}
}

func TestInsert_EdgesAreBidirectional(t *testing.T) {
	g := newTestGraph()
	for i := 0; i < 40; i++ {
		require.NoError(t, g.Insert(Vector{float32(i)}))
	}

	// Edges are created in both directions when n is inserted; pruning then
	// trims only n's own list, and an older peer's list is never pruned
	// again. So every older peer still in n's list must point back at n.
	for _, n := range g.nodes {
		for l, layer := range n.neighbors {
			for peer := range layer {
				if peer > n.id {
					continue
				}
				_, back := g.nodes[peer].neighbors[l][n.id]
				require.True(t, back, "expected back-edge %d -> %d at layer %d", peer, n.id, l)
			}
		}
	}
}

// TestInsert_LastNodeDegreeBoundedByM checks the degree bound pruneNeighbors
// enforces on the most recently inserted node: since nothing inserted
// afterward can touch it, its own adjacency list is exactly where
// pruneNeighbors left it.
func TestInsert_LastNodeDegreeBoundedByM(t *testing.T) {
	g := newTestGraph()
	g.M = 4
	for i := 0; i < 80; i++ {
		require.NoError(t, g.Insert(Vector{float32(i)}))
	}

	last := g.nodes[len(g.nodes)-1]
	for _, layer := range last.neighbors {
		require.LessOrEqual(t, len(layer), g.M)
	}
}

func TestInsert_PromotionSetsEntryPoint(t *testing.T) {
	g := newTestGraph()
	// Force deterministic levels via a stand-in RNG: u values close to 1
	// yield level 0, values close to 0 yield high levels.
	g.Rng = &sequenceRandSource{vals: []float64{0.9, 0.9, 0.01}}

	require.NoError(t, g.Insert(Vector{0}))
	require.NoError(t, g.Insert(Vector{1}))
	firstMax := g.currentMaxLevel

	require.NoError(t, g.Insert(Vector{2}))
	require.Equal(t, 2, g.entryPoint)
	require.Greater(t, g.currentMaxLevel, firstMax)
}

// sequenceRandSource replays a fixed list of floats in order, holding on
// the last one once exhausted.
type sequenceRandSource struct {
	vals []float64
	i    int
}

func (s *sequenceRandSource) Float64() float64 {
	v := s.vals[s.i]
	if s.i < len(s.vals)-1 {
		s.i++
	}
	return v
}

func TestInsert_EmptyVectorDimensionEstablished(t *testing.T) {
	g := newTestGraph()
	require.NoError(t, g.Insert(Vector{}))
	require.Equal(t, 0, g.Dims())

	err := g.Insert(Vector{1})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestInsert_InvalidConfigRejected(t *testing.T) {
	g := newTestGraph()
	g.M = 0
	err := g.Insert(Vector{1})
	require.ErrorIs(t, err, ErrInvalidConfig)
}
