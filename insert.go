package hnsw

import "fmt"

// Insert adds point to the index. The dimension is established by the
// first call and must be constant thereafter; subsequent calls with a
// different length return ErrDimensionMismatch.
//
// Entry-point promotion happens before descent rather than after: a taller
// new node takes over as entry point immediately, so the descent phase
// becomes a no-op for that insertion. The searches of that insertion still
// start from the entry point as it was before the promotion.
func (g *Graph) Insert(point []float32) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if g.dim >= 0 && len(point) != g.dim {
		return fmt.Errorf("insert: expected dimension %d, got %d: %w", g.dim, len(point), ErrDimensionMismatch)
	}

	level := randomLevel(g.Rng, g.Ml)

	id := len(g.nodes)
	vec := make(Vector, len(point))
	copy(vec, point)
	n := newNode(id, vec, level)
	g.nodes = append(g.nodes, n)

	if g.dim < 0 {
		g.dim = len(point)
	}

	if g.entryPoint == -1 {
		g.entryPoint = id
		g.currentMaxLevel = level
		return nil
	}

	// Promote before descent: if this node's level exceeds the current
	// max, it becomes the entry point immediately, so the descent phase
	// below (from the previous max down to level+1) is a no-op whenever
	// promotion occurs, since the previous max is below level.
	prevEntry, prevMax := g.entryPoint, g.currentMaxLevel
	if level > g.currentMaxLevel {
		g.currentMaxLevel = level
		g.entryPoint = id
	}

	cur := prevEntry
	for l := prevMax; l > level; l-- {
		nearest := g.layerSearch(cur, vec, 1, l)
		if len(nearest) > 0 {
			cur = nearest[0].id
		}
	}

	// Layers above prevMax hold no node but n, so there is nothing to
	// connect to there.
	top := level
	if prevMax < top {
		top = prevMax
	}
	for l := top; l >= 0; l-- {
		candidates := g.layerSearch(cur, vec, g.EfConstruction, l)

		for _, c := range candidates {
			if c.id == id {
				// n has no edges yet and the search starts from another
				// node, so n is not expected among the candidates; a
				// self-edge is never meaningful, so it is skipped anyway.
				continue
			}
			g.addEdge(id, c.id, l)
		}
		g.pruneNeighbors(id, l)

		if len(candidates) > 0 {
			cur = candidates[0].id
		}
	}

	return nil
}
