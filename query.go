package hnsw

import "fmt"

// Search returns up to k nearest neighbors of query, ascending by distance.
// efSearch controls the breadth of the layer-0 search and must be >= k.
// Searching an empty index returns (nil, nil), not an error.
func (g *Graph) Search(query []float32, k, efSearch int) ([]Result, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if k <= 0 || efSearch < k {
		return nil, fmt.Errorf("search: k=%d efSearch=%d: %w", k, efSearch, ErrInvalidQuery)
	}
	if g.dim >= 0 && len(query) != g.dim {
		return nil, fmt.Errorf("search: expected dimension %d, got %d: %w", g.dim, len(query), ErrDimensionMismatch)
	}
	if g.entryPoint == -1 {
		return nil, nil
	}

	cur := g.entryPoint
	for l := g.currentMaxLevel; l > 0; l-- {
		nearest := g.layerSearch(cur, query, 1, l)
		if len(nearest) > 0 {
			cur = nearest[0].id
		}
	}

	candidates := g.layerSearch(cur, query, efSearch, 0)
	if k > len(candidates) {
		k = len(candidates)
	}

	out := make([]Result, 0, k)
	for _, c := range candidates[:k] {
		nd := g.nodes[c.id]
		out = append(out, Result{ID: nd.id, Vector: nd.vec})
	}
	return out, nil
}
