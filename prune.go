package hnsw

import "sort"

// pruneNeighbors trims the newly inserted node id's adjacency at layer to
// at most M entries, keeping the M neighbors closest to id's own vector.
// Only id's list is touched: neighbors that gained a back-edge to id and
// now exceed M are left alone, a deliberate asymmetry that keeps pruning
// an O(1)-site operation instead of cascading back through every peer.
func (g *Graph) pruneNeighbors(id, layer int) {
	n := g.nodes[id]
	adj := n.neighbors[layer]
	if len(adj) <= g.M {
		return
	}

	ids := sortedNeighborIDs(adj)
	sort.Slice(ids, func(i, j int) bool {
		di := g.Distance(n.vec, g.nodes[ids[i]].vec)
		dj := g.Distance(n.vec, g.nodes[ids[j]].vec)
		if di != dj {
			return di < dj
		}
		return ids[i] < ids[j]
	})

	kept := make(map[int]struct{}, g.M)
	for _, kid := range ids[:g.M] {
		kept[kid] = struct{}{}
	}
	n.neighbors[layer] = kept
}
