package hnsw

import "github.com/nnidx/hnsw/internal/heap"

// candidate pairs a node ID with its distance to the current search
// target, so it can sit in a heap.Heap ordered by distance.
type candidate struct {
	id   int
	dist float32
}

func (c candidate) Less(o candidate) bool {
	return c.dist < o.dist
}

// layerSearch performs a bounded best-first traversal of a single layer,
// starting from startID, toward target, returning at most ef nodes sorted
// ascending by distance. It keeps a min-heap of candidates still to expand
// and a bounded max-capacity heap of the best results found so far.
func (g *Graph) layerSearch(startID int, target Vector, ef, layer int) []candidate {
	start := g.nodes[startID]

	candidates := heap.Heap[candidate]{}
	candidates.Init(make([]candidate, 0, ef))
	candidates.Push(candidate{id: startID, dist: g.Distance(start.vec, target)})

	result := heap.Heap[candidate]{}
	result.Init(make([]candidate, 0, ef))
	result.Push(candidates.Min())

	visited := make(map[int]bool, ef*2)
	visited[startID] = true

	for candidates.Len() > 0 {
		cur := candidates.Pop()

		// The nearest unexpanded candidate is already farther than the
		// worst result we're keeping and the result set is full: every
		// candidate still in the frontier is at least as far, so none of
		// them is a retained result and further expansion can stop.
		if result.Len() >= ef && cur.dist > result.Max().dist {
			break
		}

		curNode := g.nodes[cur.id]
		if layer > curNode.topLevel() {
			continue
		}

		for _, nid := range sortedNeighborIDs(curNode.neighbors[layer]) {
			if visited[nid] {
				continue
			}
			visited[nid] = true

			neighbor := g.nodes[nid]
			d := g.Distance(neighbor.vec, target)

			if result.Len() < ef {
				result.Push(candidate{id: nid, dist: d})
			} else if d < result.Max().dist {
				result.PopLast()
				result.Push(candidate{id: nid, dist: d})
			}

			candidates.Push(candidate{id: nid, dist: d})
			if candidates.Len() > ef {
				candidates.PopLast()
			}
		}
	}

	return result.Slice()
}
