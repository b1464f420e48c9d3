package hnsw

// Analyzer wraps a Graph and reports diagnostics about its layer
// structure.
type Analyzer struct {
	Graph *Graph
}

// Height returns the number of layers currently in use, i.e.
// currentMaxLevel+1, or 0 for an empty graph.
func (a *Analyzer) Height() int {
	if a.Graph.entryPoint == -1 {
		return 0
	}
	return a.Graph.currentMaxLevel + 1
}

// Topography returns the number of nodes present at each layer, indexed by
// layer number.
func (a *Analyzer) Topography() []int {
	height := a.Height()
	if height == 0 {
		return nil
	}

	counts := make([]int, height)
	for _, n := range a.Graph.nodes {
		for l := 0; l <= n.topLevel(); l++ {
			counts[l]++
		}
	}
	return counts
}

// Connectivity returns the mean out-degree of nodes present at each layer,
// indexed by layer number.
func (a *Analyzer) Connectivity() []float64 {
	height := a.Height()
	if height == 0 {
		return nil
	}

	sums := make([]float64, height)
	counts := make([]int, height)
	for _, n := range a.Graph.nodes {
		for l := 0; l <= n.topLevel(); l++ {
			sums[l] += float64(len(n.neighbors[l]))
			counts[l]++
		}
	}

	out := make([]float64, height)
	for l := range out {
		if counts[l] == 0 {
			continue
		}
		out[l] = sums[l] / float64(counts[l])
	}
	return out
}
