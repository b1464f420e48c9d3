package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nnidx/hnsw"
)

var (
	dim            int
	numPoints      int
	numQueries     int
	m              int
	efConstruction int
	efSearchValues []int
	k              int
	seed           int64
)

var rootCmd = &cobra.Command{
	Use:   "annbench",
	Short: "Benchmark the hnsw index against synthetic data",
	Long: `annbench builds a random Gaussian dataset, inserts it into an
hnsw.Graph, times insertion and search, and reports recall against a
brute-force ground truth computed over the same dataset.

Example:

  annbench --dim 128 --n 10000 --queries 200 --ef-search 100`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBenchmark,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().IntVar(&dim, "dim", 10, "dimensionality of generated vectors")
	rootCmd.Flags().IntVar(&numPoints, "n", 2000, "number of points in the dataset")
	rootCmd.Flags().IntVar(&numQueries, "queries", 100, "number of query vectors")
	rootCmd.Flags().IntVar(&m, "m", 16, "max neighbors per node per layer")
	rootCmd.Flags().IntVar(&efConstruction, "ef-construction", 200, "candidate breadth during insertion")
	rootCmd.Flags().IntSliceVar(&efSearchValues, "ef-search", []int{200, 4000}, "comma-separated candidate breadths to benchmark search at")
	rootCmd.Flags().IntVar(&k, "k", 10, "number of neighbors to retrieve")
	rootCmd.Flags().Int64Var(&seed, "seed", 1, "PRNG seed for data generation and the graph's level sampler")
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewSource(seed))

	fmt.Println("Generating synthetic dataset...")
	dataset := generateGaussianData(rng, numPoints, dim)
	queries := generateGaussianData(rng, numQueries, dim)

	g, err := hnsw.NewGraphWithConfig(m, efConstruction, 0.5, hnsw.EuclideanDistance)
	if err != nil {
		return fmt.Errorf("configure graph: %w", err)
	}
	g.Rng = rand.New(rand.NewSource(seed))

	fmt.Printf("Parameters: M=%d, efConstruction=%d, mL=%.2f, dim=%d, n=%d\n",
		g.M, g.EfConstruction, g.Ml, dim, numPoints)

	insertElapsed := benchmarkInsertion(g, dataset)

	fmt.Println("Computing brute-force ground truth...")
	groundTruth := bruteForceNeighbors(dataset, queries, k)

	runs := make([]searchRun, 0, len(efSearchValues))
	for _, ef := range efSearchValues {
		searchElapsed, results := benchmarkSearch(g, queries, k, ef)
		runs = append(runs, searchRun{
			EfSearch:      ef,
			SearchPerItem: searchElapsed / time.Duration(numQueries),
			Recall:        averageRecall(results, groundTruth),
		})
	}

	return printReport(report{
		N:             numPoints,
		Dim:           dim,
		Queries:       numQueries,
		K:             k,
		InsertTotal:   insertElapsed,
		InsertPerItem: insertElapsed / time.Duration(numPoints),
		Runs:          runs,
	})
}

func generateGaussianData(rng *rand.Rand, n, dim int) []hnsw.Vector {
	data := make([]hnsw.Vector, n)
	for i := range data {
		v := make(hnsw.Vector, dim)
		for j := range v {
			v[j] = float32(rng.NormFloat64()*100 - 100)
		}
		data[i] = v
	}
	return data
}

func benchmarkInsertion(g *hnsw.Graph, dataset []hnsw.Vector) time.Duration {
	fmt.Println("Benchmarking insertion...")
	start := time.Now()
	for _, point := range dataset {
		if err := g.Insert(point); err != nil {
			// Dataset dimensions are uniform by construction; a mismatch
			// here means a bug in generateGaussianData, not bad input.
			panic(err)
		}
	}
	return time.Since(start)
}

func benchmarkSearch(g *hnsw.Graph, queries []hnsw.Vector, k, efSearch int) (time.Duration, [][]hnsw.Result) {
	fmt.Println("Benchmarking search...")
	results := make([][]hnsw.Result, len(queries))
	start := time.Now()
	for i, q := range queries {
		res, err := g.Search(q, k, efSearch)
		if err != nil {
			panic(err)
		}
		results[i] = res
	}
	return time.Since(start), results
}

// bruteForceNeighbors returns, for each query, the indices into dataset of
// its true k nearest neighbors under Euclidean distance.
func bruteForceNeighbors(dataset, queries []hnsw.Vector, k int) [][]int {
	out := make([][]int, len(queries))
	for qi, q := range queries {
		type scored struct {
			id   int
			dist float32
		}
		scores := make([]scored, len(dataset))
		for i, p := range dataset {
			scores[i] = scored{id: i, dist: hnsw.EuclideanDistance(p, q)}
		}
		sort.Slice(scores, func(a, b int) bool { return scores[a].dist < scores[b].dist })

		limit := k
		if limit > len(scores) {
			limit = len(scores)
		}
		ids := make([]int, limit)
		for i := 0; i < limit; i++ {
			ids[i] = scores[i].id
		}
		out[qi] = ids
	}
	return out
}

// averageRecall returns the mean fraction of each query's ground-truth
// neighbors present in the index's returned results.
func averageRecall(results [][]hnsw.Result, groundTruth [][]int) float64 {
	if len(groundTruth) == 0 {
		return 0
	}

	var total float64
	for i, truth := range groundTruth {
		if len(truth) == 0 {
			continue
		}
		found := make(map[int]struct{}, len(results[i]))
		for _, r := range results[i] {
			found[r.ID] = struct{}{}
		}

		var hits int
		for _, id := range truth {
			if _, ok := found[id]; ok {
				hits++
			}
		}
		total += float64(hits) / float64(len(truth))
	}
	return total / float64(len(groundTruth))
}

type searchRun struct {
	EfSearch      int
	SearchPerItem time.Duration
	Recall        float64
}

type report struct {
	N             int
	Dim           int
	Queries       int
	K             int
	InsertTotal   time.Duration
	InsertPerItem time.Duration
	Runs          []searchRun
}

func printReport(r report) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "dataset\t%d points x %d dims\n", r.N, r.Dim)
	fmt.Fprintf(w, "queries\t%d (k=%d)\n", r.Queries, r.K)
	fmt.Fprintf(w, "insertion\t%s total, %s/point\n", r.InsertTotal, r.InsertPerItem)
	fmt.Fprintln(w, "efSearch\tavg query latency\trecall@k")
	for _, run := range r.Runs {
		fmt.Fprintf(w, "%d\t%s\t%.4f\n", run.EfSearch, run.SearchPerItem, run.Recall)
	}
	return w.Flush()
}
