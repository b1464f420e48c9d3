// Command annbench benchmarks the hnsw package against synthetic Gaussian
// data: it times insertion and search, then reports recall against a
// brute-force ground truth.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
