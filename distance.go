package hnsw

import (
	"github.com/chewxy/math32"
	"github.com/viterin/vek/vek32"
)

// Vector is an ordered sequence of coordinates in a fixed-dimension space.
type Vector = []float32

// DistanceFunc computes the distance between two equal-length vectors.
// The core only ever constructs graphs with EuclideanDistance; the type is
// exported so tests can plug in a stand-in.
type DistanceFunc func(a, b Vector) float32

// simdThreshold is the vector length from which the SIMD dot-product path
// in EuclideanDistance pays for its own call overhead. Below it the plain
// scalar loop is faster in practice.
const simdThreshold = 32

// EuclideanDistance returns the L2 distance between a and b. Its behavior
// is undefined when len(a) != len(b); callers that need to reject
// mismatched dimensions (the facade's Insert/Search) must check before
// calling this.
func EuclideanDistance(a, b Vector) float32 {
	if len(a) != len(b) {
		return scalarDistance(a, b)
	}
	if len(a) >= simdThreshold {
		return simdDistance(a, b)
	}
	return scalarDistance(a, b)
}

// simdDistance computes L2 distance using vek32's vectorized subtraction
// and dot product: ||a-b|| = sqrt(dot(a-b, a-b)).
func simdDistance(a, b Vector) float32 {
	diff := vek32.Sub(a, b)
	return math32.Sqrt(vek32.Dot(diff, diff))
}

// scalarDistance is the plain scalar L2 loop, used below simdThreshold and
// as the reference implementation exercised directly by tests.
func scalarDistance(a, b Vector) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return math32.Sqrt(sum)
}
