package hnsw

import (
	"math"
	"math/rand"
)

// randSource is the minimal interface the level sampler needs. *rand.Rand
// satisfies it, and tests can supply a deterministic stand-in for
// reproducible results.
type randSource interface {
	Float64() float64
}

func defaultRandSource() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

// randomLevel draws an integer top layer for a new node from the
// geometric-like distribution floor(-ln(u) * ml), u in (0, 1]. u == 0 is
// resampled: ln(0) is -Inf, which isn't a meaningful level, and
// rand.Float64 can return exactly 0.
func randomLevel(rng randSource, ml float64) int {
	u := rng.Float64()
	for u == 0 {
		u = rng.Float64()
	}
	return int(math.Floor(-math.Log(u) * ml))
}
