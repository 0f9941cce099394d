// File: types.go
// Role: the Number constraint, the Entry type, and the tunable knobs that
// govern the shellsort/parallel-merge crossover.

package sortutil

import "golang.org/x/exp/constraints"

// Number is the set of types a distance value may take: any ordered
// integer or floating-point type. It is deliberately broader than
// "non-negative real" — the engine never validates sign, it only compares
// and adds/subtracts distances supplied by the caller's metric.
type Number interface {
	constraints.Integer | constraints.Float
}

// Entry pairs an item with its precomputed distance from the pivot
// currently being split on. Entries are sorted ascending by Dist.
type Entry[T any, D Number] struct {
	Item T
	Dist D
}

// Default tunables, named to match the spec's engine constants.
const (
	// DefaultThreshold is the crossover point (n) below which Sort uses
	// shellsort and at or above which it fans out to DefaultThreads
	// goroutines for a parallel k-way merge.
	DefaultThreshold = 2000

	// DefaultThreads is the number of goroutines (including the caller's)
	// that share the parallel-merge path.
	DefaultThreads = 8
)

// Config carries the threshold and thread count for Sort. SortWithConfig
// replaces a zero or negative field with its default, so the zero value
// behaves like NewConfig; construct one explicitly when a caller wants to
// force the parallel path at small n (useful for testing the merge path
// deterministically).
type Config struct {
	Threshold int
	Threads   int
}

// NewConfig returns the default Config (DefaultThreshold, DefaultThreads).
func NewConfig() Config {
	return Config{Threshold: DefaultThreshold, Threads: DefaultThreads}
}
