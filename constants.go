// File: constants.go
// Role: the engine's build-time tunables. These are engine constants, not
// per-instance options — a single Tree instantiation cannot choose
// different values for them; only the parallel sort's own thread count
// and crossover threshold are instance-tunable (see options.go), per the
// spec's framing of the table in its external-interfaces section.

package vptree

const (
	// ListBuildThreshold bounds the leaves a bulk build produces: any
	// non-root subrange with fewer than ListBuildThreshold items becomes a
	// leaf, so such a leaf holds at most ListBuildThreshold-1 items.
	ListBuildThreshold = 100

	// ListMax is the maximum leaf capacity, and the size of the
	// degenerate single-leaf root produced when a build has fewer than
	// ListMax items.
	ListMax = 1000

	// MaxHeight bounds both the build's work-stack depth and the
	// traversal stack's capacity.
	MaxHeight = 100
)
