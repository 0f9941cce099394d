// File: options.go
// Role: functional options for Tree construction. As a rule, option
// constructors never panic at runtime and ignore nil/invalid inputs
// rather than surfacing a separate configuration error.

package vptree

import "github.com/vp-tree/vptree/sortutil"

// Option configures a Tree before it is built. It mutates the tree's
// internal config.
type Option[T any, D Number] func(*config)

type config struct {
	logger  Logger
	sortCfg sortutil.Config
}

func defaultConfig() config {
	return config{
		logger:  nopLogger{},
		sortCfg: sortutil.NewConfig(),
	}
}

// WithLogger injects a Logger that receives diagnostics about structural
// operations (build, rebuild, insert). If logger is nil, this option is a
// no-op and the tree keeps its current (or default no-op) logger.
func WithLogger[T any, D Number](logger Logger) Option[T, D] {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSortThreads overrides the number of goroutines (including the
// caller's) the parallel-merge sort path fans out across during build.
// Values <= 0 are ignored.
func WithSortThreads[T any, D Number](n int) Option[T, D] {
	return func(c *config) {
		if n > 0 {
			c.sortCfg.Threads = n
		}
	}
}

// WithSortThreshold overrides the entry count at and above which Sort
// switches from shellsort to the parallel k-way merge. Values <= 0 are
// ignored. Mainly useful for tests that want to exercise the parallel
// path deterministically at small n.
func WithSortThreshold[T any, D Number](n int) Option[T, D] {
	return func(c *config) {
		if n > 0 {
			c.sortCfg.Threshold = n
		}
	}
}
