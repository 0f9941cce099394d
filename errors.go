// File: errors.go
// Role: sentinel errors for the vptree package.
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site.

package vptree

import "errors"

// ErrNilMetric indicates New or NewWithContext was called with a nil
// distance function.
var ErrNilMetric = errors.New("vptree: metric is nil")

// ErrInvalidK indicates KNN was called with k <= 0.
var ErrInvalidK = errors.New("vptree: k must be positive")

// ErrInvalidRadius indicates Range was called with a negative radius.
var ErrInvalidRadius = errors.New("vptree: radius must be non-negative")

// ErrOutOfMemory indicates an arena allocation (a node, or a leaf's item
// buffer) could not be satisfied during Build or Add. On this error
// the tree is left in the same state as a freshly constructed or emptied
// handle (root == nil) and is safe to Build into again.
var ErrOutOfMemory = errors.New("vptree: allocation failed")

// ErrHeightExceeded indicates a bulk build would require a work-stack
// depth greater than MaxHeight, which would indicate a pathological,
// near-linear chain of single-item splits rather than a balanced tree.
var ErrHeightExceeded = errors.New("vptree: build exceeded maximum tree height")
