// File: types.go
// Role: C3, the tree representation — the tree handle, the metric
// closure type, and the result type shared by NN/KNN/Range. The tagged
// node union itself lives in the arena package (see its node.go for why).

package vptree

import (
	"github.com/vp-tree/vptree/arena"
	"github.com/vp-tree/vptree/sortutil"
)

// Number is the set of types a distance value may take: any ordered
// integer or floating-point type.
type Number = sortutil.Number

// Metric computes the distance between two items. It must be pure and
// total — it must never panic back into the tree — and must satisfy the
// metric axioms (non-negativity, identity, symmetry, triangle
// inequality); the engine never validates this, it only calls the
// function and compares the D values it returns.
type Metric[T any, D Number] func(a, b T) D

// Result is one item returned by NN, KNN, or Range, paired with its
// distance from the query point.
type Result[T any, D Number] struct {
	Item T
	Dist D
}

// Tree is a vantage point tree over items of type T, queried by distance
// type D. The zero value is not usable; construct one with New or
// NewWithContext.
//
// A Tree owns its items by value inside its arena: once Build, Add, or
// AddRebuild returns, the caller's input slice may be freely reused or
// discarded. A Tree is not safe for concurrent use — see the
// vptreesync subpackage if you need that.
type Tree[T any, D Number] struct {
	root   *arena.Node[T, D]
	size   int
	ar     *arena.Arena[T, D]
	metric Metric[T, D]
	cfg    config
}

// New constructs an empty Tree with the given metric closure and
// options. Call Build to populate it.
func New[T any, D Number](metric Metric[T, D], opts ...Option[T, D]) (*Tree[T, D], error) {
	if metric == nil {
		return nil, ErrNilMetric
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Tree[T, D]{metric: metric, cfg: cfg}, nil
}

// NewWithContext constructs an empty Tree whose metric closes over a
// caller-supplied context value, the idiomatic Go stand-in for the
// spec's (dist_fn, context pointer) pair. The context is captured by the
// closure for the tree's entire lifetime; if it is itself a pointer, the
// caller must keep it valid for as long as the tree is used, exactly as
// the spec requires for a borrowed context pointer.
func NewWithContext[T any, C any, D Number](ctx C, distFn func(ctx C, a, b T) D, opts ...Option[T, D]) (*Tree[T, D], error) {
	if distFn == nil {
		return nil, ErrNilMetric
	}

	return New[T, D](func(a, b T) D { return distFn(ctx, a, b) }, opts...)
}

// Len reports the number of items currently owned by the tree. After
// Destroy or Teardown it reports the last known size, for informational
// use only — the tree itself holds nothing at that point.
func (t *Tree[T, D]) Len() int {
	return t.size
}

// IsEmpty reports whether the tree currently owns no items.
func (t *Tree[T, D]) IsEmpty() bool {
	return t.root == nil
}

// resetEmpty puts the tree back into its freshly constructed state: no
// root, no items, no arena, zero size. Used when a build or rebuild
// fails partway through — nothing it attempted to construct survives.
func (t *Tree[T, D]) resetEmpty() {
	if t.ar != nil {
		t.ar.ReleaseAll()
	}
	t.root = nil
	t.ar = nil
	t.size = 0
}
