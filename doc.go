// Package vptree is your exact nearest-neighbor search structure for an
// arbitrary metric space.
//
// What
//
//   - Build a Tree[T, D] over a slice of items of any type T, given a
//     distance function (a Metric[T, D]) satisfying the metric axioms:
//     non-negativity, identity, symmetry, and the triangle inequality.
//   - Query it three ways:
//   - NN       — the single closest item to a query point.
//   - KNN      — the k closest items, ascending by distance.
//   - Range    — every item within a given radius.
//   - Mutate it: Add a single item (unbalanced), Rebuild in place from
//     current contents, or AddRebuild a batch and rebalance.
//   - Tear it down: Teardown returns every item and releases memory;
//     Destroy just releases memory.
//
// Why
//
//   - A vantage point tree answers all three query classes in time
//     sub-linear in dataset size on typical inputs, with no assumption
//     beyond the metric axioms — unlike a k-d tree, it needs no notion of
//     per-dimension coordinates.
//
// Determinism
//
//	Build always picks the first element of the current subrange as that
//	subrange's pivot (never randomized), so a build over the same items in
//	the same order always produces the same tree shape. Callers who worry
//	about pathological input order should shuffle before calling Build.
//
// Concurrency
//
//	A Tree is not safe for concurrent use: one goroutine may query it
//	while another mutates it only if the caller serializes that access
//	itself (see the vptreesync subpackage for a ready-made
//	reader/writer-lock wrapper). Build's sort phase is the only place the
//	engine itself spawns goroutines, and it always joins them before
//	returning.
//
// Usage
//
//	t, err := vptree.New[Point, float64](euclidean)
//	if err != nil {
//	    // handle ErrNilMetric
//	}
//	if err := t.Build(points); err != nil {
//	    // handle ErrOutOfMemory / ErrHeightExceeded
//	}
//	best, ok := t.NN(query)
//	knn, err := t.KNN(query, 5)
//	within, err := t.Range(query, 2.5)
//
// Errors
//
//   - ErrNilMetric      if New is called with a nil Metric.
//   - ErrInvalidK       if KNN is called with k <= 0.
//   - ErrInvalidRadius  if Range is called with a negative radius.
//   - ErrOutOfMemory    if an internal allocation could not be satisfied.
//   - ErrHeightExceeded if a build would require a deeper work stack than
//     MaxHeight allows — see the package constants.
package vptree
