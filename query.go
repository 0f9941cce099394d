// File: query.go
// Role: C5, the query engine's traversal core and its three public
// operations (NN, KNN, Range). All three share one stack-based,
// branch-pruned traversal; they differ only in what "visit" does with a
// candidate and what the current acceptance radius (tau) is.

package vptree

import "github.com/vp-tree/vptree/arena"

// NN returns the item closest to query and its distance. The second
// return value is false if and only if the tree is empty, matching the
// spec's framing of an empty-tree query as zero results rather than an
// error.
func (t *Tree[T, D]) NN(query T) (Result[T, D], bool) {
	if t.root == nil {
		return Result[T, D]{}, false
	}

	var best Result[T, D]
	haveBest := false
	visit := func(item T, dist D) {
		if !haveBest || dist < best.Dist {
			best = Result[T, D]{Item: item, Dist: dist}
			haveBest = true
		}
	}
	tau := func() (D, bool) {
		if !haveBest {
			var zero D
			return zero, false
		}
		return best.Dist, true
	}

	t.traverse(query, visit, tau)

	return best, haveBest
}

// KNN returns the k items closest to query, ascending by distance. If the
// tree holds fewer than k items, it returns all of them. It returns
// ErrInvalidK if k <= 0.
func (t *Tree[T, D]) KNN(query T, k int) ([]Result[T, D], error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if t.root == nil {
		return []Result[T, D]{}, nil
	}

	buf := make([]Result[T, D], 0, k)
	tau := func() (D, bool) {
		if len(buf) < k {
			var zero D
			return zero, false
		}
		return buf[len(buf)-1].Dist, true
	}
	visit := func(item T, dist D) {
		limit, has := tau()
		if has && dist >= limit {
			return
		}
		if len(buf) == k {
			buf = buf[:k-1]
		}
		insertAscending(&buf, Result[T, D]{Item: item, Dist: dist})
	}

	t.traverse(query, visit, tau)

	return buf, nil
}

// Range returns every item whose distance from query is <= maxDist, in no
// particular order. It returns ErrInvalidRadius if maxDist is negative.
func (t *Tree[T, D]) Range(query T, maxDist D) ([]Result[T, D], error) {
	var zero D
	if maxDist < zero {
		return nil, ErrInvalidRadius
	}
	if t.root == nil {
		return []Result[T, D]{}, nil
	}

	out := make([]Result[T, D], 0)
	tau := func() (D, bool) { return maxDist, true }
	visit := func(item T, dist D) {
		if dist <= maxDist {
			out = append(out, Result[T, D]{Item: item, Dist: dist})
		}
	}

	t.traverse(query, visit, tau)

	return out, nil
}

// insertAscending appends r and bubbles it leftward until buf is ordered
// ascending by Dist again — a push-then-reorder, never an
// advance-then-write, so a reader never sees an uninitialized tail slot.
func insertAscending[T any, D Number](buf *[]Result[T, D], r Result[T, D]) {
	*buf = append(*buf, r)
	s := *buf
	i := len(s) - 1
	for i > 0 && s[i-1].Dist > s[i].Dist {
		s[i-1], s[i] = s[i], s[i-1]
		i--
	}
}

// traverse walks the tree with one explicit node stack, pruning subtrees
// using the branch's (pivot, radius) and the caller's current acceptance
// radius tau. tau returns (limit, false) to mean "no limit yet" (the
// engine's +inf), in which case both children are always pushed.
//
// visit is called once per candidate: once per branch pivot, once per
// leaf item. The less-promising child is always pushed before the more
// promising one, so the more promising child is popped — and visited —
// next.
func (t *Tree[T, D]) traverse(query T, visit func(item T, dist D), tau func() (D, bool)) {
	stack := make([]*arena.Node[T, D], 0, MaxHeight)
	stack = append(stack, t.root)

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}

		if n.Kind == arena.KindLeaf {
			for _, item := range n.Items {
				visit(item, t.metric(query, item))
			}
			continue
		}

		delta := t.metric(n.Pivot, query)
		visit(n.Pivot, delta)

		limit, has := tau()
		inside := delta < n.Radius

		var pushLeft, pushRight bool
		if inside {
			pushLeft = true
			pushRight = !has || delta+limit >= n.Radius
		} else {
			pushRight = true
			pushLeft = !has || delta-limit <= n.Radius
		}

		if inside {
			// Left is the more promising side; push it last.
			if pushRight {
				stack = append(stack, n.Right)
			}
			if pushLeft {
				stack = append(stack, n.Left)
			}
		} else {
			// Right is the more promising side; push it last.
			if pushLeft {
				stack = append(stack, n.Left)
			}
			if pushRight {
				stack = append(stack, n.Right)
			}
		}
	}
}
