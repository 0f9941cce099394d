// File: insert.go
// Role: C5's point-wise insertion path — Add and AddRebuild. Unlike
// Build, Add never rebalances: it walks straight to one leaf and grows
// it, per the spec's explicit "no rebalancing" rule for single-item
// insertion.

package vptree

import "github.com/vp-tree/vptree/arena"

// Add inserts item into the tree without rebalancing. It walks from the
// root, comparing item's distance to each branch's pivot against that
// branch's radius (left on <=, right on >), then appends item to the
// leaf it lands on, growing that leaf's buffer geometrically if it is
// already at capacity. Add never returns an error for a successfully
// metric'd insert; a nil-arena (fresh or destroyed) tree is promoted to a
// one-item leaf tree on the first Add.
func (t *Tree[T, D]) Add(item T) error {
	if t.ar == nil {
		t.ar = arena.New[T, D]()
	}

	if t.root == nil {
		leaf, err := t.newLeaf([]T{item}, ListMax)
		if err != nil {
			return err
		}
		t.root = leaf
		t.size = 1

		return nil
	}

	n := t.root
	for n.Kind == arena.KindBranch {
		if t.metric(item, n.Pivot) <= n.Radius {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	n.Append(item)
	t.size++

	return nil
}

// AddRebuild tears the tree down, concatenates the recovered items with
// the new ones, and bulk-rebuilds — the batch counterpart to repeated
// Add calls, trading the cost of a full rebuild for a balanced result.
func (t *Tree[T, D]) AddRebuild(items []T) error {
	existing := t.Teardown()
	merged := make([]T, 0, len(existing)+len(items))
	merged = append(merged, existing...)
	merged = append(merged, items...)

	return t.Build(merged)
}
