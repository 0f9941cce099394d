// File: teardown.go
// Role: C5's teardown, destroy, and rebuild. Teardown and Destroy both
// release the arena chain; Teardown additionally walks the tree first and
// hands every item back to the caller.

package vptree

import "github.com/vp-tree/vptree/arena"

// Teardown releases the tree's arena and returns every item it held, in
// no particular order. After Teardown the tree is empty (Len still
// reports the last known size, for informational use) and safe to Build
// or Add into again.
func (t *Tree[T, D]) Teardown() []T {
	if t.root == nil {
		t.ar = nil

		return []T{}
	}

	out := make([]T, 0, t.size)
	stack := make([]*arena.Node[T, D], 0, MaxHeight)
	stack = append(stack, t.root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}
		if n.Kind == arena.KindLeaf {
			out = append(out, n.Items...)
			continue
		}
		out = append(out, n.Pivot)
		stack = append(stack, n.Left, n.Right)
	}

	t.Destroy()

	return out
}

// Destroy releases the tree's arena without collecting its items. After
// Destroy, Len reports the tree's last known size for informational use
// only — the tree itself holds nothing.
func (t *Tree[T, D]) Destroy() {
	if t.ar != nil {
		t.ar.ReleaseAll()
	}
	t.root = nil
	t.ar = nil
}

// Rebuild tears the tree down and bulk-rebuilds it from its own
// recovered items, restoring balance after a run of unbalanced Add calls.
func (t *Tree[T, D]) Rebuild() error {
	logger := t.cfg.logger
	items := t.Teardown()
	logger.Printf("vptree: rebuilding from %d recovered items", len(items))

	return t.Build(items)
}
