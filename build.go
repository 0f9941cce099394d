// File: build.go
// Role: C4, the bulk builder. Sorts and partitions by metric distance
// without recursion: after the root pivot is chosen, the entire
// remaining tree is emitted by one loop over two explicit work stacks.

package vptree

import (
	"github.com/vp-tree/vptree/arena"
	"github.com/vp-tree/vptree/sortutil"
)

// side names which child a work frame's entries will become once
// emitted.
type side uint8

const (
	sideLeft side = iota
	sideRight
)

// frame is one unit of pending work on the build's explicit stacks: a
// parent branch, which of its children this frame fills in, and the
// (already pivot-distance-sorted) entries that subtree must contain.
type frame[T any, D Number] struct {
	parent  *arena.Node[T, D]
	which   side
	entries []sortutil.Entry[T, D]
	depth   int
}

// Build replaces the tree's current contents with a fresh tree over
// items, copying every item into a new arena. On success, tree.Len()
// equals len(items). On failure (ErrOutOfMemory, ErrHeightExceeded) the
// tree is left empty and is safe to Build into again.
//
// Build does not itself acquire any lock; a Tree is not safe for
// concurrent use (see vptreesync for a wrapper that is).
func (t *Tree[T, D]) Build(items []T) error {
	t.resetEmpty()
	t.ar = arena.New[T, D]()

	n := len(items)
	if n == 0 {
		return nil
	}

	if n < ListMax {
		leaf, err := t.newLeaf(items, ListMax)
		if err != nil {
			t.cfg.logger.Printf("vptree: build failed for %d items (single leaf): %v", n, err)
			t.resetEmpty()
			return err
		}
		t.root = leaf
		t.size = n

		return nil
	}

	pivot := items[0]
	rest := items[1:]
	entries := make([]sortutil.Entry[T, D], len(rest))
	for i, it := range rest {
		entries[i] = sortutil.Entry[T, D]{Item: it, Dist: t.metric(pivot, it)}
	}
	sortutil.SortWithConfig(entries, t.cfg.sortCfg)

	root, err := t.buildFromPivot(pivot, entries, 1)
	if err != nil {
		t.cfg.logger.Printf("vptree: build failed for %d items: %v", n, err)
		t.resetEmpty()
		return err
	}
	t.root = root
	t.size = n
	t.cfg.logger.Printf("vptree: built tree over %d items", n)

	return nil
}

// buildFromPivot emits the branch rooted at pivot/entries and then drains
// two explicit work stacks (leftStack, rightStack) until both are empty,
// always preferring to pop leftStack first. This produces a depth-first,
// left-spine emission order and bounds stack depth by the tree's height,
// never by its size.
func (t *Tree[T, D]) buildFromPivot(pivot T, entries []sortutil.Entry[T, D], depth int) (*arena.Node[T, D], error) {
	if depth > MaxHeight {
		return nil, ErrHeightExceeded
	}

	leftEntries, rightEntries, radius := medianSplitEntries(entries)
	root, err := t.emitBranch(pivot, radius)
	if err != nil {
		return nil, err
	}

	var leftStack, rightStack []frame[T, D]
	leftStack = append(leftStack, frame[T, D]{parent: root, which: sideLeft, entries: leftEntries, depth: depth + 1})
	rightStack = append(rightStack, frame[T, D]{parent: root, which: sideRight, entries: rightEntries, depth: depth + 1})

	for len(leftStack) > 0 || len(rightStack) > 0 {
		var f frame[T, D]
		if len(leftStack) > 0 {
			f = leftStack[len(leftStack)-1]
			leftStack = leftStack[:len(leftStack)-1]
		} else {
			f = rightStack[len(rightStack)-1]
			rightStack = rightStack[:len(rightStack)-1]
		}

		if f.depth > MaxHeight {
			return nil, ErrHeightExceeded
		}

		child, err := t.emitFrame(f, &leftStack, &rightStack)
		if err != nil {
			return nil, err
		}
		switch f.which {
		case sideLeft:
			f.parent.Left = child
		case sideRight:
			f.parent.Right = child
		}
	}

	return root, nil
}

// emitFrame turns one popped frame into a child node: a leaf if the
// frame's entries are below ListBuildThreshold, otherwise a new branch
// whose two children are pushed back onto the shared stacks.
func (t *Tree[T, D]) emitFrame(f frame[T, D], leftStack, rightStack *[]frame[T, D]) (*arena.Node[T, D], error) {
	if len(f.entries) < ListBuildThreshold {
		return t.newLeafFromEntries(f.entries)
	}

	childPivot := f.entries[0].Item
	rest := f.entries[1:]
	for i := range rest {
		rest[i].Dist = t.metric(childPivot, rest[i].Item)
	}
	sortutil.SortWithConfig(rest, t.cfg.sortCfg)

	leftEntries, rightEntries, radius := medianSplitEntries(rest)
	branch, err := t.emitBranch(childPivot, radius)
	if err != nil {
		return nil, err
	}

	*leftStack = append(*leftStack, frame[T, D]{parent: branch, which: sideLeft, entries: leftEntries, depth: f.depth + 1})
	*rightStack = append(*rightStack, frame[T, D]{parent: branch, which: sideRight, entries: rightEntries, depth: f.depth + 1})

	return branch, nil
}

// emitBranch allocates a branch node for pivot with the given split
// radius.
func (t *Tree[T, D]) emitBranch(pivot T, radius D) (*arena.Node[T, D], error) {
	branch := t.ar.AllocNode()
	if branch == nil {
		return nil, ErrOutOfMemory
	}
	branch.Kind = arena.KindBranch
	branch.Pivot = pivot
	branch.Radius = radius

	return branch, nil
}

// medianSplitEntries implements the build's split rule: the initial
// right-set is the upper floor(m/2) entries of entries (already sorted
// ascending by Dist); if that boundary falls inside a run of tied
// distances, the boundary walks left across the tie so the right set is
// strictly greater than every left-set distance.
//
// If that tied run reaches all the way back to index 0, walking left can
// never produce such a boundary — entries[1] still ties with entries[0]
// at rightStart == 1 — so the boundary instead walks right from the
// start of the array, absorbing the whole tied run into the left set
// even if that empties the right set entirely. radius is the maximum
// left-set distance. The left set always keeps at least one entry, so
// radius is always well-defined.
func medianSplitEntries[T any, D Number](entries []sortutil.Entry[T, D]) (left, right []sortutil.Entry[T, D], radius D) {
	m := len(entries)
	rightStart := m - m/2
	for rightStart > 1 && entries[rightStart].Dist == entries[rightStart-1].Dist {
		rightStart--
	}

	if rightStart <= 1 && m > 1 && entries[1].Dist == entries[0].Dist {
		rightStart = 1
		for rightStart < m && entries[rightStart].Dist == entries[0].Dist {
			rightStart++
		}
	}
	if rightStart < 1 {
		rightStart = 1
	}

	left = entries[:rightStart]
	right = entries[rightStart:]
	radius = left[len(left)-1].Dist

	return left, right, radius
}

// newLeafFromEntries copies the items out of entries into a freshly
// allocated, exactly-sized arena item buffer.
func (t *Tree[T, D]) newLeafFromEntries(entries []sortutil.Entry[T, D]) (*arena.Node[T, D], error) {
	items := make([]T, len(entries))
	for i, e := range entries {
		items[i] = e.Item
	}

	return t.newLeaf(items, len(items))
}

// newLeaf allocates a leaf with room for capacity items (capacity may
// exceed len(items), as it does for the degenerate single-leaf root) and
// copies items into it.
func (t *Tree[T, D]) newLeaf(items []T, capacity int) (*arena.Node[T, D], error) {
	buf, ok := t.ar.AllocItems(capacity)
	if !ok {
		return nil, ErrOutOfMemory
	}
	copy(buf, items)

	leaf := t.ar.AllocNode()
	if leaf == nil {
		return nil, ErrOutOfMemory
	}
	leaf.Kind = arena.KindLeaf
	leaf.Items = buf[:len(items)]

	return leaf, nil
}
