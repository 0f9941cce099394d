// File: node.go
// Role: the tagged node union (C3's data type, physically owned here
// because the arena is what allocates and stores nodes).

package arena

import "github.com/vp-tree/vptree/sortutil"

// Kind discriminates the two Node variants.
type Kind uint8

const (
	// KindBranch nodes hold a pivot, a split radius, and two children.
	KindBranch Kind = iota
	// KindLeaf nodes hold a small bounded run of items directly.
	KindLeaf
)

// Node is the tagged union described in the tree's data model: a Branch
// (Pivot, Radius, Left, Right) or a Leaf (Items). Which fields are
// meaningful is determined by Kind; the zero value has Kind == KindBranch,
// so callers must always set Kind explicitly when building a node.
//
// Leaf size is len(Items); leaf capacity is cap(Items). Items for a
// build-produced leaf is a sub-slice of a list-arena slab (see
// ListArena.AllocItems); Items for a leaf grown past its arena allocation
// by point-wise insertion is its own independently-owned slice (see
// (*Node).Append) — Go's slice header makes that transition invisible to
// every reader of Items.
type Node[T any, D sortutil.Number] struct {
	Kind Kind

	// Branch fields.
	Pivot  T
	Radius D
	Left   *Node[T, D]
	Right  *Node[T, D]

	// Leaf fields.
	Items []T
}

// growthFactor is the geometric growth factor applied when a leaf's item
// buffer is full and must accept one more point-wise insertion.
const growthFactor = 1.2

// Append adds item to a leaf node, growing its backing buffer by
// growthFactor when full. It is a no-op on anything but a KindLeaf node;
// callers are expected to only call it on leaves (see the root package's
// insert.go).
func (n *Node[T, D]) Append(item T) {
	if n.Kind != KindLeaf {
		return
	}
	if len(n.Items) < cap(n.Items) {
		n.Items = append(n.Items, item)
		return
	}
	newCap := int(float64(cap(n.Items))*growthFactor) + 1
	grown := make([]T, len(n.Items), newCap)
	copy(grown, n.Items)
	n.Items = append(grown, item)
}
