// File: arena.go
// Role: the two slab-linked allocators (node arena, list arena) and the
// Arena type that owns both for one tree.
// Invariant: a slab is never freed on its own; AllocNode/AllocItems
// pointers stay valid until ReleaseAll, because slabs are fixed-capacity
// and never reallocated out from under a live pointer.

package arena

import "github.com/vp-tree/vptree/sortutil"

const (
	// NodeSlab is the number of nodes held per node-arena slab.
	NodeSlab = 1000

	// ListSlab is the number of items held per list-arena slab.
	ListSlab = 1_000_000
)

type nodeSlab[T any, D sortutil.Number] struct {
	nodes []Node[T, D]
	next  *nodeSlab[T, D]
}

// NodeArena is a linked chain of fixed-capacity node slabs.
type NodeArena[T any, D sortutil.Number] struct {
	head *nodeSlab[T, D]
}

// AllocNode returns a pointer to a freshly zeroed Node, bumping the head
// slab's length or pushing a new slab in front when the head is full.
func (a *NodeArena[T, D]) AllocNode() *Node[T, D] {
	if a.head == nil || len(a.head.nodes) == cap(a.head.nodes) {
		a.head = &nodeSlab[T, D]{nodes: make([]Node[T, D], 0, NodeSlab), next: a.head}
	}
	s := a.head
	s.nodes = append(s.nodes, Node[T, D]{})

	return &s.nodes[len(s.nodes)-1]
}

// release drops the whole slab chain; individual slabs are never freed on
// their own.
func (a *NodeArena[T, D]) release() {
	a.head = nil
}

type listSlab[T any] struct {
	items []T
	next  *listSlab[T]
}

// ListArena is a linked chain of fixed-capacity item slabs backing leaf
// node buffers.
type ListArena[T any] struct {
	head *listSlab[T]
}

// AllocItems returns n contiguous, zeroed item slots from the list arena.
// It reports ok == false when n exceeds ListSlab — a single leaf can never
// span two slabs, so a request that large can never be satisfied.
func (a *ListArena[T]) AllocItems(n int) (items []T, ok bool) {
	if n < 0 || n > ListSlab {
		return nil, false
	}
	if n == 0 {
		return nil, true
	}
	if a.head == nil || len(a.head.items)+n >= ListSlab {
		a.head = &listSlab[T]{items: make([]T, 0, ListSlab), next: a.head}
	}
	s := a.head
	start := len(s.items)
	s.items = s.items[:start+n]

	// Full slice expression caps the returned slice at exactly n so a
	// later append() on it can never silently clobber the next
	// allocation's region of the same slab.
	return s.items[start : start+n : start+n], true
}

func (a *ListArena[T]) release() {
	a.head = nil
}

// Arena owns one tree's node arena and list arena together.
type Arena[T any, D sortutil.Number] struct {
	Nodes NodeArena[T, D]
	Lists ListArena[T]
}

// New returns an empty Arena ready for allocation.
func New[T any, D sortutil.Number]() *Arena[T, D] {
	return &Arena[T, D]{}
}

// AllocNode delegates to the node arena.
func (a *Arena[T, D]) AllocNode() *Node[T, D] {
	return a.Nodes.AllocNode()
}

// AllocItems delegates to the list arena.
func (a *Arena[T, D]) AllocItems(n int) ([]T, bool) {
	return a.Lists.AllocItems(n)
}

// ReleaseAll frees every slab in both chains. Node/item pointers handed
// out before this call must not be used afterward.
func (a *Arena[T, D]) ReleaseAll() {
	a.Nodes.release()
	a.Lists.release()
}
