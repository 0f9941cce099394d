// Package arena packs vantage-point-tree nodes and leaf item lists into
// linked slabs, the way a build of n items otherwise produces O(n) small,
// short-lived heap allocations: one per branch and one per leaf's item
// buffer. Packing them into large, append-only slabs turns build-time
// allocation into O(n / slab-size) calls and turns destruction from O(n)
// frees into O(n / slab-size) frees.
//
// A slab is never freed individually; the whole chain goes at once, via
// Arena.ReleaseAll. Pointers returned by AllocNode/AllocItems stay valid
// until then — slabs are fixed-capacity ([]T allocated with cap == slab
// size and never grown), so appending to the current head slab never
// reallocates its backing array and never invalidates an earlier pointer
// into it.
package arena
