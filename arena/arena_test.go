package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vp-tree/vptree/arena"
)

func TestNodeArena_AllocAcrossSlabBoundary(t *testing.T) {
	var na arena.NodeArena[int, int]

	var last *arena.Node[int, int]
	for i := 0; i < arena.NodeSlab+5; i++ {
		n := na.AllocNode()
		require.NotNil(t, n)
		n.Kind = arena.KindLeaf
		n.Items = []int{i}
		last = n
	}
	assert.Equal(t, []int{arena.NodeSlab + 4}, last.Items)
}

func TestListArena_AllocItemsContiguous(t *testing.T) {
	var la arena.ListArena[int]

	first, ok := la.AllocItems(10)
	require.True(t, ok)
	for i := range first {
		first[i] = i
	}

	second, ok := la.AllocItems(5)
	require.True(t, ok)
	for i := range second {
		second[i] = 100 + i
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, first)
	assert.Equal(t, []int{100, 101, 102, 103, 104}, second)
}

func TestListArena_RejectsOversizedRequest(t *testing.T) {
	var la arena.ListArena[int]
	items, ok := la.AllocItems(arena.ListSlab + 1)
	assert.False(t, ok)
	assert.Nil(t, items)
}

func TestListArena_ZeroRequestIsNoop(t *testing.T) {
	var la arena.ListArena[int]
	items, ok := la.AllocItems(0)
	assert.True(t, ok)
	assert.Nil(t, items)
}

func TestNode_AppendGrowsPastArenaCapacity(t *testing.T) {
	ar := arena.New[int, int]()
	leaf := ar.AllocNode()
	items, ok := ar.AllocItems(2)
	require.True(t, ok)
	leaf.Kind = arena.KindLeaf
	leaf.Items = items
	leaf.Items[0] = 1
	leaf.Items[1] = 2

	leaf.Append(3)

	assert.Equal(t, []int{1, 2, 3}, leaf.Items)
	assert.GreaterOrEqual(t, cap(leaf.Items), 3)
}

func TestArena_ReleaseAllDropsSlabChains(t *testing.T) {
	ar := arena.New[string, int]()
	ar.AllocNode()
	ar.AllocItems(10)

	ar.ReleaseAll()

	n := ar.AllocNode()
	require.NotNil(t, n)
}
