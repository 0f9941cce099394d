package sortutil_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vp-tree/vptree/sortutil"
)

func entriesFromInts(vals []int) []sortutil.Entry[int, int] {
	out := make([]sortutil.Entry[int, int], len(vals))
	for i, v := range vals {
		out[i] = sortutil.Entry[int, int]{Item: v, Dist: v}
	}

	return out
}

func distances[T any, D sortutil.Number](entries []sortutil.Entry[T, D]) []D {
	out := make([]D, len(entries))
	for i, e := range entries {
		out[i] = e.Dist
	}

	return out
}

func TestSort_EmptyAndSingle(t *testing.T) {
	var empty []sortutil.Entry[int, int]
	sortutil.Sort(empty)
	assert.Empty(t, empty)

	one := entriesFromInts([]int{42})
	sortutil.Sort(one)
	assert.Equal(t, []int{42}, distances(one))
}

func TestSort_ShellsortPath(t *testing.T) {
	vals := []int{5, 3, 8, 1, 9, 2, 7, 0, 6, 4}
	entries := entriesFromInts(vals)
	sortutil.Sort(entries)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, distances(entries))
}

func TestSort_ParallelMergePath(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 9000
	vals := make([]int, n)
	for i := range vals {
		vals[i] = rng.Intn(1_000_000)
	}
	entries := entriesFromInts(vals)

	sortutil.Sort(entries)

	want := append([]int(nil), vals...)
	sort.Ints(want)
	assert.Equal(t, want, distances(entries))
}

func TestSortWithConfig_ForcesParallelAtSmallN(t *testing.T) {
	vals := []int{9, 4, 7, 1, 3, 8, 2, 6, 5, 0}
	entries := entriesFromInts(vals)

	sortutil.SortWithConfig(entries, sortutil.Config{Threshold: 1, Threads: 4})

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, distances(entries))
}

func TestSortWithConfig_SingleThreadFallsBackToShellsort(t *testing.T) {
	vals := []int{3, 1, 2}
	entries := entriesFromInts(vals)

	sortutil.SortWithConfig(entries, sortutil.Config{Threshold: 1, Threads: 1})

	assert.Equal(t, []int{1, 2, 3}, distances(entries))
}
