package vptree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vp-tree/vptree/arena"
	"github.com/vp-tree/vptree/sortutil"
)

func euclidean1D(a, b float64) float64 {
	d := a - b
	if d < 0 {
		d = -d
	}

	return d
}

// walkInvariants checks, for every branch reachable in the tree, that
// every item reachable via its left child is within its radius and every
// item reachable via its right child is strictly beyond it — spec
// invariants 2 and 3, cross-validated the way S3 describes: by walking
// each leaf's items against the (pivot, radius) of every branch above it.
func walkInvariants(t *testing.T, metric Metric[float64, float64], n *arena.Node[float64, float64]) {
	t.Helper()
	if n == nil {
		return
	}
	if n.Kind == arena.KindLeaf {
		return
	}

	var collectLeft, collectRight func(*arena.Node[float64, float64], *[]float64)
	collectLeft = func(m *arena.Node[float64, float64], out *[]float64) {
		if m == nil {
			return
		}
		if m.Kind == arena.KindLeaf {
			*out = append(*out, m.Items...)

			return
		}
		*out = append(*out, m.Pivot)
		collectLeft(m.Left, out)
		collectLeft(m.Right, out)
	}
	collectRight = collectLeft

	var leftItems, rightItems []float64
	collectLeft(n.Left, &leftItems)
	collectRight(n.Right, &rightItems)

	for _, x := range leftItems {
		assert.LessOrEqual(t, metric(n.Pivot, x), n.Radius)
	}
	for _, x := range rightItems {
		assert.Greater(t, metric(n.Pivot, x), n.Radius)
	}

	walkInvariants(t, metric, n.Left)
	walkInvariants(t, metric, n.Right)
}

func TestBuild_BranchInvariantsHoldAtStress(t *testing.T) {
	if testing.Short() {
		t.Skip("stress build skipped in -short mode")
	}

	rng := rand.New(rand.NewSource(1))
	n := 20000
	items := make([]float64, n)
	seen := make(map[float64]bool, n)
	for i := range items {
		v := rng.Float64() * 1_000_000
		for seen[v] {
			v = rng.Float64() * 1_000_000
		}
		seen[v] = true
		items[i] = v
	}

	tr, err := New[float64, float64](euclidean1D)
	require.NoError(t, err)
	require.NoError(t, tr.Build(items))
	require.Equal(t, n, tr.Len())

	walkInvariants(t, tr.metric, tr.root)
}

// TestBuild_MedianSplitAbsorbsTieReachingArrayStart is the regression case
// from the review: many items equidistant from the root pivot (duplicate
// points, or points on a sphere around items[0]) tie at the low end of
// the sorted-by-distance entries, past the m/2 median boundary. Walking
// the split boundary only leftward would stop at index 1 still tied with
// index 0, leaving the right side's first entry at the same distance as
// the radius — a silent invariant-3 violation that query pruning's
// dist >= radius assumption papers over without ever returning a wrong
// answer. The root split here must still end up with a right side
// strictly beyond its radius. A full Build over the same items cannot
// finish: below the root, the 700 duplicates can only be peeled off one
// pivot per level, so the left spine passes MaxHeight.
func TestBuild_MedianSplitAbsorbsTieReachingArrayStart(t *testing.T) {
	items := make([]float64, 0, 1000)
	items = append(items, 0) // root pivot

	const tiedCount = 700
	for i := 0; i < tiedCount; i++ {
		items = append(items, 1) // distance 1 from the pivot, all tied
	}
	for v := 2; len(items) < 1000; v++ {
		items = append(items, float64(v)) // distinct, strictly greater distances
	}
	require.Len(t, items, 1000)

	entries := make([]sortutil.Entry[float64, float64], 0, len(items)-1)
	for _, it := range items[1:] {
		entries = append(entries, sortutil.Entry[float64, float64]{Item: it, Dist: euclidean1D(items[0], it)})
	}
	sortutil.Sort(entries)

	left, right, radius := medianSplitEntries(entries)
	require.Len(t, left, tiedCount)
	require.NotEmpty(t, right)
	assert.Equal(t, float64(1), radius)
	for _, e := range right {
		assert.Greater(t, e.Dist, radius)
	}

	tr, err := New[float64, float64](euclidean1D)
	require.NoError(t, err)
	assert.ErrorIs(t, tr.Build(items), ErrHeightExceeded)
	assert.True(t, tr.IsEmpty())
}

func TestBuild_HeightBoundedOnAdversarialInput(t *testing.T) {
	// A metric that always reports every point as equidistant from the
	// pivot forces every split's right side to be empty and the left
	// side to retain everything but the pivot — the worst case for
	// height. The build must still either succeed within MaxHeight or
	// fail with ErrHeightExceeded, never loop or overflow silently.
	degenerate := func(a, b int) int { return 1 }

	items := make([]int, 5000)
	for i := range items {
		items[i] = i
	}

	tr, err := New[int, int](degenerate)
	require.NoError(t, err)
	err = tr.Build(items)
	if err != nil {
		assert.ErrorIs(t, err, ErrHeightExceeded)
		assert.True(t, tr.IsEmpty())
	} else {
		assert.Equal(t, len(items), tr.Len())
	}
}
