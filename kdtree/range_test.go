package kdtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildRandomTree(t *testing.T, n int, opts ...Option) (*KDTree, []float64, []float64) {
	t.Helper()
	src := rand.New(rand.NewSource(7)) //nolint:gosec // deterministic test fixture, not security-sensitive

	xs := make([]float64, n)
	ys := make([]float64, n)
	b, err := NewBuilder(n, opts...)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		x := src.Float64() * 100
		y := src.Float64() * 100
		xs[i], ys[i] = x, y
		_, err := b.Add(x, y)
		require.NoError(t, err)
	}
	tree, err := b.Finish()
	require.NoError(t, err)
	return tree, xs, ys
}

func bruteForceRange(xs, ys []float64, minX, minY, maxX, maxY float64) []int {
	var out []int
	for i := range xs {
		if xs[i] >= minX && xs[i] <= maxX && ys[i] >= minY && ys[i] <= maxY {
			out = append(out, i)
		}
	}
	return out
}

func TestRangeMatchesBruteForce(t *testing.T) {
	tree, xs, ys := buildRandomTree(t, 500, WithNodeSize(8))

	queries := [][4]float64{
		{10, 10, 30, 30},
		{0, 0, 100, 100},
		{99, 99, 99.5, 99.5},
		{-10, -10, -1, -1},
	}
	for _, q := range queries {
		got := tree.Range(q[0], q[1], q[2], q[3])
		want := bruteForceRange(xs, ys, q[0], q[1], q[2], q[3])
		require.ElementsMatch(t, want, got)
	}
}

func TestRangeSinglePoint(t *testing.T) {
	b, err := NewBuilder(1)
	require.NoError(t, err)
	_, err = b.Add(5, 5)
	require.NoError(t, err)
	tree, err := b.Finish()
	require.NoError(t, err)

	require.Equal(t, []int{0}, tree.Range(5, 5, 5, 5))
	require.Empty(t, tree.Range(6, 6, 7, 7))
}

func TestRangeBoundaryInclusive(t *testing.T) {
	b, err := NewBuilder(1)
	require.NoError(t, err)
	_, err = b.Add(1, 1)
	require.NoError(t, err)
	tree, err := b.Finish()
	require.NoError(t, err)

	require.Equal(t, []int{0}, tree.Range(1, 1, 2, 2))
}
