package flatbush

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumNodesAndLevelBoundsSingleItem(t *testing.T) {
	numNodes, levelBounds := numNodesAndLevelBounds(1, 16)
	require.Equal(t, 2, numNodes)
	require.Equal(t, []int{1, 2}, levelBounds)
}

func TestNumNodesAndLevelBoundsExactFanout(t *testing.T) {
	numNodes, levelBounds := numNodesAndLevelBounds(16, 16)
	require.Equal(t, 17, numNodes)
	require.Equal(t, []int{16, 17}, levelBounds)
}

func TestNumNodesAndLevelBoundsMultiLevel(t *testing.T) {
	// 300 items at node size 16 needs ceil(300/16)=19, then ceil(19/16)=2, then 1.
	numNodes, levelBounds := numNodesAndLevelBounds(300, 16)
	require.Equal(t, []int{300, 319, 321, 322}, levelBounds)
	require.Equal(t, 322, numNodes)
}

func TestBoxesAtLevelOutOfRange(t *testing.T) {
	tree, _ := buildRandomTree(t, 10, Hilbert)
	require.Nil(t, tree.BoxesAtLevel(-1))
	require.Nil(t, tree.BoxesAtLevel(tree.NumLevels()))
}
