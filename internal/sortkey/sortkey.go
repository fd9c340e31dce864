package sortkey

import (
	"sort"

	"github.com/gospatial/flatbush/internal/coord"
)

// Method selects the bulk-load ordering algorithm.
type Method uint8

const (
	// Hilbert orders items along a Hilbert space-filling curve over their
	// centroids. This is the default: it produces tighter, more balanced
	// node boxes than STR for most real-world distributions.
	Hilbert Method = iota
	// STR orders items with Sort-Tile-Recursive slabbing.
	STR
)

// Order returns a permutation of [0, len(boxes)) giving the bulk-load order
// for the chosen method. nodeSize is only consulted by STR, which uses it to
// size its slabs.
func Order(boxes []coord.Box, method Method, nodeSize int) []int {
	switch method {
	case STR:
		return strOrder(boxes, nodeSize)
	default:
		return hilbertOrder(boxes)
	}
}

// hilbertOrder sorts item indices by ascending Hilbert key, breaking ties by
// original index for a deterministic, stable ordering.
func hilbertOrder(boxes []coord.Box) []int {
	keys := hilbertKeys(boxes)
	idx := make([]int, len(boxes))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return keys[idx[i]] < keys[idx[j]]
	})
	return idx
}
