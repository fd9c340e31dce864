package sortkey

import (
	"math"
	"sort"

	"github.com/gospatial/flatbush/internal/coord"
)

// strOrder computes a Sort-Tile-Recursive ordering over box centroids: sort
// by x, slice into ceil(sqrt(n/nodeSize)) vertical slabs of roughly equal
// size, then sort each slab by y.
func strOrder(boxes []coord.Box, nodeSize int) []int {
	n := len(boxes)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if n == 0 {
		return idx
	}

	sort.SliceStable(idx, func(i, j int) bool {
		return boxes[idx[i]].CenterX() < boxes[idx[j]].CenterX()
	})

	numSlabs := int(math.Ceil(math.Sqrt(float64(n) / float64(nodeSize))))
	if numSlabs < 1 {
		numSlabs = 1
	}
	slabSize := int(math.Ceil(math.Sqrt(float64(n) * float64(nodeSize))))
	if slabSize < 1 {
		slabSize = 1
	}

	for s := 0; s < numSlabs; s++ {
		start := s * slabSize
		if start >= n {
			break
		}
		end := start + slabSize
		if end > n {
			end = n
		}
		slab := idx[start:end]
		sort.SliceStable(slab, func(i, j int) bool {
			return boxes[slab[i]].CenterY() < boxes[slab[j]].CenterY()
		})
	}

	return idx
}
