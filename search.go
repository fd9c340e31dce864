package flatbush

import "github.com/gospatial/flatbush/internal/coord"

// Search returns the insertion indices of every leaf whose box intersects
// the query box, including boxes that only touch it at an edge. Results are
// returned in no particular order.
func (t *RTree) Search(minX, minY, maxX, maxY float64) []int {
	if t.numItems == 0 {
		return nil
	}

	query := coord.Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}

	var results []int

	// stack holds (nodeIndex, level) pairs, descending from the root.
	type frame struct {
		nodeIndex int
		level     int
	}
	stack := make([]frame, 0, 32)
	stack = append(stack, frame{nodeIndex: len(t.boxes) - 1, level: len(t.levelBounds) - 1})

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		_, levelEnd := t.levelRange(f.level)
		end := f.nodeIndex + t.nodeSize
		if end > levelEnd {
			end = levelEnd
		}

		for pos := f.nodeIndex; pos < end; pos++ {
			if !t.boxes[pos].Intersects(query) {
				continue
			}
			if f.level == 0 {
				results = append(results, int(t.indices[pos]))
			} else {
				stack = append(stack, frame{nodeIndex: int(t.indices[pos]), level: f.level - 1})
			}
		}
	}

	return results
}
