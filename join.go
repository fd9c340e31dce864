package flatbush

// Join returns every pair of leaf indices, the first from t and the second
// from other, whose boxes intersect. It descends both trees together,
// pruning any node pair whose boxes don't intersect before visiting their
// children.
func (t *RTree) Join(other *RTree) [][2]int {
	if t.numItems == 0 || other.numItems == 0 {
		return nil
	}

	// Each frame names an explicit sibling-node range on each side, rather
	// than a single start re-expanded by nodeSize: a side pinned to one
	// node while the other descends must stay a range of exactly that one
	// node, or its siblings get paired again on the next pop.
	type pairFrame struct {
		startA, endA, levelA int
		startB, endB, levelB int
	}

	childGroup := func(tr *RTree, first, level int) (start, end int) {
		start = first
		_, levelEnd := tr.levelRange(level)
		end = start + tr.nodeSize
		if end > levelEnd {
			end = levelEnd
		}
		return start, end
	}

	var results [][2]int
	stack := make([]pairFrame, 0, 32)
	rootA := len(t.boxes) - 1
	rootB := len(other.boxes) - 1
	stack = append(stack, pairFrame{
		startA: rootA, endA: rootA + 1, levelA: len(t.levelBounds) - 1,
		startB: rootB, endB: rootB + 1, levelB: len(other.levelBounds) - 1,
	})

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for a := f.startA; a < f.endA; a++ {
			boxA := t.boxes[a]
			for b := f.startB; b < f.endB; b++ {
				if !boxA.Intersects(other.boxes[b]) {
					continue
				}

				switch {
				case f.levelA == 0 && f.levelB == 0:
					results = append(results, [2]int{int(t.indices[a]), int(other.indices[b])})
				case f.levelA == 0:
					startB, endB := childGroup(other, int(other.indices[b]), f.levelB-1)
					stack = append(stack, pairFrame{
						startA: a, endA: a + 1, levelA: 0,
						startB: startB, endB: endB, levelB: f.levelB - 1,
					})
				case f.levelB == 0:
					startA, endA := childGroup(t, int(t.indices[a]), f.levelA-1)
					stack = append(stack, pairFrame{
						startA: startA, endA: endA, levelA: f.levelA - 1,
						startB: b, endB: b + 1, levelB: 0,
					})
				default:
					startA, endA := childGroup(t, int(t.indices[a]), f.levelA-1)
					startB, endB := childGroup(other, int(other.indices[b]), f.levelB-1)
					stack = append(stack, pairFrame{
						startA: startA, endA: endA, levelA: f.levelA - 1,
						startB: startB, endB: endB, levelB: f.levelB - 1,
					})
				}
			}
		}
	}

	return results
}
