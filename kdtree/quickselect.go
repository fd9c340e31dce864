package kdtree

// sortKD recursively partitions points[left:right+1] around their median,
// alternating the splitting axis with depth, and leaves any subrange of at
// most nodeSize+1 points (right-left <= nodeSize) unpartitioned (it will be
// scanned linearly by Range and Within instead). This is the standard kdbush packed layout: axis
// alternates 0 (x), 1 (y), 0, ... with recursion depth.
func sortKD(ids []uint32, xs, ys []float64, nodeSize, left, right, axis int) {
	if right-left <= nodeSize {
		return
	}

	mid := (left + right) / 2
	selectKD(ids, xs, ys, mid, left, right, axis)

	sortKD(ids, xs, ys, nodeSize, left, mid-1, 1-axis)
	sortKD(ids, xs, ys, nodeSize, mid+1, right, 1-axis)
}

// selectKD partitions points[left:right+1] in place so that the point at
// index k is the one that would occupy that position if the range were
// fully sorted by the given axis: every point left of k has an axis value
// <= points[k], every point right of k has an axis value >= points[k].
func selectKD(ids []uint32, xs, ys []float64, k, left, right, axis int) {
	for right > left {
		t := axisValue(xs, ys, axis, k)
		i, j := left, right

		swapPoint(ids, xs, ys, left, k)
		if axisValue(xs, ys, axis, right) > t {
			swapPoint(ids, xs, ys, left, right)
		}

		for i < j {
			swapPoint(ids, xs, ys, i, j)
			i++
			j--
			for axisValue(xs, ys, axis, i) < t {
				i++
			}
			for axisValue(xs, ys, axis, j) > t {
				j--
			}
		}

		if axisValue(xs, ys, axis, left) == t {
			swapPoint(ids, xs, ys, left, j)
		} else {
			j++
			swapPoint(ids, xs, ys, j, right)
		}

		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = j - 1
		}
	}
}

func axisValue(xs, ys []float64, axis, i int) float64 {
	if axis == 0 {
		return xs[i]
	}
	return ys[i]
}

func swapPoint(ids []uint32, xs, ys []float64, i, j int) {
	ids[i], ids[j] = ids[j], ids[i]
	xs[i], xs[j] = xs[j], xs[i]
	ys[i], ys[j] = ys[j], ys[i]
}
