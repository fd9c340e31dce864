package kdtree

import "github.com/gospatial/flatbush/internal/coord"

// KDTree is a finished, immutable packed KD-tree over 2D points. The zero
// value is not usable; obtain a KDTree via Builder.Finish or FromBuffer.
type KDTree struct {
	nodeSize  int
	coordType coord.Type
	numItems  int

	// ids, xs, and ys are parallel arrays in packed kdbush order: ids[i]
	// is the original insertion index of the point at (xs[i], ys[i]).
	ids    []uint32
	xs, ys []float64
}

// NumItems returns the number of points the tree was built from.
func (t *KDTree) NumItems() int { return t.numItems }

// NodeSize returns the tree's linear-scan threshold.
func (t *KDTree) NodeSize() int { return t.nodeSize }

// CoordType returns the on-wire coordinate precision the tree was built
// with.
func (t *KDTree) CoordType() coord.Type { return t.coordType }

// Points returns every point in the tree's packed order, alongside the
// original insertion index for each. The returned slices alias the tree's
// own storage and must not be modified.
func (t *KDTree) Points() (ids []uint32, xs, ys []float64) {
	return t.ids, t.xs, t.ys
}
