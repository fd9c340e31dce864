package kdtree

import (
	"fmt"
	"math"

	"github.com/gospatial/flatbush/internal/utils"
)

// Builder accumulates points up to a declared capacity and produces an
// immutable KDTree via Finish. A Builder is not safe for concurrent use.
type Builder struct {
	cfg      config
	capacity int
	xs, ys   []float64
	finished bool
}

// NewBuilder creates a Builder for exactly numItems points. numItems may be
// zero, in which case Finish immediately produces an empty tree.
func NewBuilder(numItems int, opts ...Option) (*Builder, error) {
	if numItems < 0 {
		return nil, fmt.Errorf("%w: numItems %d is negative", ErrInvalidCapacity, numItems)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, utils.WrapError("applying builder option", err)
		}
	}

	return &Builder{
		cfg:      cfg,
		capacity: numItems,
		xs:       make([]float64, 0, numItems),
		ys:       make([]float64, 0, numItems),
	}, nil
}

// Add appends one point and returns its 0-based insertion index.
func (b *Builder) Add(x, y float64) (int, error) {
	if b.finished {
		return 0, ErrAlreadyFinished
	}
	if len(b.xs) >= b.capacity {
		return 0, ErrBuilderFull
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, ErrInvalidPoint
	}
	b.xs = append(b.xs, x)
	b.ys = append(b.ys, y)
	return len(b.xs) - 1, nil
}

// Finish partitions the accumulated points into an immutable KDTree and
// marks the builder as finished.
func (b *Builder) Finish() (*KDTree, error) {
	if b.finished {
		return nil, ErrAlreadyFinished
	}
	if len(b.xs) != b.capacity {
		return nil, fmt.Errorf("%w: added %d, declared %d", ErrCountMismatch, len(b.xs), b.capacity)
	}
	b.finished = true

	n := b.capacity
	ids := make([]uint32, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		ids[i] = uint32(i) //nolint:gosec // bounded by builder capacity
		xs[i] = b.xs[i]
		ys[i] = b.ys[i]
	}

	if n > 0 {
		sortKD(ids, xs, ys, b.cfg.nodeSize, 0, n-1, 0)
	}

	return &KDTree{
		nodeSize:  b.cfg.nodeSize,
		coordType: b.cfg.coordType,
		numItems:  n,
		ids:       ids,
		xs:        xs,
		ys:        ys,
	}, nil
}
