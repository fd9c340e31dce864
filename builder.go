package flatbush

import (
	"fmt"

	"github.com/gospatial/flatbush/internal/coord"
	"github.com/gospatial/flatbush/internal/sortkey"
	"github.com/gospatial/flatbush/internal/utils"
)

// Builder accumulates boxes up to a declared capacity and produces an
// immutable RTree via Finish. A Builder is not safe for concurrent use.
type Builder struct {
	cfg      config
	capacity int
	boxes    []coord.Box
	finished bool
}

// NewBuilder creates a Builder for exactly numItems boxes. numItems may be
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
	if cfg.partitions > numItems {
		return nil, fmt.Errorf("%w: partitions %d exceeds numItems %d", ErrInvalidPartitionCount, cfg.partitions, numItems)
	}

	return &Builder{
		cfg:      cfg,
		capacity: numItems,
		boxes:    make([]coord.Box, 0, numItems),
	}, nil
}

// Add appends one box and returns its 0-based insertion index.
func (b *Builder) Add(box coord.Box) (int, error) {
	if b.finished {
		return 0, ErrAlreadyFinished
	}
	if len(b.boxes) >= b.capacity {
		return 0, ErrBuilderFull
	}
	if err := box.Validate(); err != nil {
		return 0, utils.WrapError("adding box", fmt.Errorf("%w: %w", ErrInvalidBox, err))
	}
	b.boxes = append(b.boxes, box)
	return len(b.boxes) - 1, nil
}

// AddInterleaved appends every box in a flat [minx,miny,maxx,maxy,...] array.
func (b *Builder) AddInterleaved(flat []float64) error {
	boxes, err := coord.BoxesFromInterleaved(flat)
	if err != nil {
		return utils.WrapError("parsing interleaved boxes", err)
	}
	for _, box := range boxes {
		if _, err := b.Add(box); err != nil {
			return err
		}
	}
	return nil
}

// AddSeparated appends every box described by four equal-length parallel
// coordinate arrays.
func (b *Builder) AddSeparated(minX, minY, maxX, maxY []float64) error {
	boxes, err := coord.BoxesFromSeparated(minX, minY, maxX, maxY)
	if err != nil {
		return utils.WrapError("parsing separated boxes", err)
	}
	for _, box := range boxes {
		if _, err := b.Add(box); err != nil {
			return err
		}
	}
	return nil
}

// Finish sorts the accumulated boxes per method, packs them bottom-up into
// an immutable RTree, and marks the builder as finished.
func (b *Builder) Finish(method Method) (*RTree, error) {
	if b.finished {
		return nil, ErrAlreadyFinished
	}
	if len(b.boxes) != b.capacity {
		return nil, fmt.Errorf("%w: added %d, declared %d", ErrCountMismatch, len(b.boxes), b.capacity)
	}
	b.finished = true

	if b.capacity == 0 {
		return &RTree{
			nodeSize:    b.cfg.nodeSize,
			coordType:   b.cfg.coordType,
			method:      method,
			numItems:    0,
			boxes:       []coord.Box{emptySentinelBox},
			indices:     []uint32{0},
			levelBounds: []int{0, 1},
			partitions:  b.cfg.partitions,
		}, nil
	}

	order := sortkey.Order(b.boxes, method, b.cfg.nodeSize)

	numNodes, levelBounds := numNodesAndLevelBounds(b.capacity, b.cfg.nodeSize)
	boxes := make([]coord.Box, numNodes)
	indices := make([]uint32, numNodes)

	for i, origIdx := range order {
		boxes[i] = b.boxes[origIdx]
		indices[i] = uint32(origIdx) //nolint:gosec // bounded by builder capacity
	}

	pos := 0
	writePos := b.capacity
	for level := 0; level < len(levelBounds)-1; level++ {
		end := levelBounds[level]
		for pos < end {
			groupStart := pos
			nb := boxes[pos]
			pos++
			for j := 1; j < b.cfg.nodeSize && pos < end; j++ {
				nb = nb.Union(boxes[pos])
				pos++
			}
			boxes[writePos] = nb
			indices[writePos] = uint32(groupStart) //nolint:gosec // bounded by numNodes
			writePos++
		}
	}

	return &RTree{
		nodeSize:    b.cfg.nodeSize,
		coordType:   b.cfg.coordType,
		method:      method,
		numItems:    b.capacity,
		boxes:       boxes,
		indices:     indices,
		levelBounds: levelBounds,
		partitions:  b.cfg.partitions,
	}, nil
}
