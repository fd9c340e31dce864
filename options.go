package flatbush

import (
	"fmt"

	"github.com/gospatial/flatbush/internal/coord"
	"github.com/gospatial/flatbush/internal/sortkey"
	"github.com/gospatial/flatbush/internal/utils"
)

// defaultNodeSize is used when WithNodeSize is not supplied, matching the
// reference Flatbush implementation's default fanout.
const defaultNodeSize = 16

// config holds the resolved construction settings for a Builder.
type config struct {
	nodeSize   int
	coordType  coord.Type
	partitions int // 0 means unset: Partitions derives ceil(N/M) instead.
}

func defaultConfig() config {
	return config{
		nodeSize:  defaultNodeSize,
		coordType: coord.Float64,
	}
}

// Option configures a Builder during construction.
//
// Example:
//
//	b, err := flatbush.NewBuilder(n,
//		flatbush.WithNodeSize(32),
//		flatbush.WithCoordType(coord.Float32),
//	)
type Option func(*config) error

// WithNodeSize sets the tree's fanout (children per internal node).
// Must be between 2 and 65535. Default is 16.
func WithNodeSize(n int) Option {
	return func(c *config) error {
		if n < 2 || n > utils.MaxNodeSize {
			return fmt.Errorf("%w: node size %d out of range [2, %d]", ErrInvalidCapacity, n, utils.MaxNodeSize)
		}
		c.nodeSize = n
		return nil
	}
}

// WithCoordType sets the on-wire numeric precision for node box
// coordinates. Default is coord.Float64.
func WithCoordType(t coord.Type) Option {
	return func(c *config) error {
		if !t.Valid() {
			return fmt.Errorf("%w: coordinate type %v", ErrInvalidCapacity, t)
		}
		c.coordType = t
		return nil
	}
}

// WithPartitions sets the number of partitions the finished tree's
// Partitions view divides items into. If not supplied, Partitions derives
// ⌈N/M⌉ from the tree's item count and node size instead. p must be
// positive; NewBuilder additionally rejects p greater than the builder's
// declared item count.
func WithPartitions(p int) Option {
	return func(c *config) error {
		if p <= 0 {
			return fmt.Errorf("%w: partitions %d must be positive", ErrInvalidPartitionCount, p)
		}
		c.partitions = p
		return nil
	}
}

// Method selects the bulk-load ordering algorithm used by Finish.
type Method = sortkey.Method

// Bulk-load orderings. Hilbert is the default and, for most real-world
// distributions, produces tighter node boxes than STR.
const (
	Hilbert = sortkey.Hilbert
	STR     = sortkey.STR
)
