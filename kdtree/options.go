package kdtree

import (
	"fmt"

	"github.com/gospatial/flatbush/internal/coord"
	"github.com/gospatial/flatbush/internal/utils"
)

// defaultNodeSize is the linear-scan threshold: a subrange of at most
// nodeSize+1 points is left unpartitioned, matching the reference kdbush
// implementation.
const defaultNodeSize = 64

type config struct {
	nodeSize  int
	coordType coord.Type
}

func defaultConfig() config {
	return config{
		nodeSize:  defaultNodeSize,
		coordType: coord.Float64,
	}
}

// Option configures a Builder during construction.
type Option func(*config) error

// WithNodeSize sets the linear-scan threshold: a subrange of at most n+1
// points is left as a flat, linearly-scanned block instead of being
// partitioned further.
// Must be between 1 and 65535. Default is 64.
func WithNodeSize(n int) Option {
	return func(c *config) error {
		if n < 1 || n > utils.MaxNodeSize {
			return fmt.Errorf("%w: node size %d out of range [1, %d]", ErrInvalidCapacity, n, utils.MaxNodeSize)
		}
		c.nodeSize = n
		return nil
	}
}

// WithCoordType sets the on-wire numeric precision for point coordinates.
// Only f64, f32, u16, and u32 are permitted; any other type gives
// ErrUnsupportedCoordType. Default is coord.Float64.
func WithCoordType(t coord.Type) Option {
	return func(c *config) error {
		if !t.ValidForPoints() {
			return fmt.Errorf("%w: %v", ErrUnsupportedCoordType, t)
		}
		c.coordType = t
		return nil
	}
}
