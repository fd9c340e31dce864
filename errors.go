package flatbush

import "errors"

// Sentinel errors returned by this package. Use errors.Is to test for them;
// some are returned as is, others wrapped (with fmt.Errorf or
// utils.WrapError) so the message carries additional context.
var (
	// ErrInvalidCapacity is returned when a builder is constructed with a
	// negative item count, a node size outside [2, 65535], or an
	// unrecognized coordinate type, and by FromBuffer for a header whose
	// node size is outside that range.
	ErrInvalidCapacity = errors.New("invalid capacity or node size")

	// ErrCountMismatch is returned by Finish when fewer items were added
	// than the capacity the builder was constructed with.
	ErrCountMismatch = errors.New("item count does not match declared capacity")

	// ErrBuilderFull is returned by Add when the builder has already
	// received its declared capacity of items.
	ErrBuilderFull = errors.New("builder is already full")

	// ErrAlreadyFinished is returned by Add or Finish when called on a
	// builder that has already produced its tree.
	ErrAlreadyFinished = errors.New("builder has already finished")

	// ErrInvalidBox is returned by Add when a box's min exceeds its max, or
	// it contains a NaN coordinate. AddInterleaved and AddSeparated report
	// the same faults as coord.ErrInvalidBox or coord.ErrNaN.
	ErrInvalidBox = errors.New("invalid box")

	// ErrNotFlatbush is returned by FromBuffer when the input's first byte
	// is not the Flatbush magic byte.
	ErrNotFlatbush = errors.New("data not in Flatbush format")

	// ErrTruncated is returned by FromBuffer when the buffer is shorter
	// than its own header declares it should be.
	ErrTruncated = errors.New("buffer is truncated")

	// ErrUnsupportedVersion is returned by FromBuffer when the header's
	// version nibble is not one this package understands.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrInvalidPartitionCount is returned by NewBuilder when the
	// WithPartitions count is not a positive integer no greater than the
	// builder's item count, and by Partitions on a tree with no items.
	ErrInvalidPartitionCount = errors.New("invalid partition count")
)
