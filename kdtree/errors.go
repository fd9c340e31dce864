package kdtree

import "errors"

// Sentinel errors returned by this package. Use errors.Is to test for them;
// some are returned as is, others wrapped (with fmt.Errorf or
// utils.WrapError) so the message carries additional context.
var (
	// ErrInvalidCapacity is returned when a builder is constructed with a
	// negative item count, or a node size outside [1, 65535].
	ErrInvalidCapacity = errors.New("invalid capacity or node size")

	// ErrCountMismatch is returned by Finish when fewer points were added
	// than the capacity the builder was constructed with.
	ErrCountMismatch = errors.New("point count does not match declared capacity")

	// ErrBuilderFull is returned by Add when the builder has already
	// received its declared capacity of points.
	ErrBuilderFull = errors.New("builder is already full")

	// ErrAlreadyFinished is returned by Add or Finish when called on a
	// builder that has already produced its tree.
	ErrAlreadyFinished = errors.New("builder has already finished")

	// ErrInvalidPoint is returned when a point has a NaN coordinate.
	ErrInvalidPoint = errors.New("invalid point")

	// ErrNotKDBush is returned by FromBuffer when the input's first byte
	// is not this package's magic byte.
	ErrNotKDBush = errors.New("data not in kdbush format")

	// ErrTruncated is returned by FromBuffer when the buffer is shorter
	// than its own header declares it should be.
	ErrTruncated = errors.New("buffer is truncated")

	// ErrUnsupportedVersion is returned by FromBuffer when the header's
	// version nibble is not one this package understands.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrUnsupportedCoordType is returned when a coordinate type outside
	// the four permitted for points (f64, f32, u16, u32) is requested.
	ErrUnsupportedCoordType = errors.New("coordinate type not supported for points")
)
