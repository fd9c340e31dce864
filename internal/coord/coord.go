// Package coord implements the coordinate codec shared by the packed R-tree
// and KD-tree formats: validating box and point inputs, and reading/writing
// coordinate values at a chosen numeric precision on the wire.
package coord

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Type tags the numeric precision coordinates are stored at. The numeric
// value matches the low-nibble coordinate-type code of the serialized header.
type Type uint8

const (
	Float64 Type = iota
	Float32
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
)

// Size returns the on-wire byte width of a single coordinate of this type.
func (t Type) Size() int {
	switch t {
	case Float64:
		return 8
	case Float32, Int32, Uint32:
		return 4
	case Int16, Uint16:
		return 2
	case Int8, Uint8:
		return 1
	default:
		return 0
	}
}

// Valid reports whether t is one of the eight recognized coordinate types.
func (t Type) Valid() bool {
	return t <= Uint32
}

// ValidForPoints reports whether t is one of the four types permitted for
// KD-tree point coordinates (u16, u32, f32, f64).
func (t Type) ValidForPoints() bool {
	switch t {
	case Float64, Float32, Uint16, Uint32:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	switch t {
	case Float64:
		return "f64"
	case Float32:
		return "f32"
	case Int8:
		return "i8"
	case Uint8:
		return "u8"
	case Int16:
		return "i16"
	case Uint16:
		return "u16"
	case Int32:
		return "i32"
	case Uint32:
		return "u32"
	default:
		return fmt.Sprintf("coord.Type(%d)", uint8(t))
	}
}

// ErrNaN is returned when a coordinate is NaN, which is forbidden everywhere
// in this package.
var ErrNaN = errors.New("NaN coordinate is not allowed")

// ErrInvalidBox is returned when a box's min exceeds its max on some axis.
var ErrInvalidBox = errors.New("box min exceeds max")

// Box is an axis-aligned bounding box. Coordinates are always carried as
// float64 in memory; the declared Type only governs on-wire precision.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Validate checks the min <= max invariant on both axes and rejects NaN.
func (b Box) Validate() error {
	if math.IsNaN(b.MinX) || math.IsNaN(b.MinY) || math.IsNaN(b.MaxX) || math.IsNaN(b.MaxY) {
		return ErrNaN
	}
	if b.MinX > b.MaxX || b.MinY > b.MaxY {
		return ErrInvalidBox
	}
	return nil
}

// CenterX returns the box's horizontal centroid.
func (b Box) CenterX() float64 { return (b.MinX + b.MaxX) / 2 }

// CenterY returns the box's vertical centroid.
func (b Box) CenterY() float64 { return (b.MinY + b.MaxY) / 2 }

// Intersects reports whether b and o overlap, including shared edges.
func (b Box) Intersects(o Box) bool {
	return !(b.MaxX < o.MinX || b.MinX > o.MaxX || b.MaxY < o.MinY || b.MinY > o.MaxY)
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Point is a 2D coordinate, used by the KD-tree.
type Point struct {
	X, Y float64
}

// Validate rejects NaN coordinates.
func (p Point) Validate() error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return ErrNaN
	}
	return nil
}

// BoxesFromInterleaved parses the [minx,miny,maxx,maxy, ...] flat input shape.
func BoxesFromInterleaved(flat []float64) ([]Box, error) {
	if len(flat)%4 != 0 {
		return nil, fmt.Errorf("interleaved box array length %d is not a multiple of 4", len(flat))
	}
	n := len(flat) / 4
	boxes := make([]Box, n)
	for i := 0; i < n; i++ {
		b := Box{
			MinX: flat[i*4+0],
			MinY: flat[i*4+1],
			MaxX: flat[i*4+2],
			MaxY: flat[i*4+3],
		}
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		boxes[i] = b
	}
	return boxes, nil
}

// BoxesFromSeparated parses the four-parallel-array input shape. All four
// arrays must have equal length.
func BoxesFromSeparated(minX, minY, maxX, maxY []float64) ([]Box, error) {
	n := len(minX)
	if len(minY) != n || len(maxX) != n || len(maxY) != n {
		return nil, fmt.Errorf("separated box arrays disagree in length: %d/%d/%d/%d",
			len(minX), len(minY), len(maxX), len(maxY))
	}
	boxes := make([]Box, n)
	for i := 0; i < n; i++ {
		b := Box{MinX: minX[i], MinY: minY[i], MaxX: maxX[i], MaxY: maxY[i]}
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		boxes[i] = b
	}
	return boxes, nil
}

// WriteCoord encodes v as type t into buf[:t.Size()] using the given byte order.
func WriteCoord(buf []byte, t Type, order binary.ByteOrder, v float64) {
	switch t {
	case Float64:
		order.PutUint64(buf, math.Float64bits(v))
	case Float32:
		order.PutUint32(buf, math.Float32bits(float32(v)))
	case Int8:
		buf[0] = byte(int8(v))
	case Uint8:
		buf[0] = byte(uint8(v))
	case Int16:
		order.PutUint16(buf, uint16(int16(v))) //nolint:gosec // truncation is the intended narrowing for this coord type
	case Uint16:
		order.PutUint16(buf, uint16(v)) //nolint:gosec // truncation is the intended narrowing for this coord type
	case Int32:
		order.PutUint32(buf, uint32(int32(v))) //nolint:gosec // truncation is the intended narrowing for this coord type
	case Uint32:
		order.PutUint32(buf, uint32(v)) //nolint:gosec // truncation is the intended narrowing for this coord type
	}
}

// ReadCoord decodes a value of type t from buf[:t.Size()] using the given byte order.
func ReadCoord(buf []byte, t Type, order binary.ByteOrder) float64 {
	switch t {
	case Float64:
		return math.Float64frombits(order.Uint64(buf))
	case Float32:
		return float64(math.Float32frombits(order.Uint32(buf)))
	case Int8:
		return float64(int8(buf[0]))
	case Uint8:
		return float64(buf[0])
	case Int16:
		return float64(int16(order.Uint16(buf)))
	case Uint16:
		return float64(order.Uint16(buf))
	case Int32:
		return float64(int32(order.Uint32(buf)))
	case Uint32:
		return float64(order.Uint32(buf))
	default:
		return 0
	}
}
