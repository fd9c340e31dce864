package coord

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeSize(t *testing.T) {
	tests := []struct {
		typ  Type
		want int
	}{
		{Float64, 8},
		{Float32, 4},
		{Int8, 1},
		{Uint8, 1},
		{Int16, 2},
		{Uint16, 2},
		{Int32, 4},
		{Uint32, 4},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.typ.Size(), tt.typ.String())
	}
}

func TestTypeValidForPoints(t *testing.T) {
	require.True(t, Float64.ValidForPoints())
	require.True(t, Float32.ValidForPoints())
	require.True(t, Uint16.ValidForPoints())
	require.True(t, Uint32.ValidForPoints())
	require.False(t, Int8.ValidForPoints())
	require.False(t, Uint8.ValidForPoints())
	require.False(t, Int16.ValidForPoints())
	require.False(t, Int32.ValidForPoints())
}

func TestBoxValidate(t *testing.T) {
	require.NoError(t, Box{0, 0, 1, 1}.Validate())
	require.NoError(t, Box{1, 1, 1, 1}.Validate()) // degenerate point box is valid

	err := Box{MinX: 2, MaxX: 1, MinY: 0, MaxY: 1}.Validate()
	require.ErrorIs(t, err, ErrInvalidBox)

	err = Box{MinX: 0, MaxX: math.NaN(), MinY: 0, MaxY: 1}.Validate()
	require.ErrorIs(t, err, ErrNaN)
}

func TestBoxIntersects(t *testing.T) {
	a := Box{0, 0, 5, 5}
	require.True(t, a.Intersects(Box{5, 5, 6, 6})) // touching corner counts
	require.True(t, a.Intersects(Box{-1, -1, 0, 0}))
	require.False(t, a.Intersects(Box{5.1, 0, 6, 1}))
}

func TestBoxUnion(t *testing.T) {
	a := Box{0, 0, 1, 1}
	b := Box{2, -1, 3, 0.5}
	u := a.Union(b)
	require.Equal(t, Box{0, -1, 3, 1}, u)
}

func TestBoxesFromInterleaved(t *testing.T) {
	boxes, err := BoxesFromInterleaved([]float64{0, 0, 1, 1, 2, 2, 3, 3})
	require.NoError(t, err)
	require.Equal(t, []Box{{0, 0, 1, 1}, {2, 2, 3, 3}}, boxes)

	_, err = BoxesFromInterleaved([]float64{0, 0, 1})
	require.Error(t, err)

	_, err = BoxesFromInterleaved([]float64{1, 0, 0, 0})
	require.ErrorIs(t, err, ErrInvalidBox)
}

func TestBoxesFromSeparated(t *testing.T) {
	boxes, err := BoxesFromSeparated(
		[]float64{0, 2}, []float64{0, 2}, []float64{1, 3}, []float64{1, 3})
	require.NoError(t, err)
	require.Equal(t, []Box{{0, 0, 1, 1}, {2, 2, 3, 3}}, boxes)

	_, err = BoxesFromSeparated([]float64{0}, []float64{0, 1}, []float64{1}, []float64{1})
	require.Error(t, err)
}

func TestCoordRoundTrip(t *testing.T) {
	types := []Type{Float64, Float32, Int8, Uint8, Int16, Uint16, Int32, Uint32}
	values := []float64{0, 1, -1, 42, 127, 255}

	for _, ty := range types {
		buf := make([]byte, ty.Size())
		for _, v := range values {
			WriteCoord(buf, ty, binary.LittleEndian, v)
			got := ReadCoord(buf, ty, binary.LittleEndian)
			// Lossy for narrow integer types (e.g. -1 as u8), so every type is
			// only checked not to panic; the float types must round-trip.
			if ty == Float64 || ty == Float32 {
				require.InDelta(t, v, got, 1e-6)
			}
		}
	}

	// Exact round trip for a fractional value at f64 precision.
	buf64 := make([]byte, 8)
	WriteCoord(buf64, Float64, binary.LittleEndian, 3.5)
	require.InDelta(t, 3.5, ReadCoord(buf64, Float64, binary.LittleEndian), 0)
}
