// Package sortkey computes the bulk-load ordering used to pack boxes into a
// static tree: either a Hilbert curve traversal or a Sort-Tile-Recursive
// partition, both operating on box centroids.
package sortkey

import "github.com/gospatial/flatbush/internal/coord"

// hilbertBits is the quantization depth of the Hilbert grid each centroid is
// mapped onto before computing its curve index. Matches the reference
// Flatbush implementation's 16-bit grid.
const hilbertBits = 16

const hilbertGridSize = 1 << hilbertBits // 65536

// hilbertIndex maps a point already quantized to the [0, hilbertGridSize)
// grid onto its position along the Hilbert curve of order hilbertBits.
//
// Ported from the bit-interleaving Hilbert transform used by Flatbush-style
// packed R-trees (originally derived from github.com/rawrunprotected/hilbert_curves,
// public domain).
func hilbertIndex(x, y uint32) uint32 {
	const n = hilbertBits
	x = x << (16 - n)
	y = y << (16 - n)

	var a, b, c, d uint32

	{
		a0 := x ^ y
		b0 := 0xFFFF ^ a0
		c0 := 0xFFFF ^ (x | y)
		d0 := x & (y ^ 0xFFFF)

		a = a0 | (b0 >> 1)
		b = (a0 >> 1) ^ a0
		c = ((c0 >> 1) ^ (b0 & (d0 >> 1))) ^ c0
		d = ((a0 & (c0 >> 1)) ^ (d0 >> 1)) ^ d0
	}

	for _, shift := range []uint{2, 4} {
		a0, b0, c0, d0 := a, b, c, d
		a = (a0 & (a0 >> shift)) ^ (b0 & (b0 >> shift))
		b = (a0 & (b0 >> shift)) ^ (b0 & ((a0 ^ b0) >> shift))
		c ^= (a0 & (c0 >> shift)) ^ (b0 & (d0 >> shift))
		d ^= (b0 & (c0 >> shift)) ^ ((a0 ^ b0) & (d0 >> shift))
	}

	{
		a0, b0, c0, d0 := a, b, c, d
		c ^= (a0 & (c0 >> 8)) ^ (b0 & (d0 >> 8))
		d ^= (b0 & (c0 >> 8)) ^ ((a0 ^ b0) & (d0 >> 8))
	}

	ra := c ^ (c >> 1)
	rb := d ^ (d >> 1)

	i0 := x ^ y
	i1 := rb | (0xFFFF ^ (i0 | ra))

	return ((interleaveBits(i1) << 1) | interleaveBits(i0)) >> (32 - 2*n)
}

// interleaveBits spreads the low 16 bits of x so that each occupies every
// other bit position, i.e. bit k moves to position 2k.
func interleaveBits(x uint32) uint32 {
	x = (x | (x << 8)) & 0x00FF00FF
	x = (x | (x << 4)) & 0x0F0F0F0F
	x = (x | (x << 2)) & 0x33333333
	x = (x | (x << 1)) & 0x55555555
	return x
}

// hilbertKeys computes a Hilbert curve key for every box's centroid, first
// normalizing centroids into the [0, hilbertGridSize) grid spanned by the
// overall extent of the centroids. A degenerate extent (every centroid identical, or
// a single box) maps every key to zero, matching the all-equal ordering
// produced by a zero-area bounding region.
func hilbertKeys(boxes []coord.Box) []uint32 {
	n := len(boxes)
	keys := make([]uint32, n)
	if n == 0 {
		return keys
	}

	minX, minY := boxes[0].CenterX(), boxes[0].CenterY()
	maxX, maxY := minX, minY
	for _, b := range boxes[1:] {
		cx, cy := b.CenterX(), b.CenterY()
		if cx < minX {
			minX = cx
		}
		if cx > maxX {
			maxX = cx
		}
		if cy < minY {
			minY = cy
		}
		if cy > maxY {
			maxY = cy
		}
	}

	width := maxX - minX
	height := maxY - minY

	for i, b := range boxes {
		var gx, gy uint32
		if width > 0 {
			gx = uint32((hilbertGridSize - 1) * (b.CenterX() - minX) / width)
		}
		if height > 0 {
			gy = uint32((hilbertGridSize - 1) * (b.CenterY() - minY) / height)
		}
		keys[i] = hilbertIndex(gx, gy)
	}
	return keys
}
