package flatbush

import (
	"encoding/binary"
	"fmt"

	"github.com/gospatial/flatbush/internal/coord"
	"github.com/gospatial/flatbush/internal/sortkey"
	"github.com/gospatial/flatbush/internal/utils"
)

const (
	magicByte      byte = 0xFB
	formatVersion  byte = 0x3
	headerSize          = 12
	coordTypeMask  byte = 0x07
	methodBit      byte = 0x08
	maxU16Nodes         = 65536
)

// NumBytes returns the exact length of the buffer ToBuffer would produce.
func (t *RTree) NumBytes() int {
	return headerSize + t.boxesBytes() + t.indicesBytes()
}

func (t *RTree) boxesBytes() int {
	return len(t.boxes) * 4 * t.coordType.Size()
}

func (t *RTree) indicesBytes() int {
	return len(t.indices) * t.indexWidth()
}

func (t *RTree) indexWidth() int {
	if len(t.boxes) < maxU16Nodes {
		return 2
	}
	return 4
}

// ToBuffer serializes the tree into a single self-describing buffer: a
// 12-byte header, the flattened node-box array, then the flattened index
// array. The backing slice is drawn from utils.GetBuffer to avoid an
// allocation on every call in servers that serialize many trees; callers
// may retain the result indefinitely, or call utils.ReleaseBuffer once
// they've copied it elsewhere to let the pool reclaim it.
func (t *RTree) ToBuffer() ([]byte, error) {
	size, err := utils.SafeMultiply(uint64(len(t.boxes)), uint64(4*t.coordType.Size()))
	if err != nil {
		return nil, utils.WrapError("computing node-box buffer size", err)
	}
	if err := utils.ValidateBufferSize(size, utils.MaxTreeBytes, "serialized tree"); err != nil {
		return nil, utils.WrapError("validating buffer size", err)
	}

	buf := utils.GetBuffer(t.NumBytes())
	t.encodeHeader(buf)

	off := headerSize
	for _, b := range t.boxes {
		coord.WriteCoord(buf[off:], t.coordType, binary.LittleEndian, b.MinX)
		off += t.coordType.Size()
		coord.WriteCoord(buf[off:], t.coordType, binary.LittleEndian, b.MinY)
		off += t.coordType.Size()
		coord.WriteCoord(buf[off:], t.coordType, binary.LittleEndian, b.MaxX)
		off += t.coordType.Size()
		coord.WriteCoord(buf[off:], t.coordType, binary.LittleEndian, b.MaxY)
		off += t.coordType.Size()
	}

	width := t.indexWidth()
	for _, idx := range t.indices {
		if width == 2 {
			binary.LittleEndian.PutUint16(buf[off:], uint16(idx)) //nolint:gosec // width chosen so idx always fits
		} else {
			binary.LittleEndian.PutUint32(buf[off:], idx)
		}
		off += width
	}

	return buf, nil
}

func (t *RTree) encodeHeader(buf []byte) {
	buf[0] = magicByte

	methodCode := byte(0)
	if t.method == sortkey.STR {
		methodCode = methodBit
	}
	buf[1] = (formatVersion << 4) | (byte(t.coordType) & coordTypeMask) | methodCode

	binary.LittleEndian.PutUint16(buf[2:4], uint16(t.nodeSize)) //nolint:gosec // node size validated <= MaxNodeSize
	binary.LittleEndian.PutUint32(buf[4:8], uint32(t.numItems)) //nolint:gosec // numItems bounded by MaxTreeBytes validation

	// bytes 8-11 are reserved and must be zero. buf may be a reused pool
	// buffer, so this can't be left to zero-initialization the way a fresh
	// make() would provide it.
	buf[8], buf[9], buf[10], buf[11] = 0, 0, 0, 0
}

// FromBuffer parses a buffer produced by ToBuffer (or a wire-compatible
// Flatbush buffer) back into an RTree, reconstructing its level bounds from
// the header's node_size and num_items fields.
func FromBuffer(buf []byte) (*RTree, error) {
	if len(buf) == 0 || buf[0] != magicByte {
		return nil, ErrNotFlatbush
	}
	if len(buf) < headerSize {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrTruncated, len(buf), headerSize)
	}

	version := buf[1] >> 4
	if version != formatVersion {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, version)
	}

	ct := coord.Type(buf[1] & coordTypeMask)
	if !ct.Valid() {
		return nil, fmt.Errorf("%w: coordinate type code %d", ErrNotFlatbush, buf[1]&coordTypeMask)
	}

	method := sortkey.Hilbert
	if buf[1]&methodBit != 0 {
		method = sortkey.STR
	}

	nodeSize := int(binary.LittleEndian.Uint16(buf[2:4]))
	numItems := int(binary.LittleEndian.Uint32(buf[4:8]))

	if nodeSize < 2 || nodeSize > utils.MaxNodeSize {
		return nil, fmt.Errorf("%w: node size %d out of range [2, %d]", ErrInvalidCapacity, nodeSize, utils.MaxNodeSize)
	}

	var numNodes int
	var levelBounds []int
	if numItems == 0 {
		numNodes, levelBounds = 1, []int{0, 1}
	} else {
		numNodes, levelBounds = numNodesAndLevelBounds(numItems, nodeSize)
	}

	boxBytes := numNodes * 4 * ct.Size()
	indexWidth := 2
	if numNodes >= maxU16Nodes {
		indexWidth = 4
	}
	indexBytes := numNodes * indexWidth

	total := headerSize + boxBytes + indexBytes
	if len(buf) < total {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrTruncated, len(buf), total)
	}

	boxes := make([]coord.Box, numNodes)
	off := headerSize
	for i := range boxes {
		minX := coord.ReadCoord(buf[off:], ct, binary.LittleEndian)
		off += ct.Size()
		minY := coord.ReadCoord(buf[off:], ct, binary.LittleEndian)
		off += ct.Size()
		maxX := coord.ReadCoord(buf[off:], ct, binary.LittleEndian)
		off += ct.Size()
		maxY := coord.ReadCoord(buf[off:], ct, binary.LittleEndian)
		off += ct.Size()
		boxes[i] = coord.Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	}

	indices := make([]uint32, numNodes)
	for i := range indices {
		if indexWidth == 2 {
			indices[i] = uint32(binary.LittleEndian.Uint16(buf[off:]))
		} else {
			indices[i] = binary.LittleEndian.Uint32(buf[off:])
		}
		off += indexWidth
	}

	return &RTree{
		nodeSize:    nodeSize,
		coordType:   ct,
		method:      method,
		numItems:    numItems,
		boxes:       boxes,
		indices:     indices,
		levelBounds: levelBounds,
	}, nil
}
