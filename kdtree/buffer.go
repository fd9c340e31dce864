package kdtree

import (
	"encoding/binary"
	"fmt"

	"github.com/gospatial/flatbush/internal/coord"
	"github.com/gospatial/flatbush/internal/utils"
)

const (
	magicByte     byte = 0xFC
	formatVersion byte = 0x3
	headerSize         = 12
	coordTypeMask byte = 0x07
)

// NumBytes returns the exact length of the buffer ToBuffer would produce.
func (t *KDTree) NumBytes() int {
	return headerSize + len(t.ids)*4 + 2*len(t.xs)*t.coordType.Size()
}

// ToBuffer serializes the tree into a single self-describing buffer: a
// 12-byte header, the packed-order id array (uint32 each), then one
// interleaved (x, y) pair per point in packed order, at the tree's
// coordinate type.
func (t *KDTree) ToBuffer() ([]byte, error) {
	coordBytes, err := utils.SafeMultiply(uint64(2*len(t.xs)), uint64(t.coordType.Size()))
	if err != nil {
		return nil, utils.WrapError("computing coordinate buffer size", err)
	}
	if err := utils.ValidateBufferSize(coordBytes+uint64(len(t.ids)*4)+headerSize, utils.MaxTreeBytes, "serialized kd-tree"); err != nil {
		return nil, utils.WrapError("validating buffer size", err)
	}

	buf := make([]byte, t.NumBytes())
	buf[0] = magicByte
	buf[1] = (formatVersion << 4) | (byte(t.coordType) & coordTypeMask)
	binary.LittleEndian.PutUint16(buf[2:4], uint16(t.nodeSize)) //nolint:gosec // node size validated <= MaxNodeSize
	binary.LittleEndian.PutUint32(buf[4:8], uint32(t.numItems)) //nolint:gosec // numItems bounded by MaxTreeBytes validation

	off := headerSize
	for _, id := range t.ids {
		binary.LittleEndian.PutUint32(buf[off:], id)
		off += 4
	}
	for i := range t.xs {
		coord.WriteCoord(buf[off:], t.coordType, binary.LittleEndian, t.xs[i])
		off += t.coordType.Size()
		coord.WriteCoord(buf[off:], t.coordType, binary.LittleEndian, t.ys[i])
		off += t.coordType.Size()
	}

	return buf, nil
}

// FromBuffer parses a buffer produced by ToBuffer back into a KDTree.
func FromBuffer(buf []byte) (*KDTree, error) {
	if len(buf) < headerSize {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrTruncated, len(buf), headerSize)
	}
	if buf[0] != magicByte {
		return nil, ErrNotKDBush
	}

	version := buf[1] >> 4
	if version != formatVersion {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, version)
	}

	ct := coord.Type(buf[1] & coordTypeMask)
	if !ct.ValidForPoints() {
		return nil, fmt.Errorf("%w: code %d", ErrUnsupportedCoordType, buf[1]&coordTypeMask)
	}

	nodeSize := int(binary.LittleEndian.Uint16(buf[2:4]))
	numItems := int(binary.LittleEndian.Uint32(buf[4:8]))

	total := headerSize + numItems*4 + 2*numItems*ct.Size()
	if len(buf) < total {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrTruncated, len(buf), total)
	}

	ids := make([]uint32, numItems)
	xs := make([]float64, numItems)
	ys := make([]float64, numItems)

	off := headerSize
	for i := range ids {
		ids[i] = binary.LittleEndian.Uint32(buf[off:])
		off += 4
	}
	for i := range xs {
		xs[i] = coord.ReadCoord(buf[off:], ct, binary.LittleEndian)
		off += ct.Size()
		ys[i] = coord.ReadCoord(buf[off:], ct, binary.LittleEndian)
		off += ct.Size()
	}

	return &KDTree{
		nodeSize:  nodeSize,
		coordType: ct,
		numItems:  numItems,
		ids:       ids,
		xs:        xs,
		ys:        ys,
	}, nil
}
