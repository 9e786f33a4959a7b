package flyweight

import (
	"github.com/arloliu/sbe/endian"
	"github.com/arloliu/sbe/primitive"
)

// DimensionCodec reads and writes a repeating group's dimension header.
// The wire layout is schema-defined — most schemas use blockLength:uint16,
// numInGroup:uint16 (StandardDimension below), but a generated codec may
// supply its own implementation (e.g. a uint8 numInGroup) without changing
// how Group consumes it.
type DimensionCodec interface {
	// Size returns the wire size in bytes of the dimension composite.
	Size() int
	// ReadBlockLength reads the per-entry fixed block length field.
	ReadBlockLength(buf []byte, offset int, engine endian.EndianEngine) (int, error)
	// ReadNumInGroup reads the entry count field.
	ReadNumInGroup(buf []byte, offset int, engine endian.EndianEngine) (int, error)
	// WriteBlockLength writes the per-entry fixed block length field.
	WriteBlockLength(buf []byte, offset int, engine endian.EndianEngine, blockLength int) error
	// WriteNumInGroup writes the entry count field.
	WriteNumInGroup(buf []byte, offset int, engine endian.EndianEngine, numInGroup int) error
}

// StandardDimension is the conventional SBE group dimension composite:
// blockLength (uint16) followed by numInGroup (uint16), 4 bytes total. This
// is the layout generated by the reference SBE tool for schemas that do not
// declare a custom <dimensionType>.
type StandardDimension struct{}

var _ DimensionCodec = StandardDimension{}

// Size returns 4: a uint16 blockLength plus a uint16 numInGroup.
func (StandardDimension) Size() int { return 4 }

// ReadBlockLength reads the 2-byte blockLength field at offset.
func (StandardDimension) ReadBlockLength(buf []byte, offset int, engine endian.EndianEngine) (int, error) {
	v, err := primitive.GetUint16(buf, offset, engine)

	return int(v), err
}

// ReadNumInGroup reads the 2-byte numInGroup field at offset+2.
func (StandardDimension) ReadNumInGroup(buf []byte, offset int, engine endian.EndianEngine) (int, error) {
	v, err := primitive.GetUint16(buf, offset+2, engine)

	return int(v), err
}

// WriteBlockLength writes the 2-byte blockLength field at offset.
func (StandardDimension) WriteBlockLength(buf []byte, offset int, engine endian.EndianEngine, blockLength int) error {
	return primitive.SetUint16(buf, offset, uint16(blockLength), engine) //nolint:gosec
}

// WriteNumInGroup writes the 2-byte numInGroup field at offset+2.
func (StandardDimension) WriteNumInGroup(buf []byte, offset int, engine endian.EndianEngine, numInGroup int) error {
	return primitive.SetUint16(buf, offset+2, uint16(numInGroup), engine) //nolint:gosec
}

// ByteCountDimension is an alternate dimension composite used by schemas that
// declare a uint8 numInGroup (small, bounded groups): blockLength (uint16)
// followed by numInGroup (uint8), 3 bytes total.
type ByteCountDimension struct{}

var _ DimensionCodec = ByteCountDimension{}

// Size returns 3: a uint16 blockLength plus a uint8 numInGroup.
func (ByteCountDimension) Size() int { return 3 }

func (ByteCountDimension) ReadBlockLength(buf []byte, offset int, engine endian.EndianEngine) (int, error) {
	v, err := primitive.GetUint16(buf, offset, engine)

	return int(v), err
}

func (ByteCountDimension) ReadNumInGroup(buf []byte, offset int, _ endian.EndianEngine) (int, error) {
	v, err := primitive.GetUint8(buf, offset+2)

	return int(v), err
}

func (ByteCountDimension) WriteBlockLength(buf []byte, offset int, engine endian.EndianEngine, blockLength int) error {
	return primitive.SetUint16(buf, offset, uint16(blockLength), engine) //nolint:gosec
}

func (ByteCountDimension) WriteNumInGroup(buf []byte, offset int, _ endian.EndianEngine, numInGroup int) error {
	return primitive.SetUint8(buf, offset+2, uint8(numInGroup)) //nolint:gosec
}
