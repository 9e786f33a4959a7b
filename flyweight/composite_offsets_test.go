package flyweight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/sbe/endian"
	"github.com/arloliu/sbe/primitive"
)

// paddedDimension is a schema-declared dimension composite with explicit
// member offsets: blockLength at 0, numInGroup at 7, 8 bytes total. It
// exercises the DimensionCodec seam the same way a generated codec for a
// custom <dimensionType> would.
type paddedDimension struct{}

var _ DimensionCodec = paddedDimension{}

func (paddedDimension) Size() int { return 8 }

func (paddedDimension) ReadBlockLength(buf []byte, offset int, engine endian.EndianEngine) (int, error) {
	v, err := primitive.GetUint16(buf, offset, engine)

	return int(v), err
}

func (paddedDimension) ReadNumInGroup(buf []byte, offset int, _ endian.EndianEngine) (int, error) {
	v, err := primitive.GetUint8(buf, offset+7)

	return int(v), err
}

func (paddedDimension) WriteBlockLength(buf []byte, offset int, engine endian.EndianEngine, blockLength int) error {
	return primitive.SetUint16(buf, offset, uint16(blockLength), engine) //nolint:gosec
}

func (paddedDimension) WriteNumInGroup(buf []byte, offset int, _ endian.EndianEngine, numInGroup int) error {
	return primitive.SetUint8(buf, offset+7, uint8(numInGroup)) //nolint:gosec
}

// A two-entry group whose entries hold a composite of (uint64, int64) packed
// without padding, framed by a 12-byte header with explicit member offsets.
func TestCompositeOffsets_GroupEntries(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 128)

	// header: blockLength@0, templateId@4, schemaId@8, version@10
	require.NoError(t, primitive.SetUint16(buf, 0, 0, engine))
	require.NoError(t, primitive.SetUint16(buf, 4, 1, engine))
	require.NoError(t, primitive.SetUint16(buf, 8, 15, engine))
	require.NoError(t, primitive.SetUint16(buf, 10, 0, engine))
	headerLength := 12

	m := NewMessage(engine)
	require.NoError(t, m.WrapForEncode(buf, headerLength, 0, len(buf)))

	entries := NewGroup(m.Window(), engine, paddedDimension{})
	require.NoError(t, entries.WrapForEncode(16, 2))

	values := [][2]int64{{10, 20}, {30, 40}}
	for _, v := range values {
		off, err := entries.Next()
		require.NoError(t, err)

		pair := NewComposite(buf, off, engine)
		require.NoError(t, primitive.SetUint64(buf, pair.FieldOffset(0), uint64(v[0]), engine))
		require.NoError(t, primitive.SetInt64(buf, pair.FieldOffset(8), v[1], engine))
	}

	assert.Equal(t, 40, m.EncodedLength())

	d := NewMessage(engine)
	blockLength, err := primitive.GetUint16(buf, 0, engine)
	require.NoError(t, err)
	version, err := primitive.GetUint16(buf, 10, engine)
	require.NoError(t, err)
	require.NoError(t, d.WrapForDecode(buf, headerLength, int(blockLength), int(version), len(buf)))

	dEntries := NewGroup(d.Window(), engine, paddedDimension{})
	require.NoError(t, dEntries.WrapForDecode())
	require.Equal(t, 2, dEntries.Count())
	assert.Equal(t, 16, dEntries.BlockLength())

	for _, want := range values {
		off, err := dEntries.Next()
		require.NoError(t, err)

		pair := NewComposite(buf, off, engine)
		u, err := primitive.GetUint64(buf, pair.FieldOffset(0), engine)
		require.NoError(t, err)
		assert.Equal(t, uint64(want[0]), u)

		i, err := primitive.GetInt64(buf, pair.FieldOffset(8), engine)
		require.NoError(t, err)
		assert.Equal(t, want[1], i)
	}

	assert.Equal(t, 40, d.EncodedLength())
}
