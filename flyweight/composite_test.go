package flyweight

import (
	"testing"

	"github.com/arloliu/sbe/endian"
	"github.com/arloliu/sbe/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposite_FieldOffset_PackedTuple(t *testing.T) {
	buf := make([]byte, 32)
	engine := endian.GetLittleEndianEngine()

	c := NewComposite(buf, 4, engine)
	require.NoError(t, primitive.SetUint64(buf, c.FieldOffset(0), 10, engine))
	require.NoError(t, primitive.SetInt64(buf, c.FieldOffset(8), -20, engine))

	u, err := primitive.GetUint64(buf, c.FieldOffset(0), engine)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), u)

	i, err := primitive.GetInt64(buf, c.FieldOffset(8), engine)
	require.NoError(t, err)
	assert.Equal(t, int64(-20), i)
}

func TestComposite_Accessors(t *testing.T) {
	buf := make([]byte, 16)
	engine := endian.GetLittleEndianEngine()
	c := NewComposite(buf, 2, engine)
	assert.Equal(t, 2, c.Offset())
	assert.Equal(t, engine, c.Engine())
	assert.Equal(t, len(buf), len(c.Buf()))
}
