package flyweight

import (
	"testing"

	"github.com/arloliu/sbe/endian"
	"github.com/arloliu/sbe/errs"
	"github.com/arloliu/sbe/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_EncodeDecode_RoundTrip(t *testing.T) {
	buf := make([]byte, 128)
	engine := endian.GetLittleEndianEngine()

	m := NewMessage(engine)
	require.NoError(t, m.WrapForEncode(buf, 0, 0, len(buf)))

	g := NewGroup(m.Window(), engine, StandardDimension{})
	require.NoError(t, g.WrapForEncode(8, 3))
	for i := 0; i < 3; i++ {
		off, err := g.Next()
		require.NoError(t, err)
		require.NoError(t, primitive.SetInt64(buf, off, int64(i*10), engine))
	}
	assert.False(t, g.HasNext())

	decodeMsg := NewMessage(engine)
	require.NoError(t, decodeMsg.WrapForDecode(buf, 0, 0, 0, len(buf)))
	dg := NewGroup(decodeMsg.Window(), engine, StandardDimension{})
	require.NoError(t, dg.WrapForDecode())
	assert.Equal(t, 3, dg.Count())
	assert.Equal(t, 8, dg.BlockLength())

	for i := 0; i < 3; i++ {
		off, err := dg.Next()
		require.NoError(t, err)
		v, err := primitive.GetInt64(buf, off, engine)
		require.NoError(t, err)
		assert.Equal(t, int64(i*10), v)
	}
	assert.False(t, dg.HasNext())
}

func TestGroup_StateMachine_NextPastExhaustedErrors(t *testing.T) {
	buf := make([]byte, 64)
	engine := endian.GetLittleEndianEngine()
	m := NewMessage(engine)
	require.NoError(t, m.WrapForEncode(buf, 0, 0, len(buf)))

	g := NewGroup(m.Window(), engine, StandardDimension{})
	require.NoError(t, g.WrapForEncode(4, 1))

	_, err := g.Next()
	require.NoError(t, err)
	assert.False(t, g.HasNext())

	_, err = g.Next()
	assert.ErrorIs(t, err, errs.ErrGroupExhausted)
}

func TestGroup_Next_BeforeWrap_Errors(t *testing.T) {
	buf := make([]byte, 16)
	engine := endian.GetLittleEndianEngine()
	g := NewGroup(nil, engine, StandardDimension{})
	_, err := g.Next()
	assert.ErrorIs(t, err, errs.ErrGroupNotIterating)
	_ = buf
}

func TestGroup_Next_BufferTooShortForNextIndex(t *testing.T) {
	buf := make([]byte, 10) // room for dimension(4) + 1 entry(4), not 2
	engine := endian.GetLittleEndianEngine()
	m := NewMessage(engine)
	require.NoError(t, m.WrapForEncode(buf, 0, 0, len(buf)))

	g := NewGroup(m.Window(), engine, StandardDimension{})
	require.NoError(t, g.WrapForEncode(4, 2))

	_, err := g.Next()
	require.NoError(t, err)

	_, err = g.Next()
	assert.ErrorIs(t, err, errs.ErrBufferTooShortForNextGroupIndex)
}

func TestGroup_ZeroCount_ImmediatelyExhausted(t *testing.T) {
	buf := make([]byte, 16)
	engine := endian.GetLittleEndianEngine()
	m := NewMessage(engine)
	require.NoError(t, m.WrapForEncode(buf, 0, 0, len(buf)))

	g := NewGroup(m.Window(), engine, StandardDimension{})
	require.NoError(t, g.WrapForEncode(4, 0))
	assert.False(t, g.HasNext())
	_, err := g.Next()
	assert.ErrorIs(t, err, errs.ErrGroupExhausted)
}

func TestGroup_ByteCountDimension(t *testing.T) {
	buf := make([]byte, 32)
	engine := endian.GetLittleEndianEngine()
	m := NewMessage(engine)
	require.NoError(t, m.WrapForEncode(buf, 0, 0, len(buf)))

	g := NewGroup(m.Window(), engine, ByteCountDimension{})
	require.NoError(t, g.WrapForEncode(4, 2))
	_, err := g.Next()
	require.NoError(t, err)
	_, err = g.Next()
	require.NoError(t, err)

	dg := NewGroup(m.Window(), engine, ByteCountDimension{})
	_ = dg
	assert.Equal(t, 3, ByteCountDimension{}.Size())
}
