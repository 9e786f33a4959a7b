package flyweight

import (
	"testing"

	"github.com/arloliu/sbe/endian"
	"github.com/arloliu/sbe/errs"
	"github.com/arloliu/sbe/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarData_RoundTrip_Uint8Length(t *testing.T) {
	buf := make([]byte, 32)
	engine := endian.GetLittleEndianEngine()
	m := NewMessage(engine)
	require.NoError(t, m.WrapForEncode(buf, 0, 0, len(buf)))

	vd := NewVarData(m.Window(), engine, primitive.Uint8)
	require.NoError(t, vd.Set([]byte("hello")))
	assert.Equal(t, 1+5, m.EncodedLength())

	decodeMsg := NewMessage(engine)
	require.NoError(t, decodeMsg.WrapForDecode(buf, 0, 0, 0, len(buf)))
	dvd := NewVarData(decodeMsg.Window(), engine, primitive.Uint8)
	got, err := dvd.Get()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestVarData_RoundTrip_Uint16Length(t *testing.T) {
	buf := make([]byte, 32)
	engine := endian.GetBigEndianEngine()
	m := NewMessage(engine)
	require.NoError(t, m.WrapForEncode(buf, 0, 0, len(buf)))

	vd := NewVarData(m.Window(), engine, primitive.Uint16)
	payload := []byte("idx 1 positive")
	require.NoError(t, vd.Set(payload))
	assert.Equal(t, 2+len(payload), m.EncodedLength())

	decodeMsg := NewMessage(engine)
	require.NoError(t, decodeMsg.WrapForDecode(buf, 0, 0, 0, len(buf)))
	dvd := NewVarData(decodeMsg.Window(), engine, primitive.Uint16)
	got, err := dvd.Get()
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestVarData_TwoSiblingFields_SequentialPosition(t *testing.T) {
	buf := make([]byte, 64)
	engine := endian.GetLittleEndianEngine()
	m := NewMessage(engine)
	require.NoError(t, m.WrapForEncode(buf, 0, 0, len(buf)))

	vd1 := NewVarData(m.Window(), engine, primitive.Uint8)
	require.NoError(t, vd1.Set([]byte("first")))
	vd2 := NewVarData(m.Window(), engine, primitive.Uint8)
	require.NoError(t, vd2.Set([]byte("second")))

	decodeMsg := NewMessage(engine)
	require.NoError(t, decodeMsg.WrapForDecode(buf, 0, 0, 0, len(buf)))
	d1 := NewVarData(decodeMsg.Window(), engine, primitive.Uint8)
	got1, err := d1.Get()
	require.NoError(t, err)
	assert.Equal(t, "first", string(got1))

	d2 := NewVarData(decodeMsg.Window(), engine, primitive.Uint8)
	got2, err := d2.Get()
	require.NoError(t, err)
	assert.Equal(t, "second", string(got2))
}

func TestVarData_LengthExceedsUint8Domain(t *testing.T) {
	buf := make([]byte, 512)
	engine := endian.GetLittleEndianEngine()
	m := NewMessage(engine)
	require.NoError(t, m.WrapForEncode(buf, 0, 0, len(buf)))

	vd := NewVarData(m.Window(), engine, primitive.Uint8)
	err := vd.Set(make([]byte, 256))
	assert.ErrorIs(t, err, errs.ErrLengthTooLarge)
	assert.Equal(t, 0, m.EncodedLength())
}

func TestVarData_BufferTooShort(t *testing.T) {
	buf := make([]byte, 3)
	engine := endian.GetLittleEndianEngine()
	m := NewMessage(engine)
	require.NoError(t, m.WrapForEncode(buf, 0, 0, len(buf)))

	vd := NewVarData(m.Window(), engine, primitive.Uint8)
	err := vd.Set([]byte("too long"))
	assert.ErrorIs(t, err, errs.ErrBufferTooShort)
	assert.Equal(t, 0, m.EncodedLength())
}
