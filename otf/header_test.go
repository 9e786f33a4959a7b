package otf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/sbe/endian"
	"github.com/arloliu/sbe/errs"
	"github.com/arloliu/sbe/ir"
	"github.com/arloliu/sbe/primitive"
)

// messageHeaderTokens is a header composite with explicit member offsets
// (0, 4, 8, 10 — 12 bytes total), the layout the composite-offsets walk
// tests pair with.
func messageHeaderTokens() []ir.Token {
	return []ir.Token{
		{Signal: ir.SignalBeginComposite, Name: "messageHeader", Size: 12, ComponentTokenCount: 6},
		{Signal: ir.SignalEncoding, Name: "blockLength", PrimitiveType: primitive.Uint16, Offset: 0, Size: 2},
		{Signal: ir.SignalEncoding, Name: "templateId", PrimitiveType: primitive.Uint16, Offset: 4, Size: 2},
		{Signal: ir.SignalEncoding, Name: "schemaId", PrimitiveType: primitive.Uint16, Offset: 8, Size: 2},
		{Signal: ir.SignalEncoding, Name: "version", PrimitiveType: primitive.Uint16, Offset: 10, Size: 2},
		{Signal: ir.SignalEndComposite, Name: "messageHeader"},
	}
}

func TestHeaderDecoder_Decode(t *testing.T) {
	h, err := NewHeaderDecoder(messageHeaderTokens())
	require.NoError(t, err)
	assert.Equal(t, 12, h.EncodedLength())

	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 12)
	require.NoError(t, primitive.SetUint16(buf, 0, 16, engine))
	require.NoError(t, primitive.SetUint16(buf, 4, 1, engine))
	require.NoError(t, primitive.SetUint16(buf, 8, 15, engine))
	require.NoError(t, primitive.SetUint16(buf, 10, 0, engine))

	hdr, err := h.Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, Header{BlockLength: 16, TemplateID: 1, SchemaID: 15, Version: 0}, hdr)
}

func TestHeaderDecoder_DecodeAtOffset(t *testing.T) {
	h, err := NewHeaderDecoder(messageHeaderTokens())
	require.NoError(t, err)

	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 20)
	require.NoError(t, primitive.SetUint16(buf, 8, 47, engine))
	require.NoError(t, primitive.SetUint16(buf, 12, 3, engine))

	hdr, err := h.Decode(buf, 8)
	require.NoError(t, err)
	assert.Equal(t, 47, hdr.BlockLength)
	assert.Equal(t, 3, hdr.TemplateID)
}

func TestHeaderDecoder_MissingMember(t *testing.T) {
	tokens := messageHeaderTokens()
	tokens[2].Name = "somethingElse"

	_, err := NewHeaderDecoder(tokens)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestHeaderDecoder_TruncatedBuffer(t *testing.T) {
	h, err := NewHeaderDecoder(messageHeaderTokens())
	require.NoError(t, err)

	_, err = h.Decode(make([]byte, 6), 0)
	assert.ErrorIs(t, err, errs.ErrBufferTooShort)
}

func TestHeaderDecoder_RejectsNonComposite(t *testing.T) {
	_, err := NewHeaderDecoder(nil)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)

	_, err = NewHeaderDecoder(messageHeaderTokens()[1:])
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}
