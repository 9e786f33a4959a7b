package buffer

import (
	"testing"

	"github.com/arloliu/sbe/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_Invariants(t *testing.T) {
	buf := make([]byte, 32)
	w, err := Wrap(buf, 0, 32)
	require.NoError(t, err)
	assert.Equal(t, 0, w.Base())
	assert.Equal(t, 0, w.Position())
	assert.Equal(t, 32, w.Capacity())
}

func TestWrap_TooShortForFlyweight(t *testing.T) {
	buf := make([]byte, 4)
	_, err := Wrap(buf, 0, 8)
	assert.ErrorIs(t, err, errs.ErrBufferTooShortForFlyweight)
}

func TestAdvance_BoundsAndMonotonic(t *testing.T) {
	buf := make([]byte, 16)
	w, err := Wrap(buf, 0, 16)
	require.NoError(t, err)

	require.NoError(t, w.Advance(10))
	assert.Equal(t, 10, w.Position())

	err = w.Advance(10)
	assert.ErrorIs(t, err, errs.ErrBufferTooShort)
	// failed advance leaves position unchanged
	assert.Equal(t, 10, w.Position())

	require.NoError(t, w.Advance(6))
	assert.Equal(t, 16, w.Position())
}

func TestEncodedLength(t *testing.T) {
	buf := make([]byte, 16)
	w, err := Wrap(buf, 4, 16)
	require.NoError(t, err)
	require.NoError(t, w.Advance(8)) // position now base(4)+8=12
	assert.Equal(t, 8, w.EncodedLength())
}

func TestWrapForDecode_CarriesActingFields(t *testing.T) {
	buf := make([]byte, 16)
	w, err := WrapForDecode(buf, 0, 12, 1, 16)
	require.NoError(t, err)
	assert.Equal(t, 12, w.ActingBlockLength())
	assert.Equal(t, 1, w.ActingVersion())
}
