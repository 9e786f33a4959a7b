package compress

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/sbe/format"
)

// irFixture stands in for a small persisted token stream: repetitive enough
// to compress, long enough to exercise multi-block paths.
func irFixture() []byte {
	return bytes.Repeat([]byte("tokenOffset=0 tokenSize=8 fieldId=42 signal=ENCODING "), 64)
}

func zstdFixture(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close() //nolint:errcheck

	return enc.EncodeAll(data, nil)
}

func lz4Fixture(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestNoOpDecompressor_PassesThrough(t *testing.T) {
	data := irFixture()
	out, err := NewNoOpDecompressor().Decompress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestZstdDecompressor_RoundTrip(t *testing.T) {
	data := irFixture()
	out, err := NewZstdDecompressor().Decompress(zstdFixture(t, data))
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestZstdDecompressor_CorruptInput(t *testing.T) {
	_, err := NewZstdDecompressor().Decompress([]byte("not a zstd frame"))
	assert.Error(t, err)
}

func TestS2Decompressor_RoundTrip(t *testing.T) {
	data := irFixture()
	out, err := NewS2Decompressor().Decompress(s2.Encode(nil, data))
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestS2Decompressor_CorruptInput(t *testing.T) {
	_, err := NewS2Decompressor().Decompress([]byte("not an s2 block"))
	assert.Error(t, err)
}

func TestLZ4Decompressor_RoundTrip(t *testing.T) {
	data := irFixture()
	out, err := NewLZ4Decompressor().Decompress(lz4Fixture(t, data))
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestLZ4Decompressor_CorruptInput(t *testing.T) {
	_, err := NewLZ4Decompressor().Decompress([]byte("not an lz4 frame"))
	assert.Error(t, err)
}

func TestDecompressors_EmptyInput(t *testing.T) {
	for _, d := range []Decompressor{
		NewZstdDecompressor(), NewS2Decompressor(), NewLZ4Decompressor(),
	} {
		out, err := d.Decompress(nil)
		require.NoError(t, err)
		assert.Nil(t, out)
	}
}

func TestForType(t *testing.T) {
	tests := []struct {
		typ  format.CompressionType
		want Decompressor
	}{
		{format.CompressionNone, NoOpDecompressor{}},
		{format.CompressionZstd, ZstdDecompressor{}},
		{format.CompressionS2, S2Decompressor{}},
		{format.CompressionLZ4, LZ4Decompressor{}},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			d, err := ForType(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}

	_, err := ForType(format.CompressionType(0x99))
	assert.Error(t, err)
}
