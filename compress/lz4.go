package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Decompressor decodes LZ4-frame-compressed IR files: the fastest
// decompression of the supported algorithms, suited to many processes loading
// the same IR file at startup.
type LZ4Decompressor struct{}

var _ Decompressor = LZ4Decompressor{}

// NewLZ4Decompressor creates an LZ4 frame decompressor.
func NewLZ4Decompressor() LZ4Decompressor {
	return LZ4Decompressor{}
}

// Decompress reads an LZ4 frame to its end.
func (LZ4Decompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r := lz4.NewReader(bytes.NewReader(data))
	decompressed, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return decompressed, nil
}
