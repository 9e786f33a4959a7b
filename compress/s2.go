package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Decompressor decodes S2-compressed IR files: a balanced speed/ratio
// choice when a service reloads its IR file frequently.
type S2Decompressor struct{}

var _ Decompressor = S2Decompressor{}

// NewS2Decompressor creates an S2 decompressor.
func NewS2Decompressor() S2Decompressor {
	return S2Decompressor{}
}

// Decompress decodes an S2 block.
func (S2Decompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoded, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return decoded, nil
}
