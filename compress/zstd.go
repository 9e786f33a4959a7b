package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool reuses zstd decoders across Decompress calls. The
// klauspost decoder is designed to operate without allocations after warmup,
// so pooling one per concurrent caller amortises its setup cost.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// ZstdDecompressor decodes Zstandard-compressed IR files: the best ratio of
// the supported algorithms, suited to an IR file shipped with a release
// artifact and read rarely.
type ZstdDecompressor struct{}

var _ Decompressor = ZstdDecompressor{}

// NewZstdDecompressor creates a Zstd decompressor backed by the shared
// decoder pool.
func NewZstdDecompressor() ZstdDecompressor {
	return ZstdDecompressor{}
}

// Decompress decodes a zstd frame, validating the input format.
func (ZstdDecompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder) //nolint:forcetypeassert
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
