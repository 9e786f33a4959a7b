// Package compress decompresses persisted IR token streams. A .sbeir file is
// the only place compression appears: the SBE message wire format itself is
// never compressed, but an IR file written by a schema build step may be, and
// ir.LoadFile/ir.LoadBytes decompress it with one of the Decompressors here
// before decoding the frame and tokens.
package compress

import (
	"fmt"

	"github.com/arloliu/sbe/format"
)

// Decompressor decompresses a persisted IR token stream read from a .sbeir
// file. The input is never modified. The zstd, s2 and lz4 implementations
// return a newly allocated slice (nil for empty input); NoOpDecompressor
// returns the input slice itself. Implementations are safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// ForType returns the Decompressor matching the algorithm tag a caller
// recorded alongside a persisted IR file. There is no auto-detection: the
// writer of a compressed .sbeir file must convey the tag out of band.
func ForType(t format.CompressionType) (Decompressor, error) {
	switch t {
	case format.CompressionNone:
		return NewNoOpDecompressor(), nil
	case format.CompressionZstd:
		return NewZstdDecompressor(), nil
	case format.CompressionS2:
		return NewS2Decompressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Decompressor(), nil
	default:
		return nil, fmt.Errorf("compress: unsupported compression type: %s", t)
	}
}
