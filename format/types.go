// Package format defines small closed enumerations shared by the compress
// package and ir.LoadFile/ir.LoadBytes: the compression algorithm tag recorded alongside a
// persisted IR file.
package format

// CompressionType identifies the algorithm used to compress a persisted IR
// token stream on disk. It has no bearing on the SBE wire format itself,
// which is never compressed.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
