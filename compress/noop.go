package compress

// NoOpDecompressor passes data through unchanged: the Decompressor for a
// plain, uncompressed .sbeir file.
type NoOpDecompressor struct{}

var _ Decompressor = NoOpDecompressor{}

// NewNoOpDecompressor creates a pass-through decompressor.
func NewNoOpDecompressor() NoOpDecompressor {
	return NoOpDecompressor{}
}

// Decompress returns data unchanged.
func (NoOpDecompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
