package ir

import (
	"errors"
	"io"
	"os"
)

// LoadBytes decodes an in-memory IR stream into a Registry. If opts supplies
// WithDecompressor or WithCompression, data is decompressed first.
func LoadBytes(data []byte, opts ...Option) (*Registry, error) {
	cfg, err := newLoadConfig(opts...)
	if err != nil {
		return nil, err
	}

	if cfg.decomp != nil {
		data, err = cfg.decomp.Decompress(data)
		if err != nil {
			return nil, err
		}
	}

	return DecodeBytes(data)
}

// LoadFile reads path in full and decodes it as a persisted IR stream,
// collapsing concurrent first-loads of the same path into a single decode.
// The whole file is read with io.ReadAll so short reads and I/O errors are
// never conflated.
func LoadFile(path string, opts ...Option) (*Registry, error) {
	return defaultCache.loadOnce(path, func() (*Registry, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close() //nolint:errcheck

		data, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		if len(data) == 0 {
			return nil, errors.New("ir: empty file " + path)
		}

		return LoadBytes(data, opts...)
	})
}
