package ir

import (
	"github.com/arloliu/sbe/compress"
	"github.com/arloliu/sbe/format"
	"github.com/arloliu/sbe/internal/options"
)

// loadConfig holds LoadFile/LoadBytes settings assembled from Option values.
type loadConfig struct {
	decomp compress.Decompressor
}

// Option configures LoadFile or LoadBytes.
type Option = options.Option[*loadConfig]

// WithDecompressor decompresses the raw bytes with d before decoding them as
// an IR stream. There is no auto-detection: a caller that persisted a
// compressed .sbeir file must pass the matching decompressor back in.
func WithDecompressor(d compress.Decompressor) Option {
	return options.NoError(func(c *loadConfig) {
		c.decomp = d
	})
}

// WithCompression is WithDecompressor keyed by the algorithm tag recorded
// alongside the file, resolved via compress.ForType.
func WithCompression(t format.CompressionType) Option {
	return options.New(func(c *loadConfig) error {
		d, err := compress.ForType(t)
		if err != nil {
			return err
		}
		c.decomp = d

		return nil
	})
}

func newLoadConfig(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
