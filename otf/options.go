package otf

import (
	"errors"

	"github.com/arloliu/sbe/internal/options"
)

// defaultMaxDepth bounds group/composite recursion for token streams that
// arrive from untrusted IR files. Real schemas rarely nest past single digits.
const defaultMaxDepth = 64

// Option configures a Decoder.
type Option = options.Option[*Decoder]

// WithMaxDepth overrides the maximum group/composite nesting depth the walk
// tolerates before failing with errs.ErrNestingTooDeep.
func WithMaxDepth(depth int) Option {
	return options.New(func(d *Decoder) error {
		if depth <= 0 {
			return errors.New("otf: max depth must be positive")
		}
		d.maxDepth = depth

		return nil
	})
}
