package yscl

// DefaultMaxDepth is the container nesting limit applied when no
// WithMaxDepth option is given.
const DefaultMaxDepth = 512

// Option configures a parse.
type Option func(*parser)

// WithMaxDepth limits how deeply lists and maps may nest. The implicit
// top-level map does not count. A limit of 0 or less disables the check.
func WithMaxDepth(depth int) Option {
	return func(p *parser) {
		p.maxDepth = depth
	}
}
