package reachability

// Option configures optional behavior of CheckMove, in the usual
// functional-options shape.
type Option func(*Options)

// Options holds configurable parameters for a CheckMove call.
type Options struct {
	// InvertX mirrors every Jump edge's X component before applying it.
	InvertX bool
	// InvertY mirrors every Jump edge's Y component before applying it.
	InvertY bool

	// OnExpand, if non-nil, is invoked each time a trace is popped and
	// expanded, with its current board position and graph node.
	// Intended for diagnostics/tracing, not control flow.
	OnExpand func(position [2]int, node uint64)

	// TilesVisited counts the number of distinct (position, node) pairs
	// the search actually expanded, for diagnostics.
	TilesVisited int
}

// DefaultOptions returns the zero-value Options: no inversion, no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithInvertX mirrors every Jump's X displacement before it is applied.
func WithInvertX(invert bool) Option {
	return func(o *Options) { o.InvertX = invert }
}

// WithInvertY mirrors every Jump's Y displacement before it is applied.
func WithInvertY(invert bool) Option {
	return func(o *Options) { o.InvertY = invert }
}

// WithOnExpand installs a diagnostic hook called once per expanded trace.
func WithOnExpand(f func(position [2]int, node uint64)) Option {
	return func(o *Options) { o.OnExpand = f }
}
