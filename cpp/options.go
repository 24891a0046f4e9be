package cpp

// Options configures Solve.
type Options struct {
	// Start is the vertex the returned closed walk begins and ends at. If
	// unset (zero value with hasStart false), Solve picks the smallest
	// vertex ID that has at least one incident edge.
	Start    int
	hasStart bool

	// ExactMatchingThreshold forwards to matching.WithExactThreshold: the
	// largest odd-vertex-set size handled by the exact bitmask-DP matcher
	// before Solve falls back to the greedy+2-opt heuristic. Default 20.
	ExactMatchingThreshold int
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithStart fixes the start/end vertex of the returned closed walk.
func WithStart(v int) Option {
	return func(o *Options) {
		o.Start = v
		o.hasStart = true
	}
}

// WithExactMatchingThreshold overrides the matching package's exact/greedy
// size cutoff.
func WithExactMatchingThreshold(n int) Option {
	return func(o *Options) { o.ExactMatchingThreshold = n }
}

func defaultOptions() Options {
	return Options{ExactMatchingThreshold: 20}
}
