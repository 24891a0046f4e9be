package matching

// Pair is an unordered matched pair, always stored with Lo <= Hi so it can be
// used as a map key without double-insertion risk (spec.md §9).
type Pair struct {
	Lo, Hi int
}

// NewPair returns a Pair with its endpoints ordered (Lo <= Hi).
func NewPair(a, b int) Pair {
	if a <= b {
		return Pair{Lo: a, Hi: b}
	}

	return Pair{Lo: b, Hi: a}
}

// Matching is the result of a perfect-matching solve: Pairs partitions the
// input vertex set exactly, and Weight is the sum of each pair's cost under
// the weight function that produced it.
type Matching struct {
	Pairs  []Pair
	Weight float64
}

// WeightFunc computes the cost of matching u with v. Implementations must be
// symmetric: WeightFunc(u, v) == WeightFunc(v, u).
type WeightFunc func(u, v int) float64

// Options configures Solve.
type Options struct {
	// ExactThreshold is the largest input size handled by the exact bitmask
	// DP; larger inputs fall back to greedy+2-opt. Default 20.
	ExactThreshold int

	// MaxTwoOptIterations bounds the greedy+2-opt local-search pass. Default
	// 1000, per spec.md §4.2's documented ceiling.
	MaxTwoOptIterations int
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithExactThreshold overrides the exact-DP size cutoff.
func WithExactThreshold(n int) Option {
	return func(o *Options) { o.ExactThreshold = n }
}

// WithMaxTwoOptIterations overrides the 2-opt iteration cap.
func WithMaxTwoOptIterations(n int) Option {
	return func(o *Options) { o.MaxTwoOptIterations = n }
}

func defaultOptions() Options {
	return Options{ExactThreshold: 20, MaxTwoOptIterations: 1000}
}
