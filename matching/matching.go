package matching

// Solve returns a minimum (or, above the exact threshold, approximately
// minimum) weight perfect matching over vertices. len(vertices) must be even.
func Solve(vertices []int, weight WeightFunc, opts ...Option) (Matching, error) {
	if len(vertices)%2 != 0 {
		return Matching{}, ErrOddCardinality
	}
	if len(vertices) == 0 {
		return Matching{}, nil
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(vertices) <= cfg.ExactThreshold {
		return solveExact(vertices, weight)
	}

	return solveGreedyTwoOpt(vertices, weight, cfg.MaxTwoOptIterations)
}
