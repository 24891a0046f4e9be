package builder

import "math/rand"

// WeightFn produces the weight for the next generated edge.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeight returns a WeightFn that always yields w.
func ConstantWeight(w float64) WeightFn {
	return func(*rand.Rand) float64 { return w }
}

// UniformWeight returns a WeightFn drawing uniformly from [min, max).
func UniformWeight(min, max float64) WeightFn {
	return func(rng *rand.Rand) float64 { return min + rng.Float64()*(max-min) }
}

// Options configures a generator.
type Options struct {
	WeightFn WeightFn
	Rand     *rand.Rand
}

// Option is a functional option for the generators in this package.
type Option func(*Options)

// WithWeightFn overrides the edge-weight distribution.
func WithWeightFn(fn WeightFn) Option {
	return func(o *Options) { o.WeightFn = fn }
}

// WithRand overrides the random source (generators otherwise use a
// package-default deterministic source).
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}

func defaultOptions() Options {
	return Options{
		WeightFn: ConstantWeight(1),
		Rand:     rand.New(rand.NewSource(1)),
	}
}

func resolveOptions(opts []Option) Options {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
