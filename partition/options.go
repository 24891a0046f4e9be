package partition

// Options configures Bisect.
type Options struct {
	// MaxPasses bounds the number of Kernighan-Lin improvement passes run at
	// each level of recursive bisection. Default 10.
	MaxPasses int
}

// Option is a functional option for Bisect.
type Option func(*Options)

// WithMaxPasses overrides the KL improvement-pass cap.
func WithMaxPasses(n int) Option {
	return func(o *Options) { o.MaxPasses = n }
}

func defaultOptions() Options {
	return Options{MaxPasses: 10}
}
