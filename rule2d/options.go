// SPDX-License-Identifier: MIT

package rule2d

const panicWorkersNegative = "rule2d: WithWorkers: n must be >= 0"

// Option configures a Wrapper.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	workers int // row goroutines; 0 or 1 runs rows sequentially
}

// WithWorkers integrates up to n rows concurrently. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *Options) { o.workers = n }
}

func gatherOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
