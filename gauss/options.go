// SPDX-License-Identifier: MIT

package gauss

import "runtime"

const panicWorkersNegative = "gauss: WithWorkers: n must be >= 0"

// DefaultWorkers runs the outer loop on the calling goroutine.
const DefaultWorkers = 1

// Option configures a Legendre2D rule.
type Option func(*Options)

// Options holds the resolved 2D configuration.
type Options struct {
	workers int // outer-loop goroutines, resolved to >= 1
}

// WithWorkers bounds the number of goroutines evaluating outer nodes.
// n = 0 selects runtime.GOMAXPROCS(0); n = 1 runs sequentially.
// With more than one worker, f must be safe for concurrent use.
// Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *Options) { o.workers = n }
}

func gatherOptions(opts []Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
