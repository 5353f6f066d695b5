// SPDX-License-Identifier: MIT

package adaptive

import (
	"math"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultTolerance is the relative agreement required between a parent
	// estimate and the sum of its children.
	DefaultTolerance = 1e-2

	// DefaultMaxDepth caps recursion in the bounded variant.
	DefaultMaxDepth = 20

	// DefaultSubdivisions is the child count per refinement step; it is also
	// the resolution each child is estimated with.
	DefaultSubdivisions = 2

	// DefaultBaseline is the resolution of the first, whole-interval estimate.
	DefaultBaseline = 3
)

const (
	panicToleranceInvalid    = "adaptive: WithTolerance: tol must be finite and >= 0"
	panicMaxDepthNegative    = "adaptive: WithMaxDepth: depth must be >= 0"
	panicSubdivisionsInvalid = "adaptive: WithSubdivisions: n must be >= 1"
	panicBaselineInvalid     = "adaptive: WithBaseline: n must be >= 1"
)

// Option configures a Quadrature.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	tol          float64
	maxDepth     int
	bounded      bool
	subdivisions int
	baseline     int
	log          logrus.FieldLogger // nil: silent
}

// WithTolerance sets the relative convergence tolerance.
// Panics on negative, NaN or infinite tol.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxDepth sets the recursion cap of the bounded variant. Depth 0 allows
// one refinement step below the baseline.
func WithMaxDepth(depth int) Option {
	if depth < 0 {
		panic(panicMaxDepthNegative)
	}

	return func(o *Options) { o.maxDepth = depth }
}

// Unbounded removes the depth cap. NewRecursive applies it implicitly.
func Unbounded() Option {
	return func(o *Options) { o.bounded = false }
}

// WithSubdivisions sets the default child count used by Integrate.
func WithSubdivisions(n int) Option {
	if n < 1 {
		panic(panicSubdivisionsInvalid)
	}

	return func(o *Options) { o.subdivisions = n }
}

// WithBaseline sets the resolution of the initial whole-interval estimate.
func WithBaseline(n int) Option {
	if n < 1 {
		panic(panicBaselineInvalid)
	}

	return func(o *Options) { o.baseline = n }
}

// WithLogger attaches a logger; depth-cap events are reported at debug level.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *Options) { o.log = log }
}

func gatherOptions(bounded bool, opts []Option) Options {
	o := Options{
		tol:          DefaultTolerance,
		maxDepth:     DefaultMaxDepth,
		bounded:      bounded,
		subdivisions: DefaultSubdivisions,
		baseline:     DefaultBaseline,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
