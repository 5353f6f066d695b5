// SPDX-License-Identifier: MIT

package rule

// DefaultResolution is the number of subintervals IntegrateFixed uses when a
// rule was built without WithResolution (or as a zero value).
const DefaultResolution = 10

const panicResolutionInvalid = "rule: WithResolution: n must be >= 1"

// Option configures a rule at construction time.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; use the
// WithX constructors.
type Options struct {
	resolution int // subintervals for IntegrateFixed; DefaultResolution
}

// WithResolution fixes the number of subintervals used by IntegrateFixed.
// Panics if n < 1 (programmer error).
func WithResolution(n int) Option {
	if n < 1 {
		panic(panicResolutionInvalid)
	}

	return func(o *Options) { o.resolution = n }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := Options{resolution: DefaultResolution}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// fixedResolution returns r, or DefaultResolution for zero-value rules.
func fixedResolution(r int) int {
	if r < 1 {
		return DefaultResolution
	}

	return r
}
