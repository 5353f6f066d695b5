// SPDX-License-Identifier: MIT

// Package rule implements the elementary one-dimensional quadrature rules:
// Riemann (left endpoint), Trapezoid and Simpson.
//
// Every rule is a stateless value exposing three call forms:
//
//	Integrate(f, a, b, n)         — callable over [a,b] split into n equal subintervals
//	DiscreteRange(x, y, ai, bi)   — non-uniform samples between logical indices ai..bi
//	Uniform(y, dx)                — uniformly spaced samples
//
// plus the conveniences IntegrateFixed(f, a, b) (configured resolution,
// see WithResolution) and Discrete(x, y) (the whole sample range).
//
// Stencils (dx = (b-a)/n, nodes a + i·dx):
//
//	Riemann:   Σ f(a+i·dx)·dx,                          i ∈ [0,n)
//	Trapezoid: dx·(½f(a) + f(a+dx) + … + f(b−dx) + ½f(b))
//	Simpson:   Σ (f(x) + 4f(x+dx/2) + f(x+dx))·dx/6     per subinterval
//
// Discrete Simpson consumes three points per step. When the selected range
// holds an even number of samples one interval is left over: a quadratic is
// fitted through the LAST three points and only its last interval is
// integrated, so no fourth point is ever needed.
//
// Negative sample indices address the data from its end (bi = -1 is the
// last sample); see seq.Resolve.
//
// Errors (sentinel, match with errors.Is):
//
//	ErrTooFewIntervals — n < 1 for the callable form.
//	ErrTooFewPoints    — fewer than 2 points for Trapezoid.IntegratePoints.
//	ErrTooFewSamples   — fewer than 2 samples (3 for Simpson).
//	ErrLengthMismatch  — len(x) != len(y).
//	ErrIndexRange      — resolved ai/bi outside the data or ai > bi.
//
// All rules are safe for concurrent use.
package rule
