// SPDX-License-Identifier: MIT

package rule

import "github.com/katalvlaran/integrate/seq"

// Simpson is the composite Simpson rule.
//
// The callable form samples the midpoint of every subinterval; the discrete
// forms consume samples in overlapping triples (x_i, x_{i+1}, x_{i+2}) and
// integrate the interpolating quadratic, so spacing need not be uniform.
//
// Exact for polynomials up to degree three on uniform data.
type Simpson[T seq.Float] struct {
	resolution int
}

// NewSimpson returns a Simpson rule configured by opts.
func NewSimpson[T seq.Float](opts ...Option) Simpson[T] {
	return Simpson[T]{resolution: gatherOptions(opts).resolution}
}

// Integrate sums (f(x) + 4f(x + dx/2) + f(x + dx))·dx/6 over n subintervals.
//
// Errors: ErrTooFewIntervals if n < 1.
// Complexity: 2n+1 evaluations of f.
func (r Simpson[T]) Integrate(f func(T) T, a, b T, n int) (T, error) {
	if err := checkIntervals(n); err != nil {
		return 0, ruleErrorf("Simpson.Integrate", err)
	}
	dx := (b - a) / T(n)
	half := dx / 2

	// Shared endpoints: f(x_i) enters twice except at a and b.
	sum := f(a) + f(b)
	for i := 0; i < n; i++ {
		x := a + T(i)*dx
		sum += 4 * f(x+half)
		if i > 0 {
			sum += 2 * f(x)
		}
	}

	return sum * dx / 6, nil
}

// IntegrateFixed calls Integrate with the configured resolution.
func (r Simpson[T]) IntegrateFixed(f func(T) T, a, b T) (T, error) {
	return r.Integrate(f, a, b, fixedResolution(r.resolution))
}

// Discrete integrates the whole sample set; see DiscreteRange.
func (r Simpson[T]) Discrete(x, y seq.Sequence[T]) (T, error) {
	return r.DiscreteRange(x, y, 0, -1)
}

// DiscreteRange integrates the samples between ai and bi.
//
// Implementation:
//   - Stage 1: for i = ai, ai+2, … while i+2 ≤ bi, integrate the quadratic
//     through points i, i+1, i+2 over [x_i, x_{i+2}].
//   - Stage 2: if one interval [x_{bi−1}, x_{bi}] is left, fit a quadratic
//     through the three points ending at bi (or the first three points if
//     bi < 2) and integrate it over that interval only.
//
// Errors: ErrLengthMismatch, ErrTooFewSamples (< 3), ErrIndexRange.
func (r Simpson[T]) DiscreteRange(x, y seq.Sequence[T], ai, bi int) (T, error) {
	n, err := checkSamples(x, y, 3)
	if err != nil {
		return 0, ruleErrorf("Simpson.DiscreteRange", err)
	}
	ai, bi, err = resolveRange(ai, bi, n)
	if err != nil {
		return 0, ruleErrorf("Simpson.DiscreteRange", err)
	}

	var sum T
	i := ai
	for ; i+2 <= bi; i += 2 {
		sum += quadraticArea(x, y, i, x.At(i), x.At(i+2))
	}
	if i < bi {
		w := max(0, bi-2)
		sum += quadraticArea(x, y, w, x.At(bi-1), x.At(bi))
	}

	return sum, nil
}

// Uniform is DiscreteRange specialised to spacing dx:
// dx/3·(y_0 + 4y_1 + y_2) per pair, dx/12·(−y_0 + 8y_1 + 5y_2) for a
// trailing interval.
//
// Errors: ErrTooFewSamples (< 3).
func (r Simpson[T]) Uniform(y seq.Sequence[T], dx T) (T, error) {
	n := y.Len()
	if n < 3 {
		return 0, ruleErrorf("Simpson.Uniform", ErrTooFewSamples)
	}

	var sum T
	i := 0
	for ; i+2 < n; i += 2 {
		sum += (y.At(i) + 4*y.At(i+1) + y.At(i+2)) * dx / 3
	}
	if i < n-1 {
		sum += (-y.At(n-3) + 8*y.At(n-2) + 5*y.At(n-1)) * dx / 12
	}

	return sum, nil
}

// quadraticArea integrates the quadratic through samples w, w+1, w+2 over
// [lo, hi].
//
// Newton form about x_0 = x_w with h = x_1 − x_0:
//
//	p(x_0 + t) = y_0 + c1·t + c2·t·(t − h)
//	∫_0^t p   = y_0·t + c1·t²/2 + c2·(t³/3 − h·t²/2)
func quadraticArea[T seq.Float](x, y seq.Sequence[T], w int, lo, hi T) T {
	x0, x1, x2 := x.At(w), x.At(w+1), x.At(w+2)
	y0, y1, y2 := y.At(w), y.At(w+1), y.At(w+2)

	h := x1 - x0
	c1 := (y1 - y0) / h
	c2 := ((y2-y1)/(x2-x1) - c1) / (x2 - x0)

	prim := func(t T) T {
		t2 := t * t
		return y0*t + c1*t2/2 + c2*(t2*t/3-h*t2/2)
	}

	return prim(hi-x0) - prim(lo-x0)
}
