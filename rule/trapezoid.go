// SPDX-License-Identifier: MIT

package rule

import "github.com/katalvlaran/integrate/seq"

// Trapezoid is the composite trapezoid rule: each subinterval contributes
// ½·(y_i + y_{i+1})·(x_{i+1} − x_i).
//
// Exact for linear functions; second-order accurate otherwise.
type Trapezoid[T seq.Float] struct {
	resolution int
}

// NewTrapezoid returns a Trapezoid rule configured by opts.
func NewTrapezoid[T seq.Float](opts ...Option) Trapezoid[T] {
	return Trapezoid[T]{resolution: gatherOptions(opts).resolution}
}

// Integrate evaluates dx·(½f(a) + Σ f(a + i·dx) + ½f(b)) over n subintervals,
// i.e. n+1 nodes with both endpoints included.
//
// Errors: ErrTooFewIntervals if n < 1.
// Complexity: O(n) evaluations of f.
func (r Trapezoid[T]) Integrate(f func(T) T, a, b T, n int) (T, error) {
	if err := checkIntervals(n); err != nil {
		return 0, ruleErrorf("Trapezoid.Integrate", err)
	}
	dx := (b - a) / T(n)
	sum := (f(a) + f(b)) / 2
	for i := 1; i < n; i++ {
		sum += f(a + T(i)*dx)
	}

	return sum * dx, nil
}

// IntegratePoints is Integrate phrased in evaluation points: points nodes
// spanning [a,b] inclusive, i.e. points−1 subintervals.
//
// Errors: ErrTooFewPoints if points < 2.
func (r Trapezoid[T]) IntegratePoints(f func(T) T, a, b T, points int) (T, error) {
	if points < 2 {
		return 0, ruleErrorf("Trapezoid.IntegratePoints", ErrTooFewPoints)
	}

	return r.Integrate(f, a, b, points-1)
}

// IntegrateFixed calls Integrate with the configured resolution.
func (r Trapezoid[T]) IntegrateFixed(f func(T) T, a, b T) (T, error) {
	return r.Integrate(f, a, b, fixedResolution(r.resolution))
}

// Discrete integrates the whole sample set; see DiscreteRange.
func (r Trapezoid[T]) Discrete(x, y seq.Sequence[T]) (T, error) {
	return r.DiscreteRange(x, y, 0, -1)
}

// DiscreteRange sums ½·(y_i + y_{i+1})·(x_{i+1} − x_i) for i in [ai, bi).
// Negative indices count from the end; ai == bi yields 0.
//
// Errors: ErrLengthMismatch, ErrTooFewSamples (< 2), ErrIndexRange.
func (r Trapezoid[T]) DiscreteRange(x, y seq.Sequence[T], ai, bi int) (T, error) {
	n, err := checkSamples(x, y, 2)
	if err != nil {
		return 0, ruleErrorf("Trapezoid.DiscreteRange", err)
	}
	ai, bi, err = resolveRange(ai, bi, n)
	if err != nil {
		return 0, ruleErrorf("Trapezoid.DiscreteRange", err)
	}

	var sum T
	for i := ai; i < bi; i++ {
		sum += (y.At(i) + y.At(i+1)) * (x.At(i+1) - x.At(i))
	}

	return sum / 2, nil
}

// Uniform evaluates dx·(½y_0 + y_1 + … + y_{n−2} + ½y_{n−1}).
//
// Errors: ErrTooFewSamples (< 2).
func (r Trapezoid[T]) Uniform(y seq.Sequence[T], dx T) (T, error) {
	n := y.Len()
	if n < 2 {
		return 0, ruleErrorf("Trapezoid.Uniform", ErrTooFewSamples)
	}
	sum := (y.At(0) + y.At(n-1)) / 2
	for i := 1; i < n-1; i++ {
		sum += y.At(i)
	}

	return sum * dx, nil
}
