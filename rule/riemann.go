// SPDX-License-Identifier: MIT

package rule

import "github.com/katalvlaran/integrate/seq"

// Riemann is the left-endpoint rectangle rule: each subinterval [x_i, x_{i+1}]
// contributes y_i·(x_{i+1} − x_i).
//
// Exact for constants; first-order accurate otherwise.
type Riemann[T seq.Float] struct {
	resolution int
}

// NewRiemann returns a Riemann rule configured by opts.
func NewRiemann[T seq.Float](opts ...Option) Riemann[T] {
	return Riemann[T]{resolution: gatherOptions(opts).resolution}
}

// Integrate sums f(a + i·dx)·dx for i in [0, n), dx = (b − a)/n.
//
// Errors: ErrTooFewIntervals if n < 1.
// Complexity: O(n) evaluations of f.
func (r Riemann[T]) Integrate(f func(T) T, a, b T, n int) (T, error) {
	if err := checkIntervals(n); err != nil {
		return 0, ruleErrorf("Riemann.Integrate", err)
	}
	dx := (b - a) / T(n)
	var sum T
	for i := 0; i < n; i++ {
		sum += f(a + T(i)*dx)
	}

	return sum * dx, nil
}

// IntegrateFixed calls Integrate with the configured resolution.
func (r Riemann[T]) IntegrateFixed(f func(T) T, a, b T) (T, error) {
	return r.Integrate(f, a, b, fixedResolution(r.resolution))
}

// Discrete integrates the whole sample set; see DiscreteRange.
func (r Riemann[T]) Discrete(x, y seq.Sequence[T]) (T, error) {
	return r.DiscreteRange(x, y, 0, -1)
}

// DiscreteRange sums y_i·(x_{i+1} − x_i) for i in [ai, bi).
// Negative indices count from the end; ai == bi yields 0.
//
// Errors: ErrLengthMismatch, ErrTooFewSamples (< 2), ErrIndexRange.
func (r Riemann[T]) DiscreteRange(x, y seq.Sequence[T], ai, bi int) (T, error) {
	n, err := checkSamples(x, y, 2)
	if err != nil {
		return 0, ruleErrorf("Riemann.DiscreteRange", err)
	}
	ai, bi, err = resolveRange(ai, bi, n)
	if err != nil {
		return 0, ruleErrorf("Riemann.DiscreteRange", err)
	}

	var sum T
	for i := ai; i < bi; i++ {
		sum += y.At(i) * (x.At(i+1) - x.At(i))
	}

	return sum, nil
}

// Uniform sums the first n−1 samples times dx, matching DiscreteRange on
// x_i = i·dx. The last sample only closes the final interval, so this is
// not the sum of every sample: {1, 2, 3} with dx = 1 gives 3, not 6.
//
// Errors: ErrTooFewSamples (< 2).
func (r Riemann[T]) Uniform(y seq.Sequence[T], dx T) (T, error) {
	n := y.Len()
	if n < 2 {
		return 0, ruleErrorf("Riemann.Uniform", ErrTooFewSamples)
	}
	var sum T
	for i := 0; i < n-1; i++ {
		sum += y.At(i)
	}

	return sum * dx, nil
}
