// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/integrate/rule"
	"github.com/katalvlaran/integrate/seq"
)

// Interpolated integrates discrete samples between x[ai] and x[bi] by fitting
// a natural cubic spline through all of (x, y) and applying the Gauss rule
// of order OrderFor(bi−ai) to it.
//
// Negative indices count from the end. ai == bi yields 0.
//
// Errors:
//   - rule.ErrLengthMismatch, rule.ErrTooFewSamples (< 3), rule.ErrIndexRange.
//   - ErrNotIncreasing if x is not strictly increasing.
//
// Complexity: O(n) to fit, O(order·log n) to integrate.
func Interpolated[T seq.Float](x, y seq.Sequence[T], ai, bi int) (T, error) {
	n := x.Len()
	if n != y.Len() {
		return 0, fmt.Errorf("Interpolated: %w", rule.ErrLengthMismatch)
	}
	if n < 3 {
		return 0, fmt.Errorf("Interpolated: %w", rule.ErrTooFewSamples)
	}
	ai, bi = seq.Resolve(ai, n), seq.Resolve(bi, n)
	if ai < 0 || bi >= n || ai > bi {
		return 0, fmt.Errorf("Interpolated: %w", rule.ErrIndexRange)
	}
	if ai == bi {
		return 0, nil
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i], ys[i] = float64(x.At(i)), float64(y.At(i))
		if i > 0 && xs[i] <= xs[i-1] {
			return 0, fmt.Errorf("Interpolated: %w", ErrNotIncreasing)
		}
	}

	var spline interp.NaturalCubic
	if err := spline.Fit(xs, ys); err != nil {
		return 0, fmt.Errorf("Interpolated: %w", err)
	}

	g := ForPoints[float64](bi - ai)
	area := g.Integrate(spline.Predict, xs[ai], xs[bi])

	return T(area), nil
}
