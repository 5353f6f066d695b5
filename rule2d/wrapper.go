// SPDX-License-Identifier: MIT

package rule2d

import (
	"fmt"

	"github.com/katalvlaran/integrate/internal/parallel"
	"github.com/katalvlaran/integrate/rule"
	"github.com/katalvlaran/integrate/seq"
)

// Wrapper composes an x-axis and a y-axis 1D rule into a 2D rule.
type Wrapper[T seq.Float] struct {
	x, y    rule.Sampled[T]
	workers int
}

// NewWrapper returns a Wrapper integrating rows with y and the row integrals
// with x.
func NewWrapper[T seq.Float](x, y rule.Sampled[T], opts ...Option) Wrapper[T] {
	return Wrapper[T]{x: x, y: y, workers: gatherOptions(opts).workers}
}

// Discrete integrates the grid f sampled at (x_i, y_j).
//
// Errors:
//   - ErrShapeMismatch if f is not x.Len()×y.Len().
//   - errors of the 1D rules (too few samples and so on), tagged with the
//     failing row.
//
// Complexity: x.Len()·y.Len() reads of f, O(x.Len()) memory.
func (w Wrapper[T]) Discrete(x, y seq.Sequence[T], f seq.Grid[T]) (T, error) {
	if f.Rows() != x.Len() || f.Cols() != y.Len() {
		return 0, fmt.Errorf("Wrapper.Discrete: %d×%d grid for %d×%d coordinates: %w",
			f.Rows(), f.Cols(), x.Len(), y.Len(), ErrShapeMismatch)
	}

	sums, err := w.rows(f, func(row seq.Sequence[T]) (T, error) {
		return w.y.Discrete(y, row)
	})
	if err != nil {
		return 0, fmt.Errorf("Wrapper.Discrete: %w", err)
	}

	v, err := w.x.Discrete(x, sums)
	if err != nil {
		return 0, fmt.Errorf("Wrapper.Discrete: %w", err)
	}

	return v, nil
}

// Uniform integrates the grid f sampled on spacing dx (rows) and dy
// (columns).
func (w Wrapper[T]) Uniform(f seq.Grid[T], dx, dy T) (T, error) {
	sums, err := w.rows(f, func(row seq.Sequence[T]) (T, error) {
		return w.y.Uniform(row, dy)
	})
	if err != nil {
		return 0, fmt.Errorf("Wrapper.Uniform: %w", err)
	}

	v, err := w.x.Uniform(sums, dx)
	if err != nil {
		return 0, fmt.Errorf("Wrapper.Uniform: %w", err)
	}

	return v, nil
}

// Integrate discretises f on xn×yn equal cells of [xa,xb]×[ya,yb], i.e.
// (xn+1)×(yn+1) lazily evaluated nodes, and integrates the grid.
//
// Errors: rule.ErrTooFewIntervals if xn < 1 or yn < 1.
func (w Wrapper[T]) Integrate(f func(x, y T) T, xa, xb T, xn int, ya, yb T, yn int) (T, error) {
	if xn < 1 || yn < 1 {
		return 0, fmt.Errorf("Wrapper.Integrate: %w", rule.ErrTooFewIntervals)
	}
	xs := seq.Linspace(xa, xb, xn)
	ys := seq.Linspace(ya, yb, yn)
	grid := seq.NewLazy2D(
		func(i, j int) T { return f(xs.At(i), ys.At(j)) },
		func(axis int) int {
			if axis == 0 {
				return xs.Len()
			}
			return ys.Len()
		},
	)

	return w.Discrete(xs, ys, grid)
}

// rows applies integrate to every row of f and returns the row integrals.
// Each job writes only its own slot.
func (w Wrapper[T]) rows(f seq.Grid[T], integrate func(seq.Sequence[T]) (T, error)) (seq.Slice[T], error) {
	sums := make(seq.Slice[T], f.Rows())
	err := parallel.For(len(sums), w.workers, func(i int) error {
		s, err := integrate(seq.Row(f, i))
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		sums[i] = s
		return nil
	})

	return sums, err
}
