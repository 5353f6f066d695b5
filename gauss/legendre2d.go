// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"github.com/katalvlaran/integrate/internal/parallel"
	"github.com/katalvlaran/integrate/seq"
)

// Legendre2D is the tensor product of an N-point rule with itself.
type Legendre2D[T seq.Float] struct {
	table   Table
	workers int
}

// New2D returns the 2D rule of the given order.
//
// Errors: ErrUnsupportedOrder.
func New2D[T seq.Float](order int, opts ...Option) (Legendre2D[T], error) {
	t, err := Lookup(order)
	if err != nil {
		return Legendre2D[T]{}, fmt.Errorf("New2D: %w", err)
	}

	return Legendre2D[T]{table: t, workers: gatherOptions(opts).workers}, nil
}

// Order returns the number of nodes per axis.
func (g Legendre2D[T]) Order() int { return g.table.Order }

// Integrate evaluates ∫_a^b ∫_c^d f(x, y) dy dx.
//
// Implementation:
//   - Stage 1: each outer node x_i gets its own job computing
//     row_i = w_i · Σ_j w_j·f(x_i, y_j); jobs run on up to WithWorkers
//     goroutines and write only row_i.
//   - Stage 2: rows are summed in index order, so the result does not
//     depend on scheduling.
//
// Complexity: Order()² evaluations of f.
func (g Legendre2D[T]) Integrate(f func(x, y T) T, a, b, c, d T) T {
	hx, mx := (b-a)/2, (a+b)/2
	hy, my := (d-c)/2, (c+d)/2
	xs, ws := g.table.X, g.table.W

	rows := make([]T, len(xs))
	// Jobs never fail, so the pool error is always nil.
	_ = parallel.For(len(xs), g.workers, func(i int) error {
		x := hx*T(xs[i]) + mx
		var inner T
		for j, yj := range xs {
			inner += T(ws[j]) * f(x, hy*T(yj)+my)
		}
		rows[i] = T(ws[i]) * inner
		return nil
	})

	var sum T
	for _, r := range rows {
		sum += r
	}

	return hx * hy * sum
}
