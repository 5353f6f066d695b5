// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"github.com/katalvlaran/integrate/rule"
	"github.com/katalvlaran/integrate/seq"
)

// Legendre is an N-point Gauss-Legendre rule. The zero value has no nodes
// and integrates everything to 0; build one with New or ForPoints.
type Legendre[T seq.Float] struct {
	table Table
}

// New returns the rule of the given order.
//
// Errors: ErrUnsupportedOrder.
func New[T seq.Float](order int) (Legendre[T], error) {
	t, err := Lookup(order)
	if err != nil {
		return Legendre[T]{}, fmt.Errorf("New: %w", err)
	}

	return Legendre[T]{table: t}, nil
}

// ForPoints returns the rule of order OrderFor(points).
func ForPoints[T seq.Float](points int) Legendre[T] {
	g, _ := New[T](OrderFor(points)) // OrderFor only yields supported orders

	return g
}

// Order returns the number of nodes.
func (g Legendre[T]) Order() int { return g.table.Order }

// Integrate evaluates (b−a)/2 · Σ w_k·f((b−a)/2·x_k + (a+b)/2).
//
// Exact for polynomials of degree ≤ 2·Order()−1. a > b flips the sign.
// Complexity: Order() evaluations of f.
func (g Legendre[T]) Integrate(f func(T) T, a, b T) T {
	half := (b - a) / 2
	mid := (a + b) / 2

	var sum T
	for k, xk := range g.table.X {
		sum += T(g.table.W[k]) * f(half*T(xk)+mid)
	}

	return half * sum
}

// Panels returns the composite form of g: [a,b] is split into n equal
// panels and g is applied to each. The result satisfies rule.Callable, so
// Gauss-Legendre can drive adaptive refinement.
func (g Legendre[T]) Panels() rule.Callable[T] {
	return panels[T]{g: g}
}

type panels[T seq.Float] struct {
	g Legendre[T]
}

// Integrate sums g over n equal panels.
func (p panels[T]) Integrate(f func(T) T, a, b T, n int) (T, error) {
	if n < 1 {
		return 0, fmt.Errorf("Panels.Integrate: %w", rule.ErrTooFewIntervals)
	}
	dx := (b - a) / T(n)

	var sum T
	for i := 0; i < n; i++ {
		lo := a + T(i)*dx
		sum += p.g.Integrate(f, lo, lo+dx)
	}

	return sum, nil
}
