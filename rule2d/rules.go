// SPDX-License-Identifier: MIT

package rule2d

import (
	"fmt"

	"github.com/katalvlaran/integrate/rule"
	"github.com/katalvlaran/integrate/seq"
)

// Riemann is the 2D left-endpoint rule.
type Riemann[T seq.Float] struct {
	Wrapper[T]
}

// NewRiemann returns the 2D Riemann rule.
func NewRiemann[T seq.Float](opts ...Option) Riemann[T] {
	r := rule.NewRiemann[T]()

	return Riemann[T]{NewWrapper[T](r, r, opts...)}
}

// IntegrateDirect sums f at the lower-left corner of every cell times the
// cell area, without going through row integrals. It agrees with Integrate
// up to rounding.
//
// Errors: rule.ErrTooFewIntervals if xn < 1 or yn < 1.
func (r Riemann[T]) IntegrateDirect(f func(x, y T) T, xa, xb T, xn int, ya, yb T, yn int) (T, error) {
	if xn < 1 || yn < 1 {
		return 0, fmt.Errorf("Riemann.IntegrateDirect: %w", rule.ErrTooFewIntervals)
	}
	dx := (xb - xa) / T(xn)
	dy := (yb - ya) / T(yn)

	var sum T
	for i := 0; i < xn; i++ {
		x := xa + T(i)*dx
		for j := 0; j < yn; j++ {
			sum += f(x, ya+T(j)*dy)
		}
	}

	return sum * dx * dy, nil
}

// Trapezoid is the 2D trapezoid rule.
type Trapezoid[T seq.Float] struct {
	Wrapper[T]
}

// NewTrapezoid returns the 2D trapezoid rule.
func NewTrapezoid[T seq.Float](opts ...Option) Trapezoid[T] {
	r := rule.NewTrapezoid[T]()

	return Trapezoid[T]{NewWrapper[T](r, r, opts...)}
}

// Simpson is the 2D Simpson rule. Both axes need at least three samples.
type Simpson[T seq.Float] struct {
	Wrapper[T]
}

// NewSimpson returns the 2D Simpson rule.
func NewSimpson[T seq.Float](opts ...Option) Simpson[T] {
	r := rule.NewSimpson[T]()

	return Simpson[T]{NewWrapper[T](r, r, opts...)}
}
