// SPDX-License-Identifier: MIT

package rule

import "github.com/katalvlaran/integrate/seq"

// Callable integrates a function over [a,b] split into n equal subintervals.
// It is the primitive adaptive quadrature refines with.
type Callable[T seq.Float] interface {
	Integrate(f func(T) T, a, b T, n int) (T, error)
}

// Sampled integrates discrete samples. It is the primitive the 2D
// composition wrapper reduces to.
type Sampled[T seq.Float] interface {
	// Discrete integrates the whole non-uniform sample set.
	Discrete(x, y seq.Sequence[T]) (T, error)

	// DiscreteRange integrates samples between logical indices ai and bi.
	DiscreteRange(x, y seq.Sequence[T], ai, bi int) (T, error)

	// Uniform integrates samples spaced dx apart.
	Uniform(y seq.Sequence[T], dx T) (T, error)
}

// Rule is an elementary rule offering every call form.
type Rule[T seq.Float] interface {
	Callable[T]
	Sampled[T]

	// IntegrateFixed is Integrate with the rule's configured resolution.
	IntegrateFixed(f func(T) T, a, b T) (T, error)
}

var (
	_ Rule[float64] = Riemann[float64]{}
	_ Rule[float64] = Trapezoid[float64]{}
	_ Rule[float64] = Simpson[float64]{}
	_ Rule[float32] = Simpson[float32]{}
)
