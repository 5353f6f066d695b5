// SPDX-License-Identifier: MIT

package adaptive

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/integrate/rule"
	"github.com/katalvlaran/integrate/seq"
)

// Quadrature is an adaptive integrator built on top of an elementary rule.
// It holds only configuration; every call threads its own estimate and
// depth, so a Quadrature is safe for concurrent use if its rule is.
type Quadrature[T seq.Float] struct {
	r    rule.Callable[T]
	opts Options
}

// New returns the bounded variant: recursion stops once depth exceeds
// WithMaxDepth (default 20) and the last estimate is accepted.
func New[T seq.Float](r rule.Callable[T], opts ...Option) Quadrature[T] {
	return Quadrature[T]{r: r, opts: gatherOptions(true, opts)}
}

// NewRecursive returns the unbounded variant. It recurses until every
// interval converges; pathological integrands may not terminate.
func NewRecursive[T seq.Float](r rule.Callable[T], opts ...Option) Quadrature[T] {
	q := New(r, opts...)
	q.opts.bounded = false

	return q
}

// Bounded reports whether the depth cap applies.
func (q Quadrature[T]) Bounded() bool { return q.opts.bounded }

// Integrate is IntegrateN with the configured subdivision count.
func (q Quadrature[T]) Integrate(f func(T) T, a, b T) (T, error) {
	return q.IntegrateN(f, a, b, q.opts.subdivisions)
}

// IntegrateN integrates f over [a,b], splitting every refined interval into
// n children.
//
// Errors: rule.ErrTooFewIntervals if n < 1; errors of the wrapped rule.
func (q Quadrature[T]) IntegrateN(f func(T) T, a, b T, n int) (T, error) {
	if n < 1 {
		return 0, fmt.Errorf("Quadrature.IntegrateN: %w", rule.ErrTooFewIntervals)
	}
	prior, err := q.r.Integrate(f, a, b, q.opts.baseline)
	if err != nil {
		return 0, fmt.Errorf("Quadrature.IntegrateN: baseline: %w", err)
	}

	return q.refine(f, a, b, n, prior, 0)
}

// refine performs one Refining step on [a,b] against prior.
func (q Quadrature[T]) refine(f func(T) T, a, b T, n int, prior T, depth int) (T, error) {
	if q.opts.bounded && depth > q.opts.maxDepth {
		if q.opts.log != nil {
			q.opts.log.WithFields(logrus.Fields{
				"a":     float64(a),
				"b":     float64(b),
				"depth": depth,
			}).Debug("adaptive: max depth reached, accepting estimate")
		}
		return prior, nil
	}

	dx := (b - a) / T(n)
	sums := make([]T, n)
	var sum T
	for i := range sums {
		lo := a + T(i)*dx
		s, err := q.r.Integrate(f, lo, lo+dx, n)
		if err != nil {
			return 0, err
		}
		sums[i] = s
		sum += s
	}

	// Relative change against the prior; see the package caveat.
	diff := sum - prior
	if diff < 0 {
		diff = -diff
	}
	if !(float64(2*diff/(sum+prior)) > q.opts.tol) {
		return sum, nil
	}

	sum = 0
	for i, s := range sums {
		lo := a + T(i)*dx
		v, err := q.refine(f, lo, lo+dx, n, s, depth+1)
		if err != nil {
			return 0, err
		}
		sum += v
	}

	return sum, nil
}
