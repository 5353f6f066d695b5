// SPDX-License-Identifier: MIT

package seq

// Lazy wraps an element closure and a size closure into a Sequence, so a
// generator can stand in for backing storage without materializing it.
//
// Both closures must be free of side effects: rules may traverse the same
// sequence several times and in any order.
//
// Example:
//
//	// x_i = a + i·dx for i in [0, n] without allocating n+1 floats.
//	x := seq.NewLazy(func(i int) float64 { return a + float64(i)*dx },
//	                 func() int { return n + 1 })
type Lazy[T Float] struct {
	elem func(i int) T
	size func() int
}

// NewLazy builds a Lazy from an element and a size closure.
func NewLazy[T Float](elem func(i int) T, size func() int) Lazy[T] {
	return Lazy[T]{elem: elem, size: size}
}

// At returns elem(i).
func (l Lazy[T]) At(i int) T { return l.elem(i) }

// Len returns size().
func (l Lazy[T]) Len() int { return l.size() }

// Lazy2D is the two-dimensional counterpart of Lazy: an element closure
// f(i, j) plus a size closure addressed by axis (0 = rows, 1 = columns).
type Lazy2D[T Float] struct {
	elem func(i, j int) T
	size func(axis int) int
}

// NewLazy2D builds a Lazy2D from an element and a per-axis size closure.
func NewLazy2D[T Float](elem func(i, j int) T, size func(axis int) int) Lazy2D[T] {
	return Lazy2D[T]{elem: elem, size: size}
}

// At returns elem(i, j).
func (l Lazy2D[T]) At(i, j int) T { return l.elem(i, j) }

// Size returns the extent along axis (0 or 1).
func (l Lazy2D[T]) Size(axis int) int { return l.size(axis) }

// Rows returns Size(0).
func (l Lazy2D[T]) Rows() int { return l.size(0) }

// Cols returns Size(1).
func (l Lazy2D[T]) Cols() int { return l.size(1) }

// Row returns a lazy view of row i: j ↦ g.At(i, j).
// Complexity: O(1), no allocation of the row.
func Row[T Float](g Grid[T], i int) Lazy[T] {
	return NewLazy(func(j int) T { return g.At(i, j) }, g.Cols)
}

// Linspace returns the lazy uniform axis a + i·(b-a)/n for i in [0, n],
// i.e. n+1 points including both ends.
func Linspace[T Float](a, b T, n int) Lazy[T] {
	dx := (b - a) / T(n)

	return NewLazy(
		func(i int) T { return a + T(i)*dx },
		func() int { return n + 1 },
	)
}
