// SPDX-License-Identifier: MIT

package seq

import "fmt"

// Resolve maps a caller-facing index onto [0, n): negative indices address
// the sequence from its end (-1 is the last element) and are shifted by n
// until non-negative. Non-negative indices are returned unchanged, as is
// every index when n <= 0.
//
// Complexity: O(1).
func Resolve(i, n int) int {
	if n <= 0 || i >= 0 {
		return i
	}
	// Same result as adding n repeatedly, without the loop.
	return i + ((-i+n-1)/n)*n
}

// Element returns s.At(i) with wrap-around addressing for negative i.
func Element[T Float](s Sequence[T], i int) T {
	return s.At(Resolve(i, s.Len()))
}

// Size returns s.Len().
func Size[T Float](s Sequence[T]) int {
	return s.Len()
}

// Collect materializes s into a fresh slice.
// Complexity: O(n) time and memory.
func Collect[T Float](s Sequence[T]) []T {
	out := make([]T, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}

	return out
}

// From resolves an arbitrary value into a Sequence[T].
//
// Implementation:
//   - Stage 1: values that already implement Sequence[T] are returned as is.
//   - Stage 2: pick the element accessor by priority:
//     func(int) T, then At(int) T, then []T.
//   - Stage 3: pick the size accessor by priority:
//     Len(), Size(), Length(), Rows(), then len([]T).
//
// Errors:
//   - ErrUnsupported if no element accessor matches.
//   - ErrNoSize if elements are reachable but the size is not.
//
// The resolution happens once; the returned view calls the chosen accessors
// directly.
func From[T Float](v any) (Sequence[T], error) {
	if s, ok := v.(Sequence[T]); ok {
		return s, nil
	}

	elem, err := elementOf[T](v)
	if err != nil {
		return nil, fmt.Errorf("From(%T): %w", v, err)
	}
	size, err := sizeOf[T](v)
	if err != nil {
		return nil, fmt.Errorf("From(%T): %w", v, err)
	}

	return NewLazy(elem, size), nil
}

// elementOf picks the 1D element accessor of v.
func elementOf[T Float](v any) (func(int) T, error) {
	switch c := v.(type) {
	case func(int) T:
		return c, nil
	case interface{ At(int) T }:
		return c.At, nil
	case []T:
		return func(i int) T { return c[i] }, nil
	}

	return nil, ErrUnsupported
}

// sizeOf picks the 1D size accessor of v.
func sizeOf[T Float](v any) (func() int, error) {
	switch c := v.(type) {
	case interface{ Len() int }:
		return c.Len, nil
	case interface{ Size() int }:
		return c.Size, nil
	case interface{ Length() int }:
		return c.Length, nil
	case interface{ Rows() int }:
		return c.Rows, nil
	case []T:
		n := len(c)
		return func() int { return n }, nil
	}

	return nil, ErrNoSize
}

// From2D resolves an arbitrary value into a Grid[T].
//
// Element priority: func(int, int) T, At(int, int) T, MatrixLike, [][]T.
// Size priority: Rows()/Cols(), Size(axis), Length(axis), len(g)/len(g[0]).
//
// Errors: ErrUnsupported, ErrNoSize, ErrRagged (for [][]T).
func From2D[T Float](v any) (Grid[T], error) {
	if g, ok := v.(Grid[T]); ok {
		return g, nil
	}
	if rows, ok := v.([][]T); ok {
		g, err := NewRows(rows)
		if err != nil {
			return nil, fmt.Errorf("From2D(%T): %w", v, err)
		}
		return g, nil
	}

	elem, err := element2DOf[T](v)
	if err != nil {
		return nil, fmt.Errorf("From2D(%T): %w", v, err)
	}
	size, err := size2DOf(v)
	if err != nil {
		return nil, fmt.Errorf("From2D(%T): %w", v, err)
	}

	return NewLazy2D(elem, size), nil
}

// element2DOf picks the 2D element accessor of v.
func element2DOf[T Float](v any) (func(i, j int) T, error) {
	switch c := v.(type) {
	case func(int, int) T:
		return c, nil
	case interface{ At(int, int) T }:
		return c.At, nil
	case MatrixLike:
		return FromMatrix[T](c).At, nil
	}

	return nil, ErrUnsupported
}

// size2DOf picks the per-axis size accessor of v.
func size2DOf(v any) (func(axis int) int, error) {
	switch c := v.(type) {
	case interface {
		Rows() int
		Cols() int
	}:
		return func(axis int) int {
			if axis == 0 {
				return c.Rows()
			}
			return c.Cols()
		}, nil
	case interface{ Size(int) int }:
		return c.Size, nil
	case interface{ Length(int) int }:
		return c.Length, nil
	}

	return nil, ErrNoSize
}
