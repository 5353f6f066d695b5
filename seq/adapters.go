// SPDX-License-Identifier: MIT

package seq

// Slice adapts a plain slice to Sequence.
//
//	s := seq.Slice[float64]{1, 2, 3}
//
// Complexity: At/Len O(1), no allocation.
type Slice[T Float] []T

// Len returns len(s).
func (s Slice[T]) Len() int { return len(s) }

// At returns s[i].
func (s Slice[T]) At(i int) T { return s[i] }

// Rows adapts a rectangular [][]T (row-major, g[i][j]) to Grid.
// Use NewRows to validate the shape once up front.
type Rows[T Float] [][]T

// NewRows validates that g is rectangular and returns it as a Grid.
// An empty g is a legal 0×0 grid.
func NewRows[T Float](g [][]T) (Rows[T], error) {
	for i := 1; i < len(g); i++ {
		if len(g[i]) != len(g[0]) {
			return nil, ErrRagged
		}
	}

	return Rows[T](g), nil
}

// Rows returns the number of rows.
func (g Rows[T]) Rows() int { return len(g) }

// Cols returns the length of the first row (0 for an empty grid).
func (g Rows[T]) Cols() int {
	if len(g) == 0 {
		return 0
	}

	return len(g[0])
}

// At returns g[i][j].
func (g Rows[T]) At(i, j int) T { return g[i][j] }

// Func is an index function with a fixed length, the cheapest way to turn
// func(int) T into a Sequence when the size is known up front.
type Func[T Float] struct {
	N int
	F func(i int) T
}

// Len returns N.
func (f Func[T]) Len() int { return f.N }

// At returns F(i).
func (f Func[T]) At(i int) T { return f.F(i) }

// MatrixLike is the bounds-checked 2D accessor shape of the matrix package
// (At returns a value and an error).
type MatrixLike interface {
	Rows() int
	Cols() int
	At(i, j int) (float64, error)
}

// Checked adapts a MatrixLike to Grid[T]. Rules only index inside the
// validated shape, so the accessor error is dropped.
type Checked[T Float] struct {
	M MatrixLike
}

// FromMatrix wraps m as a Grid[T].
func FromMatrix[T Float](m MatrixLike) Checked[T] {
	return Checked[T]{M: m}
}

// Rows returns M.Rows().
func (c Checked[T]) Rows() int { return c.M.Rows() }

// Cols returns M.Cols().
func (c Checked[T]) Cols() int { return c.M.Cols() }

// At returns M.At(i, j) converted to T.
func (c Checked[T]) At(i, j int) T {
	v, _ := c.M.At(i, j)

	return T(v)
}
