// SPDX-License-Identifier: MIT

package seq

import "golang.org/x/exp/constraints"

// Float is the scalar constraint shared by every rule: float32, float64 and
// named types over them.
type Float interface {
	constraints.Float
}

// Sequence is a finite, ordered, read-only list of values.
// Index domain is [0, Len()); implementations may panic outside of it.
type Sequence[T Float] interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at zero-based index i.
	At(i int) T
}

// Grid is a read-only 2D field addressed as (i, j), i along the first axis
// (rows, x) and j along the second (columns, y).
type Grid[T Float] interface {
	// Rows returns the size along the first axis.
	Rows() int

	// Cols returns the size along the second axis.
	Cols() int

	// At returns the element at (i, j).
	At(i, j int) T
}

// Compile-time conformance of the adapters.
var (
	_ Sequence[float64] = Slice[float64](nil)
	_ Sequence[float64] = Func[float64]{}
	_ Sequence[float64] = Lazy[float64]{}
	_ Grid[float64]     = Rows[float64](nil)
	_ Grid[float64]     = Lazy2D[float64]{}
	_ Grid[float64]     = Checked[float64]{}
)
