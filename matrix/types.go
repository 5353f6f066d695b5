// SPDX-License-Identifier: MIT

package matrix

// Matrix is a mutable two-dimensional grid of float64 values with safe
// accessors.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j), or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j). Errors: ErrOutOfRange, ErrNaNInf (policy).
	Set(i, j int, v float64) error
}
