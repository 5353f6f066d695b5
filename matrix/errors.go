// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ...". Callers match with
// errors.Is; context is attached with %w at the detection site.
var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive
	// or that input rows are ragged.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// denseErrorf wraps err with "Dense.<method>(row,col)" context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
