// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions.
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer and resolve the numeric policy.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom copies a rectangular [][]float64 into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions for empty or ragged input.
//   - ErrNaNInf if validation is on and a value is not finite.
func NewDenseFrom(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d columns, want %d: %w",
				i, len(row), m.c, ErrInvalidDimensions)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf returns the flat offset of (i, j) or ErrOutOfRange.
func (m *Dense) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, ErrOutOfRange
	}

	return i*m.c + j, nil
}

// At returns the element at (i, j).
// Errors: ErrOutOfRange, wrapped with the coordinates.
func (m *Dense) At(i, j int) (float64, error) {
	k, err := m.indexOf(i, j)
	if err != nil {
		return 0, denseErrorf(ctxAt, i, j, err)
	}

	return m.data[k], nil
}

// Set assigns v at (i, j).
//
// Implementation:
//   - Stage 1: bounds check.
//   - Stage 2: numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write.
//
// Errors: ErrOutOfRange, ErrNaNInf.
func (m *Dense) Set(i, j int, v float64) error {
	k, err := m.indexOf(i, j)
	if err != nil {
		return denseErrorf(ctxSet, i, j, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	m.data[k] = v

	return nil
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
