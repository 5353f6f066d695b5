// SPDX-License-Identifier: MIT

package seq_test

import (
	"testing"

	"github.com/katalvlaran/integrate/seq"
	"github.com/stretchr/testify/assert"
)

// TestLazy_WrapsSlice checks that a Lazy over a slice sees later writes
// (no copy is taken) and reports the slice length.
func TestLazy_WrapsSlice(t *testing.T) {
	v := make([]float64, 10)
	f := seq.NewLazy(func(i int) float64 { return v[i] }, func() int { return len(v) })
	for i := range v {
		v[i] = float64(10 + i) // fill after wrapping
	}

	assert.Equal(t, 10, f.Len())
	assert.Equal(t, 10.0, f.At(0))
	assert.Equal(t, 11.0, f.At(1))
	assert.Equal(t, 19.0, f.At(9))
}

// TestLazy_Generator checks a storage-free sequence.
func TestLazy_Generator(t *testing.T) {
	f := seq.NewLazy(func(i int) float64 { return 0.1 * float64(i) }, func() int { return 100 })

	assert.Equal(t, 100, f.Len())
	assert.InDelta(t, 0.0, f.At(0), 1e-15)
	assert.InDelta(t, 0.1, f.At(1), 1e-15)
	assert.InDelta(t, 9.9, f.At(99), 1e-12)

	// restartable: a second traversal sees identical values
	assert.Equal(t, f.At(42), f.At(42))
}

// TestLazy2D_WrapsSlice addresses a flat 5×2 buffer through (i, j).
func TestLazy2D_WrapsSlice(t *testing.T) {
	v := make([]float64, 10)
	for i := range v {
		v[i] = float64(10 + i)
	}
	f := seq.NewLazy2D(
		func(i, j int) float64 { return v[i*2+j] },
		func(axis int) int {
			if axis == 0 {
				return 5
			}
			return 2
		},
	)

	assert.Equal(t, 5, f.Size(0))
	assert.Equal(t, 2, f.Size(1))
	assert.Equal(t, 5, f.Rows())
	assert.Equal(t, 2, f.Cols())
	assert.Equal(t, 10.0, f.At(0, 0))
	assert.Equal(t, 11.0, f.At(0, 1))
	assert.Equal(t, 12.0, f.At(1, 0))
	assert.Equal(t, 19.0, f.At(4, 1))
}

// TestRow views a single row of a grid lazily.
func TestRow(t *testing.T) {
	g := seq.Rows[float64]{{1, 2, 3}, {4, 5, 6}}
	r := seq.Row[float64](g, 1)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 6.0, r.At(2))
}

// fakeMatrix mimics the bounds-checked accessor of the matrix package.
type fakeMatrix struct{}

func (fakeMatrix) Rows() int { return 2 }
func (fakeMatrix) Cols() int { return 3 }
func (fakeMatrix) At(i, j int) (float64, error) {
	return float64(i*3 + j), nil
}

func TestFromMatrix(t *testing.T) {
	g := seq.FromMatrix[float32](fakeMatrix{})

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, float32(5), g.At(1, 2))
}
