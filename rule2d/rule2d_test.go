// SPDX-License-Identifier: MIT

package rule2d_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/integrate/rule"
	"github.com/katalvlaran/integrate/rule2d"
	"github.com/katalvlaran/integrate/seq"
)

// sinGrid samples sin(x)·sin(y) on n×n points spanning [0, π/2]².
func sinGrid(n int) (seq.Lazy[float64], seq.Rows[float64], float64) {
	axis := seq.Linspace(0.0, math.Pi/2, n-1)
	f := make(seq.Rows[float64], n)
	for i := range f {
		f[i] = make([]float64, n)
		for j := range f[i] {
			f[i][j] = math.Sin(axis.At(i)) * math.Sin(axis.At(j))
		}
	}

	return axis, f, (math.Pi / 2) / float64(n-1)
}

func TestWrapper_RiemannSmall(t *testing.T) {
	w := rule2d.NewWrapper[float64](rule.NewRiemann[float64](), rule.NewRiemann[float64]())
	x := seq.Slice[float64]{0, 1, 2}
	y := seq.Slice[float64]{0, 1, 2, 3}
	f := seq.Rows[float64]{
		{2, 3, 4, 5},
		{3, 4, 5, 6},
		{4, 5, 6, 7},
	}

	got, err := w.Discrete(x, y, f)
	require.NoError(t, err)
	assert.InDelta(t, 9.0+12.0, got, 1e-12) // last row and column unused
}

func TestRules_SinSin(t *testing.T) {
	axis, f, _ := sinGrid(100)

	got, err := rule2d.NewRiemann[float64]().Discrete(axis, axis, f)
	require.NoError(t, err)
	assert.Less(t, got, 1.0)
	assert.InEpsilon(t, 1.0, got, 0.1)
	assert.Greater(t, math.Abs(got-1), 0.01) // first order: visibly off

	got, err = rule2d.NewTrapezoid[float64]().Discrete(axis, axis, f)
	require.NoError(t, err)
	assert.Less(t, got, 1.0)
	assert.InEpsilon(t, 1.0, got, 1e-4)
	assert.Greater(t, math.Abs(got-1), 1e-5)

	got, err = rule2d.NewSimpson[float64]().Discrete(axis, axis, f)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.0, got, 1e-7)
}

func TestSimpson_Uniform(t *testing.T) {
	_, f, d := sinGrid(100)

	got, err := rule2d.NewSimpson[float64]().Uniform(f, d, d)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.0, got, 1e-7)
}

func TestTrapezoid_Callable(t *testing.T) {
	f := func(x, y float64) float64 { return math.Sin(x) * math.Sin(y) }
	got, err := rule2d.NewTrapezoid[float64]().Integrate(f, 0, math.Pi/2, 100, 0, math.Pi/2, 100)
	require.NoError(t, err)
	assert.Less(t, got, 1.0)
	assert.InEpsilon(t, 1.0, got, 0.01)

	_, err = rule2d.NewTrapezoid[float64]().Integrate(f, 0, 1, 0, 0, 1, 10)
	assert.ErrorIs(t, err, rule.ErrTooFewIntervals)
}

func TestRiemann_Direct(t *testing.T) {
	f := func(x, y float64) float64 { return math.Sin(x) * math.Sin(y) }
	r := rule2d.NewRiemann[float64]()

	wrapped, err := r.Integrate(f, 0, math.Pi/2, 100, 0, math.Pi/2, 100)
	require.NoError(t, err)
	direct, err := r.IntegrateDirect(f, 0, math.Pi/2, 100, 0, math.Pi/2, 100)
	require.NoError(t, err)
	assert.InDelta(t, direct, wrapped, 1e-12)

	_, err = r.IntegrateDirect(f, 0, 1, 10, 0, 1, 0)
	assert.ErrorIs(t, err, rule.ErrTooFewIntervals)
}

// TestSeparable checks that for f = g(x)·h(y) every rule returns the product
// of its 1D results, on non-uniform axes.
func TestSeparable(t *testing.T) {
	x := seq.Slice[float64]{0, 0.3, 0.5, 1.2, 1.4, 2}
	y := seq.Slice[float64]{-1, -0.2, 0.1, 0.9, 1.5}
	g := func(v float64) float64 { return v*v + 1 }
	h := math.Exp

	gx := seq.NewLazy(func(i int) float64 { return g(x[i]) }, x.Len)
	hy := seq.NewLazy(func(j int) float64 { return h(y[j]) }, y.Len)
	grid := seq.NewLazy2D(
		func(i, j int) float64 { return g(x[i]) * h(y[j]) },
		func(axis int) int {
			if axis == 0 {
				return x.Len()
			}
			return y.Len()
		},
	)

	cases := []struct {
		name string
		r1   rule.Sampled[float64]
		r2   interface {
			Discrete(x, y seq.Sequence[float64], f seq.Grid[float64]) (float64, error)
		}
	}{
		{"Riemann", rule.NewRiemann[float64](), rule2d.NewRiemann[float64]()},
		{"Trapezoid", rule.NewTrapezoid[float64](), rule2d.NewTrapezoid[float64]()},
		{"Simpson", rule.NewSimpson[float64](), rule2d.NewSimpson[float64]()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ix, err := tc.r1.Discrete(x, gx)
			require.NoError(t, err)
			iy, err := tc.r1.Discrete(y, hy)
			require.NoError(t, err)

			got, err := tc.r2.Discrete(x, y, grid)
			require.NoError(t, err)
			assert.InDelta(t, ix*iy, got, 1e-12)
		})
	}
}

func TestWrapper_Parallel(t *testing.T) {
	axis, f, _ := sinGrid(64)

	seqV, err := rule2d.NewSimpson[float64]().Discrete(axis, axis, f)
	require.NoError(t, err)
	parV, err := rule2d.NewSimpson[float64](rule2d.WithWorkers(8)).Discrete(axis, axis, f)
	require.NoError(t, err)
	assert.Equal(t, seqV, parV) // rows combined in index order

	assert.Panics(t, func() { rule2d.WithWorkers(-1) })
}

func TestWrapper_Errors(t *testing.T) {
	tr := rule2d.NewTrapezoid[float64]()
	x := seq.Slice[float64]{0, 1, 2}
	y := seq.Slice[float64]{0, 1}

	_, err := tr.Discrete(x, y, seq.Rows[float64]{{1, 2}, {3, 4}})
	assert.ErrorIs(t, err, rule2d.ErrShapeMismatch)

	// Simpson needs three samples along y.
	_, err = rule2d.NewSimpson[float64]().Discrete(x, y, seq.Rows[float64]{{1, 2}, {3, 4}, {5, 6}})
	assert.ErrorIs(t, err, rule.ErrTooFewSamples)
}

// TestCircleArea integrates the indicator of the unit disc with nested 1D
// Simpson rules whose inner limits depend on the outer variable.
func TestCircleArea(t *testing.T) {
	s := rule.NewSimpson[float64]()
	one := func(float64) float64 { return 1 }
	chord := func(y float64) float64 {
		if y*y > 1 {
			return 0
		}
		lim := math.Sqrt(1 - y*y)
		v, err := s.Integrate(one, -lim, lim, 100)
		require.NoError(t, err)
		return v
	}

	area, err := s.Integrate(chord, -1, 1, 100)
	require.NoError(t, err)
	assert.InEpsilon(t, math.Pi, area, 1e-3)
}
