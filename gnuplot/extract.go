// SPDX-License-Identifier: MIT

package gnuplot

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/integrate/matrix"
)

// Extract1D returns the (x, y) pairs of every point that has both, in input
// order. Z values are ignored.
//
// Errors: ErrNoData.
func Extract1D(points []Point) (x, y []float64, err error) {
	x = make([]float64, 0, len(points))
	y = make([]float64, 0, len(points))
	for _, p := range points {
		if p.Cols >= 2 {
			x = append(x, p.X)
			y = append(y, p.Y)
		}
	}
	if len(x) == 0 {
		return nil, nil, fmt.Errorf("Extract1D: %w", ErrNoData)
	}

	return x, y, nil
}

// Extract2D reshapes the three-column points into a grid.
//
// Implementation:
//   - Stage 1: collect the distinct x and y values, sorted ascending.
//   - Stage 2: allocate a len(x)×len(y) Dense, zero-filled.
//   - Stage 3: store each z at (index of x, index of y); later duplicates
//     overwrite earlier ones and missing cells stay zero.
//
// Errors:
//   - ErrNoData if no point has three columns and non-NaN x and y.
//   - matrix.ErrNaNInf if a z value is not finite.
//
// Complexity: O(n log n).
func Extract2D(points []Point) (x, y []float64, z *matrix.Dense, err error) {
	xIndex := make(map[float64]int)
	yIndex := make(map[float64]int)
	for _, p := range points {
		if gridPoint(p) {
			xIndex[p.X] = 0
			yIndex[p.Y] = 0
		}
	}
	if len(xIndex) == 0 {
		return nil, nil, nil, fmt.Errorf("Extract2D: %w", ErrNoData)
	}

	x = sortedKeys(xIndex)
	y = sortedKeys(yIndex)
	z, err = matrix.NewDense(len(x), len(y))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("Extract2D: %w", err)
	}
	for _, p := range points {
		if !gridPoint(p) {
			continue
		}
		if err = z.Set(xIndex[p.X], yIndex[p.Y], p.Z); err != nil {
			return nil, nil, nil, fmt.Errorf("Extract2D: %w", err)
		}
	}

	return x, y, z, nil
}

// sortedKeys returns the keys of m in ascending order and records each
// key's position as its value.
func sortedKeys(m map[float64]int) []float64 {
	keys := maps.Keys(m)
	slices.Sort(keys)
	for i, k := range keys {
		m[k] = i
	}

	return keys
}

// gridPoint reports whether p can be placed on the grid. NaN never equals
// itself, so it cannot serve as a grid coordinate.
func gridPoint(p Point) bool {
	return p.Cols == 3 && !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}
