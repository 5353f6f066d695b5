// SPDX-License-Identifier: MIT

// Package matrix provides a small bounds-checked dense grid of float64
// values.
//
// What & Why:
//
//	Tabulated 2D data (for example z(x, y) read from a gnuplot file) needs a
//	rectangular store whose public accessors never panic. Dense keeps a flat
//	row-major buffer (offset = i*cols + j) and returns sentinel errors for
//	bad shapes, indices and, by default, non-finite values.
//
// Integration:
//
//	*Dense satisfies seq.MatrixLike, so seq.FromMatrix turns it into a grid
//	the 2D rules can integrate directly.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); String: O(r*c).
package matrix
