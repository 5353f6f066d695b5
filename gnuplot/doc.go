// SPDX-License-Identifier: MIT

// Package gnuplot reads whitespace-separated numeric data in the layout
// gnuplot plots from, and reshapes it for integration.
//
// Format, one point per line:
//
//	y          single column: x is the running index of such lines
//	x y        two columns
//	x y z      three columns (a sample of z(x, y))
//
// Blank lines and lines whose first non-blank character is '#' are skipped.
// Parsing a line stops at the first token that is not a number, so trailing
// annotations are ignored. A line with more than three numbers yields a
// point with no usable coordinates.
package gnuplot
