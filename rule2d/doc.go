// SPDX-License-Identifier: MIT

// Package rule2d lifts the one-dimensional rules of package rule to two
// dimensions by iterated integration.
//
// For a grid f(i, j) sampled at (x_i, y_j):
//
//	s_i = ∫ f(x_i, y) dy      (y rule over row i, viewed lazily)
//	I   = ∫ s(x) dx           (x rule over the row integrals)
//
// Wrapper performs this composition for any pair of rule.Sampled values;
// Riemann, Trapezoid and Simpson are Wrappers built from the matching 1D
// rule on both axes. Callables are discretised into lazy coordinate and
// value grids, so no (xn+1)·(yn+1) buffer is allocated; only the row
// integrals s_i are stored.
//
// Rows are independent; WithWorkers spreads them over a goroutine pool.
package rule2d
