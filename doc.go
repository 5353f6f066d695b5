// SPDX-License-Identifier: MIT

// Package integrate is the root of a generic numerical quadrature library:
// one- and two-dimensional integration of callables and of sampled data,
// over any floating-point scalar type.
//
// The library is organized as a set of small packages, leaves first:
//
//	seq/      — read-only sequence and grid views (slices, lazy generators,
//	            matrix adapters) consumed by every sampled-data rule
//	rule/     — Riemann, Trapezoid and Simpson rules over callables and
//	            samples, plus cumulative (indefinite) integration
//	gauss/    — fixed-order Gauss-Legendre rules (8/16/32/64 points) in 1D
//	            and 2D, and spline-backed integration of samples
//	adaptive/ — error-controlled refinement over any callable rule
//	rule2d/   — 2D rules built by composing 1D sampled rules row by row
//	matrix/   — dense row-major grid with NaN/Inf validation
//	gnuplot/  — reader for whitespace-separated gnuplot data files
//
// The integrate command (cmd/integrate) wires these together for data files
// on disk or standard input.
//
// Quick example:
//
//	s := rule.NewSimpson[float64]()
//	area, err := s.Integrate(math.Sin, 0, math.Pi, 100) // ≈ 2
//
// All rules are stateless values and safe for concurrent use.
package integrate
