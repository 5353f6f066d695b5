// SPDX-License-Identifier: MIT

// Package gauss implements fixed-order Gauss-Legendre quadrature in one and
// two dimensions.
//
// 🚀 What is it?
//
//	An N-point Gauss-Legendre rule picks N nodes x_k in (-1, 1) and weights
//	w_k so that Σ w_k·p(x_k) = ∫_{-1}^{1} p for every polynomial p of degree
//	≤ 2N−1. An interval [a,b] is reached by the affine map
//	x = (b−a)/2·t + (a+b)/2.
//
// ✨ Supported orders: 8, 16, 32, 64. Any other order is rejected with
// ErrUnsupportedOrder. Tables are computed once per order on first use.
//
// ⚙️ Surfaces
//
//	Legendre[T]     — 1D rule: Integrate(f, a, b)
//	Legendre[T].Panels() — composite form usable as a rule.Callable
//	Legendre2D[T]   — tensor-product rule over [a,b]×[c,d], sequential
//	                  by default, outer loop spread over a worker pool
//	                  with WithWorkers (f must then be concurrency-safe)
//	Interpolated    — Gauss applied to a natural cubic spline through
//	                  discrete samples
//
// The rules are immutable after construction and safe for concurrent use.
package gauss
