// SPDX-License-Identifier: MIT

// Package adaptive refines an elementary quadrature rule by recursive
// subdivision until successive estimates agree.
//
// Algorithm (per interval):
//
//	NeedEstimate → baseline r.Integrate(f, a, b, baseline)
//	Refining     → split [a,b] into n children, estimate each with
//	               r.Integrate(child, n), sum them
//	Converged    → 2·|sum − prior| / (sum + prior) ≤ tol: return sum
//	otherwise    → recurse into every child with its own estimate as prior
//	MaxDepth     → depth > max (bounded variant only): return prior
//
// Two variants share the code: New caps the recursion depth (default 20) and
// accepts the last estimate once the cap is hit; NewRecursive has no cap and
// trusts the integrand to converge.
//
// Caveat: the convergence ratio divides by sum + prior as is. Where that sum
// is negative the ratio is negative and the interval counts as converged;
// where it is zero the ratio is ±Inf or NaN, and only +Inf keeps refining.
// Integrands with negative or zero net area should be shifted or split by
// the caller.
package adaptive
