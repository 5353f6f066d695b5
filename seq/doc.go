// SPDX-License-Identifier: MIT

// Package seq is the container access layer of integrate: the uniform
// "element at index" and "size" contract every quadrature rule reads its
// samples through.
//
// 🚀 What lives here?
//
//	• Sequence[T] / Grid[T] — the compile-time contract (1D and 2D views)
//	• Slice, Rows, Func     — zero-cost adapters for slices and index funcs
//	• Lazy, Lazy2D          — closures masquerading as random-access storage
//	• From, From2D          — runtime capability probe for heterogeneous values
//	• Resolve               — wrap-around addressing for negative indices
//
// Rules never see the backing storage. A slice, a lazily generated
// coordinate axis (x_i = a + i·dx) or a row of a 2D field (j ↦ f(i,j)) all
// look the same:
//
//	x := seq.Slice[float64]{0, 0.5, 2}
//	y := seq.NewLazy(func(i int) float64 { return x[i] + 1 }, x.Len)
//
// Capability priority used by the probe (resolved once per call):
//
//	element: func(int) T  →  At(int) T  →  []T
//	size:    Len()  →  Size()  →  Length()  →  Rows()  →  len([]T)
//
// Accessors that take a floating-point index (At(float64) T) never satisfy
// the integral-index capability; Go's method sets make this exact.
package seq
