// SPDX-License-Identifier: MIT

package rule

import "github.com/katalvlaran/integrate/seq"

// checkIntervals rejects n < 1.
func checkIntervals(n int) error {
	if n < 1 {
		return ErrTooFewIntervals
	}

	return nil
}

// checkSamples validates a sample pair and returns its common length.
// Order: length mismatch first, then the stencil minimum.
func checkSamples[T seq.Float](x, y seq.Sequence[T], minLen int) (int, error) {
	n := x.Len()
	if n != y.Len() {
		return 0, ErrLengthMismatch
	}
	if n < minLen {
		return 0, ErrTooFewSamples
	}

	return n, nil
}

// resolveRange maps caller indices onto [0,n) and checks 0 <= ai <= bi < n.
func resolveRange(ai, bi, n int) (int, int, error) {
	ai, bi = seq.Resolve(ai, n), seq.Resolve(bi, n)
	if ai < 0 || bi >= n || ai > bi {
		return 0, 0, ErrIndexRange
	}

	return ai, bi, nil
}
