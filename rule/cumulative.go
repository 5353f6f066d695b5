// SPDX-License-Identifier: MIT

package rule

import "github.com/katalvlaran/integrate/seq"

// Cumulative returns the running integral of (x, y) under r: element k−1 is
// r.DiscreteRange(x, y, 0, k) for k in [1, n).
//
// This is the indefinite-integral table; its last element equals
// r.Discrete(x, y).
//
// Errors: ErrLengthMismatch, ErrTooFewSamples, or whatever r reports.
// Complexity: O(n²) rule work (each prefix is integrated afresh).
func Cumulative[T seq.Float](r Sampled[T], x, y seq.Sequence[T]) ([]T, error) {
	n, err := checkSamples(x, y, 2)
	if err != nil {
		return nil, ruleErrorf("Cumulative", err)
	}

	out := make([]T, 0, n-1)
	for k := 1; k < n; k++ {
		v, err := r.DiscreteRange(x, y, 0, k)
		if err != nil {
			return nil, ruleErrorf("Cumulative", err)
		}
		out = append(out, v)
	}

	return out, nil
}
