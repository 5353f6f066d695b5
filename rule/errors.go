// SPDX-License-Identifier: MIT

package rule

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewIntervals is returned when a callable form is asked for n < 1
	// subintervals.
	ErrTooFewIntervals = errors.New("rule: need at least one subinterval")

	// ErrTooFewPoints is returned when a point-counting form receives fewer
	// than two points (one subinterval).
	ErrTooFewPoints = errors.New("rule: need at least two points")

	// ErrTooFewSamples indicates a sample sequence shorter than the rule's
	// stencil (2 for Riemann/Trapezoid, 3 for Simpson).
	ErrTooFewSamples = errors.New("rule: too few samples for this rule")

	// ErrLengthMismatch indicates x and y sequences of different length.
	ErrLengthMismatch = errors.New("rule: x and y lengths differ")

	// ErrIndexRange indicates a sub-range whose resolved bounds fall outside
	// the data or are reversed.
	ErrIndexRange = errors.New("rule: index range out of bounds")
)

// ruleErrorf tags a sentinel with the rule method it was detected in.
func ruleErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
