// SPDX-License-Identifier: MIT

package gauss

import "errors"

var (
	// ErrUnsupportedOrder is returned for orders other than 8, 16, 32, 64.
	ErrUnsupportedOrder = errors.New("gauss: unsupported order")

	// ErrNotIncreasing indicates sample abscissae that are not strictly
	// increasing, which the interpolating spline requires.
	ErrNotIncreasing = errors.New("gauss: x must be strictly increasing")
)
