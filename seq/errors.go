// SPDX-License-Identifier: MIT

package seq

import "errors"

var (
	// ErrUnsupported is returned by the probe when a value offers no
	// integral-index element accessor (neither call-style nor subscript-style).
	ErrUnsupported = errors.New("seq: value provides no integral-index element accessor")

	// ErrNoSize is returned by the probe when a value offers elements but no
	// way to query its length.
	ErrNoSize = errors.New("seq: value provides no size accessor")

	// ErrRagged indicates a [][]T grid whose rows differ in length.
	ErrRagged = errors.New("seq: all grid rows must have the same length")
)
