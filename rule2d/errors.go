// SPDX-License-Identifier: MIT

package rule2d

import "errors"

// ErrShapeMismatch indicates a value grid whose shape is not len(x)×len(y).
var ErrShapeMismatch = errors.New("rule2d: grid shape does not match coordinates")
