// SPDX-License-Identifier: EPL-2.0

package stream

import "errors"

var (
	// ErrNoFrame reports that the remaining data holds no decodable
	// frame or skippable span. It is never fatal: more data at the
	// current position, or repositioning, can make frames available
	// again.
	ErrNoFrame = errors.New("no frame available")
)
