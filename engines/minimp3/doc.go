// SPDX-License-Identifier: EPL-2.0

// Package minimp3 provides a decoding engine backed by
// github.com/tosone/minimp3.
//
// The engine locates frames with the mpeg package and decodes each
// located frame with minimp3, converting its 16-bit little-endian PCM
// output into the caller's sample buffer. Format fields reported by
// the decoder take precedence over the parsed header.
//
//	cur := stream.NewCursor(data, minimp3.New())
//	f, err := cur.Next()
//
// Like the gomp3 engine, each frame is decoded from its own byte
// window, so bit-reservoir data from earlier frames is unavailable.
package minimp3
