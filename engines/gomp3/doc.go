// SPDX-License-Identifier: EPL-2.0

// Package gomp3 provides a decoding engine backed by
// github.com/hajimehoshi/go-mp3.
//
// The engine locates frames with the mpeg package and hands each
// located frame to go-mp3 for sample synthesis. go-mp3 always outputs
// 16-bit stereo; mono frames are restored by keeping the left channel,
// which go-mp3 mirrors from the mono source.
//
//	cur := stream.NewCursor(data, gomp3.New())
//	f, err := cur.Next()
//
// # Limitations
//
// Each frame is decoded from its own byte window, so layer III main
// data spilled into a previous frame's reservoir is not available;
// streams that lean on the bit reservoir may decode with artifacts.
// Frames that go-mp3 rejects are reported as skipped spans rather than
// errors, per the engine contract.
package gomp3
