// SPDX-License-Identifier: EPL-2.0

package frame

import "math"

// Engine is the boundary to an MPEG audio decoding engine. An Engine
// instance carries the cross-frame decoder state for one session and
// must not be shared between concurrently advancing sessions.
type Engine interface {
	// DecodeFrame examines the bytes at the start of window and
	// returns the number of samples per channel it produced.
	//
	// A return of 0 with info.FrameBytes > 0 means the engine skipped
	// recognizable non-audio data. A return of 0 with info.FrameBytes
	// == 0 means the window was too short or held nothing usable.
	//
	// When pcm is nil the engine must still fill info and return the
	// true sample count, but must not synthesize sample data. When pcm
	// is non-nil it must have room for MaxSamplesPerFrame samples.
	//
	// The engine never modifies window.
	DecodeFrame(window []byte, pcm []int16, info *Info) int
}

// maxWindow is the largest window length an engine call receives.
// Engines historically take a 32-bit size; a single frame can never
// come near that bound, so oversized windows are clamped, not failed.
const maxWindow = math.MaxInt32

func clampWindow(window []byte) []byte {
	if len(window) > maxWindow {
		return window[:maxWindow]
	}
	return window
}
