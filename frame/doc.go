// SPDX-License-Identifier: EPL-2.0

// Package frame defines the decoding engine contract and the adapter
// that drives an engine over raw byte windows.
//
// An Engine is the single boundary between this module and an MPEG
// audio decoder. Given a byte window it either decodes one frame,
// skips recognizable non-audio data, or reports that the window holds
// nothing usable. Implementations live in the engines subpackages;
// the stream package builds cursor semantics on top of the Adapter.
//
// # Driving an Engine
//
//	adapter := frame.NewAdapter(probe.New())
//	pcm := make([]int16, frame.MaxSamplesPerFrame)
//
//	f, consumed, ok := adapter.Next(window, pcm)
//	if ok && f.Audio != nil {
//	    fmt.Println(f.Audio.SampleRate, f.Audio.SampleCount)
//	    window = window[consumed:]
//	}
//
// Peek reports the same frame metadata without writing samples:
//
//	f, consumed, ok := adapter.Peek(window)
//
// # Outcomes
//
// Every call maps to exactly one of three outcomes:
//   - Decoded: ok is true and f.Audio is non-nil
//   - Skipped: ok is true and f.Audio is nil (tags, unknown data)
//   - Insufficient: ok is false (empty or truncated window)
//
// Malformed input never produces an error; it degrades to more bytes
// being skipped or to the Insufficient outcome.
//
// # Sample Buffers
//
// The dst buffer handed to Next must have room for MaxSamplesPerFrame
// samples. The Samples slice in the returned Audio is a view into dst
// and is overwritten by the following Next call; use AppendSamples to
// retain audio across calls.
package frame
