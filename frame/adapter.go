// SPDX-License-Identifier: EPL-2.0

package frame

// Adapter drives one Engine over caller-supplied byte windows and
// turns the raw engine record into Frame values.
type Adapter struct {
	eng Engine
}

// NewAdapter wraps eng. The adapter holds no state of its own beyond
// the engine, which owns the session's decoding history.
func NewAdapter(eng Engine) *Adapter {
	return &Adapter{eng: eng}
}

// Next locates the next frame at the start of window, decoding its
// samples into dst. dst must have room for MaxSamplesPerFrame samples.
// The returned count is the total number of bytes consumed, including
// any garbage prefix; ok is false when the window holds nothing usable.
func (a *Adapter) Next(window []byte, dst []int16) (Frame, int, bool) {
	return a.call(window, dst)
}

// Peek is Next without sample synthesis: the engine reports metadata
// and the consumed byte count but writes nothing, so the returned
// frame's Samples slice is always empty.
func (a *Adapter) Peek(window []byte) (Frame, int, bool) {
	return a.call(window, nil)
}

func (a *Adapter) call(window []byte, dst []int16) (Frame, int, bool) {
	var info Info

	n := a.eng.DecodeFrame(clampWindow(window), dst, &info)
	if info.FrameBytes == 0 {
		return Frame{}, 0, false
	}

	source := window[info.FrameOffset:info.FrameBytes]
	if n == 0 {
		return Frame{Source: source}, info.FrameBytes, true
	}

	var samples []int16
	if dst != nil {
		samples = dst[:n*info.Channels]
	}

	return Frame{
		Audio: &Audio{
			Bitrate:     info.Bitrate,
			Channels:    info.Channels,
			Layer:       info.Layer,
			SampleRate:  info.SampleRate,
			SampleCount: n,
			Samples:     samples,
			Source:      source,
		},
		Source: source,
	}, info.FrameBytes, true
}
