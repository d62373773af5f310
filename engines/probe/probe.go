// SPDX-License-Identifier: EPL-2.0

package probe

import (
	"github.com/ik5/mp3stream/frame"
	"github.com/ik5/mp3stream/mpeg"
)

// Engine locates MPEG audio frames and metadata tags without decoding
// them. It implements frame.Engine.
type Engine struct{}

// New returns a metadata-only engine.
func New() *Engine {
	return &Engine{}
}

// DecodeFrame fills info for the next frame or tag in window. Sample
// data is never synthesized; when pcm is non-nil the claimed region is
// zero-filled instead.
func (e *Engine) DecodeFrame(window []byte, pcm []int16, info *frame.Info) int {
	*info = frame.Info{}

	span, ok := mpeg.Locate(window)
	if !ok {
		return 0
	}

	info.FrameOffset = span.Offset
	info.FrameBytes = span.End
	if !span.Audio {
		return 0
	}

	hdr := span.Header
	info.Bitrate = hdr.Bitrate
	info.Channels = hdr.Channels
	info.Layer = hdr.Layer
	info.SampleRate = hdr.SampleRate

	n := hdr.SamplesPerFrame()
	if pcm != nil {
		clear(pcm[:n*hdr.Channels])
	}
	return n
}
