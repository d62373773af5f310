// SPDX-License-Identifier: EPL-2.0

package minimp3

import (
	mp3 "github.com/tosone/minimp3"

	"github.com/ik5/mp3stream/frame"
	"github.com/ik5/mp3stream/mpeg"
	"github.com/ik5/mp3stream/utils"
)

// Engine synthesizes frames with minimp3. It implements frame.Engine.
type Engine struct{}

// New returns an engine backed by minimp3.
func New() *Engine {
	return &Engine{}
}

// DecodeFrame locates the next frame or tag in window and, when pcm is
// non-nil, decodes the frame's samples into it.
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

	if pcm == nil {
		return hdr.SamplesPerFrame()
	}

	dec, data, err := mp3.DecodeFull(window[span.Offset:span.End])
	if err != nil || len(data) == 0 {
		// Nothing synthesized; the caller sees a skipped span.
		return 0
	}
	defer dec.Close()

	// The decoder's own report wins over the parsed header.
	if dec.Channels > 0 {
		info.Channels = dec.Channels
	}
	if dec.SampleRate > 0 {
		info.SampleRate = dec.SampleRate
	}
	if dec.Kbps > 0 {
		info.Bitrate = dec.Kbps
	}
	if dec.Layer > 0 {
		info.Layer = dec.Layer
	}

	total := utils.BytesToInt16LE(pcm[:frame.MaxSamplesPerFrame], data)
	return total / info.Channels
}
