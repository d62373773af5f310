// SPDX-License-Identifier: EPL-2.0

package gomp3

import (
	"bytes"
	"io"

	mp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/mp3stream/frame"
	"github.com/ik5/mp3stream/mpeg"
	"github.com/ik5/mp3stream/utils"
)

// pcmReader is an interface for mp3.Decoder to allow testing.
type pcmReader interface {
	Read([]byte) (int, error)
}

// Engine synthesizes frames with go-mp3. It implements frame.Engine.
type Engine struct {
	newReader func(r io.Reader) (pcmReader, error)
	buf       []byte // scratch for go-mp3's PCM byte output
}

// New returns an engine backed by go-mp3.
func New() *Engine {
	return &Engine{
		newReader: func(r io.Reader) (pcmReader, error) {
			return mp3.NewDecoder(r)
		},
	}
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

	n := hdr.SamplesPerFrame()
	if pcm == nil {
		return n
	}

	dec, err := e.newReader(bytes.NewReader(window[span.Offset:span.End]))
	if err != nil {
		// Nothing synthesized; the caller sees a skipped span.
		return 0
	}

	// go-mp3 outputs 16-bit little-endian stereo: 4 bytes per sample
	// frame regardless of the source channel count.
	need := n * 4
	if cap(e.buf) < need {
		e.buf = make([]byte, need)
	}
	e.buf = e.buf[:need]

	got, _ := io.ReadFull(dec, e.buf)
	produced := got / 4
	if produced == 0 {
		return 0
	}

	if hdr.Channels == 1 {
		// Mono is mirrored into both output channels; keep the left.
		for i := 0; i < produced; i++ {
			pcm[i] = int16(uint16(e.buf[4*i]) | uint16(e.buf[4*i+1])<<8)
		}
	} else {
		utils.BytesToInt16LE(pcm[:produced*2], e.buf[:produced*4])
	}

	return produced
}
