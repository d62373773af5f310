// SPDX-License-Identifier: EPL-2.0

package minimp3

import (
	"testing"

	"github.com/ik5/mp3stream/frame"
	"github.com/ik5/mp3stream/internal/mpegtest"
)

func TestDecodeFrame_Peek(t *testing.T) {
	t.Parallel()

	eng := New()

	var info frame.Info
	n := eng.DecodeFrame(mpegtest.Concat(mpegtest.Garbage(7), mpegtest.StereoFrame()), nil, &info)

	if n != mpegtest.SamplesPerFrame {
		t.Errorf("DecodeFrame() = %d, want %d", n, mpegtest.SamplesPerFrame)
	}
	want := frame.Info{
		Bitrate:     mpegtest.Bitrate,
		Channels:    2,
		Layer:       3,
		SampleRate:  mpegtest.SampleRate,
		FrameBytes:  7 + mpegtest.FrameBytes,
		FrameOffset: 7,
	}
	if info != want {
		t.Errorf("info = %+v, want %+v", info, want)
	}
}

func TestDecodeFrame_Tag(t *testing.T) {
	t.Parallel()

	eng := New()

	var info frame.Info
	n := eng.DecodeFrame(mpegtest.ID3v1(), make([]int16, frame.MaxSamplesPerFrame), &info)

	if n != 0 {
		t.Errorf("DecodeFrame() = %d, want 0 for a tag span", n)
	}
	if info.FrameBytes != 128 {
		t.Errorf("FrameBytes = %d, want 128", info.FrameBytes)
	}
}

func TestDecodeFrame_Insufficient(t *testing.T) {
	t.Parallel()

	eng := New()

	tests := []struct {
		name   string
		window []byte
	}{
		{name: "empty", window: nil},
		{name: "garbage", window: mpegtest.Garbage(48)},
		{name: "truncated frame", window: mpegtest.StereoFrame()[:32]},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var info frame.Info
			if n := eng.DecodeFrame(tt.window, nil, &info); n != 0 {
				t.Errorf("DecodeFrame() = %d, want 0", n)
			}
			if info.FrameBytes != 0 {
				t.Errorf("FrameBytes = %d, want 0", info.FrameBytes)
			}
		})
	}
}
