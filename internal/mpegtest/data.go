// SPDX-License-Identifier: EPL-2.0

// Package mpegtest builds synthetic MPEG audio byte streams for
// testing. Frames carry valid headers and zeroed payloads; they are
// structurally sound but hold no meaningful audio.
package mpegtest

// Frame layout constants for the canonical test frame: MPEG-1 layer
// III, 128 kb/s, 44100 Hz, no padding. 144*128000/44100 = 417 bytes.
const (
	FrameBytes      = 417
	SamplesPerFrame = 1152
	SampleRate      = 44100
	Bitrate         = 128
)

// StereoFrame returns one complete stereo test frame.
func StereoFrame() []byte {
	return frameWithHeader(0xFF, 0xFB, 0x90, 0x00)
}

// MonoFrame returns one complete mono test frame.
func MonoFrame() []byte {
	return frameWithHeader(0xFF, 0xFB, 0x90, 0xC0)
}

func frameWithHeader(b0, b1, b2, b3 byte) []byte {
	f := make([]byte, FrameBytes)
	f[0], f[1], f[2], f[3] = b0, b1, b2, b3
	return f
}

// Garbage returns n bytes that contain no sync pattern and no tag
// magic.
func Garbage(n int) []byte {
	g := make([]byte, n)
	for i := range g {
		g[i] = 0x55
	}
	return g
}

// ID3v2 returns an ID3v2.3 tag with a zeroed payload of the given
// size. Total length is payload+10 header bytes.
func ID3v2(payload int) []byte {
	tag := make([]byte, payload+10)
	copy(tag, "ID3")
	tag[3] = 3 // v2.3.0
	tag[6] = byte(payload >> 21 & 0x7F)
	tag[7] = byte(payload >> 14 & 0x7F)
	tag[8] = byte(payload >> 7 & 0x7F)
	tag[9] = byte(payload & 0x7F)
	return tag
}

// ID3v1 returns an empty 128-byte ID3v1 tag.
func ID3v1() []byte {
	tag := make([]byte, 128)
	copy(tag, "TAG")
	return tag
}

// Concat joins byte stream fragments into one buffer.
func Concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
