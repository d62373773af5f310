// SPDX-License-Identifier: EPL-2.0

package mpeg

// Version identifies the MPEG audio version encoded in a frame header.
type Version int

const (
	MPEG1 Version = iota
	MPEG2
	MPEG25
)

// HeaderSize is the byte length of an MPEG audio frame header.
const HeaderSize = 4

// Header holds the fields of a parsed MPEG audio frame header.
type Header struct {
	Version    Version
	Layer      int  // 1, 2 or 3
	Bitrate    int  // kb/s; 0 means free format
	SampleRate int  // Hz
	Padding    bool // frame carries one extra padding slot
	Channels   int  // 1 or 2
}

// Bitrate tables in kb/s, indexed 1..14. Index 0 is free format and
// index 15 is invalid; both are handled before the lookup.
var bitrates = [5][15]int{
	{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448}, // MPEG1 layer I
	{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384},    // MPEG1 layer II
	{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320},     // MPEG1 layer III
	{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256},    // MPEG2/2.5 layer I
	{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},         // MPEG2/2.5 layer II & III
}

var sampleRates = [3]int{44100, 48000, 32000}

// ParseHeader decodes the MPEG audio frame header at the start of b.
// It reports false when b is shorter than HeaderSize or does not hold
// a valid header.
func ParseHeader(b []byte) (Header, bool) {
	if len(b) < HeaderSize {
		return Header{}, false
	}
	if b[0] != 0xFF || b[1]&0xE0 != 0xE0 {
		return Header{}, false
	}

	var h Header

	switch (b[1] >> 3) & 0x3 {
	case 3:
		h.Version = MPEG1
	case 2:
		h.Version = MPEG2
	case 0:
		h.Version = MPEG25
	default: // reserved
		return Header{}, false
	}

	layerBits := (b[1] >> 1) & 0x3
	if layerBits == 0 { // reserved
		return Header{}, false
	}
	h.Layer = int(4 - layerBits)

	bitrateIdx := b[2] >> 4
	if bitrateIdx == 15 {
		return Header{}, false
	}
	h.Bitrate = bitrates[bitrateRow(h.Version, h.Layer)][bitrateIdx]

	rateIdx := (b[2] >> 2) & 0x3
	if rateIdx == 3 { // reserved
		return Header{}, false
	}
	h.SampleRate = sampleRates[rateIdx]
	switch h.Version {
	case MPEG2:
		h.SampleRate /= 2
	case MPEG25:
		h.SampleRate /= 4
	}

	h.Padding = b[2]&0x2 != 0

	if b[3]>>6 == 3 { // mono channel mode
		h.Channels = 1
	} else {
		h.Channels = 2
	}

	return h, true
}

func bitrateRow(v Version, layer int) int {
	if v == MPEG1 {
		return layer - 1
	}
	if layer == 1 {
		return 3
	}
	return 4
}

// SamplesPerFrame returns the number of samples per channel one frame
// of this format yields.
func (h Header) SamplesPerFrame() int {
	switch h.Layer {
	case 1:
		return 384
	case 2:
		return 1152
	default:
		if h.Version == MPEG1 {
			return 1152
		}
		return 576
	}
}

// FrameSize returns the total byte length of the frame, header
// included. Free format frames have no fixed length and report 0;
// Locate sizes them by scanning for the next header instead.
func (h Header) FrameSize() int {
	if h.Bitrate == 0 {
		return 0
	}
	pad := 0
	if h.Padding {
		pad = 1
	}
	if h.Layer == 1 {
		// Layer I slots are 4 bytes wide.
		return (12*h.Bitrate*1000/h.SampleRate + pad) * 4
	}
	return h.SamplesPerFrame()/8*h.Bitrate*1000/h.SampleRate + pad
}

// compatible reports whether a follow-up header describes the same
// stream as h. Used to bound free format frames and to confirm sync
// candidates.
func (h Header) compatible(next Header) bool {
	return h.Version == next.Version &&
		h.Layer == next.Layer &&
		h.SampleRate == next.SampleRate
}
