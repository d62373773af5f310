// SPDX-License-Identifier: EPL-2.0

package mpeg

import "testing"

func TestParseHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header []byte
		want   Header
	}{
		{
			name:   "mpeg1 layer3 128k 44100 stereo",
			header: []byte{0xFF, 0xFB, 0x90, 0x00},
			want: Header{
				Version:    MPEG1,
				Layer:      3,
				Bitrate:    128,
				SampleRate: 44100,
				Channels:   2,
			},
		},
		{
			name:   "mpeg1 layer3 mono",
			header: []byte{0xFF, 0xFB, 0x90, 0xC0},
			want: Header{
				Version:    MPEG1,
				Layer:      3,
				Bitrate:    128,
				SampleRate: 44100,
				Channels:   1,
			},
		},
		{
			name:   "mpeg1 layer3 padded",
			header: []byte{0xFF, 0xFB, 0x92, 0x00},
			want: Header{
				Version:    MPEG1,
				Layer:      3,
				Bitrate:    128,
				SampleRate: 44100,
				Padding:    true,
				Channels:   2,
			},
		},
		{
			name:   "mpeg1 layer2 160k",
			header: []byte{0xFF, 0xFD, 0x90, 0x00},
			want: Header{
				Version:    MPEG1,
				Layer:      2,
				Bitrate:    160,
				SampleRate: 44100,
				Channels:   2,
			},
		},
		{
			name:   "mpeg1 layer1 288k",
			header: []byte{0xFF, 0xFF, 0x90, 0x00},
			want: Header{
				Version:    MPEG1,
				Layer:      1,
				Bitrate:    288,
				SampleRate: 44100,
				Channels:   2,
			},
		},
		{
			name:   "mpeg2 layer3 96k 22050",
			header: []byte{0xFF, 0xF3, 0x90, 0x00},
			want: Header{
				Version:    MPEG2,
				Layer:      3,
				Bitrate:    96,
				SampleRate: 22050,
				Channels:   2,
			},
		},
		{
			name:   "mpeg2.5 layer3 96k 11025",
			header: []byte{0xFF, 0xE3, 0x90, 0x00},
			want: Header{
				Version:    MPEG25,
				Layer:      3,
				Bitrate:    96,
				SampleRate: 11025,
				Channels:   2,
			},
		},
		{
			name:   "free format",
			header: []byte{0xFF, 0xFB, 0x00, 0x00},
			want: Header{
				Version:    MPEG1,
				Layer:      3,
				Bitrate:    0,
				SampleRate: 44100,
				Channels:   2,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseHeader(tt.header)
			if !ok {
				t.Fatalf("ParseHeader(% X) ok = false, want true", tt.header)
			}
			if got != tt.want {
				t.Errorf("ParseHeader(% X) = %+v, want %+v", tt.header, got, tt.want)
			}
		})
	}
}

func TestParseHeader_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header []byte
	}{
		{name: "empty", header: nil},
		{name: "too short", header: []byte{0xFF, 0xFB, 0x90}},
		{name: "no sync", header: []byte{0x00, 0x00, 0x00, 0x00}},
		{name: "partial sync", header: []byte{0xFF, 0x1B, 0x90, 0x00}},
		{name: "reserved version", header: []byte{0xFF, 0xEB, 0x90, 0x00}},
		{name: "reserved layer", header: []byte{0xFF, 0xF9, 0x90, 0x00}},
		{name: "bitrate index 15", header: []byte{0xFF, 0xFB, 0xF0, 0x00}},
		{name: "reserved sample rate", header: []byte{0xFF, 0xFB, 0x9C, 0x00}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, ok := ParseHeader(tt.header); ok {
				t.Errorf("ParseHeader(% X) ok = true, want false", tt.header)
			}
		})
	}
}

func TestHeader_FrameSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header []byte
		want   int
	}{
		// 144*128000/44100 = 417
		{name: "mpeg1 layer3 128k 44100", header: []byte{0xFF, 0xFB, 0x90, 0x00}, want: 417},
		{name: "mpeg1 layer3 padded", header: []byte{0xFF, 0xFB, 0x92, 0x00}, want: 418},
		// 72*96000/22050 = 313
		{name: "mpeg2 layer3 96k 22050", header: []byte{0xFF, 0xF3, 0x90, 0x00}, want: 313},
		// (12*288000/44100)*4 = 312
		{name: "mpeg1 layer1 288k 44100", header: []byte{0xFF, 0xFF, 0x90, 0x00}, want: 312},
		// 144*160000/44100 = 522
		{name: "mpeg1 layer2 160k 44100", header: []byte{0xFF, 0xFD, 0x90, 0x00}, want: 522},
		{name: "free format has no fixed size", header: []byte{0xFF, 0xFB, 0x00, 0x00}, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hdr, ok := ParseHeader(tt.header)
			if !ok {
				t.Fatalf("ParseHeader(% X) ok = false, want true", tt.header)
			}
			if got := hdr.FrameSize(); got != tt.want {
				t.Errorf("FrameSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHeader_SamplesPerFrame(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header []byte
		want   int
	}{
		{name: "mpeg1 layer1", header: []byte{0xFF, 0xFF, 0x90, 0x00}, want: 384},
		{name: "mpeg1 layer2", header: []byte{0xFF, 0xFD, 0x90, 0x00}, want: 1152},
		{name: "mpeg1 layer3", header: []byte{0xFF, 0xFB, 0x90, 0x00}, want: 1152},
		{name: "mpeg2 layer3", header: []byte{0xFF, 0xF3, 0x90, 0x00}, want: 576},
		{name: "mpeg2.5 layer3", header: []byte{0xFF, 0xE3, 0x90, 0x00}, want: 576},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hdr, ok := ParseHeader(tt.header)
			if !ok {
				t.Fatalf("ParseHeader(% X) ok = false, want true", tt.header)
			}
			if got := hdr.SamplesPerFrame(); got != tt.want {
				t.Errorf("SamplesPerFrame() = %d, want %d", got, tt.want)
			}
		})
	}
}
