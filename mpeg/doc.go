// SPDX-License-Identifier: EPL-2.0

// Package mpeg provides low-level MPEG audio bitstream inspection.
//
// This package locates frame boundaries and metadata tags inside raw
// byte windows. It never decodes audio; decoding is the job of an
// engine (see the frame package and the engines subpackages).
//
// # Frame Headers
//
// ParseHeader decodes a 4-byte MPEG audio frame header:
//
//	hdr, ok := mpeg.ParseHeader(data)
//	if ok {
//	    fmt.Println(hdr.SampleRate, hdr.Channels, hdr.Layer)
//	}
//
// All MPEG versions (1, 2, 2.5) and layers (I, II, III) are
// recognized, covering sample rates from 8000 Hz to 48000 Hz and
// bitrates from 8 kb/s to 448 kb/s. A bitrate index of zero means
// free format; such headers are legal and reported with Bitrate 0.
//
// # Locating Frames
//
// Locate scans a window for the next frame or metadata tag, skipping
// garbage bytes in front of it:
//
//	span, ok := mpeg.Locate(window)
//	if ok && span.Audio {
//	    frameBytes := window[span.Offset:span.End]
//	    _ = frameBytes
//	}
//
// A candidate sync position is only accepted when the bytes following
// the frame look plausible (another header, a tag, or the end of the
// window), which filters out false sync matches inside payload data.
//
// # Metadata Tags
//
// TagSize recognizes ID3v2, ID3v1 and APEv2 tags by their size only.
// Tag contents are never interpreted; callers that need tag semantics
// should use a dedicated tagging library.
package mpeg
