// SPDX-License-Identifier: EPL-2.0

package mpeg

// Span describes one consumable region located inside a window.
// Bytes before Offset are garbage that carries no information.
type Span struct {
	Offset int    // first byte of the frame or tag within the window
	End    int    // one past the last byte of the frame or tag
	Header Header // frame header; meaningful only when Audio is true
	Audio  bool   // true for an audio frame, false for a tag span
}

// Locate scans window for the next audio frame or metadata tag and
// reports false when the window holds neither, typically because it is
// empty or too short to contain a complete frame.
//
// A metadata tag is only recognized at the very start of the window,
// matching where tags legitimately appear between frames. A truncated
// trailing tag is consumed up to the end of the window so that fully
// buffered streams always drain.
func Locate(window []byte) (Span, bool) {
	if n := TagSize(window); n > 0 {
		return Span{End: min(n, len(window))}, true
	}

	for i := 0; i+HeaderSize <= len(window); i++ {
		hdr, ok := ParseHeader(window[i:])
		if !ok {
			continue
		}

		size := hdr.FrameSize()
		if size == 0 {
			// Free format: the frame runs until the next compatible
			// header. Without one the frame cannot be bounded yet.
			size = freeFormatSize(window[i:], hdr)
			if size == 0 {
				return Span{}, false
			}
		}
		if i+size > len(window) {
			// Valid header but the frame is cut off.
			return Span{}, false
		}
		if !plausibleAt(window, i+size, hdr) {
			// False sync inside payload or garbage.
			continue
		}

		return Span{Offset: i, End: i + size, Header: hdr, Audio: true}, true
	}

	return Span{}, false
}

// plausibleAt reports whether position at looks like a legitimate
// frame boundary: another compatible header, a metadata tag, or too
// few bytes left to tell.
func plausibleAt(window []byte, at int, hdr Header) bool {
	rest := window[at:]
	if len(rest) < HeaderSize {
		return true
	}
	if next, ok := ParseHeader(rest); ok {
		return hdr.compatible(next)
	}
	return TagSize(rest) > 0
}

func freeFormatSize(b []byte, h Header) int {
	for j := HeaderSize; j+HeaderSize <= len(b); j++ {
		if next, ok := ParseHeader(b[j:]); ok && h.compatible(next) {
			return j
		}
	}
	return 0
}
