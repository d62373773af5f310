// SPDX-License-Identifier: EPL-2.0

package mpeg

import "encoding/binary"

const (
	id3v2HeaderSize = 10
	id3v1Size       = 128
	apeHeaderSize   = 32
)

// TagSize reports the full byte length of the metadata tag at the
// start of b, or 0 when b does not begin with a recognized tag.
//
// The reported size may exceed len(b) when the tag is truncated; the
// caller decides whether to wait for more data or consume what is
// available. Tag contents are never parsed.
func TagSize(b []byte) int {
	if n := id3v2Size(b); n > 0 {
		return n
	}
	if len(b) >= 3 && b[0] == 'T' && b[1] == 'A' && b[2] == 'G' {
		return id3v1Size
	}
	if n := apeSize(b); n > 0 {
		return n
	}
	return 0
}

func id3v2Size(b []byte) int {
	if len(b) < id3v2HeaderSize {
		return 0
	}
	if b[0] != 'I' || b[1] != 'D' || b[2] != '3' {
		return 0
	}
	// Size is a 28-bit syncsafe integer, excluding the 10-byte header.
	size := int(b[6]&0x7F)<<21 | int(b[7]&0x7F)<<14 | int(b[8]&0x7F)<<7 | int(b[9]&0x7F)
	size += id3v2HeaderSize
	if b[5]&0x10 != 0 { // footer present
		size += id3v2HeaderSize
	}
	return size
}

func apeSize(b []byte) int {
	if len(b) < apeHeaderSize {
		return 0
	}
	if string(b[:8]) != "APETAGEX" {
		return 0
	}
	// Tag size at offset 12 covers items plus footer, not the header.
	return int(binary.LittleEndian.Uint32(b[12:16])) + apeHeaderSize
}
