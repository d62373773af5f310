// SPDX-License-Identifier: EPL-2.0

// Package utils holds small conversion helpers shared by the decoding
// engines.
package utils

// BytesToInt16LE converts little-endian 16-bit PCM bytes into samples,
// writing at most len(dst) samples, and returns the number converted.
// A trailing odd byte in src is ignored.
func BytesToInt16LE(dst []int16, src []byte) int {
	n := min(len(src)/2, len(dst))
	for i := 0; i < n; i++ {
		dst[i] = int16(uint16(src[2*i]) | uint16(src[2*i+1])<<8)
	}
	return n
}
