// SPDX-License-Identifier: EPL-2.0

package frame

// MaxSamplesPerFrame is the largest number of interleaved samples one
// MPEG audio frame can yield: 1152 samples per channel in stereo.
const MaxSamplesPerFrame = 2304

// Info is the metadata record an Engine fills on every call. Offsets
// are relative to the window the engine was given.
type Info struct {
	Bitrate     int // kb/s; 0 means free format or unknown
	Channels    int // 1 or 2
	Layer       int // 1, 2 or 3
	SampleRate  int // Hz
	FrameBytes  int // total bytes consumed, including any garbage prefix
	FrameOffset int // offset of the frame start within the window
}

// Audio describes one located or decoded audio frame.
type Audio struct {
	Bitrate     int // kb/s; 0 means free format or unknown
	Channels    int
	Layer       int
	SampleRate  int // Hz
	SampleCount int // samples per channel

	// Samples holds interleaved PCM of length SampleCount*Channels.
	// It is empty when the frame was peeked, and otherwise aliases the
	// output buffer supplied to the decode call, so it stays valid
	// only until that buffer is reused. SampleCount reflects the true
	// count either way.
	Samples []int16

	// Source is the frame's bytes inside the input window, header and
	// payload, with any garbage prefix stripped.
	Source []byte
}

// AppendSamples appends a copy of the decoded samples to dst and
// returns the extended slice. The copy stays valid after the shared
// output buffer is overwritten.
func (a *Audio) AppendSamples(dst []int16) []int16 {
	return append(dst, a.Samples...)
}

// Frame is the result of one engine invocation: either an audio frame
// or a span of skippable non-audio data such as a metadata tag.
type Frame struct {
	// Audio is nil when the consumed span held no audio frame.
	Audio *Audio

	// Source is the consumed span with any garbage prefix stripped.
	// For audio frames it equals Audio.Source.
	Source []byte
}
