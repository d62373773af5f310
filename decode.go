// SPDX-License-Identifier: EPL-2.0

package mp3stream

import (
	"fmt"
	"io"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/mp3stream/frame"
	"github.com/ik5/mp3stream/stream"
)

// Format describes the PCM layout of a decoded stream, taken from its
// first audio frame.
type Format struct {
	SampleRate int
	Channels   int
}

// DecodeAll decodes every frame in data into one interleaved sample
// slice, skipping tags and garbage along the way.
//
// Returns stream.ErrNoFrame when data holds no audio at all. Streams
// that change format mid-way are decoded as-is; the reported Format is
// that of the first frame.
func DecodeAll(data []byte, eng frame.Engine) ([]int16, Format, error) {
	cur := stream.NewCursor(data, eng)

	var (
		pcm    []int16
		format Format
	)
	for {
		f, err := cur.Next()
		if err != nil {
			break
		}
		if f.Audio == nil {
			continue
		}
		if format.SampleRate == 0 {
			format = Format{
				SampleRate: f.Audio.SampleRate,
				Channels:   f.Audio.Channels,
			}
		}
		pcm = f.Audio.AppendSamples(pcm)
	}

	if format.SampleRate == 0 {
		return nil, Format{}, stream.ErrNoFrame
	}
	return pcm, format, nil
}

// Duration computes the play time of data by peeking and skipping
// frames, without decoding a single sample.
//
// Returns stream.ErrNoFrame when data holds no audio at all.
func Duration(data []byte, eng frame.Engine) (time.Duration, error) {
	cur := stream.NewCursor(data, eng)

	var total time.Duration
	seen := false
	for {
		f, err := cur.Peek()
		if err != nil {
			break
		}
		if f.Audio != nil && f.Audio.SampleRate > 0 {
			seen = true
			total += time.Duration(f.Audio.SampleCount) *
				time.Second / time.Duration(f.Audio.SampleRate)
		}
		// Skip reuses the length Peek just memoized.
		if err := cur.Skip(); err != nil {
			break
		}
	}

	if !seen {
		return 0, stream.ErrNoFrame
	}
	return total, nil
}

// WriteWAV decodes data and writes it to w as a 16-bit PCM WAV file.
// The wav encoder needs to patch chunk sizes after writing, hence the
// io.WriteSeeker.
func WriteWAV(w io.WriteSeeker, data []byte, eng frame.Engine) error {
	pcm, format, err := DecodeAll(data, eng)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	ints := make([]int, len(pcm))
	for i, s := range pcm {
		ints[i] = int(s)
	}

	enc := wav.NewEncoder(w, format.SampleRate, 16, format.Channels, 1)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: format.Channels,
			SampleRate:  format.SampleRate,
		},
		Data:           ints,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
