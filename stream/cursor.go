// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"github.com/ik5/mp3stream/frame"
)

// Cursor is a stateful reader over an immutable byte buffer. It keeps
// the unconsumed suffix of the buffer as its view, advancing it as
// frames are consumed.
type Cursor struct {
	adapter *frame.Adapter

	full []byte // the original buffer, for Position/SetPosition
	view []byte // unconsumed suffix of full

	// memo caches the consumed byte count of the last Peek so that a
	// following Skip advances without another engine call. 0 means no
	// memo; valid results never consume zero bytes.
	memo int

	// pcm is the reused output buffer decoded samples are written to.
	pcm []int16
}

// NewCursor creates a cursor over data driving eng. The cursor borrows
// data without copying; it must stay unchanged for the cursor's
// lifetime. eng carries the decoding state for this session and must
// not be shared with another live cursor.
func NewCursor(data []byte, eng frame.Engine) *Cursor {
	return &Cursor{
		adapter: frame.NewAdapter(eng),
		full:    data,
		view:    data,
		pcm:     make([]int16, frame.MaxSamplesPerFrame),
	}
}

// Peek reports the next frame without decoding samples or advancing
// the cursor. The frame's Samples slice is always empty; SampleCount
// still holds the true per-channel count so duration can be computed
// without decoding. Returns ErrNoFrame when no frame or skippable span
// starts in the remaining data.
func (c *Cursor) Peek() (frame.Frame, error) {
	f, consumed, ok := c.adapter.Peek(c.view)
	if !ok {
		c.memo = 0
		return frame.Frame{}, ErrNoFrame
	}
	c.memo = consumed
	return f, nil
}

// Skip advances past the next frame without decoding it. A length
// memoized by a prior Peek is reused directly; otherwise the engine is
// asked once. Returns ErrNoFrame when there is nothing to skip.
func (c *Cursor) Skip() error {
	n := c.memo
	if n == 0 {
		_, consumed, ok := c.adapter.Peek(c.view)
		if !ok {
			return ErrNoFrame
		}
		n = consumed
	}
	c.advance(n)
	return nil
}

// Next decodes the next frame, advances the cursor past it and returns
// it. Any pending peek memo is discarded first: a peeked frame carries
// no samples and cannot satisfy a decode request.
//
// The returned frame's Samples slice aliases the cursor's reused
// output buffer and is valid only until the following Next call; use
// Audio.AppendSamples to keep a copy. Returns ErrNoFrame when the
// remaining data holds no frame or skippable span.
func (c *Cursor) Next() (frame.Frame, error) {
	c.memo = 0
	f, consumed, ok := c.adapter.Next(c.view, c.pcm)
	if !ok {
		return frame.Frame{}, ErrNoFrame
	}
	c.advance(consumed)
	return f, nil
}

// Position returns the byte offset of the view's start relative to the
// start of the buffer. It is unaffected by Peek and never decreases
// across Next and Skip calls.
func (c *Cursor) Position() int {
	return len(c.full) - len(c.view)
}

// SetPosition moves the view to start at byte offset pos. Values
// outside the buffer are clamped to its bounds, never rejected. Any
// peek memo is dropped, since it was computed against the old view.
func (c *Cursor) SetPosition(pos int) {
	pos = max(0, min(pos, len(c.full)))
	c.view = c.full[pos:]
	c.memo = 0
}

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.full)
}

func (c *Cursor) advance(n int) {
	c.view = c.view[n:]
	c.memo = 0
}
