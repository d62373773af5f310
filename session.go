// SPDX-License-Identifier: EPL-2.0

package mp3stream

import (
	"bytes"

	"github.com/ik5/mp3stream/frame"
	"github.com/ik5/mp3stream/stream"
)

// Session bundles a privately owned copy of an MPEG audio buffer with
// a cursor over it. Callers that manage buffer lifetime themselves can
// use stream.NewCursor directly; a Session frees them from keeping the
// original slice alive and unchanged.
type Session struct {
	data []byte
	cur  *stream.Cursor
}

// NewSession copies data and opens a cursor over the copy, so later
// changes to the caller's slice never invalidate frames produced by
// the session. eng carries the decoding state for this session.
func NewSession(data []byte, eng frame.Engine) *Session {
	owned := bytes.Clone(data)
	return &Session{
		data: owned,
		cur:  stream.NewCursor(owned, eng),
	}
}

// Peek reports the next frame without decoding or advancing.
func (s *Session) Peek() (frame.Frame, error) { return s.cur.Peek() }

// Skip advances past the next frame without decoding it.
func (s *Session) Skip() error { return s.cur.Skip() }

// Next decodes the next frame and advances past it. The returned
// Samples slice is valid until the following Next call.
func (s *Session) Next() (frame.Frame, error) { return s.cur.Next() }

// Position returns the current byte offset within the buffer.
func (s *Session) Position() int { return s.cur.Position() }

// SetPosition repositions the session, clamping out-of-range offsets
// to the buffer bounds.
func (s *Session) SetPosition(pos int) { s.cur.SetPosition(pos) }

// Len returns the size of the owned buffer in bytes.
func (s *Session) Len() int { return len(s.data) }
