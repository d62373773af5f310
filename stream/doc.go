// SPDX-License-Identifier: EPL-2.0

// Package stream implements a frame-oriented cursor over an in-memory
// MPEG audio buffer.
//
// A Cursor owns a shrinking view into an immutable byte buffer and
// drives a decoding engine to expose peek, skip and decode-and-advance
// semantics plus absolute repositioning.
//
// # Reading Frames
//
//	cur := stream.NewCursor(data, minimp3.New())
//	for {
//	    f, err := cur.Next()
//	    if err != nil {
//	        break // stream.ErrNoFrame: end of usable data
//	    }
//	    if f.Audio != nil {
//	        process(f.Audio.Samples)
//	    }
//	}
//
// # Peeking
//
// Peek reports the next frame's metadata without decoding samples or
// moving the cursor. The consumed byte count is remembered, so a
// following Skip advances without invoking the engine again:
//
//	f, err := cur.Peek()
//	if err == nil && f.Audio != nil {
//	    fmt.Println(f.Audio.SampleCount, "samples ahead")
//	    cur.Skip() // no second engine call
//	}
//
// # Positioning
//
// Position reports the byte offset of the view inside the original
// buffer. SetPosition moves it anywhere in the buffer, clamping
// out-of-range values to the buffer end; a later Peek or Next
// resynchronizes to the next frame boundary from there.
//
// # Buffer Lifetime
//
// The cursor never copies or modifies the input buffer; the caller
// must keep it unchanged while the cursor and any Frame values derived
// from it are in use. Samples slices returned by Next alias the
// cursor's internal output buffer and are valid only until the next
// Next call. A cursor is not safe for concurrent use; the frames it
// returns are read-only and may be inspected from other goroutines.
package stream
