// SPDX-License-Identifier: EPL-2.0

// Package mp3stream provides a frame-oriented session layer for MPEG
// audio bitstreams held in memory.
//
// The package sits in front of a pluggable decoding engine and exposes
// a cursor over an immutable byte buffer: peek at the next frame's
// metadata without decoding it, skip frames cheaply, decode frames one
// at a time into a reused sample buffer, and reposition anywhere in
// the stream. Garbage bytes and metadata tags between frames are
// recognized and stepped over automatically.
//
// # Layers
//
// Three layers compose the module, leaves first:
//   - frame: the engine contract and the adapter that drives one
//     engine over byte windows
//   - stream: the cursor with peek/skip/next/position semantics
//   - mp3stream (this package): a session that owns its buffer, plus
//     whole-stream conveniences
//
// Engines live under engines/: probe (metadata only, pure Go), gomp3
// (github.com/hajimehoshi/go-mp3) and minimp3
// (github.com/tosone/minimp3). The mpeg package holds the shared
// header and tag primitives.
//
// # Quick Start
//
//	data, _ := os.ReadFile("audio.mp3")
//
//	ses := mp3stream.NewSession(data, minimp3.New())
//	for {
//	    f, err := ses.Next()
//	    if err != nil {
//	        break
//	    }
//	    if f.Audio != nil {
//	        // f.Audio.Samples is valid until the next call to Next.
//	        play(f.Audio.Samples, f.Audio.SampleRate)
//	    }
//	}
//
// # Inspecting Without Decoding
//
// Peek reports metadata only, and a following Skip reuses the peeked
// result without invoking the engine again:
//
//	ses := mp3stream.NewSession(data, probe.New())
//	for {
//	    f, err := ses.Peek()
//	    if err != nil {
//	        break
//	    }
//	    if f.Audio != nil {
//	        fmt.Println(f.Audio.SampleRate, f.Audio.SampleCount)
//	    }
//	    ses.Skip()
//	}
//
// Duration wraps this scan and DecodeAll drains a whole stream;
// WriteWAV converts one to a WAV file.
//
// # Concurrency
//
// Sessions and cursors are synchronous and single-threaded: every
// operation is a plain call that either advances the view or reports
// that no frame is available. One engine and one cursor belong to one
// goroutine; the buffer itself is read-only and may back any number of
// independent sessions.
package mp3stream
