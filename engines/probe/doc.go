// SPDX-License-Identifier: EPL-2.0

// Package probe provides a metadata-only decoding engine.
//
// The probe engine locates frames, tags and garbage exactly like a
// real decoder but performs no sample synthesis. It is meant for
// peek/skip pipelines: duration scans, frame indexing, stream
// validation and tests.
//
//	cur := stream.NewCursor(data, probe.New())
//	for {
//	    f, err := cur.Peek()
//	    if err != nil {
//	        break
//	    }
//	    if f.Audio != nil {
//	        total += f.Audio.SampleCount
//	    }
//	    cur.Skip()
//	}
//
// When a decode is requested anyway, the claimed sample region is
// zero-filled so that metadata, counts and advancement stay identical
// to a decoding engine while the audio itself is silence. Use the
// gomp3 or minimp3 engines when real samples are needed.
package probe
