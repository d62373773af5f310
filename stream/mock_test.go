// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"github.com/ik5/mp3stream/frame"
)

// countingEngine wraps a real engine and records every invocation, so
// tests can prove when the cursor short-circuits through its memo.
type countingEngine struct {
	frame.Engine

	calls   int
	pcmSeen []bool
}

func (c *countingEngine) DecodeFrame(window []byte, pcm []int16, info *frame.Info) int {
	c.calls++
	c.pcmSeen = append(c.pcmSeen, pcm != nil)
	return c.Engine.DecodeFrame(window, pcm, info)
}
