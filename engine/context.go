// Package engine wires the audiograph and compiler packages into a
// single mutex-guarded Host an audio callback and an editor can share:
// the audio thread samples the live graph, the editor thread recompiles
// and swaps it in, and the two never touch the graph without the lock.
package engine

import (
	"sync"

	"github.com/ul/sound-garden-vst/compiler"
)

// Context is the process-wide record of channel count, sample rate and
// parameter count, set once at startup and updated only by the host
// adapter on sample-rate changes. The compiler reads a point-in-time
// Snapshot when manufacturing nodes; nodes already constructed keep
// whatever rate was current at their construction.
type Context struct {
	mu         sync.RWMutex
	channels   int
	sampleRate int
	parameters int
}

// NewContext builds a Context for a fixed channel and parameter count
// and an initial sample rate.
func NewContext(channels, sampleRate, parameters int) *Context {
	return &Context{channels: channels, sampleRate: sampleRate, parameters: parameters}
}

// Snapshot returns the compiler-facing view of the context as of now.
func (c *Context) Snapshot() compiler.Context {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return compiler.Context{Channels: c.channels, SampleRate: c.sampleRate, Parameters: c.parameters}
}

// SetSampleRate updates the sample rate used by nodes compiled after
// this call; it does not touch nodes already in the live graph.
func (c *Context) SetSampleRate(sampleRate int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sampleRate = sampleRate
}

// Channels returns the fixed channel count.
func (c *Context) Channels() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.channels
}
