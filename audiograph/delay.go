package audiograph

import "math"

// Delay is a variable-time signal delay up to a fixed maximum, backed
// by a power-of-two ring buffer per channel so the write/read index can
// be masked instead of taken modulo.
type Delay struct {
	buffer      Frame
	channels    int
	mask        int
	frameNumber int
	sampleRate  Sample
	out         Frame
}

// NewDelay builds a Delay for the given channel count, sample rate and
// maximum delay time in seconds.
func NewDelay(channels, sampleRate int, maxDelay float64) *Delay {
	// +1 because interpolation looks one sample further back than the
	// integer delay; rounding the capacity up to a power of two lets
	// indexing use a bitmask instead of a modulo.
	maxDelayFrames := nextPowerOfTwo(int(float64(sampleRate)*maxDelay) + 1)
	return &Delay{
		buffer:     make(Frame, channels*maxDelayFrames),
		channels:   channels,
		mask:       maxDelayFrames - 1,
		sampleRate: Sample(sampleRate),
		out:        make(Frame, channels),
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func (n *Delay) Inputs() uint8 { return 2 }
func (n *Delay) Output() Frame { return n.out }
func (n *Delay) Sample(input Frame) {
	for c := 0; c < n.channels; c++ {
		x := input[c]
		z := input[c+n.channels] * n.sampleRate
		delay := int(z)
		k := z - math.Trunc(z)
		// Write before read so a zero delay resolves to the current
		// frame's input rather than a stale ring slot.
		n.buffer[(n.frameNumber&n.mask)*n.channels+c] = x
		if n.frameNumber > delay {
			i := n.frameNumber - delay
			a := n.buffer[((i-1)&n.mask)*n.channels+c]
			b := n.buffer[(i&n.mask)*n.channels+c]
			n.out[c] = k*a + (1-k)*b
		}
	}
	n.frameNumber++
}

// Feedback is a comb filter: y = x + gain*delayed(y), realized by
// feeding the node's own previous output back into an embedded Delay.
type Feedback struct {
	channels   int
	delay      *Delay
	delayInput Frame
	out        Frame
}

// NewFeedback builds a Feedback node for the given channel count,
// sample rate and maximum delay time in seconds.
func NewFeedback(channels, sampleRate int, maxDelay float64) *Feedback {
	return &Feedback{
		channels:   channels,
		delay:      NewDelay(channels, sampleRate, maxDelay),
		delayInput: make(Frame, 2*channels),
		out:        make(Frame, channels),
	}
}

func (n *Feedback) Inputs() uint8 { return 3 }
func (n *Feedback) Output() Frame { return n.out }
func (n *Feedback) Sample(input Frame) {
	channels := n.channels

	copy(n.delayInput[:channels], n.out)
	copy(n.delayInput[channels:2*channels], input[channels:2*channels])
	n.delay.Sample(n.delayInput)

	delayed := n.delay.Output()
	for c := range n.out {
		x := input[c]
		gain := input[c+2*channels]
		n.out[c] = x + gain*delayed[c]
	}
}
