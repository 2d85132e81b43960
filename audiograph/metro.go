package audiograph

// Metro fires a 1.0 spike once every sampleRate/frequency frames (rounded
// down), 0 otherwise, tracking the interval independently per channel.
type Metro struct {
	out         Frame
	lastTrigger []uint64
	frameNumber uint64
	sampleRate  Sample
}

// NewMetro builds a Metro for the given channel count and sample rate.
func NewMetro(channels, sampleRate int) *Metro {
	return &Metro{out: make(Frame, channels), lastTrigger: make([]uint64, channels), sampleRate: Sample(sampleRate)}
}

func (n *Metro) Inputs() uint8 { return 1 }
func (n *Metro) Output() Frame { return n.out }
func (n *Metro) Sample(input Frame) {
	for c := range n.out {
		frequency := input[c]
		delta := uint64(n.sampleRate / frequency)
		if delta <= n.frameNumber-n.lastTrigger[c] {
			n.lastTrigger[c] = n.frameNumber
			n.out[c] = 1
		} else {
			n.out[c] = 0
		}
	}
	n.frameNumber++
}

// DMetro is Metro driven directly by a period in seconds instead of a
// frequency in Hz.
type DMetro struct {
	out         Frame
	lastTrigger []uint64
	frameNumber uint64
	sampleRate  Sample
}

// NewDMetro builds a DMetro for the given channel count and sample rate.
func NewDMetro(channels, sampleRate int) *DMetro {
	return &DMetro{out: make(Frame, channels), lastTrigger: make([]uint64, channels), sampleRate: Sample(sampleRate)}
}

func (n *DMetro) Inputs() uint8 { return 1 }
func (n *DMetro) Output() Frame { return n.out }
func (n *DMetro) Sample(input Frame) {
	for c := range n.out {
		dt := input[c]
		delta := uint64(n.sampleRate * dt)
		if delta <= n.frameNumber-n.lastTrigger[c] {
			n.lastTrigger[c] = n.frameNumber
			n.out[c] = 1
		} else {
			n.out[c] = 0
		}
	}
	n.frameNumber++
}

// MetroHold is Metro but the effective rate is latched at the instant of
// each trigger rather than resampled every frame; a frequency of exactly
// zero is treated as "not yet initialized" and is replaced by the next
// nonzero value seen.
type MetroHold struct {
	out         Frame
	frequencies Frame
	lastTrigger []uint64
	frameNumber uint64
	sampleRate  Sample
}

// NewMetroHold builds a MetroHold for the given channel count and sample rate.
func NewMetroHold(channels, sampleRate int) *MetroHold {
	return &MetroHold{
		out:         make(Frame, channels),
		frequencies: make(Frame, channels),
		lastTrigger: make([]uint64, channels),
		sampleRate:  Sample(sampleRate),
	}
}

func (n *MetroHold) Inputs() uint8 { return 1 }
func (n *MetroHold) Output() Frame { return n.out }
func (n *MetroHold) Sample(input Frame) {
	for c := range n.out {
		frequency := input[c]
		if n.frequencies[c] == 0 {
			n.frequencies[c] = frequency
		}
		delta := uint64(n.sampleRate / n.frequencies[c])
		if delta <= n.frameNumber-n.lastTrigger[c] {
			n.lastTrigger[c] = n.frameNumber
			n.frequencies[c] = frequency
			n.out[c] = 1
		} else {
			n.out[c] = 0
		}
	}
	n.frameNumber++
}

// DMetroHold is MetroHold driven by a period in seconds instead of a
// frequency in Hz.
type DMetroHold struct {
	out         Frame
	dts         Frame
	lastTrigger []uint64
	frameNumber uint64
	sampleRate  Sample
}

// NewDMetroHold builds a DMetroHold for the given channel count and sample rate.
func NewDMetroHold(channels, sampleRate int) *DMetroHold {
	return &DMetroHold{
		out:         make(Frame, channels),
		dts:         make(Frame, channels),
		lastTrigger: make([]uint64, channels),
		sampleRate:  Sample(sampleRate),
	}
}

func (n *DMetroHold) Inputs() uint8 { return 1 }
func (n *DMetroHold) Output() Frame { return n.out }
func (n *DMetroHold) Sample(input Frame) {
	for c := range n.out {
		dt := input[c]
		if n.dts[c] == 0 {
			n.dts[c] = dt
		}
		delta := uint64(n.sampleRate * n.dts[c])
		if delta <= n.frameNumber-n.lastTrigger[c] {
			n.lastTrigger[c] = n.frameNumber
			n.dts[c] = dt
			n.out[c] = 1
		} else {
			n.out[c] = 0
		}
	}
	n.frameNumber++
}
