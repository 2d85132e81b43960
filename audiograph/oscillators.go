package audiograph

import "math"

// Phasor generates a bipolar sawtooth phase signal in [-1, 1), driven
// per channel by an independent, possibly time-varying frequency. It is
// named for its role as the phase input to other oscillator shapes,
// which then become pure transformations of it.
type Phasor struct {
	phases     Frame
	sampleRate Sample
}

// NewPhasor builds a Phasor for the given channel count and sample rate.
func NewPhasor(channels, sampleRate int) *Phasor {
	return &Phasor{phases: make(Frame, channels), sampleRate: Sample(sampleRate)}
}

func (n *Phasor) Inputs() uint8 { return 1 }
func (n *Phasor) Output() Frame { return n.phases }
func (n *Phasor) Sample(input Frame) {
	for c := range n.phases {
		// The phase spans 2 units per cycle, so advance by 2f/rate to
		// complete one cycle every rate/f frames.
		dx := 2 * input[c] / n.sampleRate
		n.phases[c] = wrap(n.phases[c] + dx)
	}
}

func wrap(phase Sample) Sample {
	return math.Mod(phase+1, 2) - 1
}

// Phasor0 is Phasor with an extra phase-offset source added into the
// running phase before wrapping.
type Phasor0 struct {
	phases     Frame
	sampleRate Sample
}

// NewPhasor0 builds a Phasor0 for the given channel count and sample rate.
func NewPhasor0(channels, sampleRate int) *Phasor0 {
	return &Phasor0{phases: make(Frame, channels), sampleRate: Sample(sampleRate)}
}

func (n *Phasor0) Inputs() uint8 { return 2 }
func (n *Phasor0) Output() Frame { return n.phases }
func (n *Phasor0) Sample(input Frame) {
	channels := len(n.phases)
	for c := range n.phases {
		frequency := input[c]
		phase0 := input[c+channels]
		dx := 2 * frequency / n.sampleRate
		n.phases[c] = wrap(n.phases[c] + phase0 + dx)
	}
}

// Osc composes a Phasor with a unary shaping function, e.g. sine or
// triangle, to produce a periodic oscillator driven by frequency alone.
type Osc struct {
	phasor *Phasor
	fn     *Fn1
}

// NewOsc builds an Osc shaped by f.
func NewOsc(channels, sampleRate int, f func(Sample) Sample) *Osc {
	return &Osc{phasor: NewPhasor(channels, sampleRate), fn: NewFn1(channels, f)}
}

func (n *Osc) Inputs() uint8 { return 1 }
func (n *Osc) Output() Frame { return n.fn.Output() }
func (n *Osc) Sample(input Frame) {
	n.phasor.Sample(input)
	n.fn.Sample(n.phasor.Output())
}

// OscPhase is Osc built on Phasor0, accepting an explicit phase-offset
// source alongside frequency.
type OscPhase struct {
	phasor *Phasor0
	fn     *Fn1
}

// NewOscPhase builds an OscPhase shaped by f.
func NewOscPhase(channels, sampleRate int, f func(Sample) Sample) *OscPhase {
	return &OscPhase{phasor: NewPhasor0(channels, sampleRate), fn: NewFn1(channels, f)}
}

func (n *OscPhase) Inputs() uint8 { return 2 }
func (n *OscPhase) Output() Frame { return n.fn.Output() }
func (n *OscPhase) Sample(input Frame) {
	n.phasor.Sample(input)
	n.fn.Sample(n.phasor.Output())
}

// Pulse is a pulse/square wave with a controllable duty cycle, built by
// feeding a Phasor's phase and the duty-cycle source into rectangle.
type Pulse struct {
	channels int
	scratch  Frame
	phasor   *Phasor
	fn       *Fn2
}

// NewPulse builds a Pulse for the given channel count and sample rate.
func NewPulse(channels, sampleRate int) *Pulse {
	return &Pulse{
		channels: channels,
		scratch:  make(Frame, 2*channels),
		phasor:   NewPhasor(channels, sampleRate),
		fn:       NewFn2(channels, Rectangle),
	}
}

func (n *Pulse) Inputs() uint8 { return 2 }
func (n *Pulse) Output() Frame { return n.fn.Output() }
func (n *Pulse) Sample(input Frame) {
	n.phasor.Sample(input)
	copy(n.scratch[:n.channels], n.phasor.Output())
	copy(n.scratch[n.channels:2*n.channels], input[n.channels:2*n.channels])
	n.fn.Sample(n.scratch)
}
