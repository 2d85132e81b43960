package audiograph

import "math"

// LPF is a one-pole IIR low-pass filter with a per-channel, per-sample
// cutoff frequency.
type LPF struct {
	out                 Frame
	sampleAngularPeriod Sample
}

// NewLPF builds an LPF for the given channel count and sample rate.
func NewLPF(channels, sampleRate int) *LPF {
	return &LPF{out: make(Frame, channels), sampleAngularPeriod: 2 * math.Pi / Sample(sampleRate)}
}

func (n *LPF) Inputs() uint8 { return 2 }
func (n *LPF) Output() Frame { return n.out }
func (n *LPF) Sample(input Frame) {
	channels := len(n.out)
	for c := range n.out {
		x := input[c]
		freq := input[c+channels]
		k := freq * n.sampleAngularPeriod
		a := k / (k + 1)
		n.out[c] += a * (x - n.out[c])
	}
}

// HPF is a one-pole IIR high-pass filter with a per-channel, per-sample
// cutoff frequency.
type HPF struct {
	out                 Frame
	sampleAngularPeriod Sample
	xPrime              Frame
}

// NewHPF builds an HPF for the given channel count and sample rate.
func NewHPF(channels, sampleRate int) *HPF {
	return &HPF{
		out:                 make(Frame, channels),
		sampleAngularPeriod: 2 * math.Pi / Sample(sampleRate),
		xPrime:              make(Frame, channels),
	}
}

func (n *HPF) Inputs() uint8 { return 2 }
func (n *HPF) Output() Frame { return n.out }
func (n *HPF) Sample(input Frame) {
	channels := len(n.out)
	for c := range n.out {
		x := input[c]
		xPrime := n.xPrime[c]
		freq := input[c+channels]
		k := freq * n.sampleAngularPeriod
		a := 1 / (k + 1)
		n.out[c] = a * (n.out[c] + x - xPrime)
	}
	copy(n.xPrime, input[:channels])
}

// BiQuadCoefficients computes the (b0, b1, b2, a0, a1, a2) Direct-Form-I
// coefficients for a biquad section from the angular cutoff's sine,
// cosine and half-bandwidth term alpha.
type BiQuadCoefficients func(sinO, cosO, alpha Sample) (b0, b1, b2, a0, a1, a2 Sample)

// BiQuadLPF is the audio-EQ-cookbook low-pass coefficient function.
func BiQuadLPF(_, cosO, alpha Sample) (b0, b1, b2, a0, a1, a2 Sample) {
	b1 = 1 - cosO
	b0 = 0.5 * b1
	return b0, b1, b0, 1 + alpha, -2 * cosO, 1 - alpha
}

// BiQuadHPF is the audio-EQ-cookbook high-pass coefficient function.
func BiQuadHPF(_, cosO, alpha Sample) (b0, b1, b2, a0, a1, a2 Sample) {
	k := 1 + cosO
	b0 = 0.5 * k
	b1 = -k
	return b0, b1, b0, 1 + alpha, -2 * cosO, 1 - alpha
}

// BiQuad is a Direct-Form-I biquad filter whose coefficients are
// recomputed every sample from a per-channel cutoff frequency and Q,
// via a pluggable coefficient function.
type BiQuad struct {
	makeCoefficients    BiQuadCoefficients
	out                 Frame
	sampleAngularPeriod Sample
	x1, x2, y2          Frame
}

// NewBiQuad builds a BiQuad using the given coefficient function.
func NewBiQuad(channels, sampleRate int, makeCoefficients BiQuadCoefficients) *BiQuad {
	return &BiQuad{
		makeCoefficients:    makeCoefficients,
		out:                 make(Frame, channels),
		sampleAngularPeriod: 2 * math.Pi / Sample(sampleRate),
		x1:                  make(Frame, channels),
		x2:                  make(Frame, channels),
		y2:                  make(Frame, channels),
	}
}

func (n *BiQuad) Inputs() uint8 { return 3 }
func (n *BiQuad) Output() Frame { return n.out }
func (n *BiQuad) Sample(input Frame) {
	channels := len(n.out)
	for c := range n.out {
		x := input[c]
		freq := input[c+channels]
		q := input[c+2*channels]

		x1 := n.x1[c]
		x2 := n.x2[c]
		y1 := n.out[c]
		y2 := n.y2[c]

		o := freq * n.sampleAngularPeriod
		sinO, cosO := math.Sin(o), math.Cos(o)
		alpha := sinO / (2 * q)
		b0, b1, b2, a0, a1, a2 := n.makeCoefficients(sinO, cosO, alpha)
		n.out[c] = (x*b0 + x1*b1 + x2*b2 - y1*a1 - y2*a2) / a0

		n.x2[c] = x1
		n.x1[c] = x
		n.y2[c] = y1
	}
}
