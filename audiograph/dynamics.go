package audiograph

import "math"

// SampleAndHold cross-fades between its held output and a new input
// according to a trigger signal: binary triggers hold between pulses,
// continuous triggers cross-fade continuously.
type SampleAndHold struct {
	out Frame
}

// NewSampleAndHold builds a SampleAndHold node for the given channel count.
func NewSampleAndHold(channels int) *SampleAndHold {
	return &SampleAndHold{out: make(Frame, channels)}
}

func (n *SampleAndHold) Inputs() uint8 { return 2 }
func (n *SampleAndHold) Output() Frame { return n.out }
func (n *SampleAndHold) Sample(input Frame) {
	channels := len(n.out)
	for c := range n.out {
		t := input[c]
		x := input[c+channels]
		n.out[c] = n.out[c]*(1-t) + x*t
	}
}

// Pan1 pans a stereo input (channels 0 and 1 of a single source) using a
// position read from channel 0 of a second source.
type Pan1 struct {
	channels int
	out      Frame
}

// NewPan1 builds a Pan1 node; channels must be 2.
func NewPan1(channels int) *Pan1 {
	return &Pan1{channels: channels, out: make(Frame, channels)}
}

func (n *Pan1) Inputs() uint8 { return 2 }
func (n *Pan1) Output() Frame { return n.out }
func (n *Pan1) Sample(input Frame) {
	l, r := Pan(input[0], input[1], input[n.channels])
	n.out[0] = l
	n.out[1] = r
}

// Pan2 pans the left channel of its first source against the right
// channel of its second, using a position read from a third source.
type Pan2 struct {
	channels int
	out      Frame
}

// NewPan2 builds a Pan2 node; channels must be 2.
func NewPan2(channels int) *Pan2 {
	return &Pan2{channels: channels, out: make(Frame, channels)}
}

func (n *Pan2) Inputs() uint8 { return 3 }
func (n *Pan2) Output() Frame { return n.out }
func (n *Pan2) Sample(input Frame) {
	channels := n.channels
	l := input[0]
	r := input[1+channels]
	c := input[2*channels]
	left, right := Pan(l, r, c)
	n.out[0] = left
	n.out[1] = right
}

// Pan3 pans a full per-channel stereo source against a per-channel
// position vector.
type Pan3 struct {
	channels int
	out      Frame
}

// NewPan3 builds a Pan3 node.
func NewPan3(channels int) *Pan3 {
	return &Pan3{channels: channels, out: make(Frame, channels)}
}

func (n *Pan3) Inputs() uint8 { return 3 }
func (n *Pan3) Output() Frame { return n.out }
func (n *Pan3) Sample(input Frame) {
	channels := n.channels
	for c := range n.out {
		l := input[c]
		r := input[c+channels]
		pos := input[c+2*channels]
		switch c {
		case 0:
			n.out[c] = math.Sqrt(math.Max(0, 1-pos))*l + math.Sqrt(math.Max(0, -pos))*r
		case 1:
			n.out[c] = math.Sqrt(math.Max(0, pos))*l + math.Sqrt(math.Max(0, 1+pos))*r
		default:
			n.out[c] = 0
		}
	}
}
