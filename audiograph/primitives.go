package audiograph

import "math/rand"

// Constant outputs the same value x on every channel forever.
type Constant struct {
	out Frame
}

// NewConstant builds a Constant node for the given channel count.
func NewConstant(channels int, x Sample) *Constant {
	out := make(Frame, channels)
	for c := range out {
		out[c] = x
	}
	return &Constant{out: out}
}

func (n *Constant) Inputs() uint8 { return 0 }
func (n *Constant) Output() Frame { return n.out }
func (n *Constant) Sample(Frame)  {}

// Input copies the host's external frame straight through.
type Input struct {
	out Frame
}

// NewInput builds an Input node for the given channel count.
func NewInput(channels int) *Input {
	return &Input{out: make(Frame, channels)}
}

func (n *Input) Inputs() uint8 { return 0 }
func (n *Input) Output() Frame { return n.out }
func (n *Input) Sample(input Frame) {
	copy(n.out, input[:len(n.out)])
}

// Parameter taps the i-th automation parameter, found at offset
// channels+i of the external frame, and broadcasts it to every channel.
type Parameter struct {
	index int
	out   Frame
}

// NewParameter builds a Parameter node reading parameter i.
func NewParameter(channels, index int) *Parameter {
	return &Parameter{index: index, out: make(Frame, channels)}
}

func (n *Parameter) Inputs() uint8 { return 0 }
func (n *Parameter) Output() Frame { return n.out }
func (n *Parameter) Sample(input Frame) {
	v := input[len(n.out)+n.index]
	for c := range n.out {
		n.out[c] = v
	}
}

// Noise emits an independent uniform sample in [-1, 1) per channel.
type Noise struct {
	out Frame
	rng *rand.Rand
}

// NewNoise builds a Noise node for the given channel count, seeded from
// the package-level source so successive programs don't replay the
// exact same sequence.
func NewNoise(channels int) *Noise {
	return &Noise{out: make(Frame, channels), rng: rand.New(rand.NewSource(rand.Int63()))}
}

func (n *Noise) Inputs() uint8 { return 0 }
func (n *Noise) Output() Frame { return n.out }
func (n *Noise) Sample(Frame) {
	for c := range n.out {
		n.out[c] = n.rng.Float64()*2 - 1
	}
}

// Zip reassembles a multi-channel frame from the first channel of each
// of its channels-many sources: output[c] = input[c*channels].
type Zip struct {
	channels int
	out      Frame
}

// NewZip builds a Zip node; its arity equals the channel count.
func NewZip(channels int) *Zip {
	return &Zip{channels: channels, out: make(Frame, channels)}
}

func (n *Zip) Inputs() uint8 { return uint8(n.channels) }
func (n *Zip) Output() Frame { return n.out }
func (n *Zip) Sample(input Frame) {
	for c := range n.out {
		n.out[c] = input[c*n.channels]
	}
}

// Fn1 applies a unary scalar function per channel across a single
// source.
type Fn1 struct {
	f   func(Sample) Sample
	out Frame
}

// NewFn1 builds an Fn1 node wrapping f.
func NewFn1(channels int, f func(Sample) Sample) *Fn1 {
	return &Fn1{f: f, out: make(Frame, channels)}
}

func (n *Fn1) Inputs() uint8 { return 1 }
func (n *Fn1) Output() Frame { return n.out }
func (n *Fn1) Sample(input Frame) {
	for c := range n.out {
		n.out[c] = n.f(input[c])
	}
}

// Fn2 applies a binary scalar function per channel across two sources.
type Fn2 struct {
	channels int
	f        func(Sample, Sample) Sample
	out      Frame
}

// NewFn2 builds an Fn2 node wrapping f.
func NewFn2(channels int, f func(Sample, Sample) Sample) *Fn2 {
	return &Fn2{channels: channels, f: f, out: make(Frame, channels)}
}

func (n *Fn2) Inputs() uint8 { return 2 }
func (n *Fn2) Output() Frame { return n.out }
func (n *Fn2) Sample(input Frame) {
	for c := range n.out {
		n.out[c] = n.f(input[c], input[n.channels+c])
	}
}

// Fn3 applies a ternary scalar function per channel across three
// sources.
type Fn3 struct {
	channels int
	f        func(Sample, Sample, Sample) Sample
	out      Frame
}

// NewFn3 builds an Fn3 node wrapping f.
func NewFn3(channels int, f func(Sample, Sample, Sample) Sample) *Fn3 {
	return &Fn3{channels: channels, f: f, out: make(Frame, channels)}
}

func (n *Fn3) Inputs() uint8 { return 3 }
func (n *Fn3) Output() Frame { return n.out }
func (n *Fn3) Sample(input Frame) {
	for c := range n.out {
		n.out[c] = n.f(input[c], input[n.channels+c], input[2*n.channels+c])
	}
}
