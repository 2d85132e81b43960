package audiograph

import "math"

// This file collects the stateless scalar math shared by the node
// catalog and exposed to the postfix compiler for wiring into Fn1/Fn2/Fn3
// nodes: the same shapes (sine, triangle, rectangle, pan curve) keep
// reappearing across oscillators, filters and panners, so they live here
// once instead of inline in each node.

// Sine maps a bipolar phasor value in [-1, 1) to a sine wave.
func Sine(phase Sample) Sample {
	return math.Sin(math.Pi * phase)
}

// Triangle maps a bipolar phasor value in [-1, 1) to a triangle wave.
func Triangle(phase Sample) Sample {
	return 2*math.Abs(phase) - 1
}

// Rectangle maps a bipolar phasor value and a duty cycle to a square
// wave with that duty cycle.
func Rectangle(phase, duty Sample) Sample {
	if phase < 2*duty-1 {
		return 1
	}
	return -1
}

// Unit rescales [-1, 1] to [0, 1].
func Unit(x Sample) Sample {
	return (x + 1) / 2
}

// Range rescales x from [-1, 1] to [lo, hi] via Unit.
func Range(x, lo, hi Sample) Sample {
	return lo + Unit(x)*(hi-lo)
}

// Midi2Freq converts a MIDI note number (possibly fractional) to Hz.
func Midi2Freq(m Sample) Sample {
	return 440 * math.Pow(2, (m-69)/12)
}

// Quantize snaps x to the nearest multiple of step.
func Quantize(x, step Sample) Sample {
	return math.Round(x/step) * step
}

// Pan computes the equal-power stereo mix of l and r at position c in
// [-1, 1]; c = -1 is full left, c = 1 is full right.
func Pan(l, r, c Sample) (left, right Sample) {
	left = math.Sqrt(math.Max(0, 1-c))*l + math.Sqrt(math.Max(0, -c))*r
	right = math.Sqrt(math.Max(0, c))*l + math.Sqrt(math.Max(0, 1+c))*r
	return left, right
}

// Chebyshev evaluates the degree-n Chebyshev polynomial of the first
// kind at x via the standard three-term recurrence.
func Chebyshev(n int, x Sample) Sample {
	switch n {
	case 0:
		return 1
	case 1:
		return x
	}
	t0, t1 := Sample(1), x
	for k := 2; k <= n; k++ {
		t0, t1 = t1, 2*x*t1-t0
	}
	return t1
}

func Cheb2(x Sample) Sample { return Chebyshev(2, x) }
func Cheb3(x Sample) Sample { return Chebyshev(3, x) }
func Cheb4(x Sample) Sample { return Chebyshev(4, x) }
func Cheb5(x Sample) Sample { return Chebyshev(5, x) }
func Cheb6(x Sample) Sample { return Chebyshev(6, x) }

func Add(a, b Sample) Sample  { return a + b }
func Sub(a, b Sample) Sample  { return a - b }
func Mul(a, b Sample) Sample  { return a * b }
func Div(a, b Sample) Sample  { return a / b }
func Recip(a Sample) Sample   { return 1 / a }
func Pow(a, b Sample) Sample  { return math.Pow(a, b) }
func Sin(a Sample) Sample     { return math.Sin(a) }
func Cos(a Sample) Sample     { return math.Cos(a) }
func Round(a Sample) Sample   { return math.Round(a) }
