package audiograph

// window is a fixed-size sliding FIFO of samples, indexed logically from
// oldest (0) to newest (len-1). It backs Yin's per-channel analysis
// buffer the way a VecDeque backs the reference implementation's: push
// drops the oldest sample and appends the newest in O(1).
type window struct {
	data []Sample
	head int
}

func newWindow(size int) *window {
	return &window{data: make([]Sample, size)}
}

func (w *window) push(x Sample) {
	w.data[w.head] = x
	w.head = (w.head + 1) % len(w.data)
}

// at returns the i-th oldest-to-newest sample, 0 <= i < len(w.data).
func (w *window) at(i int) Sample {
	return w.data[(w.head+i)%len(w.data)]
}

// Yin detects the fundamental frequency of a single input source using
// the Yin algorithm: a squared-difference function converted to a
// cumulative mean normalized difference, an absolute threshold to find
// the first believable period, and parabolic interpolation to refine it.
// The analysis only runs once every `period` frames; its result is held
// between recomputations.
type Yin struct {
	buffer      Frame
	channels    int
	out         Frame
	period      int
	frameNumber int
	sampleRate  Sample
	threshold   Sample
	windows     []*window
}

// NewYin builds a Yin node. windowSize is the analysis window length in
// frames (1024 in the postfix catalog default), period is how often (in
// frames) the analysis reruns (512 by default), and threshold is the Yin
// absolute-threshold parameter (0.2 by default).
func NewYin(channels, sampleRate, windowSize, period int, threshold Sample) *Yin {
	windows := make([]*window, channels)
	for c := range windows {
		windows[c] = newWindow(windowSize)
	}
	return &Yin{
		buffer:     make(Frame, windowSize/2),
		channels:   channels,
		out:        make(Frame, channels),
		period:     period,
		sampleRate: Sample(sampleRate),
		threshold:  threshold,
		windows:    windows,
	}
}

func (n *Yin) Inputs() uint8 { return 1 }
func (n *Yin) Output() Frame { return n.out }

func (n *Yin) Sample(input Frame) {
	for c := 0; c < n.channels; c++ {
		n.windows[c].push(input[c])
	}
	if n.frameNumber%n.period == 0 {
		for c := 0; c < n.channels; c++ {
			n.difference(c)
			n.cumulativeMeanNormalizedDifference()
			if tau, ok := n.absoluteThreshold(); ok {
				n.out[c] = n.sampleRate / n.parabolicInterpolation(tau)
			} else {
				n.out[c] = 0
			}
		}
	}
	n.frameNumber++
}

func (n *Yin) difference(channel int) {
	w := n.windows[channel]
	bufferLen := len(n.buffer)
	for tau := 1; tau < bufferLen; tau++ {
		var sum Sample
		for i := 0; i < bufferLen; i++ {
			delta := w.at(i) - w.at(i+tau)
			sum += delta * delta
		}
		n.buffer[tau] = sum
	}
}

func (n *Yin) cumulativeMeanNormalizedDifference() {
	var runningSum Sample
	n.buffer[0] = 1
	for tau := 1; tau < len(n.buffer); tau++ {
		runningSum += n.buffer[tau]
		n.buffer[tau] *= Sample(tau) / runningSum
	}
}

func (n *Yin) absoluteThreshold() (tau int, ok bool) {
	bufferLen := len(n.buffer)
	tau = 2
	for tau < bufferLen && !(n.buffer[tau] < n.threshold) {
		tau++
	}
	for tau+1 < bufferLen && n.buffer[tau+1] < n.buffer[tau] {
		tau++
	}
	if tau == bufferLen || n.buffer[tau] >= n.threshold {
		return 0, false
	}
	return tau, true
}

func (n *Yin) parabolicInterpolation(x1 int) Sample {
	x0 := x1 - 1
	x2 := x1 + 1
	s0 := n.buffer[x0]
	s1 := n.buffer[x1]
	if x2 < len(n.buffer) {
		s2 := n.buffer[x2]
		d := 2*s1 - s2 - s0
		delta := s2 - s0
		if d != 0 {
			return Sample(x1) + delta/(2*d)
		}
		return Sample(x1)
	}
	if s0 < s1 {
		return Sample(x0)
	}
	return Sample(x1)
}
