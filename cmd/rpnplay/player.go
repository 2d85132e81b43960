//go:build !headless && !(linux && alsa)

package main

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/oto/v3"

	"github.com/ul/sound-garden-vst/engine"
)

// Player pulls frames from a live engine.Host and hands interleaved
// float32 samples to oto on demand. The host pointer is swapped
// atomically so Read, which runs on oto's own callback thread, never
// blocks behind setup or teardown.
type Player struct {
	ctx       *oto.Context
	player    *oto.Player
	host      atomic.Pointer[engine.Host]
	channels  int
	sampleBuf []float32
	external  []float64
	started   bool
	mutex     sync.Mutex
}

// NewPlayer opens an oto playback context at the given sample rate and
// channel count, floating-point samples throughout.
func NewPlayer(sampleRate, channels int) (*Player, error) {
	options := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	}
	ctx, ready, err := oto.NewContext(options)
	if err != nil {
		return nil, err
	}
	<-ready
	return &Player{ctx: ctx, channels: channels}, nil
}

// SetupPlayer attaches the host this Player pulls frames from and
// creates the underlying oto.Player.
func (p *Player) SetupPlayer(h *engine.Host) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.host.Store(h)
	p.player = p.ctx.NewPlayer(p)
	p.sampleBuf = make([]float32, 4096)
	p.external = make([]float64, p.channels)
}

// Read implements io.Reader for oto: it samples the host frame by frame
// until it has filled b with interleaved float32 samples.
func (p *Player) Read(b []byte) (n int, err error) {
	h := p.host.Load()
	if h == nil {
		for i := range b {
			b[i] = 0
		}
		return len(b), nil
	}

	numSamples := len(b) / 4
	if len(p.sampleBuf) < numSamples {
		p.sampleBuf = make([]float32, numSamples)
	}
	samples := p.sampleBuf[:numSamples]

	for i := 0; i < numSamples; i += p.channels {
		frame := h.Sample(p.external)
		for c := 0; c < p.channels && i+c < numSamples; c++ {
			samples[i+c] = float32(frame[c])
		}
	}

	copy(b, (*[1 << 30]byte)(unsafe.Pointer(&samples[0]))[:len(b)])
	return len(b), nil
}

// Start begins playback; it is a no-op if already started.
func (p *Player) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if !p.started && p.player != nil {
		p.player.Play()
		p.started = true
	}
}

// Stop halts playback; it is a no-op if not started.
func (p *Player) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.started && p.player != nil {
		p.player.Close()
		p.started = false
	}
}

// Close stops playback and releases the underlying oto.Player.
func (p *Player) Close() {
	p.Stop()
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.player != nil {
		p.player.Close()
		p.player = nil
	}
}
