//go:build linux && alsa && !headless

package main

/*
#cgo LDFLAGS: -lasound
#include <alsa/asoundlib.h>
#include <stdlib.h>

static snd_pcm_t* openPCM(const char* device, int* err) {
    snd_pcm_t* handle;
    *err = snd_pcm_open(&handle, device, SND_PCM_STREAM_PLAYBACK, 0);
    return handle;
}

static int setupPCM(snd_pcm_t* handle, unsigned int rate, unsigned int channels) {
    snd_pcm_hw_params_t* params;
    int err;

    snd_pcm_hw_params_alloca(&params);
    err = snd_pcm_hw_params_any(handle, params);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_access(handle, params, SND_PCM_ACCESS_RW_INTERLEAVED);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_format(handle, params, SND_PCM_FORMAT_FLOAT);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_channels(handle, params, channels);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_rate(handle, params, rate, 0);
    if (err < 0) return err;

    err = snd_pcm_hw_params(handle, params);
    if (err < 0) return err;

    return snd_pcm_prepare(handle);
}

static int writePCM(snd_pcm_t* handle, float* buffer, int frames) {
    return snd_pcm_writei(handle, buffer, frames);
}

static void closePCM(snd_pcm_t* handle) {
    if (handle != NULL) {
        snd_pcm_drain(handle);
        snd_pcm_close(handle);
    }
}
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ul/sound-garden-vst/engine"
)

// alsaPeriodFrames is the number of frames pulled from the host and
// written to ALSA per snd_pcm_writei call.
const alsaPeriodFrames = 512

// Player is the ALSA counterpart to player.go's oto-backed Player: ALSA
// has no pull-via-Read callback of its own, so instead of oto pulling
// samples through Read, a loop goroutine here pulls frames from the host
// and pushes them to ALSA with blocking writes, built only with -tags
// alsa on Linux for hosts that want direct ALSA access instead of oto's
// portable backend.
type Player struct {
	handle   *C.snd_pcm_t
	host     *engine.Host
	channels int
	external []float64
	buf      []float32
	started  bool
	mutex    sync.Mutex
	stopCh   chan struct{}
	done     chan struct{}
	stopped  sync.Once
}

// NewPlayer opens the default ALSA PCM device for playback at the given
// sample rate and channel count, float32 samples throughout.
func NewPlayer(sampleRate, channels int) (*Player, error) {
	var cerr C.int
	device := C.CString("default")
	defer C.free(unsafe.Pointer(device))
	handle := C.openPCM(device, &cerr)
	if cerr < 0 {
		return nil, fmt.Errorf("failed to open PCM device: %s", C.GoString(C.snd_strerror(cerr)))
	}
	if cerr = C.setupPCM(handle, C.uint(sampleRate), C.uint(channels)); cerr < 0 {
		C.closePCM(handle)
		return nil, fmt.Errorf("failed to setup PCM: %s", C.GoString(C.snd_strerror(cerr)))
	}
	return &Player{
		handle:   handle,
		channels: channels,
		buf:      make([]float32, alsaPeriodFrames*channels),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// SetupPlayer attaches the host this Player pulls frames from.
func (p *Player) SetupPlayer(h *engine.Host) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.host = h
	p.external = make([]float64, p.channels)
}

// Start launches the write loop; it is a no-op if already started.
func (p *Player) Start() {
	p.mutex.Lock()
	if p.started {
		p.mutex.Unlock()
		return
	}
	p.started = true
	p.mutex.Unlock()

	go p.loop()
}

// loop pulls one period's worth of frames from the host and blocks on
// snd_pcm_writei until Stop closes stopCh.
func (p *Player) loop() {
	defer close(p.done)
	for {
		select {
		case <-p.stopCh:
			return
		default:
		}

		for i := 0; i < alsaPeriodFrames; i++ {
			frame := p.host.Sample(p.external)
			for c := 0; c < p.channels; c++ {
				p.buf[i*p.channels+c] = float32(frame[c])
			}
		}

		frames := C.writePCM(p.handle, (*C.float)(unsafe.Pointer(&p.buf[0])), C.int(alsaPeriodFrames))
		if frames < 0 && frames == -C.EPIPE {
			C.snd_pcm_prepare(p.handle)
		}
	}
}

// Stop halts the write loop; it is a no-op if not started.
func (p *Player) Stop() {
	p.mutex.Lock()
	if !p.started {
		p.mutex.Unlock()
		return
	}
	p.started = false
	p.mutex.Unlock()

	p.stopped.Do(func() { close(p.stopCh) })
	<-p.done
}

// Close stops playback and releases the underlying ALSA handle.
func (p *Player) Close() {
	p.Stop()
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.handle != nil {
		C.closePCM(p.handle)
		p.handle = nil
	}
}
