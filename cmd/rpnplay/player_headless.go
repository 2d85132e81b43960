//go:build headless

package main

import "github.com/ul/sound-garden-vst/engine"

// Player is a no-op stand-in used for headless builds (CI, containers
// without an audio device): it accepts a host but never reads from it.
type Player struct {
	started bool
}

func NewPlayer(sampleRate, channels int) (*Player, error) {
	return &Player{}, nil
}

func (p *Player) SetupPlayer(h *engine.Host) {}

func (p *Player) Read(b []byte) (int, error) {
	return len(b), nil
}

func (p *Player) Start() { p.started = true }
func (p *Player) Stop()  { p.started = false }
func (p *Player) Close() { p.started = false }
