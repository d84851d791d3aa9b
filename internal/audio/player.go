// Package audio plays the simulation's sound cues through the system
// speaker. When no audio device is available the player stays silent and
// the game runs unchanged.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-garden/internal/core"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(48000)

// DefaultVolume is the linear gain applied to cues.
const DefaultVolume = 0.25

// Player mixes cue sounds into the speaker.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	enabled bool
}

// New creates a player. Call Init to open the device.
func New(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Silent returns a player that drops every cue. SSH sessions and --mute use it.
func Silent() *Player {
	return New(0)
}

// Init opens the speaker. On failure the player stays silent and the error
// is returned for logging.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled || p.volume <= 0 {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues the sounds for cues.
func (p *Player) Play(cues ...core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || len(cues) == 0 {
		return
	}
	speaker.Lock()
	for _, c := range cues {
		if s := Sound(c, SampleRate, p.volume); s != nil {
			p.mixer.Add(s)
		}
	}
	speaker.Unlock()
}

// Close stops playback. The player is silent afterwards.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.enabled = false
}
