package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-garden/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// oscillator returns an endless wave at freq.
func oscillator(wave Wave, rate beep.SampleRate, freq float64) (beep.Streamer, error) {
	switch wave {
	case WaveSquare:
		return generators.SquareTone(rate, freq)
	case WaveSaw:
		return generators.SawtoothTone(rate, freq)
	default:
		return generators.SineTone(rate, freq)
	}
}

// NewTone returns a streamer that plays freq for d and then ends. The last
// quarter fades out linearly so notes never click when they stop.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) (beep.Streamer, error) {
	osc, err := oscillator(wave, rate, freq)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	total := rate.N(d)
	release := total / 4
	if release == 0 {
		return beep.Take(total, osc), nil
	}
	return beep.Seq(
		beep.Take(total-release, osc),
		effects.Transition(beep.Take(release, osc), release, 1, 0, effects.TransitionLinear),
	), nil
}

// withVolume scales s linearly by vol. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one step of a cue.
type note struct {
	freq float64
	ms   int
	wave Wave
}

var cueNotes = map[core.Cue][]note{
	core.CueFired:     {{freq: 660, ms: 50, wave: WaveSquare}},
	core.CueJumped:    {{freq: 392, ms: 40, wave: WaveSine}, {freq: 523, ms: 60, wave: WaveSine}},
	core.CueDamaged:   {{freq: 110, ms: 180, wave: WaveSaw}},
	core.CueCollected: {{freq: 880, ms: 70, wave: WaveSine}, {freq: 1320, ms: 110, wave: WaveSine}},
	core.CueWon:       {{freq: 523, ms: 120, wave: WaveSine}, {freq: 659, ms: 120, wave: WaveSine}, {freq: 784, ms: 240, wave: WaveSine}},
	core.CueLost:      {{freq: 294, ms: 200, wave: WaveSaw}, {freq: 220, ms: 200, wave: WaveSaw}, {freq: 147, ms: 360, wave: WaveSaw}},
}

// Sound builds the streamer for a cue, or nil for cues without a sound.
// Notes the sample rate cannot carry are skipped.
func Sound(c core.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		t, err := NewTone(n.freq, time.Duration(n.ms)*time.Millisecond, n.wave, rate)
		if err != nil {
			continue
		}
		parts = append(parts, t)
	}
	if len(parts) == 0 {
		return nil
	}
	return withVolume(beep.Seq(parts...), volume)
}
