package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-garden/internal/core"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				return -1
			}
		}
	}
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	tests := []struct {
		name string
		wave Wave
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tone, err := NewTone(440, 100*time.Millisecond, tt.wave, rate)
			if err != nil {
				t.Fatalf("NewTone() error = %v", err)
			}
			got := drain(tone)
			if got != rate.N(100*time.Millisecond) {
				t.Errorf("streamed %d samples, expected %d in [-1, 1]", got, rate.N(100*time.Millisecond))
			}
		})
	}
}

func TestToneFadesOut(t *testing.T) {
	rate := beep.SampleRate(8000)
	s, err := NewTone(1000, 10*time.Millisecond, WaveSquare, rate)
	if err != nil {
		t.Fatalf("NewTone() error = %v", err)
	}
	buf := make([][2]float64, rate.N(10*time.Millisecond))
	n, _ := s.Stream(buf)

	last := buf[n-1][0]
	if last > 0.1 || last < -0.1 {
		t.Errorf("last sample = %v, expected near silence", last)
	}
}

func TestToneAboveNyquist(t *testing.T) {
	if _, err := NewTone(5000, 10*time.Millisecond, WaveSine, beep.SampleRate(8000)); err == nil {
		t.Error("NewTone() error = nil, expected an error above half the sample rate")
	}
}

func TestSoundForEveryCue(t *testing.T) {
	cues := []core.Cue{core.CueFired, core.CueJumped, core.CueDamaged, core.CueCollected, core.CueWon, core.CueLost}
	for _, c := range cues {
		if Sound(c, SampleRate, DefaultVolume) == nil {
			t.Errorf("Sound(%v) = nil, expected a streamer", c)
		}
	}
	if Sound(core.Cue(42), SampleRate, DefaultVolume) != nil {
		t.Error("Sound(unknown) != nil")
	}
}

func TestSilentPlayer(t *testing.T) {
	p := Silent()
	if err := p.Init(); err != nil {
		t.Fatalf("Init() = %v, expected nil for a silent player", err)
	}
	if p.Enabled() {
		t.Error("Enabled() = true for a silent player")
	}
	p.Play(core.CueFired, core.CueWon)
	p.Close()
}
