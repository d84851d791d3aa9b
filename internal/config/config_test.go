package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseGarden(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseGarden(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGardenConfig()) {
		t.Errorf("embedded YAML and DefaultGardenConfig() differ:\n%+v\n%+v", cfg, DefaultGardenConfig())
	}
}

func TestParseGardenPartialOverride(t *testing.T) {
	cfg, err := ParseGarden([]byte("player:\n  lives: 9\nlevel:\n  layout: procedural\n"))
	if err != nil {
		t.Fatalf("ParseGarden() error: %v", err)
	}
	if cfg.Player.Lives != 9 {
		t.Errorf("Player.Lives = %d, expected 9", cfg.Player.Lives)
	}
	if cfg.Level.Layout != "procedural" {
		t.Errorf("Level.Layout = %q, expected procedural", cfg.Level.Layout)
	}
	if cfg.Player.JumpVelocity != -18 {
		t.Errorf("Player.JumpVelocity = %v, expected default -18", cfg.Player.JumpVelocity)
	}
}

func TestParseGardenInvalid(t *testing.T) {
	if _, err := ParseGarden([]byte("player: [not, a, map")); err == nil {
		t.Error("ParseGarden() should fail on malformed YAML")
	}
}

func TestLoadGardenCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.yaml")
	if err := os.WriteFile(path, []byte("match:\n  time_limit_ms: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGarden(path)
	if err != nil {
		t.Fatalf("LoadGarden() error: %v", err)
	}
	if cfg.Match.TimeLimitMs != 0 {
		t.Errorf("TimeLimitMs = %d, expected 0", cfg.Match.TimeLimitMs)
	}
}

func TestLoadGardenMissingCustomPath(t *testing.T) {
	cfg, err := LoadGarden(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadGarden() should report a missing custom file")
	}
	if cfg.World.MapWidth != 2560 {
		t.Errorf("fallback MapWidth = %v, expected 2560", cfg.World.MapWidth)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultGardenConfig())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	cfg, err := ParseGarden(data)
	if err != nil {
		t.Fatalf("ParseGarden() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGardenConfig()) {
		t.Error("marshalled defaults should decode to the same config")
	}
}

func TestGroundY(t *testing.T) {
	if got := DefaultGardenConfig().World.GroundY(); got != 620 {
		t.Errorf("GroundY() = %v, expected 620", got)
	}
}

func TestApplyGardenPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		lives       int
		timeLimitMs int64
		phase       int
		enabled     bool
	}{
		{DifficultyEasy, 6, 60000, 1, true},
		{DifficultyNormal, 4, 45000, 1, true},
		{DifficultyHard, 3, 35000, 2, true},
		{DifficultyFixed, 4, 45000, 1, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGardenConfig()
			ApplyGardenPreset(&cfg, tc.preset)
			if cfg.Player.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Player.Lives, tc.lives)
			}
			if cfg.Match.TimeLimitMs != tc.timeLimitMs {
				t.Errorf("TimeLimitMs = %d, expected %d", cfg.Match.TimeLimitMs, tc.timeLimitMs)
			}
			if cfg.Level.Phase != tc.phase {
				t.Errorf("Phase = %d, expected %d", cfg.Level.Phase, tc.phase)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Difficulty.Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
		})
	}
}

func TestValidPreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		if !ValidPreset(name) {
			t.Errorf("ValidPreset(%q) = false, expected true", name)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("ValidPreset(nightmare) = true, expected false")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "orbs", MaxAt: 4},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		orbs     int
		expected float64
	}{
		{0, 0.5},
		{2, 0.75},
		{4, 1.0},
		{10, 1.0},
	}
	for _, tc := range tests {
		if got := dm.Level(tc.orbs, 0); got != tc.expected {
			t.Errorf("Level(%d, 0) = %v, expected %v", tc.orbs, got, tc.expected)
		}
	}
	if got := dm.SpeedScale(4, 0); got != 2.0 {
		t.Errorf("SpeedScale(4, 0) = %v, expected 2", got)
	}

	disabled := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 0.7})
	if got := disabled.SpeedScale(4, 1000); got != 1.0 {
		t.Errorf("disabled SpeedScale() = %v, expected 1", got)
	}
	if disabled.IsEnabled() {
		t.Error("disabled manager should report IsEnabled() = false")
	}
}
