package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGarden loads the garden configuration.
// Search order: customPath -> ~/.garden/configs/garden.yaml -> ./configs/garden.yaml -> embedded default
//
// File sources are decoded on top of the defaults, so a partial YAML only
// overrides the keys it names.
func LoadGarden(customPath string) (GardenConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultGardenConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseGarden(data)
		if err != nil {
			return DefaultGardenConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("garden.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseGarden(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "garden.yaml")); err == nil {
		if cfg, err := ParseGarden(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseGarden(defaultGardenYAML)
	if err != nil {
		return DefaultGardenConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseGarden decodes YAML on top of DefaultGardenConfig.
func ParseGarden(data []byte) (GardenConfig, error) {
	cfg := DefaultGardenConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultGardenConfig(), err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg GardenConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".garden", "configs", filename)
}

// ApplyGardenPreset modifies the config based on a difficulty preset.
func ApplyGardenPreset(cfg *GardenConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust round rules based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 6
		cfg.Match.TimeLimitMs = 60000
		cfg.Enemies.Speed = 1.5
		cfg.Enemies.GroundCount = 5
	case DifficultyHard:
		cfg.Player.Lives = 3
		cfg.Match.TimeLimitMs = 35000
		cfg.Enemies.Speed = 3
		cfg.Enemies.GroundCount = 9
		cfg.Level.Phase = 2
	}
}
