package config

import (
	_ "embed"
)

//go:embed defaults/garden.yaml
var defaultGardenYAML []byte

// DefaultGardenConfig returns the built-in configuration. It mirrors
// defaults/garden.yaml and is used when no YAML source can be parsed.
func DefaultGardenConfig() GardenConfig {
	return GardenConfig{
		World: WorldConfig{
			ViewWidth:    1280,
			ViewHeight:   720,
			MapWidth:     2560,
			MapHeight:    720,
			GroundHeight: 100,
			WallWidth:    40,
		},
		Player: PlayerConfig{
			Width:         50,
			Height:        50,
			StartOffset:   100,
			Speed:         5,
			JumpVelocity:  -18,
			Gravity:       0.7,
			MaxFallSpeed:  20,
			LandOverlap:   25,
			LandTolerance: 20,
			Lives:         4,
			InvulnMs:      2000,
			BlinkMs:       150,
		},
		Camera: CameraConfig{
			Smoothing:     0.12,
			LookAhead:     140,
			LookSmoothing: 0.12,
			CullMargin:    200,
		},
		Projectile: ProjectileConfig{
			Size:        10,
			Speed:       12,
			SpawnOffset: 30,
			Margin:      0,
		},
		Enemies: EnemiesConfig{
			Width:         45,
			Height:        45,
			Speed:         2,
			PlatformInset: 4,
			GroundInset:   10,
			GroundCount:   7,
			GroundMargin:  50,
			MinDistance:   300,
			SafeDistance:  150,
			Attempts:      1000,
			ArmoredHealth: 2,
		},
		Level: LevelConfig{
			Layout:    "fixed",
			Phase:     1,
			OrbRadius: 10,
			OrbLift:   15,
			Fixed: FixedLayout{
				Platforms: []RectConfig{
					{X: 160, Y: 440, W: 360, H: 40},
					{X: 560, Y: 320, W: 280, H: 40},
					{X: 920, Y: 400, W: 320, H: 40},
					{X: 340, Y: 200, W: 220, H: 40},
					{X: 1380, Y: 460, W: 400, H: 40},
					{X: 1820, Y: 360, W: 260, H: 40},
					{X: 2200, Y: 280, W: 300, H: 40},
					{X: 2000, Y: 500, W: 220, H: 40},
				},
				Recovery: []RectConfig{
					{X: 100, Y: 530, W: 120, H: 40},
					{X: 1500, Y: 530, W: 140, H: 40},
					{X: 860, Y: 530, W: 160, H: 40},
				},
				OrbPlatforms: []int{0, 2, 4, 6},
			},
			Procedural: ProceduralLayout{
				Count:          10,
				StartX:         160,
				YBase:          440,
				MinXGap:        60,
				MaxXGap:        140,
				MinWidth:       180,
				MaxWidth:       320,
				Height:         40,
				MinY:           200,
				MaxY:           480,
				MinYDiff:       40,
				MaxYDiff:       120,
				Attempts:       20,
				RecoveryCount:  3,
				RecoveryLift:   90,
				RecoveryWidth:  140,
				RecoveryHeight: 40,
				OrbCount:       6,
			},
		},
		Match: MatchConfig{
			TimeLimitMs: 45000,
			NameMaxLen:  12,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "orbs",
				MaxAt: 4,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
		Ranking: RankingConfig{
			Backend: "sqlite",
			TopN:    50,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGardenYAML
}
