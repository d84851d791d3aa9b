// Package config provides YAML-based configuration loading and difficulty
// presets for the garden platformer.
package config

// GardenConfig contains all tunables for a match. Distances are world pixels,
// velocities are pixels per tick and durations are milliseconds.
type GardenConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Camera     CameraConfig     `yaml:"camera"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Level      LevelConfig      `yaml:"level"`
	Match      MatchConfig      `yaml:"match"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Ranking    RankingConfig    `yaml:"ranking"`
	Render     RenderConfig     `yaml:"render"`
}

// WorldConfig defines the map extents.
type WorldConfig struct {
	ViewWidth    float64 `yaml:"view_width"`
	ViewHeight   float64 `yaml:"view_height"`
	MapWidth     float64 `yaml:"map_width"`
	MapHeight    float64 `yaml:"map_height"`
	GroundHeight float64 `yaml:"ground_height"`
	WallWidth    float64 `yaml:"wall_width"`
}

// GroundY returns the y coordinate of the ground plane.
func (w WorldConfig) GroundY() float64 {
	return w.MapHeight - w.GroundHeight
}

// PlayerConfig defines the player body and its physics.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	StartOffset   float64 `yaml:"start_offset"` // distance from the left wall
	Speed         float64 `yaml:"speed"`
	JumpVelocity  float64 `yaml:"jump_velocity"`
	Gravity       float64 `yaml:"gravity"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	LandOverlap   float64 `yaml:"land_overlap"`   // minimum horizontal overlap to land
	LandTolerance float64 `yaml:"land_tolerance"` // how far below a top edge a landing still counts
	Lives         int     `yaml:"lives"`
	InvulnMs      int64   `yaml:"invuln_ms"`
	BlinkMs       int64   `yaml:"blink_ms"`
}

// CameraConfig defines camera smoothing and culling.
type CameraConfig struct {
	Smoothing     float64 `yaml:"smoothing"`
	LookAhead     float64 `yaml:"look_ahead"`
	LookSmoothing float64 `yaml:"look_smoothing"`
	CullMargin    float64 `yaml:"cull_margin"`
}

// ProjectileConfig defines the player's shots.
type ProjectileConfig struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`
	SpawnOffset float64 `yaml:"spawn_offset"`
	Margin      float64 `yaml:"margin"`
	MaxActive   int     `yaml:"max_active"` // 0 = unlimited
}

// EnemiesConfig defines patrol enemies.
type EnemiesConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	PlatformInset   float64 `yaml:"platform_inset"`
	GroundInset     float64 `yaml:"ground_inset"`
	GroundCount     int     `yaml:"ground_count"`
	GroundMargin    float64 `yaml:"ground_margin"`
	MinDistance     float64 `yaml:"min_distance"`
	SafeDistance    float64 `yaml:"safe_distance"`
	Attempts        int     `yaml:"attempts"`
	ArmoredHealth   int     `yaml:"armored_health"`
	ArmoredOnGround bool    `yaml:"armored_on_ground"`
}

// RectConfig is a rectangle in world pixels.
type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// LevelConfig selects and parameterizes the platform layout.
type LevelConfig struct {
	Layout     string           `yaml:"layout"` // "fixed" or "procedural"
	Phase      int              `yaml:"phase"`  // 2 spawns armored enemies on platforms
	OrbRadius  float64          `yaml:"orb_radius"`
	OrbLift    float64          `yaml:"orb_lift"` // orb center height above the platform top
	Fixed      FixedLayout      `yaml:"fixed"`
	Procedural ProceduralLayout `yaml:"procedural"`
}

// FixedLayout is the hand-authored layout.
type FixedLayout struct {
	Platforms    []RectConfig `yaml:"platforms"`
	Recovery     []RectConfig `yaml:"recovery"`
	OrbPlatforms []int        `yaml:"orb_platforms"`
}

// ProceduralLayout parameterizes chain generation.
type ProceduralLayout struct {
	Count          int     `yaml:"count"`
	StartX         float64 `yaml:"start_x"`
	YBase          float64 `yaml:"y_base"`
	MinXGap        float64 `yaml:"min_x_gap"`
	MaxXGap        float64 `yaml:"max_x_gap"`
	MinWidth       float64 `yaml:"min_width"`
	MaxWidth       float64 `yaml:"max_width"`
	Height         float64 `yaml:"height"`
	MinY           float64 `yaml:"min_y"`
	MaxY           float64 `yaml:"max_y"`
	MinYDiff       float64 `yaml:"min_y_diff"`
	MaxYDiff       float64 `yaml:"max_y_diff"`
	Attempts       int     `yaml:"attempts"`
	RecoveryCount  int     `yaml:"recovery_count"`
	RecoveryLift   float64 `yaml:"recovery_lift"` // recovery top height above the ground
	RecoveryWidth  float64 `yaml:"recovery_width"`
	RecoveryHeight float64 `yaml:"recovery_height"`
	OrbCount       int     `yaml:"orb_count"`
}

// MatchConfig defines round rules.
type MatchConfig struct {
	TimeLimitMs int64 `yaml:"time_limit_ms"` // 0 disables the timer
	NameMaxLen  int   `yaml:"name_max_len"`
}

// RankingConfig defines the persisted best-time table.
type RankingConfig struct {
	Backend string `yaml:"backend"` // "sqlite" or "json"
	File    string `yaml:"file"`    // JSON file path, empty = XDG data dir
	TopN    int    `yaml:"top_n"`
}

// RenderConfig defines terminal presentation.
type RenderConfig struct {
	Theme string `yaml:"theme"` // glyph theme YAML path, empty = built-in
}

// DifficultyConfig defines enemy speed progression during a round.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases within a round.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "orbs", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Orbs/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ValidPreset reports whether name is a known preset.
func ValidPreset(name string) bool {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}
