package core

// RuntimeConfig contains configuration passed to games at initialization.
// The simulation uses it for deterministic timing and seeding; screen size only
// affects how world pixels are projected onto terminal cells.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Orbs collected this round
	GameOver  bool // Round ended (won or lost)
	Won       bool // Round ended in victory
	Paused    bool // Whether the game is paused
	TextEntry bool // Typed characters should be delivered as text, not actions
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // Audio cues raised during this tick, in order
}
