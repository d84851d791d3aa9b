// Package garden adapts the platformer simulation to the terminal platform:
// it loads configuration, maps input frames onto the match and draws the
// world, HUD and menu screens into a cell buffer.
package garden

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/core"
	"github.com/vovakirdan/tui-garden/internal/games/garden/sim"
	"github.com/vovakirdan/tui-garden/internal/ranking"
	"github.com/vovakirdan/tui-garden/internal/registry"
)

// ID is the registry key of the game.
const ID = "garden"

// Game implements registry.Game on top of sim.Match.
type Game struct {
	opts    Options
	match   *sim.Match
	runtime core.RuntimeConfig
	cfg     config.GardenConfig
	theme   *Theme
	state   core.GameState
}

// Options configures games built by New. The zero value loads the default
// config and keeps the ranking in memory.
type Options struct {
	ConfigPath string
	// Difficulty is a preset name. Unknown names fall back to the config
	// defaults.
	Difficulty string
	// Layout overrides the level layout ("fixed" or "procedural").
	Layout string
	// Store is where victories are recorded. Nil keeps the ranking in memory
	// for the lifetime of the game.
	Store  ranking.Store
	Logger *log.Logger
}

func init() {
	registry.Register(ID, Factory(Options{}))
}

// Factory returns a registry factory that builds games with opts.
func Factory(opts Options) registry.Factory {
	return func() registry.Game { return New(opts) }
}

// New creates a game instance. Reset must be called before Step.
func New(opts Options) *Game {
	return &Game{opts: opts}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Forgotten Garden"
}

// Reset loads configuration and builds a new match on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	lg := g.opts.Logger
	if lg == nil {
		lg = log.New(io.Discard)
	}

	cfg, err := config.LoadGarden(g.opts.ConfigPath)
	if err != nil {
		lg.Warn("using default config", "err", err)
	}
	if config.ValidPreset(g.opts.Difficulty) {
		config.ApplyGardenPreset(&cfg, config.DifficultyPreset(g.opts.Difficulty))
	}
	if g.opts.Layout != "" {
		cfg.Level.Layout = g.opts.Layout
	}
	g.cfg = cfg

	theme, err := LoadTheme(cfg.Render.Theme)
	if err != nil {
		lg.Warn("using built-in theme", "err", err)
	}
	g.theme = theme

	store := g.opts.Store
	if store == nil {
		store = &ranking.MemoryStore{}
	}
	g.match = sim.NewMatch(cfg, runtime.Seed, runtime.TickRate, store, lg)
	g.state = g.stateFrom(g.match.Snapshot())
}

// Step advances the match by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := g.match.Step(Input(in))
	g.state = g.stateFrom(g.match.Snapshot())
	return core.StepResult{State: g.state, Cues: res.Cues}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.state
}

// Input converts a platform frame into a simulation input.
func Input(in core.InputFrame) sim.Input {
	return sim.Input{
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Jump:    in.Has(core.ActionJump),
		Fire:    in.Has(core.ActionFire),
		Confirm: in.Has(core.ActionConfirm),
		Restart: in.Has(core.ActionRestart),
		Back:    in.Has(core.ActionBack),
		Pause:   in.Has(core.ActionPause),
		Text:    in.Text,
	}
}

func (g *Game) stateFrom(s sim.Snapshot) core.GameState {
	return core.GameState{
		Score:     s.Collected,
		GameOver:  s.State.Terminal(),
		Won:       s.State == sim.StateWon,
		Paused:    s.Paused,
		TextEntry: s.NameEntry,
	}
}
