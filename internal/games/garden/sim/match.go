package sim

import (
	"io"
	"math/rand"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/core"
	"github.com/vovakirdan/tui-garden/internal/ranking"
)

// State is a match screen.
type State int

const (
	StateTitle State = iota
	StateLobby
	StateCredits
	StatePlaying
	StateWon
	StateLost
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateLobby:
		return "lobby"
	case StateCredits:
		return "credits"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round is over.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Input is the input snapshot for one tick. Left and Right are held keys,
// the rest are presses.
type Input struct {
	Left, Right bool
	Jump, Fire  bool
	Confirm     bool
	Restart     bool
	Back        bool
	Pause       bool
	Text        []rune
}

// Result is the outcome of one Step.
type Result struct {
	State State
	Cues  []core.Cue
}

// Snapshot is the read-only view of a match the HUD and screens render.
type Snapshot struct {
	State       State
	Round       int
	Paused      bool
	ElapsedMs   int64
	RemainingMs int64 // -1 when the timer is disabled
	Lives       int
	Collected   int
	TotalOrbs   int
	Defeated    int
	FinalMs     int64
	Name        string
	NameMax     int
	NameEntry   bool // the victory name prompt is open
	Rank        int  // 1-based rank of the submitted time, 0 if unranked
	Ranking     []ranking.Entry
	LostByTimer bool
}

// Match owns every mutable entity of a session and is their only writer.
type Match struct {
	cfg      config.GardenConfig
	seed     int64
	tickRate int
	logger   *log.Logger

	gen        *Generator
	params     BodyParams
	resolver   *Resolver
	difficulty *config.DifficultyManager

	board *ranking.Board
	store ranking.Store

	state  State
	round  int
	paused bool
	ticks  int64

	level       *Level
	player      *Body
	camera      *Camera
	projectiles []*Projectile
	collected   int
	defeated    int

	finalMs     int64
	lostByTimer bool
	name        []rune
	submitted   bool
	rank        int
}

// NewMatch creates a match on the title screen. The ranking board is read
// from store once; a nil store keeps the ranking in memory. A nil logger
// discards log output.
func NewMatch(cfg config.GardenConfig, seed int64, tickRate int, store ranking.Store, logger *log.Logger) *Match {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Match{
		cfg:        cfg,
		seed:       seed,
		tickRate:   tickRate,
		logger:     logger,
		gen:        NewGenerator(cfg),
		params:     ParamsFromConfig(cfg.Player),
		resolver:   NewResolver(cfg.Camera.CullMargin),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		store:      store,
		state:      StateTitle,
	}
	m.board = ranking.Load(store, cfg.Ranking.TopN, logger)
	m.build()
	return m
}

// State returns the current screen.
func (m *Match) State() State { return m.state }

// NowMs returns the round clock derived from the tick counter.
func (m *Match) NowMs() int64 {
	return m.ticks * 1000 / int64(m.tickRate)
}

// Step advances the match by one tick.
func (m *Match) Step(in Input) Result {
	var cues []core.Cue

	switch m.state {
	case StateTitle:
		if in.Confirm {
			m.state = StateLobby
		}
	case StateLobby:
		if in.Confirm {
			m.state = StateCredits
		} else if in.Back {
			m.state = StateTitle
		}
	case StateCredits:
		if in.Confirm {
			m.startRound()
		} else if in.Back {
			m.state = StateLobby
		}
	case StatePlaying:
		if in.Pause {
			m.paused = !m.paused
		}
		if !m.paused {
			cues = m.tick(in)
		}
	case StateWon:
		m.stepWon(in)
	case StateLost:
		if in.Restart || in.Confirm {
			m.startRound()
		}
	}

	return Result{State: m.state, Cues: cues}
}

// tick runs one Playing frame: input, physics, camera, encounters, timer,
// then win and loss in that order.
func (m *Match) tick(in Input) []core.Cue {
	var cues []core.Cue
	m.ticks++
	now := m.NowMs()

	if in.Jump && m.player.Jump(m.params) {
		cues = append(cues, core.CueJumped)
	}
	if in.Fire && (m.cfg.Projectile.MaxActive <= 0 || len(m.projectiles) < m.cfg.Projectile.MaxActive) {
		m.projectiles = append(m.projectiles, Fire(m.player.Rect, m.player.Facing, m.cfg.Projectile))
		cues = append(cues, core.CueFired)
	}

	m.player.Step(Intent{Left: in.Left, Right: in.Right}, m.params, m.env())
	m.player.Invuln.Update(now)
	for _, p := range m.projectiles {
		p.Update(m.level.MapW, m.cfg.Projectile.Margin)
	}

	m.camera.Update(m.player.Rect, m.player.VX)

	for n := m.resolver.CollectOrbs(m.player, m.level.Orbs); n > 0; n-- {
		m.collected++
		cues = append(cues, core.CueCollected)
	}
	if m.resolver.HitPlayer(m.player, m.level.Enemies, now) {
		cues = append(cues, core.CueDamaged)
	}
	m.resolver.UpdateEnemies(m.level.Enemies, m.camera, Tick{
		NowMs:      now,
		SpeedScale: m.difficulty.SpeedScale(m.collected, int(m.ticks)),
	})
	_, kills := m.resolver.HitEnemies(m.projectiles, m.level.Enemies)
	m.defeated += kills
	m.projectiles = pruneProjectiles(m.projectiles)

	limit := m.cfg.Match.TimeLimitMs
	timeUp := limit > 0 && now >= limit

	switch {
	case m.resolver.CheckWin(m.collected, len(m.level.Orbs)):
		m.finish(StateWon, now)
		cues = append(cues, core.CueWon)
	case m.player.Lives <= 0 || timeUp:
		m.lostByTimer = m.player.Lives > 0
		m.finish(StateLost, now)
		cues = append(cues, core.CueLost)
	}
	return cues
}

func (m *Match) finish(s State, now int64) {
	m.state = s
	m.finalMs = now
	m.logger.Info("round over", "round", m.round, "state", s, "time_ms", now,
		"orbs", m.collected, "total", len(m.level.Orbs), "defeated", m.defeated)
}

// stepWon drives the name prompt. Restart submits a pending name first.
func (m *Match) stepWon(in Input) {
	if m.submitted {
		if in.Restart || in.Confirm {
			m.startRound()
		}
		return
	}

	maxLen := m.nameMax()
	for _, r := range in.Text {
		if len(m.name) >= maxLen {
			break
		}
		if unicode.IsPrint(r) {
			m.name = append(m.name, r)
		}
	}
	if in.Back && len(m.name) > 0 {
		m.name = m.name[:len(m.name)-1]
	}

	if in.Confirm || in.Restart {
		m.submit()
	}
	if in.Restart {
		m.startRound()
	}
}

func (m *Match) submit() {
	entry := ranking.Entry{Name: string(m.name), TimeMs: m.finalMs}
	m.rank = ranking.Record(m.store, m.board, entry, m.logger)
	m.submitted = true
	best, _ := m.board.Best()
	m.logger.Info("time recorded", "name", string(m.name), "time_ms", m.finalMs, "rank", m.rank, "best_ms", best.TimeMs)
}

func (m *Match) nameMax() int {
	if m.cfg.Match.NameMaxLen > 0 {
		return m.cfg.Match.NameMaxLen
	}
	return 12
}

// startRound rebuilds every mutable entity and enters Playing. The ranking
// board is kept.
func (m *Match) startRound() {
	m.round++
	m.build()
	m.state = StatePlaying
	m.logger.Debug("round started", "round", m.round, "orbs", len(m.level.Orbs), "enemies", len(m.level.Enemies))
}

// build regenerates the world from the seed advanced by the round counter.
func (m *Match) build() {
	rng := rand.New(rand.NewSource(m.seed + int64(m.round)))
	m.level = m.gen.Generate(rng)

	pc := m.cfg.Player
	m.player = NewBody(m.level.PlayerStart, pc.Lives, Invulnerability{DurationMs: pc.InvulnMs, BlinkMs: pc.BlinkMs})
	m.player.Grounded = true
	m.camera = NewCamera(m.cfg.Camera, m.cfg.World)
	m.projectiles = nil
	m.resolver.Reset()

	m.paused = false
	m.ticks = 0
	m.collected = 0
	m.defeated = 0
	m.finalMs = 0
	m.lostByTimer = false
	m.name = nil
	m.submitted = false
	m.rank = 0
}

// Reset returns to the title screen with a fresh world.
func (m *Match) Reset() {
	m.round = 0
	m.build()
	m.state = StateTitle
}

func (m *Match) env() Env {
	w := m.cfg.World
	return Env{
		Walls:     m.level.Walls,
		Platforms: m.level.Solid(),
		GroundY:   m.level.GroundY,
		MinX:      w.WallWidth,
		MaxX:      w.MapWidth - w.WallWidth,
	}
}

// Snapshot returns the HUD and screen view of the match.
func (m *Match) Snapshot() Snapshot {
	remaining := int64(-1)
	if limit := m.cfg.Match.TimeLimitMs; limit > 0 {
		remaining = max(limit-m.NowMs(), 0)
	}
	return Snapshot{
		State:       m.state,
		Round:       m.round,
		Paused:      m.paused,
		ElapsedMs:   m.NowMs(),
		RemainingMs: remaining,
		Lives:       m.player.Lives,
		Collected:   m.collected,
		TotalOrbs:   len(m.level.Orbs),
		Defeated:    m.defeated,
		FinalMs:     m.finalMs,
		Name:        string(m.name),
		NameMax:     m.nameMax(),
		NameEntry:   m.state == StateWon && !m.submitted,
		Rank:        m.rank,
		Ranking:     m.board.Entries(),
		LostByTimer: m.lostByTimer,
	}
}

// Draw emits the world back to front: ground, walls, platforms, orbs,
// enemies near the view, projectiles, then the player.
func (m *Match) Draw(sink Sink) {
	cam := m.camera
	lvl := m.level

	emit := func(kind SpriteKind, r core.Rect) {
		s := cam.ToScreen(r)
		sink.Draw(Sprite{Kind: kind, X: s.X, Y: s.Y, W: s.W, H: s.H})
	}

	emit(KindGround, core.NewRect(0, lvl.GroundY, lvl.MapW, lvl.MapH-lvl.GroundY))
	for _, w := range lvl.Walls {
		emit(KindWall, w)
	}
	for _, p := range lvl.Platforms {
		emit(KindPlatform, p)
	}
	for _, p := range lvl.Recovery {
		emit(KindRecovery, p)
	}
	for _, o := range lvl.Orbs {
		if !o.Collected {
			emit(KindOrb, o.Rect)
		}
	}
	for _, e := range lvl.Enemies {
		if cam.Visible(e.Bounds(), m.resolver.CullMargin) {
			e.Draw(sink, cam)
		}
	}
	for _, p := range m.projectiles {
		p.Draw(sink, cam)
	}

	if m.player.Invuln.Visible(m.NowMs()) || m.state.Terminal() {
		r := cam.ToScreen(m.player.Rect)
		sink.Draw(Sprite{Kind: KindPlayer, X: r.X, Y: r.Y, W: r.W, H: r.H, State: m.player.Visual(), Facing: m.player.Facing})
	}
}
