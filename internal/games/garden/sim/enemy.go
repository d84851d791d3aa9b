package sim

import "github.com/vovakirdan/tui-garden/internal/core"

// Tick carries per-tick context to enemies.
type Tick struct {
	NowMs      int64
	SpeedScale float64 // multiplier on patrol speed, 1 = configured speed
}

// Enemy is a hostile entity. Variants differ in how much damage they absorb
// and how they look.
type Enemy interface {
	Update(t Tick)
	// Draw emits the enemy, shows the dead frame for a few ticks after the
	// killing hit and then draws nothing.
	Draw(sink Sink, cam *Camera)
	// TakeDamage applies n hits and reports whether the enemy died from them.
	TakeDamage(n int) bool
	Alive() bool
	Bounds() core.Rect
}

// deathTicks is how long a killed enemy keeps showing its dead frame.
const deathTicks = 15

// patrol walks a box back and forth between two x limits, standing on floorY.
type patrol struct {
	rect   core.Rect
	speed  float64
	dir    int
	minX   float64 // limits for rect.X
	maxX   float64
	floorY float64
	health int
	dying  int // ticks left on the dead frame
}

func newPatrol(r core.Rect, speed float64, dir int, minX, maxX, floorY float64, health int) patrol {
	if maxX < minX {
		maxX = minX
	}
	if dir == 0 {
		dir = 1
	}
	p := patrol{
		rect:   r.WithBottom(floorY),
		speed:  speed,
		dir:    dir,
		minX:   minX,
		maxX:   maxX,
		floorY: floorY,
		health: max(health, 1),
	}
	p.rect.X = core.ClampF(p.rect.X, minX, maxX)
	return p
}

func (p *patrol) step(scale float64) {
	if p.health <= 0 {
		if p.dying > 0 {
			p.dying--
		}
		return
	}
	p.rect.X += p.speed * scale * float64(p.dir)
	if p.rect.X <= p.minX {
		p.rect.X = p.minX
		p.dir = 1
	} else if p.rect.X >= p.maxX {
		p.rect.X = p.maxX
		p.dir = -1
	}
	p.rect = p.rect.WithBottom(p.floorY)
}

func (p *patrol) hit(n int) bool {
	if p.health <= 0 || n <= 0 {
		return false
	}
	p.health -= n
	if p.health <= 0 {
		p.dying = deathTicks
		return true
	}
	return false
}

func (p *patrol) draw(sink Sink, cam *Camera, kind SpriteKind, state VisualState) {
	if p.health <= 0 {
		if p.dying == 0 {
			return
		}
		state = StateDead
	}
	r := cam.ToScreen(p.rect)
	sink.Draw(Sprite{Kind: kind, X: r.X, Y: r.Y, W: r.W, H: r.H, State: state, Facing: p.dir})
}

func (p *patrol) Alive() bool       { return p.health > 0 }
func (p *patrol) Bounds() core.Rect { return p.rect }

// Slime patrols a platform and dies to a single hit.
type Slime struct {
	patrol
}

// NewSlime places a slime centered on platform, patrolling its top
// inset by inset pixels on each side.
func NewSlime(platform core.Rect, w, h, speed, inset float64, dir int) *Slime {
	r := core.NewRect(0, 0, w, h).WithCenterX(platform.CenterX())
	return &Slime{newPatrol(r, speed, dir, platform.Left()+inset, platform.Right()-w-inset, platform.Top(), 1)}
}

func (s *Slime) Update(t Tick)               { s.step(t.SpeedScale) }
func (s *Slime) TakeDamage(n int) bool       { return s.hit(n) }
func (s *Slime) Draw(sink Sink, cam *Camera) { s.draw(sink, cam, KindSlime, StateWalking) }

// Mushroom roams the ground between the walls and dies to a single hit.
type Mushroom struct {
	patrol
}

// NewMushroom places a mushroom centered on centerX, standing on groundY and
// patrolling [minX, maxX] with its whole body.
func NewMushroom(centerX, groundY, w, h, speed, minX, maxX float64, dir int) *Mushroom {
	r := core.NewRect(0, 0, w, h).WithCenterX(centerX)
	return &Mushroom{newPatrol(r, speed, dir, minX, maxX-w, groundY, 1)}
}

func (m *Mushroom) Update(t Tick)               { m.step(t.SpeedScale) }
func (m *Mushroom) TakeDamage(n int) bool       { return m.hit(n) }
func (m *Mushroom) Draw(sink Sink, cam *Camera) { m.draw(sink, cam, KindMushroom, StateWalking) }

// Armored is the second-phase enemy. It survives hits until its health is
// spent and shows as hurt once wounded.
type Armored struct {
	patrol
	maxHealth int
}

// NewArmored wraps a patrol with health hit points.
func NewArmored(r core.Rect, speed float64, dir int, minX, maxX, floorY float64, health int) *Armored {
	p := newPatrol(r, speed, dir, minX, maxX, floorY, health)
	return &Armored{patrol: p, maxHealth: p.health}
}

func (a *Armored) Update(t Tick)         { a.step(t.SpeedScale) }
func (a *Armored) TakeDamage(n int) bool { return a.hit(n) }

func (a *Armored) Draw(sink Sink, cam *Camera) {
	state := StateWalking
	if a.health < a.maxHealth {
		state = StateHurt
	}
	a.draw(sink, cam, KindArmored, state)
}
