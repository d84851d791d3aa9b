package sim

import (
	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/core"
)

// BodyParams are the movement constants of a body.
type BodyParams struct {
	Speed         float64
	Gravity       float64
	MaxFallSpeed  float64
	JumpVelocity  float64
	LandOverlap   float64
	LandTolerance float64
}

// ParamsFromConfig extracts body physics from the player section.
func ParamsFromConfig(c config.PlayerConfig) BodyParams {
	return BodyParams{
		Speed:         c.Speed,
		Gravity:       c.Gravity,
		MaxFallSpeed:  c.MaxFallSpeed,
		JumpVelocity:  c.JumpVelocity,
		LandOverlap:   c.LandOverlap,
		LandTolerance: c.LandTolerance,
	}
}

// Intent is the held horizontal input for one tick.
type Intent struct {
	Left, Right bool
}

// Env is the static geometry a body collides with.
type Env struct {
	Walls     []core.Rect
	Platforms []core.Rect
	GroundY   float64
	MinX      float64 // left limit for the body's left edge
	MaxX      float64 // right limit for the body's right edge
}

// Invulnerability is a timed damage-immunity window.
type Invulnerability struct {
	Active     bool
	StartMs    int64
	DurationMs int64
	BlinkMs    int64
}

// Start opens the window at nowMs.
func (v *Invulnerability) Start(nowMs int64) {
	v.Active = true
	v.StartMs = nowMs
}

// Update closes the window once it has run its duration.
func (v *Invulnerability) Update(nowMs int64) {
	if v.Active && nowMs-v.StartMs >= v.DurationMs {
		v.Active = false
	}
}

// Visible reports the blink phase: while active the body alternates
// visible and hidden every BlinkMs.
func (v Invulnerability) Visible(nowMs int64) bool {
	if !v.Active || v.BlinkMs <= 0 {
		return true
	}
	return ((nowMs-v.StartMs)/v.BlinkMs)%2 == 0
}

// Body is a kinematic box with lives.
type Body struct {
	Rect     core.Rect
	VX, VY   float64
	Facing   int
	Grounded bool
	Lives    int
	Invuln   Invulnerability
}

// NewBody creates a body at rest facing right.
func NewBody(r core.Rect, lives int, invuln Invulnerability) *Body {
	invuln.Active = false
	return &Body{
		Rect:   r,
		Facing: 1,
		Lives:  lives,
		Invuln: invuln,
	}
}

// Jump launches the body if it is grounded and reports whether it did.
func (b *Body) Jump(p BodyParams) bool {
	if !b.Grounded {
		return false
	}
	b.VY = p.JumpVelocity
	b.Grounded = false
	return true
}

// Step advances the body one tick.
func (b *Body) Step(in Intent, p BodyParams, env Env) {
	// Horizontal velocity is recomputed every tick, never accumulated.
	b.VX = 0
	if in.Right && !in.Left {
		b.VX = p.Speed
	} else if in.Left && !in.Right {
		b.VX = -p.Speed
	}
	if b.VX > 0 {
		b.Facing = 1
	} else if b.VX < 0 {
		b.Facing = -1
	}

	b.Rect.X += b.VX
	for _, wall := range env.Walls {
		if !b.Rect.Intersects(wall) {
			continue
		}
		if b.VX > 0 {
			b.Rect.X = wall.Left() - b.Rect.W
		} else if b.VX < 0 {
			b.Rect.X = wall.Right()
		}
	}

	b.VY += p.Gravity
	if b.VY > p.MaxFallSpeed {
		b.VY = p.MaxFallSpeed
	}
	b.Rect.Y += b.VY
	b.Grounded = false

	if b.VY > 0 {
		if i := b.landingCandidate(p, env.Platforms); i >= 0 {
			b.Rect = b.Rect.WithBottom(env.Platforms[i].Top())
			b.VY = 0
			b.Grounded = true
		}
	}

	if b.Rect.Bottom() >= env.GroundY {
		b.Rect = b.Rect.WithBottom(env.GroundY)
		b.VY = 0
		b.Grounded = true
	}

	if b.Rect.Left() < env.MinX {
		b.Rect.X = env.MinX
	}
	if b.Rect.Right() > env.MaxX {
		b.Rect.X = env.MaxX - b.Rect.W
	}
}

// landingCandidate returns the index of the platform the falling body lands
// on, or -1. Among several candidates the topmost wins; equal tops go to the
// lower index.
func (b *Body) landingCandidate(p BodyParams, platforms []core.Rect) int {
	best := -1
	for i, plat := range platforms {
		if !b.Rect.Intersects(plat) {
			continue
		}
		if b.Rect.OverlapX(plat) <= p.LandOverlap {
			continue
		}
		if b.Rect.Bottom() > plat.Top()+p.LandTolerance {
			continue
		}
		if best < 0 || plat.Top() < platforms[best].Top() {
			best = i
		}
	}
	return best
}

// Damage takes one life unless the body is invulnerable, and opens the
// invulnerability window. It reports whether a life was taken.
func (b *Body) Damage(nowMs int64) bool {
	if b.Invuln.Active {
		return false
	}
	if b.Lives > 0 {
		b.Lives--
	}
	b.Invuln.Start(nowMs)
	return true
}

// Visual returns the animation tag for the body.
func (b *Body) Visual() VisualState {
	switch {
	case b.Lives <= 0:
		return StateDead
	case !b.Grounded:
		return StateJumping
	case b.VX != 0:
		return StateRunning
	default:
		return StateIdle
	}
}
