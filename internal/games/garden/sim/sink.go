// Package sim is the deterministic world simulation of the garden platformer:
// kinematic bodies, camera follow, projectiles, enemies, level generation,
// encounter resolution and the match state machine.
//
// Nothing here touches the terminal, the clock or the filesystem directly.
// Time is derived from the tick counter and randomness from a seeded source,
// so a seed plus an input script always replays the same match.
package sim

// SpriteKind identifies what a Sprite depicts.
type SpriteKind int

const (
	KindGround SpriteKind = iota
	KindWall
	KindPlatform
	KindRecovery
	KindOrb
	KindPlayer
	KindSlime
	KindMushroom
	KindArmored
	KindProjectile
)

var kindNames = [...]string{
	KindGround:     "ground",
	KindWall:       "wall",
	KindPlatform:   "platform",
	KindRecovery:   "recovery",
	KindOrb:        "orb",
	KindPlayer:     "player",
	KindSlime:      "slime",
	KindMushroom:   "mushroom",
	KindArmored:    "armored",
	KindProjectile: "projectile",
}

// String returns the theme key for the kind.
func (k SpriteKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// VisualState is the animation tag a renderer picks frames by.
type VisualState int

const (
	StateIdle VisualState = iota
	StateRunning
	StateJumping
	StateWalking
	StateHurt
	StateDead
)

// String returns the tag name.
func (v VisualState) String() string {
	switch v {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	case StateWalking:
		return "walking"
	case StateHurt:
		return "hurt"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Sprite is one visible entity in view coordinates (camera already applied).
type Sprite struct {
	Kind       SpriteKind
	X, Y, W, H float64
	State      VisualState
	Facing     int
}

// Sink receives sprites in back-to-front order.
type Sink interface {
	Draw(s Sprite)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Sprite)

// Draw calls f(s).
func (f SinkFunc) Draw(s Sprite) { f(s) }
