package sim

import "github.com/vovakirdan/tui-garden/internal/core"

// Orb is a collectible. Once collected it stays collected for the round.
type Orb struct {
	Rect      core.Rect
	Collected bool
}

// NewOrb creates an orb of the given radius centered on (cx, cy).
func NewOrb(cx, cy, radius float64) *Orb {
	return &Orb{Rect: core.NewRect(cx-radius, cy-radius, radius*2, radius*2)}
}

// Collect marks the orb and reports whether this call collected it.
func (o *Orb) Collect() bool {
	if o.Collected {
		return false
	}
	o.Collected = true
	return true
}
