package sim

// Resolver applies the per-tick interactions between the player, orbs,
// enemies and projectiles.
type Resolver struct {
	CullMargin float64

	won bool
}

// NewResolver creates a resolver that culls enemies further than cullMargin
// outside the view.
func NewResolver(cullMargin float64) *Resolver {
	return &Resolver{CullMargin: cullMargin}
}

// Reset clears the win latch for a new round.
func (r *Resolver) Reset() {
	r.won = false
}

// CollectOrbs marks every uncollected orb the player overlaps and returns
// how many were collected this tick.
func (r *Resolver) CollectOrbs(player *Body, orbs []*Orb) int {
	n := 0
	for _, o := range orbs {
		if o.Collected || !player.Rect.Intersects(o.Rect) {
			continue
		}
		if o.Collect() {
			n++
		}
	}
	return n
}

// HitPlayer damages the player on contact with any living enemy, unless
// invulnerable. Every living enemy is checked regardless of culling.
// It reports whether a life was taken.
func (r *Resolver) HitPlayer(player *Body, enemies []Enemy, nowMs int64) bool {
	for _, e := range enemies {
		if !e.Alive() || !player.Rect.Intersects(e.Bounds()) {
			continue
		}
		if player.Damage(nowMs) {
			player.VY = 0
			return true
		}
		return false
	}
	return false
}

// UpdateEnemies advances living enemies near the camera. Enemies further
// than CullMargin outside the view keep still this tick. Dead enemies are
// always updated so their dead frame runs out.
func (r *Resolver) UpdateEnemies(enemies []Enemy, cam *Camera, t Tick) {
	for _, e := range enemies {
		if e.Alive() && !cam.Visible(e.Bounds(), r.CullMargin) {
			continue
		}
		e.Update(t)
	}
}

// HitEnemies lets every live projectile damage the first living enemy it
// overlaps, in enemy order. A projectile is consumed by its first hit.
// It returns the number of hits and of kills.
func (r *Resolver) HitEnemies(projectiles []*Projectile, enemies []Enemy) (hits, kills int) {
	for _, p := range projectiles {
		if !p.Alive {
			continue
		}
		for _, e := range enemies {
			if !e.Alive() || !p.Rect.Intersects(e.Bounds()) {
				continue
			}
			hits++
			if e.TakeDamage(1) {
				kills++
			}
			p.Alive = false
			break
		}
	}
	return hits, kills
}

// CheckWin reports true on the first tick collected reaches total, and
// false on every other tick. A round without orbs cannot be won.
func (r *Resolver) CheckWin(collected, total int) bool {
	if r.won || total <= 0 || collected < total {
		return false
	}
	r.won = true
	return true
}
