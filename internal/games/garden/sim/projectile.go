package sim

import (
	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/core"
)

// Projectile is a shot travelling horizontally at constant speed.
type Projectile struct {
	Rect  core.Rect
	VX    float64
	Alive bool
}

// Fire spawns a shot ahead of shooter in the facing direction.
func Fire(shooter core.Rect, facing int, cfg config.ProjectileConfig) *Projectile {
	dir := float64(facing)
	if dir == 0 {
		dir = 1
	}
	return &Projectile{
		Rect:  core.NewRect(shooter.CenterX()+dir*cfg.SpawnOffset, shooter.CenterY(), cfg.Size, cfg.Size),
		VX:    cfg.Speed * dir,
		Alive: true,
	}
}

// Update moves the shot and kills it once it has left the map, widened by
// margin on both sides.
func (p *Projectile) Update(mapW, margin float64) {
	if !p.Alive {
		return
	}
	p.Rect.X += p.VX
	if p.Rect.Left() >= mapW+margin || p.Rect.Right() <= -margin {
		p.Alive = false
	}
}

// Draw emits the shot if it is alive.
func (p *Projectile) Draw(sink Sink, cam *Camera) {
	if !p.Alive {
		return
	}
	r := cam.ToScreen(p.Rect)
	sink.Draw(Sprite{Kind: KindProjectile, X: r.X, Y: r.Y, W: r.W, H: r.H, Facing: int(core.Sign(p.VX))})
}

// pruneProjectiles drops dead shots in place.
func pruneProjectiles(ps []*Projectile) []*Projectile {
	alive := ps[:0]
	for _, p := range ps {
		if p.Alive {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(ps); i++ {
		ps[i] = nil
	}
	return alive
}
