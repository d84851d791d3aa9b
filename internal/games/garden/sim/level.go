package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/core"
)

// Layout names accepted by the generator.
const (
	LayoutFixed      = "fixed"
	LayoutProcedural = "procedural"
)

// Level is the geometry and population of one round.
type Level struct {
	Phase       int
	Platforms   []core.Rect // main platforms, enemy and orb anchors
	Recovery    []core.Rect // low platforms without enemies
	Walls       []core.Rect
	Orbs        []*Orb
	Enemies     []Enemy
	PlayerStart core.Rect
	GroundY     float64
	MapW, MapH  float64
}

// Solid returns main and recovery platforms in landing order.
func (l *Level) Solid() []core.Rect {
	out := make([]core.Rect, 0, len(l.Platforms)+len(l.Recovery))
	out = append(out, l.Platforms...)
	return append(out, l.Recovery...)
}

// Generator builds levels from configuration and a random source.
type Generator struct {
	cfg config.GardenConfig
}

// NewGenerator creates a generator.
func NewGenerator(cfg config.GardenConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate builds a level. All randomness is drawn from rng, so equal seeds
// give equal levels.
func (g *Generator) Generate(rng *rand.Rand) *Level {
	w := g.cfg.World
	lvl := &Level{
		Phase:   max(g.cfg.Level.Phase, 1),
		GroundY: w.GroundY(),
		MapW:    w.MapWidth,
		MapH:    w.MapHeight,
		Walls: []core.Rect{
			core.NewRect(0, 0, w.WallWidth, w.MapHeight),
			core.NewRect(w.MapWidth-w.WallWidth, 0, w.WallWidth, w.MapHeight),
		},
	}

	pc := g.cfg.Player
	lvl.PlayerStart = sanitize(core.NewRect(w.WallWidth+pc.StartOffset, 0, pc.Width, pc.Height)).WithBottom(lvl.GroundY)

	if g.cfg.Level.Layout == LayoutProcedural {
		lvl.Platforms = g.chain(rng)
		lvl.Recovery = g.recovery(rng)
		lvl.Orbs = g.interleavedOrbs(lvl.Platforms, lvl.GroundY)
	} else {
		fixed := g.cfg.Level.Fixed
		lvl.Platforms = rects(fixed.Platforms)
		lvl.Recovery = rects(fixed.Recovery)
		lvl.Orbs = g.platformOrbs(lvl.Platforms, fixed.OrbPlatforms)
	}

	lvl.Enemies = append(g.platformEnemies(lvl), g.groundEnemies(rng, lvl)...)
	return lvl
}

// chain lays main platforms left to right with random gaps, widths and
// height steps. It stops early rather than cross the right wall.
func (g *Generator) chain(rng *rand.Rand) []core.Rect {
	pc := g.cfg.Level.Procedural
	limit := g.cfg.World.MapWidth - g.cfg.World.WallWidth

	var out []core.Rect
	x := pc.StartX
	yBase := pc.YBase
	for i := 0; i < pc.Count; i++ {
		x += randRange(rng, pc.MinXGap, pc.MaxXGap)
		width := randRange(rng, pc.MinWidth, pc.MaxWidth)
		if x+width > limit {
			break
		}
		y := g.nextHeight(rng, yBase)
		out = append(out, sanitize(core.NewRect(x, y, width, pc.Height)))
		yBase = y
		x += width
	}
	return out
}

// nextHeight samples a platform top near yBase. Samples outside [MinY, MaxY]
// or closer than MinYDiff to yBase are rejected. After Attempts rejections
// it steps MinYDiff down (or up when down leaves the band) and clamps.
func (g *Generator) nextHeight(rng *rand.Rand, yBase float64) float64 {
	pc := g.cfg.Level.Procedural
	for attempt := 0; attempt < pc.Attempts; attempt++ {
		d := randRange(rng, -pc.MaxYDiff, pc.MaxYDiff)
		y := yBase + d
		if y < pc.MinY || y > pc.MaxY || math.Abs(d) < pc.MinYDiff {
			continue
		}
		return y
	}

	y := yBase + pc.MinYDiff
	if y > pc.MaxY {
		y = yBase - pc.MinYDiff
	}
	return core.ClampF(y, pc.MinY, math.Max(pc.MinY, pc.MaxY))
}

// recovery places one low platform in each equal segment of the floor.
func (g *Generator) recovery(rng *rand.Rand) []core.Rect {
	pc := g.cfg.Level.Procedural
	w := g.cfg.World
	if pc.RecoveryCount <= 0 {
		return nil
	}

	segment := (w.MapWidth - 2*w.WallWidth) / float64(pc.RecoveryCount)
	top := w.GroundY() - pc.RecoveryLift
	out := make([]core.Rect, 0, pc.RecoveryCount)
	for i := 0; i < pc.RecoveryCount; i++ {
		start := w.WallWidth + float64(i)*segment
		x := randRange(rng, start, start+segment-pc.RecoveryWidth)
		out = append(out, sanitize(core.NewRect(x, top, pc.RecoveryWidth, pc.RecoveryHeight)))
	}
	return out
}

// platformOrbs puts an orb above each listed platform index.
// Indices outside the platform list are skipped.
func (g *Generator) platformOrbs(platforms []core.Rect, indices []int) []*Orb {
	lc := g.cfg.Level
	var orbs []*Orb
	for _, idx := range indices {
		if idx < 0 || idx >= len(platforms) {
			continue
		}
		p := platforms[idx]
		orbs = append(orbs, NewOrb(p.CenterX(), p.Top()-lc.OrbLift, lc.OrbRadius))
	}
	return orbs
}

// interleavedOrbs alternates orbs on every other platform with orbs evenly
// spaced along the ground, until OrbCount orbs are placed.
func (g *Generator) interleavedOrbs(platforms []core.Rect, groundY float64) []*Orb {
	lc := g.cfg.Level
	w := g.cfg.World
	count := lc.Procedural.OrbCount
	if count <= 0 {
		return nil
	}

	var onPlatforms []int
	for i := 0; i < len(platforms) && len(onPlatforms) < (count+1)/2; i += 2 {
		onPlatforms = append(onPlatforms, i)
	}
	groundCount := count - len(onPlatforms)
	span := w.MapWidth - 2*w.WallWidth

	orbs := make([]*Orb, 0, count)
	for i, p, gnd := 0, 0, 0; len(orbs) < count; i++ {
		if i%2 == 0 && p < len(onPlatforms) {
			plat := platforms[onPlatforms[p]]
			orbs = append(orbs, NewOrb(plat.CenterX(), plat.Top()-lc.OrbLift, lc.OrbRadius))
			p++
		} else if gnd < groundCount {
			x := w.WallWidth + span*float64(gnd+1)/float64(groundCount+1)
			orbs = append(orbs, NewOrb(x, groundY-lc.OrbLift, lc.OrbRadius))
			gnd++
		} else if p < len(onPlatforms) {
			plat := platforms[onPlatforms[p]]
			orbs = append(orbs, NewOrb(plat.CenterX(), plat.Top()-lc.OrbLift, lc.OrbRadius))
			p++
		}
	}
	return orbs
}

// platformEnemies puts one enemy at the center of each main platform.
// Phase 2 replaces slimes with armored enemies.
func (g *Generator) platformEnemies(lvl *Level) []Enemy {
	ec := g.cfg.Enemies
	out := make([]Enemy, 0, len(lvl.Platforms))
	for _, p := range lvl.Platforms {
		dir := -1
		if int(p.CenterX())%2 == 0 {
			dir = 1
		}
		if lvl.Phase >= 2 {
			r := core.NewRect(0, 0, ec.Width, ec.Height).WithCenterX(p.CenterX())
			out = append(out, NewArmored(r, ec.Speed, dir,
				p.Left()+ec.PlatformInset, p.Right()-ec.Width-ec.PlatformInset, p.Top(), ec.ArmoredHealth))
			continue
		}
		out = append(out, NewSlime(p, ec.Width, ec.Height, ec.Speed, ec.PlatformInset, dir))
	}
	return out
}

// groundEnemies rejection-samples ground positions that keep MinDistance
// from each other and SafeDistance from the player start. It gives up after
// Attempts draws and may return fewer than GroundCount enemies.
func (g *Generator) groundEnemies(rng *rand.Rand, lvl *Level) []Enemy {
	ec := g.cfg.Enemies
	w := g.cfg.World
	lo := w.WallWidth + ec.GroundMargin
	hi := w.MapWidth - w.WallWidth - ec.GroundMargin
	startX := lvl.PlayerStart.CenterX()

	var xs []float64
	for attempt := 0; attempt < ec.Attempts && len(xs) < ec.GroundCount; attempt++ {
		x := randRange(rng, lo, hi)
		if math.Abs(x-startX) < ec.SafeDistance {
			continue
		}
		ok := true
		for _, px := range xs {
			if math.Abs(x-px) < ec.MinDistance {
				ok = false
				break
			}
		}
		if ok {
			xs = append(xs, x)
		}
	}

	minX := w.WallWidth + ec.GroundInset
	maxX := w.MapWidth - w.WallWidth - ec.GroundInset
	out := make([]Enemy, 0, len(xs))
	for _, x := range xs {
		dir := 1
		if rng.Intn(2) == 0 {
			dir = -1
		}
		if lvl.Phase >= 2 && ec.ArmoredOnGround {
			r := core.NewRect(0, 0, ec.Width, ec.Height).WithCenterX(x)
			out = append(out, NewArmored(r, ec.Speed, dir, minX, maxX-ec.Width, lvl.GroundY, ec.ArmoredHealth))
			continue
		}
		out = append(out, NewMushroom(x, lvl.GroundY, ec.Width, ec.Height, ec.Speed, minX, maxX, dir))
	}
	return out
}

// randRange returns a whole-pixel value uniform in [lo, hi].
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	lo, hi = math.Ceil(lo), math.Floor(hi)
	if hi <= lo {
		return lo
	}
	return lo + float64(rng.Int63n(int64(hi-lo)+1))
}

// sanitize clamps degenerate sizes to one pixel.
func sanitize(r core.Rect) core.Rect {
	if r.W < 1 {
		r.W = 1
	}
	if r.H < 1 {
		r.H = 1
	}
	return r
}

func rects(cs []config.RectConfig) []core.Rect {
	out := make([]core.Rect, 0, len(cs))
	for _, c := range cs {
		out = append(out, sanitize(core.NewRect(c.X, c.Y, c.W, c.H)))
	}
	return out
}
