package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/core"
)

func generate(cfg config.GardenConfig, seed int64) *Level {
	return NewGenerator(cfg).Generate(rand.New(rand.NewSource(seed)))
}

func TestFixedLayout(t *testing.T) {
	lvl := generate(config.DefaultGardenConfig(), 1)

	if len(lvl.Platforms) != 8 || len(lvl.Recovery) != 3 {
		t.Fatalf("platforms = %d + %d, expected 8 + 3", len(lvl.Platforms), len(lvl.Recovery))
	}
	if len(lvl.Orbs) != 4 {
		t.Fatalf("orbs = %d, expected 4", len(lvl.Orbs))
	}
	if got := lvl.Orbs[0].Rect; got != core.NewRect(330, 415, 20, 20) {
		t.Errorf("first orb = %+v, expected centered above platform 0", got)
	}
	if lvl.PlayerStart != core.NewRect(140, 570, 50, 50) {
		t.Errorf("PlayerStart = %+v, expected (140, 570, 50, 50)", lvl.PlayerStart)
	}
	if lvl.GroundY != 620 {
		t.Errorf("GroundY = %v, expected 620", lvl.GroundY)
	}

	slimes := 0
	for _, e := range lvl.Enemies {
		if _, ok := e.(*Slime); ok {
			slimes++
		}
	}
	if slimes != 8 {
		t.Errorf("slimes = %d, expected one per main platform", slimes)
	}

	s := lvl.Enemies[0].(*Slime)
	if s.Bounds().CenterX() != lvl.Platforms[0].CenterX() || s.Bounds().Bottom() != lvl.Platforms[0].Top() {
		t.Errorf("slime 0 at %+v, expected centered on platform 0", s.Bounds())
	}
	if s.dir != 1 {
		t.Errorf("slime 0 direction = %d, expected 1 for an even center", s.dir)
	}
}

func TestGroundEnemySpacing(t *testing.T) {
	cfg := config.DefaultGardenConfig()

	for seed := int64(0); seed < 20; seed++ {
		lvl := generate(cfg, seed)
		var xs []float64
		for _, e := range lvl.Enemies {
			m, ok := e.(*Mushroom)
			if !ok {
				continue
			}
			x := m.Bounds().CenterX()
			if m.Bounds().Bottom() != lvl.GroundY {
				t.Fatalf("seed %d: mushroom not on the ground: %+v", seed, m.Bounds())
			}
			if math.Abs(x-lvl.PlayerStart.CenterX()) < cfg.Enemies.SafeDistance {
				t.Fatalf("seed %d: mushroom at %v too close to the player start", seed, x)
			}
			for _, px := range xs {
				if math.Abs(x-px) < cfg.Enemies.MinDistance {
					t.Fatalf("seed %d: mushrooms at %v and %v closer than %v", seed, x, px, cfg.Enemies.MinDistance)
				}
			}
			xs = append(xs, x)
		}
		if len(xs) > cfg.Enemies.GroundCount {
			t.Fatalf("seed %d: %d mushrooms, expected at most %d", seed, len(xs), cfg.Enemies.GroundCount)
		}
	}
}

func TestGroundEnemiesUnsatisfiable(t *testing.T) {
	cfg := config.DefaultGardenConfig()
	cfg.Enemies.GroundCount = 50

	lvl := generate(cfg, 3)
	mushrooms := len(lvl.Enemies) - len(lvl.Platforms)
	if mushrooms >= 50 || mushrooms <= 0 {
		t.Errorf("mushrooms = %d, expected a partial placement", mushrooms)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := config.DefaultGardenConfig()
	cfg.Level.Layout = LayoutProcedural

	a, b := generate(cfg, 42), generate(cfg, 42)
	if len(a.Platforms) != len(b.Platforms) || len(a.Enemies) != len(b.Enemies) {
		t.Fatal("equal seeds produced different level sizes")
	}
	for i := range a.Platforms {
		if a.Platforms[i] != b.Platforms[i] {
			t.Errorf("platform %d differs: %+v vs %+v", i, a.Platforms[i], b.Platforms[i])
		}
	}
	for i := range a.Enemies {
		if a.Enemies[i].Bounds() != b.Enemies[i].Bounds() {
			t.Errorf("enemy %d differs", i)
		}
	}
}

func TestProceduralChain(t *testing.T) {
	cfg := config.DefaultGardenConfig()
	cfg.Level.Layout = LayoutProcedural
	pc := cfg.Level.Procedural
	limit := cfg.World.MapWidth - cfg.World.WallWidth

	for seed := int64(0); seed < 25; seed++ {
		lvl := generate(cfg, seed)
		if len(lvl.Platforms) == 0 || len(lvl.Platforms) > pc.Count {
			t.Fatalf("seed %d: %d platforms", seed, len(lvl.Platforms))
		}

		yBase := pc.YBase
		prevRight := pc.StartX
		for i, p := range lvl.Platforms {
			if p.Top() < pc.MinY || p.Top() > pc.MaxY {
				t.Errorf("seed %d platform %d: top %v outside [%v, %v]", seed, i, p.Top(), pc.MinY, pc.MaxY)
			}
			if math.Abs(p.Top()-yBase) < pc.MinYDiff {
				t.Errorf("seed %d platform %d: step %v below %v", seed, i, p.Top()-yBase, pc.MinYDiff)
			}
			if gap := p.Left() - prevRight; gap < pc.MinXGap || gap > pc.MaxXGap {
				t.Errorf("seed %d platform %d: gap %v outside [%v, %v]", seed, i, gap, pc.MinXGap, pc.MaxXGap)
			}
			if p.W < pc.MinWidth || p.W > pc.MaxWidth {
				t.Errorf("seed %d platform %d: width %v", seed, i, p.W)
			}
			if p.Right() > limit {
				t.Errorf("seed %d platform %d: crosses the right wall", seed, i)
			}
			yBase = p.Top()
			prevRight = p.Right()
		}

		if len(lvl.Recovery) != pc.RecoveryCount {
			t.Errorf("seed %d: %d recovery platforms, expected %d", seed, len(lvl.Recovery), pc.RecoveryCount)
		}
		if len(lvl.Orbs) != pc.OrbCount {
			t.Errorf("seed %d: %d orbs, expected %d", seed, len(lvl.Orbs), pc.OrbCount)
		}
	}
}

func TestNextHeightFallback(t *testing.T) {
	cfg := config.DefaultGardenConfig()
	cfg.Level.Procedural.MinYDiff = 100
	cfg.Level.Procedural.MaxYDiff = 10
	cfg.Level.Procedural.Attempts = 5
	g := NewGenerator(cfg)
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		yBase    float64
		expected float64
	}{
		{300, 400}, // one step down
		{450, 350}, // a step down leaves the band, so step up
		{600, 480}, // both steps leave the band, clamp
	}
	for _, tc := range tests {
		if got := g.nextHeight(rng, tc.yBase); got != tc.expected {
			t.Errorf("nextHeight(%v) = %v, expected %v", tc.yBase, got, tc.expected)
		}
	}
}

func TestInterleavedOrbs(t *testing.T) {
	cfg := config.DefaultGardenConfig()
	cfg.Level.Procedural.OrbCount = 5
	g := NewGenerator(cfg)
	platforms := []core.Rect{
		core.NewRect(200, 400, 100, 40),
		core.NewRect(400, 300, 100, 40),
		core.NewRect(600, 400, 100, 40),
	}

	orbs := g.interleavedOrbs(platforms, 620)
	if len(orbs) != 5 {
		t.Fatalf("orbs = %d, expected 5", len(orbs))
	}

	// platform 0, ground, platform 2, ground, ground
	centersY := []float64{385, 605, 385, 605, 605}
	for i, o := range orbs {
		if o.Rect.CenterY() != centersY[i] {
			t.Errorf("orb %d center y = %v, expected %v", i, o.Rect.CenterY(), centersY[i])
		}
	}
	if orbs[0].Rect.CenterX() != 250 || orbs[2].Rect.CenterX() != 650 {
		t.Errorf("platform orbs at %v and %v, expected 250 and 650", orbs[0].Rect.CenterX(), orbs[2].Rect.CenterX())
	}
}

func TestSanitizeDegeneratePlatforms(t *testing.T) {
	cfg := config.DefaultGardenConfig()
	cfg.Level.Fixed.Platforms = []config.RectConfig{{X: 300, Y: 400, W: 0, H: -5}}
	cfg.Level.Fixed.OrbPlatforms = []int{0, 7}

	lvl := generate(cfg, 1)
	if got := lvl.Platforms[0]; got.W != 1 || got.H != 1 {
		t.Errorf("platform = %+v, expected 1x1", got)
	}
	if len(lvl.Orbs) != 1 {
		t.Errorf("orbs = %d, expected out-of-range index skipped", len(lvl.Orbs))
	}
}

func TestPhaseTwoArmored(t *testing.T) {
	cfg := config.DefaultGardenConfig()
	cfg.Level.Phase = 2
	cfg.Enemies.GroundCount = 0

	lvl := generate(cfg, 1)
	for i, e := range lvl.Enemies {
		a, ok := e.(*Armored)
		if !ok {
			t.Fatalf("enemy %d is %T, expected *Armored", i, e)
		}
		if a.health != 2 {
			t.Errorf("enemy %d health = %d, expected 2", i, a.health)
		}
	}
}
