package sim

import (
	"testing"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/core"
)

func TestCollectOrbsSetOnce(t *testing.T) {
	r := NewResolver(200)
	player := NewBody(core.NewRect(100, 100, 50, 50), 4, Invulnerability{})
	orbs := []*Orb{NewOrb(125, 125, 10), NewOrb(900, 125, 10)}

	total := 0
	for i := 0; i < 3; i++ {
		total += r.CollectOrbs(player, orbs)
	}
	if total != 1 {
		t.Errorf("collected %d, expected 1 across repeated overlapping ticks", total)
	}
	if !orbs[0].Collected || orbs[1].Collected {
		t.Errorf("Collected = %v, %v, expected true, false", orbs[0].Collected, orbs[1].Collected)
	}
}

func TestHitPlayerInvulnerability(t *testing.T) {
	r := NewResolver(200)
	player := NewBody(core.NewRect(100, 570, 50, 50), 4, Invulnerability{DurationMs: 2000, BlinkMs: 150})
	player.VY = 7
	enemies := []Enemy{
		NewMushroom(125, 620, 45, 45, 0, 50, 2510, 1),
		NewMushroom(130, 620, 45, 45, 0, 50, 2510, 1),
	}

	if !r.HitPlayer(player, enemies, 100) {
		t.Fatal("HitPlayer() = false on first contact")
	}
	if player.VY != 0 {
		t.Errorf("VY = %v, expected 0 after a hit", player.VY)
	}
	if r.HitPlayer(player, enemies, 200) {
		t.Error("HitPlayer() inside the window should not take a life")
	}
	if player.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", player.Lives)
	}
}

func TestHitPlayerIgnoresDead(t *testing.T) {
	r := NewResolver(200)
	player := NewBody(core.NewRect(100, 570, 50, 50), 4, Invulnerability{DurationMs: 2000})
	m := NewMushroom(125, 620, 45, 45, 0, 50, 2510, 1)
	m.TakeDamage(1)

	if r.HitPlayer(player, []Enemy{m}, 0) {
		t.Error("a dead enemy should not hurt the player")
	}
}

func TestHitEnemiesFirstMatchWins(t *testing.T) {
	r := NewResolver(200)
	a := NewMushroom(500, 620, 45, 45, 0, 50, 2510, 1)
	b := NewMushroom(505, 620, 45, 45, 0, 50, 2510, 1)
	shot := &Projectile{Rect: core.NewRect(495, 590, 10, 10), VX: 12, Alive: true}

	hits, kills := r.HitEnemies([]*Projectile{shot}, []Enemy{a, b})

	if hits != 1 || kills != 1 {
		t.Errorf("HitEnemies() = %d, %d, expected 1, 1", hits, kills)
	}
	if a.Alive() || !b.Alive() {
		t.Errorf("Alive = %v, %v, expected only the first enemy killed", a.Alive(), b.Alive())
	}
	if shot.Alive {
		t.Error("projectile should be consumed")
	}
}

func TestArmoredTakesTwoHits(t *testing.T) {
	r := NewResolver(200)
	a := NewArmored(core.NewRect(500, 0, 45, 45), 2, 1, 400, 700, 620, 2)

	fire := func() *Projectile {
		return &Projectile{Rect: core.NewRect(510, 590, 10, 10), VX: 12, Alive: true}
	}

	_, kills := r.HitEnemies([]*Projectile{fire()}, []Enemy{a})
	if kills != 0 || !a.Alive() || a.health != 1 {
		t.Fatalf("after one hit: kills %d alive %v health %d", kills, a.Alive(), a.health)
	}

	var got Sprite
	a.Draw(SinkFunc(func(s Sprite) { got = s }), testCamera())
	if got.State != StateHurt || got.Kind != KindArmored {
		t.Errorf("Draw() = %v/%v, expected armored/hurt", got.Kind, got.State)
	}

	_, kills = r.HitEnemies([]*Projectile{fire()}, []Enemy{a})
	if kills != 1 || a.Alive() {
		t.Errorf("after two hits: kills %d alive %v", kills, a.Alive())
	}
}

func TestKilledEnemyShowsDeadFrame(t *testing.T) {
	r := NewResolver(200)
	cam := testCamera()
	m := NewMushroom(600, 620, 45, 45, 2, 50, 2510, 1)
	shot := &Projectile{Rect: core.NewRect(590, 590, 10, 10), VX: 12, Alive: true}

	if _, kills := r.HitEnemies([]*Projectile{shot}, []Enemy{m}); kills != 1 {
		t.Fatalf("HitEnemies() kills = %d, expected 1", kills)
	}

	var drawn []Sprite
	sink := SinkFunc(func(s Sprite) { drawn = append(drawn, s) })
	m.Draw(sink, cam)
	if len(drawn) != 1 || drawn[0].State != StateDead || drawn[0].Kind != KindMushroom {
		t.Fatalf("Draw() after kill = %+v, expected one dead mushroom", drawn)
	}

	x := m.Bounds().X
	for i := 0; i < deathTicks; i++ {
		r.UpdateEnemies([]Enemy{m}, cam, Tick{SpeedScale: 1})
	}
	if m.Bounds().X != x {
		t.Errorf("dead enemy moved from %v to %v", x, m.Bounds().X)
	}

	drawn = nil
	m.Draw(sink, cam)
	if len(drawn) != 0 {
		t.Errorf("Draw() after %d ticks = %+v, expected nothing", deathTicks, drawn)
	}
}

func TestCheckWinEdgeTriggered(t *testing.T) {
	r := NewResolver(200)

	if r.CheckWin(3, 4) {
		t.Error("CheckWin() before all orbs")
	}
	if !r.CheckWin(4, 4) {
		t.Fatal("CheckWin() = false on completion")
	}
	for i := 0; i < 5; i++ {
		if r.CheckWin(4, 4) {
			t.Fatal("CheckWin() fired twice")
		}
	}
	r.Reset()
	if !r.CheckWin(4, 4) {
		t.Error("CheckWin() after Reset should fire again")
	}
	if NewResolver(0).CheckWin(0, 0) {
		t.Error("CheckWin() with no orbs should not fire")
	}
}

func TestUpdateEnemiesCulling(t *testing.T) {
	r := NewResolver(200)
	cam := testCamera() // X = 0, view 1280
	near := NewMushroom(600, 620, 45, 45, 2, 50, 2510, 1)
	far := NewMushroom(2300, 620, 45, 45, 2, 50, 2510, 1)

	r.UpdateEnemies([]Enemy{near, far}, cam, Tick{SpeedScale: 1})

	if near.Bounds().CenterX() != 602 {
		t.Errorf("near enemy at %v, expected 602", near.Bounds().CenterX())
	}
	if far.Bounds().CenterX() != 2300 {
		t.Errorf("far enemy at %v, expected it frozen at 2300", far.Bounds().CenterX())
	}

	// Culled enemies still collide.
	player := NewBody(far.Bounds(), 4, Invulnerability{DurationMs: 2000})
	if !r.HitPlayer(player, []Enemy{near, far}, 0) {
		t.Error("HitPlayer() should consider culled enemies")
	}
}

func TestPatrolTurnsAtLimits(t *testing.T) {
	cfg := config.DefaultGardenConfig().Enemies
	platform := core.NewRect(100, 400, 100, 40)
	s := NewSlime(platform, cfg.Width, cfg.Height, 2, cfg.PlatformInset, 1)

	minX, maxX := 104.0, 151.0
	sawLeft, sawRight := false, false
	for i := 0; i < 200; i++ {
		s.Update(Tick{SpeedScale: 1})
		x := s.Bounds().X
		if x < minX || x > maxX {
			t.Fatalf("tick %d: x = %v outside [%v, %v]", i, x, minX, maxX)
		}
		sawLeft = sawLeft || x == minX
		sawRight = sawRight || x == maxX
	}
	if !sawLeft || !sawRight {
		t.Errorf("slime did not reach both ends: left %v right %v", sawLeft, sawRight)
	}
	if s.Bounds().Bottom() != 400 {
		t.Errorf("Bottom() = %v, expected the platform top", s.Bounds().Bottom())
	}
}
