package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/core"
)

func testCamera() *Camera {
	cfg := config.DefaultGardenConfig()
	return NewCamera(cfg.Camera, cfg.World)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCameraSmoothing(t *testing.T) {
	tests := []struct {
		name string
		vx   float64
		x    float64
		look float64
	}{
		{"standing", 0, 360 * 0.12, 0},
		{"moving right", 5, (360 + 16.8) * 0.12, 16.8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := testCamera()
			c.Update(core.NewRect(975, 500, 50, 50), tc.vx)
			if !approx(c.X, tc.x) {
				t.Errorf("X = %v, expected %v", c.X, tc.x)
			}
			if !approx(c.look, tc.look) {
				t.Errorf("look = %v, expected %v", c.look, tc.look)
			}
			if c.Y != 0 {
				t.Errorf("Y = %v, expected 0 (map height equals view height)", c.Y)
			}
		})
	}
}

func TestCameraBounds(t *testing.T) {
	c := testCamera()
	targets := []float64{0, 2560, 1200, -500, 4000, 40, 2500}

	for _, tx := range targets {
		for i := 0; i < 120; i++ {
			vx := 5.0
			if i%2 == 0 {
				vx = -5
			}
			c.Update(core.NewRect(tx, 300, 50, 50), vx)
			if c.X < 0 || c.X > c.MapW-c.ViewW {
				t.Fatalf("X = %v outside [0, %v]", c.X, c.MapW-c.ViewW)
			}
			if c.Y < 0 || c.Y > math.Max(0, c.MapH-c.ViewH) {
				t.Fatalf("Y = %v outside bounds", c.Y)
			}
		}
	}
}

func TestCameraConverges(t *testing.T) {
	c := testCamera()
	for i := 0; i < 400; i++ {
		c.Update(core.NewRect(2400, 500, 50, 50), 0)
	}
	if !approx(c.X, 1280) {
		t.Errorf("X = %v, expected the right clamp 1280", c.X)
	}
}

func TestCameraMapSmallerThanView(t *testing.T) {
	c := testCamera()
	c.MapW = 800
	c.Update(core.NewRect(700, 300, 50, 50), 5)
	if c.X != 0 {
		t.Errorf("X = %v, expected 0", c.X)
	}
}

func TestCameraVisible(t *testing.T) {
	c := testCamera()
	c.X = 1000

	tests := []struct {
		name     string
		r        core.Rect
		expected bool
	}{
		{"inside", core.NewRect(1500, 0, 45, 45), true},
		{"left margin", core.NewRect(810, 0, 45, 45), true},
		{"far left", core.NewRect(700, 0, 45, 45), false},
		{"right margin", core.NewRect(2470, 0, 45, 45), true},
		{"far right", core.NewRect(2490, 0, 45, 45), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Visible(tc.r, 200); got != tc.expected {
				t.Errorf("Visible() = %v, expected %v", got, tc.expected)
			}
		})
	}

	if got := c.ToScreen(core.NewRect(1010, 20, 5, 5)); got != core.NewRect(10, 20, 5, 5) {
		t.Errorf("ToScreen() = %+v, expected offset by the camera", got)
	}
}
