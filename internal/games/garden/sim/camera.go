package sim

import (
	"math"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/core"
)

// Camera follows a target with exponential smoothing and a horizontal
// look-ahead. The smoothing factors apply per tick, so they assume the
// fixed simulation rate.
type Camera struct {
	X, Y          float64
	ViewW, ViewH  float64
	MapW, MapH    float64
	Smoothing     float64
	LookAhead     float64
	LookSmoothing float64

	look float64
}

// NewCamera creates a camera at the map origin.
func NewCamera(cam config.CameraConfig, world config.WorldConfig) *Camera {
	return &Camera{
		ViewW:         world.ViewWidth,
		ViewH:         world.ViewHeight,
		MapW:          world.MapWidth,
		MapH:          world.MapHeight,
		Smoothing:     cam.Smoothing,
		LookAhead:     cam.LookAhead,
		LookSmoothing: cam.LookSmoothing,
	}
}

// Update moves the camera one tick toward target, leaning in the direction
// of vx.
func (c *Camera) Update(target core.Rect, vx float64) {
	tx := target.CenterX() - c.ViewW/2
	ty := target.CenterY() - c.ViewH/2

	lookTarget := core.Sign(vx) * c.LookAhead
	c.look += (lookTarget - c.look) * c.LookSmoothing
	tx += c.look

	c.X += (tx - c.X) * c.Smoothing
	c.Y += (ty - c.Y) * c.Smoothing

	c.X = core.ClampF(c.X, 0, math.Max(0, c.MapW-c.ViewW))
	c.Y = core.ClampF(c.Y, 0, math.Max(0, c.MapH-c.ViewH))
}

// Visible reports whether r lies within the view widened by margin on
// both horizontal sides.
func (c *Camera) Visible(r core.Rect, margin float64) bool {
	return r.Right() >= c.X-margin && r.Left() <= c.X+c.ViewW+margin
}

// ToScreen converts a world rect to view coordinates.
func (c *Camera) ToScreen(r core.Rect) core.Rect {
	return r.Translate(-c.X, -c.Y)
}
