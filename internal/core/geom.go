// Package core provides fundamental types and utilities for the garden platformer.
// It contains no external dependencies on the terminal layer (no Bubble Tea) to keep
// the simulation pure and testable.
package core

import "math"

// Rect is an axis-aligned bounding box in world pixels.
// X, Y is the top-left corner; W and H are never negative for a valid rect.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Valid reports whether the rect has strictly positive area.
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

// Translate returns the rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersects returns true if the two rectangles overlap with positive area.
// Edges that only touch do not count, and zero-area rects never intersect.
func (r Rect) Intersects(other Rect) bool {
	if !r.Valid() || !other.Valid() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// OverlapX returns the width of the horizontal overlap, or a value <= 0 if disjoint.
func (r Rect) OverlapX(other Rect) float64 {
	return math.Min(r.Right(), other.Right()) - math.Max(r.X, other.X)
}

// WithBottom returns the rect moved vertically so its bottom edge sits at y.
func (r Rect) WithBottom(y float64) Rect {
	r.Y = y - r.H
	return r
}

// WithCenterX returns the rect moved horizontally so it is centered on x.
func (r Rect) WithCenterX(x float64) Rect {
	r.X = x - r.W/2
	return r
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
