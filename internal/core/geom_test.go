package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "resting on top edge (no overlap)",
			a:        NewRect(0, 0, 50, 50),
			b:        NewRect(0, 50, 200, 40),
			expected: false,
		},
		{
			name:     "sub-pixel penetration",
			a:        NewRect(0, 0.7, 50, 50),
			b:        NewRect(0, 50, 200, 40),
			expected: true,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "zero width never collides",
			a:        NewRect(0, 0, 0, 20),
			b:        NewRect(-5, -5, 30, 30),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectOverlapX(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected float64
	}{
		{"partial", NewRect(0, 0, 50, 50), NewRect(30, 0, 100, 10), 20},
		{"contained", NewRect(40, 0, 50, 50), NewRect(0, 0, 200, 10), 50},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 0, 10, 10), -10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.OverlapX(tc.b); got != tc.expected {
				t.Errorf("OverlapX() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
	if r.CenterX() != 15 || r.CenterY() != 17.5 {
		t.Errorf("Center = (%v, %v), expected (15, 17.5)", r.CenterX(), r.CenterY())
	}

	moved := r.WithBottom(100).WithCenterX(0)
	if moved.Bottom() != 100 || moved.X != -10 {
		t.Errorf("WithBottom/WithCenterX = %+v, expected bottom 100 and x -10", moved)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(3.2) != 1 || Sign(-0.1) != -1 || Sign(0) != 0 {
		t.Error("Sign should return -1, 0 or 1")
	}
}
