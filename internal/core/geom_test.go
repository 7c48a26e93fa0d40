package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxIntersectsPadded(t *testing.T) {
	player := Box{X: 150, Y: 300, W: 90, H: 40}

	tests := []struct {
		name     string
		other    Box
		pad      float64
		expected bool
	}{
		{"deep overlap", Box{X: 180, Y: 300, W: 60, H: 80}, 15, true},
		{"edge graze forgiven by padding", Box{X: 225, Y: 300, W: 60, H: 80}, 15, false},
		{"edge graze without padding", Box{X: 225, Y: 300, W: 60, H: 80}, 0, true},
		{"vertical graze forgiven", Box{X: 160, Y: 320, W: 60, H: 80}, 15, false},
		{"far away", Box{X: 900, Y: 0, W: 60, H: 80}, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.IntersectsPadded(tc.other, tc.pad); got != tc.expected {
				t.Errorf("IntersectsPadded() = %v, expected %v", got, tc.expected)
			}
			if got := tc.other.IntersectsPadded(player, tc.pad); got != tc.expected {
				t.Errorf("IntersectsPadded() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := Box{X: 10, Y: 20, W: 30, H: 40}
	if b.Right() != 40 || b.Bottom() != 60 {
		t.Errorf("edges = (%v, %v), expected (40, 60)", b.Right(), b.Bottom())
	}
	if b.CenterX() != 25 || b.CenterY() != 40 {
		t.Errorf("center = (%v, %v), expected (25, 40)", b.CenterX(), b.CenterY())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if got := ClampF(-2.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-2.5, 0, 1) = %v, expected 0", got)
	}
}

func TestMeterFraction(t *testing.T) {
	tests := []struct {
		m    Meter
		want float64
	}{
		{Meter{Value: 50, Max: 200}, 0.25},
		{Meter{Value: 300, Max: 200}, 1},
		{Meter{Value: -5, Max: 100}, 0},
		{Meter{Value: 5, Max: 0}, 0},
	}
	for _, tt := range tests {
		if got := tt.m.Fraction(); got != tt.want {
			t.Errorf("Fraction(%v/%v) = %v, want %v", tt.m.Value, tt.m.Max, got, tt.want)
		}
	}
}
