// Package core provides fundamental types and utilities for the sleigh runner.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Box is an axis-aligned bounding box in world units.
// The simulation runs on a fixed logical canvas; boxes are scaled to cells only when drawn.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 {
	return b.X + b.W/2
}

// CenterY returns the vertical center.
func (b Box) CenterY() float64 {
	return b.Y + b.H/2
}

// Intersects reports strict overlap of two boxes.
func (b Box) Intersects(other Box) bool {
	return b.IntersectsPadded(other, 0)
}

// IntersectsPadded shrinks both boxes by pad on every side and then tests overlap.
// A positive pad gives a hitbox more forgiving than the sprite bounds.
func (b Box) IntersectsPadded(other Box, pad float64) bool {
	return b.X+pad < other.Right()-pad &&
		b.Right()-pad > other.X+pad &&
		b.Y+pad < other.Bottom()-pad &&
		b.Bottom()-pad > other.Y+pad
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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
