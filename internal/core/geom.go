// Package core provides the dependency-free primitives shared by the
// simulation and the terminal platform: world and screen geometry, the
// cell buffer, input frames and the frame clock.
package core

// AABB is an axis-aligned box in world units (the playfield is 900x500).
// Y grows downward, so Bottom is the larger edge.
type AABB struct {
	X, Y float64
	W, H float64
}

// Box builds an AABB.
func Box(x, y, w, h float64) AABB {
	return AABB{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b AABB) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b AABB) Bottom() float64 {
	return b.Y + b.H
}

// OverlapsX reports whether the horizontal spans of a and b overlap.
// Touching edges do not count.
func (b AABB) OverlapsX(other AABB) bool {
	return b.X < other.Right() && b.Right() > other.X
}

// Overlaps is the AABB predicate used for every collision in the game.
// It is pure and symmetric; touching edges do not count as overlap.
func (b AABB) Overlaps(other AABB) bool {
	return b.OverlapsX(other) && b.Y < other.Bottom() && b.Bottom() > other.Y
}

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
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

// Clamp restricts an int to [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
