// Package core provides fundamental types and utilities for the crossing game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an integer rectangle in screen cells, used for drawing.
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

// Box is an axis-aligned bounding box in board pixels.
// Edges are stored explicitly so a box read by collision checks always
// describes a single position.
type Box struct {
	Top, Bottom float64
	Left, Right float64
}

// NewBox derives a box from a top-left position and fixed dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{
		Top:    y,
		Bottom: y + h,
		Left:   x,
		Right:  x + w,
	}
}

// Intersects reports whether two boxes overlap.
// Comparisons are strict: boxes that only share an edge do not intersect.
func (b Box) Intersects(other Box) bool {
	return b.Top < other.Bottom &&
		b.Left < other.Right &&
		b.Bottom > other.Top &&
		b.Right > other.Left
}

// Within reports whether the box lies entirely inside [0, w] x [0, h].
func (b Box) Within(w, h float64) bool {
	return b.Left >= 0 && b.Right <= w && b.Top >= 0 && b.Bottom <= h
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{
		Top:    b.Top + dy,
		Bottom: b.Bottom + dy,
		Left:   b.Left + dx,
		Right:  b.Right + dx,
	}
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
