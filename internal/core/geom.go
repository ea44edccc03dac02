// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in playfield pixels.
// X and Y are the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// NewRectCentered creates a rectangle of size w×h centered on (cx, cy).
func NewRectCentered(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// NewRectMidTop creates a rectangle whose top edge midpoint is (mx, top).
func NewRectMidTop(mx, top, w, h float64) Rect {
	return Rect{X: mx - w/2, Y: top, W: w, H: h}
}

// NewRectMidBottom creates a rectangle whose bottom edge midpoint is (mx, bottom).
func NewRectMidBottom(mx, bottom, w, h float64) Rect {
	return Rect{X: mx - w/2, Y: bottom - h, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Inset shrinks the rectangle by m on all four sides, keeping its center.
// Sizes never go negative.
func (r Rect) Inset(m float64) Rect {
	w := r.W - 2*m
	h := r.H - 2*m
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cx, cy := r.Center()
	return NewRectCentered(cx, cy, w, h)
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
