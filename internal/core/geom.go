// Package core provides the screen, input and geometry primitives Ratio is
// drawn with. It contains no Bubble Tea dependency, so the game logic on top
// of it stays pure and testable.
package core

// Rect is an axis-aligned rectangle in screen cells. X and Y are the top-left
// corner; Right and Bottom are exclusive.
type Rect struct {
	X, Y, W, H int
}

// NewRect returns the rectangle at (x, y) of size w by h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the middle cell, rounding toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp pins val to [lo, hi]. Used to keep overlays on screen.
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}
