package core

import (
	"math"

	"golang.org/x/image/math/f64"
)

// DefaultSnapRadius is the pointer distance, in render units, under which a
// grid point counts as hovered.
const DefaultSnapRadius = 2.5

// Layout is the render-space geometry of the board, computed by the renderer.
// Origin is the render position of grid point (0,0); point p is drawn at
// Origin + p*(Cell+Margin) on each axis.
type Layout struct {
	Origin f64.Vec2
	Cell   f64.Vec2
	Margin f64.Vec2
}

// Pitch returns the distance between neighbouring grid points on each axis.
func (l Layout) Pitch() f64.Vec2 {
	return f64.Vec2{l.Cell[0] + l.Margin[0], l.Cell[1] + l.Margin[1]}
}

// Center returns the render position of grid point p.
func (l Layout) Center(p Point) f64.Vec2 {
	pitch := l.Pitch()
	return f64.Vec2{
		l.Origin[0] + float64(p.X)*pitch[0],
		l.Origin[1] + float64(p.Y)*pitch[1],
	}
}

// Hover is the grid point nearest to the pointer.
type Hover struct {
	Point    Point
	Distance float64 // Render-space distance from the pointer to Point
	Eligible bool    // Pointer is within the snap radius of an in-bounds point
}

// Mapper converts render-space pointer positions to grid points.
type Mapper struct {
	SnapRadius float64
}

// NewMapper returns a mapper with the given snap radius, or the default
// radius when r is not positive.
func NewMapper(r float64) Mapper {
	if r <= 0 {
		r = DefaultSnapRadius
	}
	return Mapper{SnapRadius: r}
}

// Nearest rounds the pointer to a grid point independently on each axis and
// returns the point with its Euclidean distance to the pointer.
func Nearest(l Layout, pointer f64.Vec2) (Point, float64) {
	pitch := l.Pitch()
	if pitch[0] <= 0 || pitch[1] <= 0 {
		return Point{}, math.Inf(1)
	}
	p := Point{
		X: int(math.Round((pointer[0] - l.Origin[0]) / pitch[0])),
		Y: int(math.Round((pointer[1] - l.Origin[1]) / pitch[1])),
	}
	c := l.Center(p)
	return p, math.Hypot(pointer[0]-c[0], pointer[1]-c[1])
}

// Map returns the hover state of the pointer over lvl.
// Out-of-grid points are never eligible.
func (m Mapper) Map(l Layout, pointer f64.Vec2, lvl *Level) Hover {
	p, d := Nearest(l, pointer)
	h := Hover{Point: p, Distance: d}
	h.Eligible = d < m.SnapRadius && (lvl == nil || lvl.InBounds(p))
	return h
}
