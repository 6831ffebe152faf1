package core

import (
	"errors"
	"fmt"
)

// DefaultPathCapacity is the maximum number of points in a path.
const DefaultPathCapacity = 1024

// ErrPathFull is returned when a point is pushed onto a path at capacity.
var ErrPathFull = errors.New("core: path capacity reached")

// AppendResult is the outcome of offering a point to a Builder.
type AppendResult uint8

const (
	Accepted AppendResult = iota
	RejectedNotAdjacent
	RejectedNotStart
	RejectedFull
)

// String returns the string representation of an append result.
func (r AppendResult) String() string {
	switch r {
	case Accepted:
		return "Accepted"
	case RejectedNotAdjacent:
		return "RejectedNotAdjacent"
	case RejectedNotStart:
		return "RejectedNotStart"
	case RejectedFull:
		return "RejectedFull"
	default:
		return "Unknown"
	}
}

// Path is the ordered route walked by the player, bounded by a capacity.
type Path struct {
	points   []Point
	capacity int
}

// NewPath creates an empty path. Non-positive capacities use DefaultPathCapacity.
func NewPath(capacity int) *Path {
	if capacity <= 0 {
		capacity = DefaultPathCapacity
	}
	return &Path{
		points:   make([]Point, 0, min(capacity, 64)),
		capacity: capacity,
	}
}

// Len returns the number of points.
func (p *Path) Len() int {
	return len(p.points)
}

// Cap returns the maximum number of points.
func (p *Path) Cap() int {
	return p.capacity
}

// Last returns the final point, or false if the path is empty.
func (p *Path) Last() (Point, bool) {
	if len(p.points) == 0 {
		return Point{}, false
	}
	return p.points[len(p.points)-1], true
}

// Points returns a copy of the points in walk order.
func (p *Path) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}

// Push appends a point without checking path rules.
func (p *Path) Push(pt Point) error {
	if len(p.points) >= p.capacity {
		return fmt.Errorf("pushing %s: %w", pt, ErrPathFull)
	}
	p.points = append(p.points, pt)
	return nil
}

// Reset empties the path, keeping its storage.
func (p *Path) Reset() {
	p.points = p.points[:0]
}

// Builder grows a path on one level under the drawing rules:
// the first point is the level start, every next point shares a row or
// column with the previous one, and reaching the level end closes the path.
type Builder struct {
	level   *Level
	path    *Path
	onClose func(closed []Point)
}

// NewBuilder creates a builder for level. onClose, if set, receives a copy of
// every closed path before the builder resets.
func NewBuilder(level *Level, capacity int, onClose func(closed []Point)) *Builder {
	return &Builder{
		level:   level,
		path:    NewPath(capacity),
		onClose: onClose,
	}
}

// SetLevel switches the builder to another level and clears the path.
func (b *Builder) SetLevel(level *Level) {
	b.level = level
	b.path.Reset()
}

// Level returns the level the builder draws on.
func (b *Builder) Level() *Level {
	return b.level
}

// Points returns a copy of the current path.
func (b *Builder) Points() []Point {
	return b.path.Points()
}

// Len returns the number of points in the current path.
func (b *Builder) Len() int {
	return b.path.Len()
}

// Check returns what TryAppend would answer for c without changing the path.
func (b *Builder) Check(c Point) AppendResult {
	last, ok := b.path.Last()
	if !ok {
		if c.Equal(b.level.Start) {
			return Accepted
		}
		return RejectedNotStart
	}
	if !last.SharesLine(c) {
		return RejectedNotAdjacent
	}
	if b.path.Len() >= b.path.Cap() {
		return RejectedFull
	}
	return Accepted
}

// TryAppend offers c to the path. A rejected point leaves the path unchanged.
// Accepting the level end closes the path: the close hook runs once and the
// path is reset whatever the hook decides.
func (b *Builder) TryAppend(c Point) AppendResult {
	res := b.Check(c)
	if res != Accepted {
		return res
	}
	if err := b.path.Push(c); err != nil {
		return RejectedFull
	}

	if c.Equal(b.level.End) {
		closed := b.path.Points()
		if b.onClose != nil {
			b.onClose(closed)
		}
		b.path.Reset()
	}
	return Accepted
}

// Cancel clears the path. Cancelling an empty path is a no-op.
func (b *Builder) Cancel() {
	b.path.Reset()
}
