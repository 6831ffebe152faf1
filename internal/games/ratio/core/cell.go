// Package core provides the puzzle engine for Ratio.
// This package is UI-agnostic and deterministic: it owns the level grid,
// maps pointer positions to grid points, validates path appends and
// partitions the board along a closed path.
package core

// CellType is the piece held by a grid cell.
type CellType uint8

const (
	CellEmpty CellType = iota
	CellSquare
	CellTriangle
	CellCircle
)

// String returns the string representation of a cell type.
func (t CellType) String() string {
	switch t {
	case CellEmpty:
		return "Empty"
	case CellSquare:
		return "Square"
	case CellTriangle:
		return "Triangle"
	case CellCircle:
		return "Circle"
	default:
		return "Unknown"
	}
}

// ParseCellType converts the numeric code used by level files.
func ParseCellType(code int) (CellType, bool) {
	if code < int(CellEmpty) || code > int(CellCircle) {
		return CellEmpty, false
	}
	return CellType(code), true
}

// Cell is a single grid unit.
// RegionID and Visited are scratch fields owned by Partition.
type Cell struct {
	Type     CellType
	RegionID int // -1 when unassigned
	Visited  bool
}

// NewCell returns an unassigned cell of the given type.
func NewCell(t CellType) Cell {
	return Cell{Type: t, RegionID: -1}
}

// Counts holds a number per piece type. Level quotas and region
// contents share this shape.
type Counts struct {
	Square   int `yaml:"square"`
	Triangle int `yaml:"triangle"`
	Circle   int `yaml:"circle"`
}

// Add increments the count for t. Empty cells are not counted.
func (c *Counts) Add(t CellType) {
	switch t {
	case CellSquare:
		c.Square++
	case CellTriangle:
		c.Triangle++
	case CellCircle:
		c.Circle++
	}
}

// Get returns the count for t.
func (c Counts) Get(t CellType) int {
	switch t {
	case CellSquare:
		return c.Square
	case CellTriangle:
		return c.Triangle
	case CellCircle:
		return c.Circle
	default:
		return 0
	}
}

// Total returns the number of pieces.
func (c Counts) Total() int {
	return c.Square + c.Triangle + c.Circle
}

// IsZero reports whether no piece is counted.
func (c Counts) IsZero() bool {
	return c.Total() == 0
}

// Exceeds reports whether any type in c is above its count in limit.
func (c Counts) Exceeds(limit Counts) bool {
	return c.Square > limit.Square || c.Triangle > limit.Triangle || c.Circle > limit.Circle
}

// MultipleOf reports whether c == k*unit for a single integer k >= 0 and returns k.
// A zero unit only divides zero counts.
func (c Counts) MultipleOf(unit Counts) (int, bool) {
	k := -1
	for _, t := range []CellType{CellSquare, CellTriangle, CellCircle} {
		have, want := c.Get(t), unit.Get(t)
		if want == 0 {
			if have != 0 {
				return 0, false
			}
			continue
		}
		if have%want != 0 {
			return 0, false
		}
		if k >= 0 && have/want != k {
			return 0, false
		}
		k = have / want
	}
	if k < 0 {
		// Zero unit: only an empty region matches.
		return 0, c.IsZero()
	}
	return k, true
}
