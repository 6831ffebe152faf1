package core

import "fmt"

// Point is a grid coordinate. X increases to the right, Y increases upward:
// row 0 is the bottom row of the board.
type Point struct {
	X int
	Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Equal returns true if two points are the same.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// SharesLine reports whether other lies on the same row or column as p
// without being p itself.
func (p Point) SharesLine(other Point) bool {
	return (p.X == other.X || p.Y == other.Y) && !p.Equal(other)
}
