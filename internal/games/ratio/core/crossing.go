package core

import "golang.org/x/image/math/f64"

// orient returns the sign of the turn a -> b -> c:
// 1 for counter-clockwise, -1 for clockwise, 0 for collinear.
func orient(a, b, c f64.Vec2) int {
	v := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Crosses reports whether segment ab properly crosses segment cd: a and b lie
// strictly on opposite sides of line cd, and c and d strictly on opposite
// sides of line ab. Parallel, collinear and touching segments do not cross.
func Crosses(a, b, c, d f64.Vec2) bool {
	return orient(c, d, a)*orient(c, d, b) < 0 &&
		orient(a, b, c)*orient(a, b, d) < 0
}

// vertex returns the path-space position of grid point p.
// Path points sit on the lower-left corner of the cell with the same index.
func vertex(p Point) f64.Vec2 {
	return f64.Vec2{float64(p.X), float64(p.Y)}
}

// cellCenter returns the path-space position of the center of cell p.
func cellCenter(p Point) f64.Vec2 {
	return f64.Vec2{float64(p.X) + 0.5, float64(p.Y) + 0.5}
}

// Blocked reports whether the step between neighbouring cells from and to
// crosses any segment of path.
func Blocked(from, to Point, path []Point) bool {
	a, b := cellCenter(from), cellCenter(to)
	for i := 1; i < len(path); i++ {
		if Crosses(a, b, vertex(path[i-1]), vertex(path[i])) {
			return true
		}
	}
	return false
}
