package core

// Region is a maximal set of cells connected under 4-adjacency without
// crossing the path.
type Region struct {
	ID     int
	Cells  []Point // In fill order
	Counts Counts  // Pieces by type
}

// Partitioning is the result of splitting a level along a path.
type Partitioning struct {
	Regions []Region
	width   int
	ids     []int // Region ID per cell, row-major
}

// RegionOf returns the region ID of cell p, or -1 for points outside the grid.
func (pt Partitioning) RegionOf(p Point) int {
	if p.X < 0 || p.Y < 0 || p.X >= pt.width || p.Y*pt.width+p.X >= len(pt.ids) {
		return -1
	}
	return pt.ids[p.Y*pt.width+p.X]
}

// neighbours lists the 4-adjacent offsets in fill order.
var neighbours = [4]Point{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// Partition splits the level into regions separated by path and counts the
// pieces in each. Cells are scanned in row-major order and every unvisited
// cell seeds a new region, so region IDs are deterministic for a given level
// and path. The level's RegionID/Visited scratch fields are rewritten.
func Partition(l *Level, path []Point) Partitioning {
	l.resetScratch()

	pt := Partitioning{
		width: l.Width,
		ids:   make([]int, len(l.Cells)),
	}

	id := 0
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.At(x, y).Visited {
				continue
			}
			pt.Regions = append(pt.Regions, fill(l, P(x, y), id, path))
			id++
		}
	}

	for i, c := range l.Cells {
		pt.ids[i] = c.RegionID
	}
	return pt
}

// fill assigns id to every cell reachable from seed.
// It uses an explicit stack so large boards cannot exhaust the call stack.
func fill(l *Level, seed Point, id int, path []Point) Region {
	r := Region{ID: id}

	l.Cell(seed).Visited = true
	stack := []Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := l.Cell(p)
		cell.RegionID = id
		r.Cells = append(r.Cells, p)
		r.Counts.Add(cell.Type)

		for _, d := range neighbours {
			n := P(p.X+d.X, p.Y+d.Y)
			if !l.InBounds(n) || l.Cell(n).Visited {
				continue
			}
			if Blocked(p, n, path) {
				continue
			}
			l.Cell(n).Visited = true
			stack = append(stack, n)
		}
	}
	return r
}
