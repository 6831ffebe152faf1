package core

import "fmt"

// Level is a fully formed puzzle board.
// Cells are stored in row-major order: index = y*Width + x.
// Only the scratch fields of each cell change after construction.
type Level struct {
	ID       string
	Name     string
	FilePath string

	Width  int
	Height int
	Cells  []Cell

	Quota Counts
	Start Point
	End   Point
}

// NewLevel builds a level from a row-major slice of cell types and checks its invariants.
// No partially valid level is ever returned.
func NewLevel(id string, w, h int, types []CellType, quota Counts, start, end Point) (*Level, error) {
	l := &Level{
		ID:     id,
		Name:   id,
		Width:  w,
		Height: h,
		Quota:  quota,
		Start:  start,
		End:    end,
	}
	if len(types) != w*h {
		return nil, ValidationError{
			Code:    "CELL_COUNT",
			Message: fmt.Sprintf("level %s: %d cells for a %dx%d grid", id, len(types), w, h),
		}
	}
	l.Cells = make([]Cell, len(types))
	for i, t := range types {
		l.Cells[i] = NewCell(t)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate checks the level invariants.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return ValidationError{
			Code:    "BAD_SIZE",
			Message: fmt.Sprintf("level %s: size %dx%d", l.ID, l.Width, l.Height),
		}
	}
	if len(l.Cells) != l.Width*l.Height {
		return ValidationError{
			Code:    "CELL_COUNT",
			Message: fmt.Sprintf("level %s: %d cells for a %dx%d grid", l.ID, len(l.Cells), l.Width, l.Height),
		}
	}
	if !l.InBounds(l.Start) {
		return ValidationError{
			Code:    "START_OUT_OF_RANGE",
			Message: fmt.Sprintf("level %s: start %s outside %dx%d grid", l.ID, l.Start, l.Width, l.Height),
		}
	}
	if !l.InBounds(l.End) {
		return ValidationError{
			Code:    "END_OUT_OF_RANGE",
			Message: fmt.Sprintf("level %s: end %s outside %dx%d grid", l.ID, l.End, l.Width, l.Height),
		}
	}
	if l.Start.Equal(l.End) {
		return ValidationError{
			Code:    "START_IS_END",
			Message: fmt.Sprintf("level %s: start and end are both %s", l.ID, l.Start),
		}
	}
	return nil
}

// InBounds returns true if the point is within the grid boundaries.
func (l *Level) InBounds(p Point) bool {
	return p.X >= 0 && p.X < l.Width && p.Y >= 0 && p.Y < l.Height
}

// At returns the cell at (x, y). Callers must pass in-bounds coordinates.
func (l *Level) At(x, y int) *Cell {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, l.Width, l.Height))
	}
	return &l.Cells[y*l.Width+x]
}

// Cell returns the cell at p. Callers must pass an in-bounds point.
func (l *Level) Cell(p Point) *Cell {
	return l.At(p.X, p.Y)
}

// CountByType returns the number of pieces of each type on the whole board.
func (l *Level) CountByType() Counts {
	var c Counts
	for _, cell := range l.Cells {
		c.Add(cell.Type)
	}
	return c
}

// resetScratch clears the per-cell region bookkeeping.
func (l *Level) resetScratch() {
	for i := range l.Cells {
		l.Cells[i].Visited = false
		l.Cells[i].RegionID = -1
	}
}

// ValidationError contains details about a level invariant failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
