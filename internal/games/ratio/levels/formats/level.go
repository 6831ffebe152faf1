// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/ratio/internal/games/ratio/core"
)

// Level is a parsed level definition, not yet validated by the engine.
// Cells are row-major with row 0 at the bottom.
type Level struct {
	ID     string
	Name   string
	Width  int
	Height int
	Cells  []core.CellType
	Quota  core.Counts
	Start  core.Point
	End    core.Point
}

// ParseError reports a malformed level file.
type ParseError struct {
	Line int // 1-based; 0 when the error is not tied to a line
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

func parseErrorf(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// checkAnchors verifies the start and end points against the grid size.
func (l *Level) checkAnchors(line int) error {
	inside := func(p core.Point) bool {
		return p.X >= 0 && p.X < l.Width && p.Y >= 0 && p.Y < l.Height
	}
	if !inside(l.Start) {
		return parseErrorf(line, "start %s outside %dx%d grid", l.Start, l.Width, l.Height)
	}
	if !inside(l.End) {
		return parseErrorf(line, "end %s outside %dx%d grid", l.End, l.Width, l.Height)
	}
	return nil
}

// ToLevel builds the engine level.
func (l *Level) ToLevel() (*core.Level, error) {
	lvl, err := core.NewLevel(l.ID, l.Width, l.Height, l.Cells, l.Quota, l.Start, l.End)
	if err != nil {
		return nil, err
	}
	if l.Name != "" {
		lvl.Name = l.Name
	}
	return lvl, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".map", ".yaml", ".yml"}
}

// Parse routes data to the parser for ext.
func Parse(data []byte, ext string) (Level, error) {
	switch ext {
	case ".map":
		return ParseMap(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
