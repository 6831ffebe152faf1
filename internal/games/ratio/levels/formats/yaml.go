package formats

import (
	"fmt"

	"github.com/vovakirdan/ratio/internal/games/ratio/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID    string      `yaml:"id"`
	Name  string      `yaml:"name"`
	Size  YAMLSize    `yaml:"size"`
	Quota core.Counts `yaml:"quota"`
	Start YAMLPoint   `yaml:"start"`
	End   YAMLPoint   `yaml:"end"`
	Rows  []string    `yaml:"rows"` // Top row first, same tokens as .map rows
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLPoint represents a grid point.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	l := Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Width:  yl.Size.W,
		Height: yl.Size.H,
		Quota:  yl.Quota,
		Start:  core.P(yl.Start.X, yl.Start.Y),
		End:    core.P(yl.End.X, yl.End.Y),
	}
	if l.Width <= 0 || l.Height <= 0 {
		return Level{}, &ParseError{Msg: fmt.Sprintf("size %dx%d must be positive", l.Width, l.Height)}
	}
	if l.Quota.Square < 0 || l.Quota.Triangle < 0 || l.Quota.Circle < 0 {
		return Level{}, &ParseError{Msg: fmt.Sprintf("negative quota %+v", l.Quota)}
	}
	if err := l.checkAnchors(0); err != nil {
		return Level{}, err
	}
	if len(yl.Rows) != l.Height {
		return Level{}, &ParseError{Msg: fmt.Sprintf("found %d rows, want %d", len(yl.Rows), l.Height)}
	}

	l.Cells = make([]core.CellType, l.Width*l.Height)
	for i, row := range yl.Rows {
		codes, err := ints(row, l.Width, 0)
		if err != nil {
			return Level{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		y := l.Height - 1 - i
		for x, code := range codes {
			ct, ok := core.ParseCellType(code)
			if !ok {
				return Level{}, &ParseError{Msg: fmt.Sprintf("row %d: unknown cell type %d at column %d", i+1, code, x+1)}
			}
			l.Cells[y*l.Width+x] = ct
		}
	}
	return l, nil
}
