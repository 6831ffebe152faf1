package core_test

import (
	"testing"

	"github.com/vovakirdan/ratio/internal/games/ratio/core"
)

// mustLevel builds a level from rows given top to bottom, like level files.
func mustLevel(t *testing.T, id string, rows []string, quota core.Counts, start, end core.Point) *core.Level {
	t.Helper()

	h := len(rows)
	w := len(rows[0])
	types := make([]core.CellType, w*h)
	for i, row := range rows {
		if len(row) != w {
			t.Fatalf("row %d has %d cells, want %d", i, len(row), w)
		}
		y := h - 1 - i
		for x, r := range row {
			ct, ok := core.ParseCellType(int(r - '0'))
			if !ok {
				t.Fatalf("bad cell %q at row %d", r, i)
			}
			types[y*w+x] = ct
		}
	}

	lvl, err := core.NewLevel(id, w, h, types, quota, start, end)
	if err != nil {
		t.Fatalf("NewLevel failed: %v", err)
	}
	return lvl
}

func emptyLevel(t *testing.T, w, h int, start, end core.Point) *core.Level {
	t.Helper()
	rows := make([]string, h)
	for i := range rows {
		b := make([]byte, w)
		for x := range b {
			b[x] = '0'
		}
		rows[i] = string(b)
	}
	return mustLevel(t, "empty", rows, core.Counts{}, start, end)
}
