package formats

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/vovakirdan/ratio/internal/games/ratio/core"
)

// ParseMap parses the comma separated .map format:
//
//	w,h
//	square,triangle,circle
//	startX,startY,endX,endY
//	h rows of w "<type>," tokens, top row first
//
// Cell types are 0 (empty), 1 (square), 2 (triangle) and 3 (circle).
// The first file row is the highest grid row.
func ParseMap(data []byte) (Level, error) {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return Level{}, &ParseError{Msg: err.Error()}
	}
	// Trailing blank lines carry no rows.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 3 {
		return Level{}, parseErrorf(len(lines)+1, "missing header, want size, quota and anchor lines")
	}

	size, err := ints(lines[0], 2, 1)
	if err != nil {
		return Level{}, err
	}
	quota, err := ints(lines[1], 3, 2)
	if err != nil {
		return Level{}, err
	}
	anchors, err := ints(lines[2], 4, 3)
	if err != nil {
		return Level{}, err
	}

	l := Level{
		Width:  size[0],
		Height: size[1],
		Quota:  core.Counts{Square: quota[0], Triangle: quota[1], Circle: quota[2]},
		Start:  core.P(anchors[0], anchors[1]),
		End:    core.P(anchors[2], anchors[3]),
	}
	if l.Width <= 0 || l.Height <= 0 {
		return Level{}, parseErrorf(1, "size %dx%d must be positive", l.Width, l.Height)
	}
	for _, q := range quota {
		if q < 0 {
			return Level{}, parseErrorf(2, "negative quota %d", q)
		}
	}
	if err := l.checkAnchors(3); err != nil {
		return Level{}, err
	}

	rows := lines[3:]
	if len(rows) != l.Height {
		return Level{}, parseErrorf(4+len(rows), "found %d rows, want %d", len(rows), l.Height)
	}

	l.Cells = make([]core.CellType, l.Width*l.Height)
	for i, row := range rows {
		line := 4 + i
		codes, err := ints(row, l.Width, line)
		if err != nil {
			return Level{}, err
		}
		y := l.Height - 1 - i
		for x, code := range codes {
			ct, ok := core.ParseCellType(code)
			if !ok {
				return Level{}, parseErrorf(line, "unknown cell type %d at column %d", code, x+1)
			}
			l.Cells[y*l.Width+x] = ct
		}
	}
	return l, nil
}

// ints parses exactly n comma separated integers. A single trailing comma is allowed.
func ints(s string, n, line int) ([]int, error) {
	fields := strings.Split(s, ",")
	if len(fields) > 0 && strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}
	if len(fields) != n {
		return nil, parseErrorf(line, "found %d values, want %d", len(fields), n)
	}

	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, parseErrorf(line, "bad number %q", strings.TrimSpace(f))
		}
		out[i] = v
	}
	return out, nil
}
