package core

import (
	"strings"
	"testing"
)

func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(7, 3)
	if s.Width() != 7 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 7x3", s.Width(), s.Height())
	}
	want := strings.Repeat(" ", 7)
	for y, row := range rows(s) {
		if row != want {
			t.Errorf("row %d = %q, want blanks", y, row)
		}
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(4, 3)
	tests := []struct {
		x, y int
		in   bool
	}{
		{0, 0, true},
		{3, 2, true},
		{4, 0, false},
		{0, 3, false},
		{-1, 1, false},
		{1, -1, false},
	}
	for _, tt := range tests {
		if got := s.InBounds(tt.x, tt.y); got != tt.in {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.in)
		}
		// Writes off the buffer are dropped and reads come back blank.
		s.SetWithColor(tt.x, tt.y, '#', ColorPath)
		c := s.GetCell(tt.x, tt.y)
		if tt.in && (c.Rune != '#' || c.Color != ColorPath) {
			t.Errorf("GetCell(%d, %d) = %+v after set", tt.x, tt.y, c)
		}
		if !tt.in && c != blank {
			t.Errorf("GetCell(%d, %d) = %+v, want blank", tt.x, tt.y, c)
		}
	}
}

func TestScreenClearResetsRoles(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextWithColor(0, 0, "▲●■", ColorSquare)
	s.Clear()
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("GetCell(%d, %d) = %+v after Clear", x, y, c)
			}
		}
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(9, 3)
	s.DrawText(6, 0, "clipped")
	s.DrawTextWithColor(1, 1, "▲x2", ColorTriangle)
	s.DrawTextCentered(2, "mid")

	want := []string{
		"      cli",
		" ▲x2     ",
		"   mid   ",
	}
	for y, row := range rows(s) {
		if row != want[y] {
			t.Errorf("row %d = %q, want %q", y, row, want[y])
		}
	}
	// Multi-byte runes occupy one cell each.
	if c := s.GetCell(3, 1); c.Rune != '2' || c.Color != ColorTriangle {
		t.Errorf("GetCell(3, 1) = %+v", c)
	}
	if c := s.GetCell(4, 2); c.Color != ColorDefault {
		t.Errorf("centered text role = %v, want default", c.Color)
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawHLine(1, 0, 4, '━', ColorPath)
	s.DrawVLine(5, 0, 9, '┃', ColorMuted)

	want := []string{
		" ━━━━┃",
		"     ┃",
		"     ┃",
		"     ┃",
	}
	for y, row := range rows(s) {
		if row != want[y] {
			t.Errorf("row %d = %q, want %q", y, row, want[y])
		}
	}
	if got := s.GetCell(5, 3).Color; got != ColorMuted {
		t.Errorf("vline role = %v, want muted", got)
	}
}

func TestScreenRectAndBox(t *testing.T) {
	s := NewScreen(7, 5)
	r := NewRect(1, 1, 5, 3)
	s.DrawRect(NewRect(0, 0, 7, 5), '.')
	s.DrawRect(r, ' ')
	s.DrawBox(r, ColorTitle)

	want := []string{
		".......",
		".┌───┐.",
		".│   │.",
		".└───┘.",
		".......",
	}
	for y, row := range rows(s) {
		if row != want[y] {
			t.Errorf("row %d = %q, want %q", y, row, want[y])
		}
	}
	for _, p := range [][2]int{{1, 1}, {5, 1}, {3, 3}, {5, 2}} {
		if got := s.GetCell(p[0], p[1]).Color; got != ColorTitle {
			t.Errorf("box cell %v role = %v, want title", p, got)
		}
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawTextWithColor(0, 0, "ratio", ColorTitle)
	s.DrawText(0, 2, "gone")

	s.Resize(3, 2)
	if got := s.String(); got != "rat\n   " {
		t.Errorf("shrunk = %q", got)
	}

	s.Resize(5, 3)
	want := "rat  \n     \n     "
	if got := s.String(); got != want {
		t.Errorf("grown = %q, want %q", got, want)
	}
	if c := s.GetCell(2, 0); c.Color != ColorTitle {
		t.Errorf("resize lost role: %+v", c)
	}
}

func TestColorNames(t *testing.T) {
	if got := len(Colors()); got != int(colorCount) {
		t.Fatalf("Colors() has %d roles, want %d", got, colorCount)
	}
	seen := map[string]bool{}
	for _, c := range Colors() {
		name := c.String()
		if name == "" || name == "unknown" || seen[name] {
			t.Errorf("role %d has bad name %q", c, name)
		}
		seen[name] = true
	}
	if got := Color(200).String(); got != "unknown" {
		t.Errorf("Color(200).String() = %q", got)
	}
}
