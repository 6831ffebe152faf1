package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/ratio/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string using the
// current theme's palette.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, GetTheme().Palette)
}

// renderScreen styles runs of same-role cells so each run costs one
// escape sequence.
func renderScreen(s *core.Screen, palette map[core.Color]lipgloss.Style) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			role := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != role {
					break
				}
				run.WriteRune(cell.Rune)
			}
			if style, ok := palette[role]; ok {
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}
