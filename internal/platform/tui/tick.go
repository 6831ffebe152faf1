// Package tui provides the Bubble Tea integration for Ratio.
// It handles the terminal UI loop, input mapping, menus and the history view.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives Game.Step. Ratio only advances on input, so ticks exist to
// apply the buffered pointer frame and to notice game over.
type TickMsg time.Time

// tickInterval converts a rate in ticks per second to a period.
// Rates below one fall back to one tick per second.
func tickInterval(rate int) time.Duration {
	if rate < 1 {
		rate = 1
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
