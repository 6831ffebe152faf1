package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/ratio/internal/core"
)

func containsText(s, sub string) bool {
	return strings.Contains(ansi.Strip(s), sub)
}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuSelectLevel(t *testing.T) {
	m := NewMenuModel([]string{"L1", "L2", "L3"}, core.DefaultConfig())

	if _, ok := m.Selected(); ok {
		t.Fatal("nothing should be selected yet")
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	level, ok := m.Selected()
	if !ok || level != 2 {
		t.Errorf("Selected() = %d, %v; want 2, true", level, ok)
	}
}

func TestMenuStartFromBeginning(t *testing.T) {
	m := NewMenuModel([]string{"L1"}, core.DefaultConfig())

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if level, ok := m.Selected(); !ok || level != 0 {
		t.Errorf("Selected() = %d, %v; want 0, true", level, ok)
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel([]string{"L1", "L2"}, core.DefaultConfig())

	for range 5 {
		m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if level, _ := m.Selected(); level != 2 {
		t.Errorf("cursor should stop at the last level, got %d", level)
	}
}

func TestMenuHistoryAndQuit(t *testing.T) {
	m := NewMenuModel([]string{"L1"}, core.DefaultConfig())
	if h := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab}); !h.WantsHistory() {
		t.Error("tab should open history")
	}
	if q := menuUpdate(t, m, runeKey("q")); !q.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMenuEmpty(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if _, ok := m.Selected(); ok {
		t.Error("empty menu should not select")
	}
	if !containsText(m.View(), "No levels found") {
		t.Error("empty menu should say so")
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel([]string{"First", "Second"}, core.DefaultConfig())
	view := m.View()

	for _, want := range []string{"R A T I O", "Start from Beginning", " 1. First", " 2. Second"} {
		if !containsText(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMenuScroll(t *testing.T) {
	names := make([]string, 30)
	for i := range names {
		names[i] = "level"
	}
	m := NewMenuModel(names, core.RuntimeConfig{ScreenW: 80, ScreenH: 15, TickRate: 30})

	for range 20 {
		m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	view := m.View()
	if !containsText(view, "20. level") {
		t.Error("cursor row should be visible after scrolling")
	}
	if containsText(view, "Start from Beginning") {
		t.Error("first entry should be scrolled out")
	}
	if !containsText(view, "more above") || !containsText(view, "more below") {
		t.Error("scroll indicators missing")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("wide text should be unchanged, got %q", got)
	}
}
