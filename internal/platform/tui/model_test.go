package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ratio/internal/core"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	frames  []core.InputFrame
	resized [2]int
	resets  int
	state   core.GameState
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake board")
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestModelMousePressReachesGame(t *testing.T) {
	game := &fakeGame{state: core.GameState{Level: 1, Levels: 2}}
	m := NewModel(game, core.DefaultConfig())

	m, _ = update(t, m, tea.MouseMsg{X: 4, Y: 9, Action: tea.MouseActionMotion})
	m, _ = update(t, m, tea.MouseMsg{X: 5, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	if len(game.frames) != 1 {
		t.Fatalf("game stepped %d times, want 1", len(game.frames))
	}
	f := game.frames[0]
	if !f.Pressed || f.Pointer != (core.Pointer{X: 5, Y: 10, Valid: true}) {
		t.Errorf("frame = %+v, want press at (5,10)", f)
	}

	// Next frame keeps the pointer but not the press
	update(t, m, TickMsg{})
	f = game.frames[1]
	if f.Pressed {
		t.Error("press should be edge-triggered")
	}
	if !f.Pointer.Valid || f.Pointer.X != 5 {
		t.Errorf("pointer should persist, got %+v", f.Pointer)
	}
}

func TestModelPressKeepsPositionAfterMotion(t *testing.T) {
	game := &fakeGame{state: core.GameState{Level: 1, Levels: 2}}
	m := NewModel(game, core.DefaultConfig())

	m, _ = update(t, m, tea.MouseMsg{X: 5, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 5, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 12, Y: 10, Action: tea.MouseActionMotion})
	update(t, m, TickMsg{})

	f := game.frames[0]
	if !f.Pressed || f.PressedAt != (core.Pointer{X: 5, Y: 10, Valid: true}) {
		t.Errorf("frame = %+v, want press at (5,10)", f)
	}
	if f.Pointer.X != 12 {
		t.Errorf("pointer = %+v, want the latest motion", f.Pointer)
	}
}

func TestModelRightClickCancels(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, core.DefaultConfig())

	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	update(t, m, TickMsg{})

	if !game.frames[0].Has(core.ActionCancel) {
		t.Error("right click should cancel")
	}
	if game.frames[0].Pressed {
		t.Error("right click should not press")
	}
}

func TestModelKeys(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, core.DefaultConfig())

	m, _ = update(t, m, runeKey("r"))
	update(t, m, TickMsg{})
	if !game.frames[0].Has(core.ActionRestart) {
		t.Error("r should restart")
	}

	_, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModelResize(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, core.DefaultConfig())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if game.resized != [2]int{100, 40} {
		t.Errorf("game resized to %v", game.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelGameOverWaitsForKey(t *testing.T) {
	game := &fakeGame{state: core.GameState{Level: 2, Levels: 2, GameOver: true, Finished: true}}
	m := NewModel(game, core.DefaultConfig())

	m, cmd := update(t, m, TickMsg{})
	if cmd != nil {
		t.Error("ticking should stop once the game is over")
	}
	if !m.State().Finished {
		t.Error("model should expose the final state")
	}
	if view := m.View(); !containsText(view, "fake board") {
		t.Errorf("final frame should stay on screen, got %q", view)
	}

	// Mouse input does not leave the final screen.
	m, cmd = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if cmd != nil || m.quitting {
		t.Error("mouse should not quit the final screen")
	}

	m, cmd = update(t, m, runeKey("x"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("any key should quit after game over")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelGameOverRestart(t *testing.T) {
	game := &fakeGame{state: core.GameState{Level: 2, Levels: 2, GameOver: true, Finished: true}}
	m := NewModel(game, core.DefaultConfig())

	m, _ = update(t, m, TickMsg{})
	game.state = core.GameState{Level: 1, Levels: 2}

	m, cmd := update(t, m, runeKey("r"))
	if cmd == nil {
		t.Fatal("restart should resume ticking")
	}
	if m.quitting {
		t.Fatal("restart should not quit")
	}
	m, _ = update(t, m, TickMsg{})
	last := game.frames[len(game.frames)-1]
	if !last.Has(core.ActionRestart) {
		t.Errorf("restart frame = %+v", last)
	}
	if m.State().GameOver {
		t.Error("state should follow the restarted game")
	}
}

func TestModelView(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 20, ScreenH: 3, TickRate: 30})
	m.Init()

	if game.resets != 1 {
		t.Errorf("Init should reset the game once, got %d", game.resets)
	}
	if view := m.View(); !containsText(view, "fake board") {
		t.Errorf("view missing board text: %q", view)
	}
}
