package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ratio/internal/core"
)

// KeyMapper holds the key bindings for the board and the level picker.
// On the board only quit and restart are bound; every other key clears the
// path being drawn.
type KeyMapper struct {
	Quit    key.Binding
	Restart key.Binding

	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Back    key.Binding
	History key.Binding
}

// NewKeyMapper returns the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),

		Up:      key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/j", "down")),
		Select:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		History: key.NewBinding(key.WithKeys("tab", "h"), key.WithHelp("tab", "history")),
	}
}

// MapKey translates a board key to an action and reports whether it quits.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.Restart):
		return core.ActionRestart, false
	}
	return core.ActionCancel, false
}

// MapKeyToFrame records the key's action in frame and reports whether it quits.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

// MenuAction is a level picker action.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionHistory
)

// MapKeyToMenuAction translates a key to a level picker action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, km.Quit):
		return MenuActionQuit
	case key.Matches(msg, km.Up):
		return MenuActionUp
	case key.Matches(msg, km.Down):
		return MenuActionDown
	case key.Matches(msg, km.Select):
		return MenuActionSelect
	case key.Matches(msg, km.Back):
		return MenuActionBack
	case key.Matches(msg, km.History):
		return MenuActionHistory
	}
	return MenuActionNone
}

// ShortHelp lists the picker bindings for the footer.
func (km *KeyMapper) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Select, km.History, km.Quit}
}
