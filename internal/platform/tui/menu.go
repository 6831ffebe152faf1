package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ratio/internal/core"
)

// MenuModel is the level picker shown before play.
// The first entry starts from the beginning; entry i starts from level i.
type MenuModel struct {
	cursor       int
	width        int
	height       int
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	levelNames   []string
	selected     int
	choosing     bool
	quitting     bool
	openHistory  bool
	scrollOffset int
	theme        Theme
}

// NewMenuModel creates a level picker over the given level names.
func NewMenuModel(levelNames []string, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		levelNames: levelNames,
		choosing:   true,
		theme:      GetTheme(),
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.levelNames) {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		if len(m.levelNames) == 0 {
			return m, nil
		}
		m.choosing = false
		m.selected = m.cursor
		return m, tea.Quit
	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit
	}

	return m, nil
}

// visibleItems is the number of level rows that fit between header and footer.
func (m MenuModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *MenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level selection.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("R A T I O"), m.width))
	b.WriteString("\n\n")

	subtitle := "Draw a path from O to ■ and split the board evenly"
	b.WriteString(centerText(m.theme.MenuDescription.Render(subtitle), m.width))
	b.WriteString("\n\n")

	if len(m.levelNames) == 0 {
		b.WriteString(centerText(m.theme.MenuItemNormal.Render("No levels found"), m.width))
		b.WriteString("\n")
	}

	visible := m.visibleItems()
	if m.scrollOffset == 0 && len(m.levelNames) > 0 {
		b.WriteString(m.item(0, "Start from Beginning"))
		visible--
	}

	// Row r of the list is level r, cursor index r
	first := max(m.scrollOffset, 1)
	last := min(first+visible, len(m.levelNames)+1)
	for r := first; r < last; r++ {
		b.WriteString(m.item(r, fmt.Sprintf("%2d. %s", r, m.levelNames[r-1])))
	}

	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if last <= len(m.levelNames) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	h := help.New()
	h.Styles.ShortKey = m.theme.HUDControls
	h.Styles.ShortDesc = m.theme.HUDControls
	b.WriteString(centerText(h.ShortHelpView(m.keyMapper.ShortHelp()), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) item(idx int, label string) string {
	cursor := "  "
	style := m.theme.MenuItemNormal
	if idx == m.cursor {
		cursor = "> "
		style = m.theme.MenuItemActive
	}
	return centerText(style.Render(cursor+label), m.width) + "\n"
}

// Selected returns the chosen start level (1-indexed) and whether a choice
// was made. Zero means start from the beginning.
func (m MenuModel) Selected() (int, bool) {
	if m.choosing {
		return 0, false
	}
	return m.selected, true
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the history view.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
// Width is measured in terminal cells so styled text centers correctly.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Level        int // 0 = start from beginning, 1-N = specific level
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the level picker and returns the selection result.
func RunMenu(levelNames []string, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(levelNames, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	if m.WantsHistory() {
		result.WantsHistory = true
		return result, nil
	}

	level, chosen := m.Selected()
	if m.IsQuitting() || !chosen {
		result.Quit = true
		return result, nil
	}
	result.Level = level
	return result, nil
}
