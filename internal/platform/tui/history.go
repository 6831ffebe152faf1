package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/ratio/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show view list sidebar
	sidebarWidth       = 20  // Width of view list sidebar
	maxCompletions     = 100 // Max completions to load
)

// HistorySource provides the recorded play history.
type HistorySource interface {
	RecentCompletions(limit int) ([]storage.Completion, error)
	LevelStats() ([]storage.LevelStats, error)
}

// historyView selects which table the history screen shows.
type historyView int

const (
	viewRecent historyView = iota
	viewLevels
	historyViewCount
)

func (v historyView) title() string {
	if v == viewLevels {
		return "Per Level"
	}
	return "Recent"
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "switch view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the history screen.
type HistoryModel struct {
	source      HistorySource
	view        historyView
	completions []storage.Completion
	stats       []storage.LevelStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	theme       Theme
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewHistoryModel creates a history screen reading from source.
// A nil source shows an empty history.
func NewHistoryModel(source HistorySource, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		source:      source,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		theme:       GetTheme(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads both views from the source.
func (m *HistoryModel) load() {
	m.completions, m.stats, m.loadErr = nil, nil, nil
	if m.source == nil {
		return
	}
	completions, err := m.source.RecentCompletions(maxCompletions)
	if err != nil {
		m.loadErr = err
		return
	}
	stats, err := m.source.LevelStats()
	if err != nil {
		m.loadErr = err
		return
	}
	m.completions, m.stats = completions, stats
}

// columns returns the columns for the active view, fitted to width.
func (m *HistoryModel) columns() []table.Column {
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	if m.view == viewLevels {
		cols := []table.Column{
			{Title: "Level", Width: 10},
			{Title: "Tries", Width: 6},
			{Title: "Solved", Width: 7},
			{Title: "Best", Width: 6},
			{Title: "Last played", Width: 14},
		}
		if extra := tableWidth - 53; extra > 0 {
			cols[0].Width += min(extra, 10)
		}
		return cols
	}

	cols := []table.Column{
		{Title: "Level", Width: 10},
		{Title: "Result", Width: 8},
		{Title: "Regions", Width: 8},
		{Title: "Path", Width: 5},
		{Title: "When", Width: 14},
	}
	if extra := tableWidth - 55; extra > 0 {
		cols[0].Width += min(extra, 10)
	}
	return cols
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.theme.TableBorder).
		BorderBottom(true).
		Inherit(m.theme.TableHeader)
	s.Selected = m.theme.TableSelected.Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the active view.
func (m *HistoryModel) updateTableRows() {
	var rows []table.Row
	switch m.view {
	case viewLevels:
		rows = make([]table.Row, len(m.stats))
		for i, s := range m.stats {
			best := "-"
			if s.BestPathLen > 0 {
				best = fmt.Sprintf("%d", s.BestPathLen)
			}
			rows[i] = table.Row{
				s.LevelID,
				humanize.Comma(int64(s.Attempts)),
				humanize.Comma(int64(s.Solved)),
				best,
				humanize.Time(s.LastPlayed),
			}
		}
	default:
		rows = make([]table.Row, len(m.completions))
		for i, c := range m.completions {
			rows[i] = table.Row{
				c.LevelID,
				resultLabel(c.Solved),
				fmt.Sprintf("%d", c.Regions),
				fmt.Sprintf("%d", c.PathLen),
				humanize.Time(c.CreatedAt),
			}
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

func resultLabel(solved bool) string {
	if solved {
		return "solved"
	}
	return "missed"
}

// switchView moves to the next or previous view.
func (m *HistoryModel) switchView(delta int) {
	n := int(historyViewCount)
	m.view = historyView((int(m.view) + delta + n) % n)
	m.table = m.createTable()
	m.updateTableRows()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.switchView(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.switchView(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("HISTORY - %s", m.view.title())
	b.WriteString(centerText(m.theme.MenuTitle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render(m.summary()), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.HUDControls.Render(m.help.View(m.keys)))

	return b.String()
}

// summary returns a one-line total over all levels.
func (m HistoryModel) summary() string {
	attempts, solved := 0, 0
	for _, s := range m.stats {
		attempts += s.Attempts
		solved += s.Solved
	}
	return fmt.Sprintf("%s attempts, %s solved, %d levels played",
		humanize.Comma(int64(attempts)), humanize.Comma(int64(solved)), len(m.stats))
}

// renderWideLayout renders the table with a sidebar listing the views.
func (m HistoryModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.TableBorder).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Views\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")
	for v := range historyViewCount {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if v == m.view {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		sidebar.WriteString(style.Render(cursor + v.title()))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.TableBorder).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders view tabs above the table.
func (m HistoryModel) renderNarrowLayout() string {
	var b strings.Builder

	tabs := make([]string, 0, historyViewCount)
	for v := range historyViewCount {
		if v == m.view {
			tabs = append(tabs, m.theme.TableSelected.Padding(0, 1).Render(v.title()))
		} else {
			tabs = append(tabs, m.theme.MenuDescription.Render(" "+v.title()+" "))
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.TableBorder).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	if m.loadErr != nil {
		return m.theme.Error.Render("Could not read history:\n" + m.loadErr.Error())
	}
	if len(m.completions) == 0 && len(m.stats) == 0 {
		return m.theme.Empty.Render("No paths recorded yet.\nClose a path to see it here!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(source HistorySource, width, height int) (goBack bool, err error) {
	model := NewHistoryModel(source, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
