package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/ratio/internal/core"
)

// Theme contains the lipgloss styles used by the board, menu and history views.
type Theme struct {
	// Board palette, one style per cell role. Missing roles render unstyled.
	Palette map[core.Color]lipgloss.Style

	// Footer and help line
	HUDControls lipgloss.Style

	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	// History table styles
	TableBorder   lipgloss.Color
	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style
	Empty         lipgloss.Style
	Error         lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault:    lipgloss.NewStyle(),
			core.ColorTitle:      fg("6"),
			core.ColorText:       fg("7"),
			core.ColorMuted:      fg("245"),
			core.ColorSquare:     fg("4"),
			core.ColorTriangle:   fg("5"),
			core.ColorCircle:     fg("1"),
			core.ColorPath:       fg("11").Bold(true),
			core.ColorStart:      fg("10").Bold(true),
			core.ColorEnd:        fg("9").Bold(true),
			core.ColorHover:      fg("14").Bold(true),
			core.ColorHoverMuted: fg("245"),
			core.ColorGood:       fg("10"),
			core.ColorBad:        fg("9"),
		},

		HUDControls: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		TableBorder:   lipgloss.Color("240"),
		TableHeader:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		TableSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Empty:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	// Pieces stay apart by glyph; the path and markers by weight.
	plain := lipgloss.NewStyle()
	theme.Palette = map[core.Color]lipgloss.Style{
		core.ColorDefault:    plain,
		core.ColorTitle:      plain.Bold(true),
		core.ColorText:       plain,
		core.ColorMuted:      plain.Faint(true),
		core.ColorSquare:     plain,
		core.ColorTriangle:   plain,
		core.ColorCircle:     plain,
		core.ColorPath:       plain.Bold(true),
		core.ColorStart:      plain.Bold(true),
		core.ColorEnd:        plain.Bold(true),
		core.ColorHover:      plain.Reverse(true),
		core.ColorHoverMuted: plain.Faint(true),
		core.ColorGood:       plain.Bold(true),
		core.ColorBad:        plain.Underline(true),
	}
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Reverse(true)
	theme.TableHeader = lipgloss.NewStyle().Bold(true)
	theme.TableSelected = lipgloss.NewStyle().Reverse(true)
	theme.Error = lipgloss.NewStyle().Bold(true)
	return theme
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// Global theme variable (can be changed at runtime)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return theme
}
