// Package config provides YAML-based configuration loading for Ratio.
package config

import (
	"fmt"

	"github.com/vovakirdan/ratio/internal/games/ratio/core"
)

// RatioConfig contains all configuration for the game.
type RatioConfig struct {
	Layout   LayoutConfig `yaml:"layout"`
	Path     PathConfig   `yaml:"path"`
	Rules    RulesConfig  `yaml:"rules"`
	Levels   LevelsConfig `yaml:"levels"`
	TickRate int          `yaml:"tick_rate"` // Frames per second
}

// LayoutConfig defines the terminal geometry of the board.
type LayoutConfig struct {
	CellWidth  int     `yaml:"cell_width"`  // Columns per cell
	CellHeight int     `yaml:"cell_height"` // Lines per cell
	MarginX    int     `yaml:"margin_x"`    // Gutter columns between cells
	MarginY    int     `yaml:"margin_y"`    // Gutter lines between cells
	SnapRadius float64 `yaml:"snap_radius"` // Pointer snap distance in terminal cells
}

// PathConfig defines path limits.
type PathConfig struct {
	Capacity int `yaml:"capacity"`
}

// RulesConfig selects how closed paths are judged.
type RulesConfig struct {
	Policy          string `yaml:"policy"`           // advance, exact, ratio or within
	RequireSolution bool   `yaml:"require_solution"` // Stay on a level until it is solved
}

// LevelsConfig locates level files.
type LevelsConfig struct {
	Dir string `yaml:"dir"` // Empty means the built-in level set
}

// Validate checks the configuration for values the game cannot run with.
func (c RatioConfig) Validate() error {
	if c.Layout.CellWidth <= 0 || c.Layout.CellHeight <= 0 {
		return fmt.Errorf("config: cell size %dx%d must be positive", c.Layout.CellWidth, c.Layout.CellHeight)
	}
	if c.Layout.MarginX <= 0 || c.Layout.MarginY <= 0 {
		return fmt.Errorf("config: margins %dx%d must be positive", c.Layout.MarginX, c.Layout.MarginY)
	}
	if c.Layout.SnapRadius <= 0 {
		return fmt.Errorf("config: snap_radius %g must be positive", c.Layout.SnapRadius)
	}
	if c.Path.Capacity <= 1 {
		return fmt.Errorf("config: path capacity %d must be at least 2", c.Path.Capacity)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate %d must be positive", c.TickRate)
	}
	if _, err := core.PolicyByName(c.Rules.Policy); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Policy returns the configured completion policy.
func (c RatioConfig) Policy() (core.Policy, error) {
	return core.PolicyByName(c.Rules.Policy)
}
