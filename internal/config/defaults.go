package config

import (
	_ "embed"

	"github.com/vovakirdan/ratio/internal/games/ratio/core"
)

//go:embed defaults/ratio.yaml
var defaultRatioYAML []byte

// DefaultRatioConfig returns the default configuration.
func DefaultRatioConfig() RatioConfig {
	return RatioConfig{
		Layout: LayoutConfig{
			CellWidth:  7,
			CellHeight: 3,
			MarginX:    2,
			MarginY:    1,
			SnapRadius: core.DefaultSnapRadius,
		},
		Path: PathConfig{
			Capacity: core.DefaultPathCapacity,
		},
		Rules: RulesConfig{
			Policy:          core.DefaultPolicy,
			RequireSolution: false,
		},
		TickRate: 30,
	}
}
