package config

import (
	_ "embed"
)

//go:embed defaults/colorslide.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		LevelsDir: "",
		DBPath:    "~/.colorslide/records.db",
		TickRate:  4,
		Theme: ThemeConfig{
			CellWidth:   3,
			CompactOver: 8,
		},
		Input: InputConfig{
			SwipeThreshold: 2,
		},
	}
}
