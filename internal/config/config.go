// Package config provides YAML-based configuration loading for colorslide.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Config contains all user-tunable settings.
type Config struct {
	LevelsDir string      `yaml:"levels_dir"`
	DBPath    string      `yaml:"db_path"`
	TickRate  int         `yaml:"tick_rate"` // HUD refreshes per second
	Theme     ThemeConfig `yaml:"theme"`
	Input     InputConfig `yaml:"input"`
}

// ThemeConfig controls board sizing in the terminal.
type ThemeConfig struct {
	CellWidth   int `yaml:"cell_width"`   // Columns per board cell
	CompactOver int `yaml:"compact_over"` // Boards larger than this use narrow cells
}

// InputConfig controls pointer input.
type InputConfig struct {
	SwipeThreshold int `yaml:"swipe_threshold"` // Cells a drag must cover to count as a swipe
}

// normalize fills zero values with defaults and expands "~" in paths.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.Theme.CellWidth <= 0 {
		c.Theme.CellWidth = def.Theme.CellWidth
	}
	if c.Theme.CompactOver < 0 {
		c.Theme.CompactOver = def.Theme.CompactOver
	}
	if c.Input.SwipeThreshold <= 0 {
		c.Input.SwipeThreshold = def.Input.SwipeThreshold
	}
	c.DBPath = ExpandHome(c.DBPath)
	c.LevelsDir = ExpandHome(c.LevelsDir)
}

// ExpandHome replaces a leading "~" with the user's home directory.
// Paths are returned unchanged when home is unavailable.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
