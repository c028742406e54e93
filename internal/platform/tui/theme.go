package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorslide/internal/core"
	"github.com/vovakirdan/colorslide/internal/puzzle"
)

// palette maps core colors to ANSI 256-color codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:      lipgloss.Color("196"),
	core.ColorYellow:   lipgloss.Color("226"),
	core.ColorGreen:    lipgloss.Color("46"),
	core.ColorOrange:   lipgloss.Color("208"),
	core.ColorPurple:   lipgloss.Color("135"),
	core.ColorBlue:     lipgloss.Color("33"),
	core.ColorPink:     lipgloss.Color("205"),
	core.ColorWhite:    lipgloss.Color("15"),
	core.ColorGray:     lipgloss.Color("245"),
	core.ColorDarkGray: lipgloss.Color("238"),
	core.ColorBlack:    lipgloss.Color("16"),
}

// screenColor returns the screen color used for a puzzle color.
func screenColor(c puzzle.Color) core.Color {
	switch c {
	case puzzle.ColorRed:
		return core.ColorRed
	case puzzle.ColorYellow:
		return core.ColorYellow
	case puzzle.ColorGreen:
		return core.ColorGreen
	case puzzle.ColorOrange:
		return core.ColorOrange
	case puzzle.ColorPurple:
		return core.ColorPurple
	case puzzle.ColorBlue:
		return core.ColorBlue
	case puzzle.ColorPink:
		return core.ColorPink
	}
	return core.ColorDefault
}

// Theme contains the lipgloss styles of the text around the board.
type Theme struct {
	// HUD styles
	HUDTitle     lipgloss.Style
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDSolved    lipgloss.Style
	HUDPaused    lipgloss.Style

	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuPack        lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	// Messages
	Error lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDTitle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		HUDLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		HUDSolved:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
		HUDPaused:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),

		MenuTitle:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1),
		MenuPack:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(2),
		MenuItemActive:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).PaddingLeft(1).PaddingRight(1),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
