package core

// Color represents a foreground or background color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors. ColorDefault leaves the terminal's own color in place.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorGreen
	ColorOrange
	ColorPurple
	ColorBlue
	ColorPink
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorBlack
)
