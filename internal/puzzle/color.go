package puzzle

import "strings"

// Color identifies a token and the goal cells it belongs on.
type Color uint8

const (
	ColorRed Color = iota
	ColorYellow
	ColorGreen
	ColorOrange
	ColorPurple
	ColorBlue
	ColorPink
	ColorCount // Sentinel value for iteration
)

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorOrange:
		return "orange"
	case ColorPurple:
		return "purple"
	case ColorBlue:
		return "blue"
	case ColorPink:
		return "pink"
	default:
		return "unknown"
	}
}

// Symbol returns the goal symbol used in level files ('A' for red through 'G' for pink).
func (c Color) Symbol() rune {
	if !c.Valid() {
		return '?'
	}
	return 'A' + rune(c)
}

// Valid reports whether c is part of the palette.
func (c Color) Valid() bool {
	return c < ColorCount
}

// ParseColor converts a color name to a Color.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return ColorRed, true
	case "yellow":
		return ColorYellow, true
	case "green":
		return ColorGreen, true
	case "orange":
		return ColorOrange, true
	case "purple":
		return ColorPurple, true
	case "blue":
		return ColorBlue, true
	case "pink":
		return ColorPink, true
	default:
		return ColorRed, false
	}
}

// ColorForSymbol maps a goal symbol back to its color.
func ColorForSymbol(r rune) (Color, bool) {
	if r < 'A' || r >= 'A'+rune(ColorCount) {
		return ColorRed, false
	}
	return Color(r - 'A'), true
}

// AllColors returns the palette in symbol order.
func AllColors() []Color {
	colors := make([]Color, 0, ColorCount)
	for c := Color(0); c < ColorCount; c++ {
		colors = append(colors, c)
	}
	return colors
}
