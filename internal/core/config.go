package core

// RuntimeConfig contains the settings the front end needs to lay out a board.
type RuntimeConfig struct {
	ScreenW        int // Screen width in characters
	ScreenH        int // Screen height in characters
	TickRate       int // HUD refreshes per second
	CellWidth      int // Columns per board cell
	CompactOver    int // Boards larger than this use 2-column cells
	SwipeThreshold int // Cells a mouse drag must cover to count as a swipe
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:        80,
		ScreenH:        24,
		TickRate:       4,
		CellWidth:      3,
		CompactOver:    8,
		SwipeThreshold: 2,
	}
}

// CellWidthFor returns the board cell width for a level of the given size.
func (c RuntimeConfig) CellWidthFor(size int) int {
	w := c.CellWidth
	if w <= 0 {
		w = 3
	}
	if c.CompactOver > 0 && size > c.CompactOver && w > 2 {
		w = 2
	}
	return w
}
