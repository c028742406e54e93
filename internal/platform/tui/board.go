package tui

import (
	"github.com/vovakirdan/colorslide/internal/core"
	"github.com/vovakirdan/colorslide/internal/puzzle"
)

// Board glyphs.
const (
	glyphToken = '●'
	glyphEmpty = '·'
	glyphGoal  = '░'
	glyphWall  = '█'
)

// BoardLayout places a square board on the terminal. The board is drawn
// with a one-character border; Origin is the top-left corner of that border.
type BoardLayout struct {
	Size   int // Cells per side
	CellW  int // Columns per cell
	Origin core.Rect
}

// NewBoardLayout lays out a size×size board with its border at (x, y).
func NewBoardLayout(size, cellW, x, y int) BoardLayout {
	return BoardLayout{
		Size:   size,
		CellW:  cellW,
		Origin: core.NewRect(x, y, size*cellW+2, size+2),
	}
}

// Width returns the board width in columns, border included.
func (l BoardLayout) Width() int {
	return l.Origin.W
}

// Height returns the board height in rows, border included.
func (l BoardLayout) Height() int {
	return l.Origin.H
}

// Contains reports whether the terminal position (x, y) is on the board,
// border included.
func (l BoardLayout) Contains(x, y int) bool {
	return l.Origin.Contains(x, y)
}

// CellAt maps a terminal position to a board coordinate.
func (l BoardLayout) CellAt(x, y int) (puzzle.Coord, bool) {
	cx, cy := x-l.Origin.X-1, y-l.Origin.Y-1
	if cx < 0 || cy < 0 || cx >= l.Size*l.CellW || cy >= l.Size {
		return puzzle.Coord{}, false
	}
	return puzzle.At(cy, cx/l.CellW), true
}

// DrawBoard draws the level grid and tokens into dst, which must be at least
// layout-sized. Drawing is relative to dst's origin, not to layout.Origin.
func DrawBoard(dst *core.Screen, layout BoardLayout, lvl *puzzle.Level, tokens []puzzle.Token) {
	dst.DrawBox(core.NewRect(0, 0, layout.Width(), layout.Height()), core.ColorGray)

	for r := 0; r < lvl.Size(); r++ {
		for c := 0; c < lvl.Size(); c++ {
			cell, _ := lvl.CellAt(puzzle.At(r, c))
			drawCell(dst, layout, r, c, cell)
		}
	}

	for _, tok := range tokens {
		x := 1 + tok.Pos.Col*layout.CellW + centerOffset(layout.CellW)
		y := 1 + tok.Pos.Row
		dst.SetColor(x, y, glyphToken, screenColor(tok.Color), core.ColorDefault)
	}
}

// drawCell fills one board cell. Goals are shaded in their color across
// the whole cell so a token sitting on one stays distinguishable.
func drawCell(dst *core.Screen, layout BoardLayout, r, c int, cell puzzle.Cell) {
	x0 := 1 + c*layout.CellW
	y := 1 + r
	mid := centerOffset(layout.CellW)

	for i := 0; i < layout.CellW; i++ {
		var fill core.Cell
		switch cell.Kind {
		case puzzle.KindWall:
			fill = core.Cell{Rune: glyphWall, Fg: core.ColorDarkGray}
		case puzzle.KindGoal:
			fill = core.Cell{Rune: glyphGoal, Fg: screenColor(cell.Color)}
		default:
			fill = core.Cell{Rune: ' '}
			if i == mid {
				fill = core.Cell{Rune: glyphEmpty, Fg: core.ColorDarkGray}
			}
		}
		dst.SetCell(x0+i, y, fill)
	}
}

// centerOffset returns the column of a cell's center glyph.
func centerOffset(cellW int) int {
	return cellW / 2
}

// DrawOverlay draws a boxed message centered on dst.
// Lines wider than the screen are clipped.
func DrawOverlay(dst *core.Screen, fg core.Color, lines ...string) {
	w := 0
	for _, line := range lines {
		w = max(w, len([]rune(line)))
	}
	w = min(w+4, dst.Width())
	h := min(len(lines)+2, dst.Height())

	box := dst.Bounds().Centered(w, h)
	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, fg)
	for i, line := range lines {
		if i+1 >= h-1 {
			break
		}
		dst.DrawTextCentered(box.Y+1+i, line, fg)
	}
}
