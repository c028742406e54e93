package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/colorslide/internal/core"
	"github.com/vovakirdan/colorslide/internal/puzzle"
)

// tinyLevel is a 2x2 board: red goal, wall / empty, empty, red token bottom-left.
func tinyLevel(t *testing.T) *puzzle.Level {
	t.Helper()
	rows := [][]puzzle.Cell{
		{puzzle.GoalCell(puzzle.ColorRed), puzzle.WallCell()},
		{puzzle.EmptyCell(), puzzle.EmptyCell()},
	}
	lvl, err := puzzle.NewLevel("tiny", "Tiny", rows, []puzzle.Token{{Color: puzzle.ColorRed, Pos: puzzle.At(1, 0)}})
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	return lvl
}

func TestDrawBoard(t *testing.T) {
	lvl := tinyLevel(t)
	layout := NewBoardLayout(lvl.Size(), 3, 0, 0)
	s := core.NewScreen(layout.Width(), layout.Height())

	DrawBoard(s, layout, lvl, lvl.InitialTokens())

	want := []string{
		"┌──────┐",
		"│░░░███│",
		"│ ●  · │",
		"└──────┘",
	}
	if got := s.String(); got != strings.Join(want, "\n") {
		t.Errorf("DrawBoard() =\n%s\nwant\n%s", got, strings.Join(want, "\n"))
	}

	if c := s.GetCell(2, 2); c.Fg != core.ColorRed {
		t.Errorf("token color = %v, want red", c.Fg)
	}
	if c := s.GetCell(1, 1); c.Fg != core.ColorRed {
		t.Errorf("goal shading color = %v, want red", c.Fg)
	}
}

func TestDrawBoardCompactCells(t *testing.T) {
	lvl := tinyLevel(t)
	layout := NewBoardLayout(lvl.Size(), 2, 0, 0)
	s := core.NewScreen(layout.Width(), layout.Height())

	DrawBoard(s, layout, lvl, lvl.InitialTokens())

	if got := s.Row(1); got != "│░░██│" {
		t.Errorf("row 1 = %q", got)
	}
	if got := s.Row(2); got != "│ ● ·│" {
		t.Errorf("row 2 = %q", got)
	}
}

func TestBoardLayoutCellAt(t *testing.T) {
	layout := NewBoardLayout(4, 3, boardLeft, boardTop)

	tests := []struct {
		name string
		x, y int
		want puzzle.Coord
		ok   bool
	}{
		{"first cell", boardLeft + 1, boardTop + 1, puzzle.At(0, 0), true},
		{"last column of first cell", boardLeft + 3, boardTop + 1, puzzle.At(0, 0), true},
		{"second cell", boardLeft + 4, boardTop + 1, puzzle.At(0, 1), true},
		{"bottom right", boardLeft + 12, boardTop + 4, puzzle.At(3, 3), true},
		{"border", boardLeft, boardTop, puzzle.Coord{}, false},
		{"outside", 0, 0, puzzle.Coord{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := layout.CellAt(tc.x, tc.y)
			if ok != tc.ok || got != tc.want {
				t.Errorf("CellAt(%d, %d) = %v, %v; want %v, %v", tc.x, tc.y, got, ok, tc.want, tc.ok)
			}
		})
	}

	if !layout.Contains(boardLeft, boardTop) {
		t.Error("Contains should include the border")
	}
}

func TestDrawOverlay(t *testing.T) {
	s := core.NewScreen(20, 7)
	DrawOverlay(s, core.ColorYellow, "PAUSED")

	// Box is 10x3 centered: x 5..14, y 2..4.
	if s.Get(5, 2) != '┌' || s.Get(14, 4) != '┘' {
		t.Errorf("overlay box misplaced:\n%s", s.String())
	}
	if !strings.Contains(s.Row(3), "PAUSED") {
		t.Errorf("overlay text missing: %q", s.Row(3))
	}
	if s.GetCell(5, 2).Fg != core.ColorYellow {
		t.Error("overlay border should use the overlay color")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawText(0, 0, "ab")
	s.SetColor(3, 0, '●', core.ColorBlue, core.ColorDefault)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "●") {
		t.Errorf("RenderScreen() = %q", out)
	}
}
