package puzzle

// Level is an immutable puzzle definition: a square grid plus the starting
// tokens. Build one with NewLevel; the zero value is not usable.
type Level struct {
	id     string
	name   string
	size   int
	cells  []Cell // row-major, len size*size
	tokens []Token
}

// NewLevel validates and builds a level.
// rows must form a non-empty square; tokens must start in bounds, off walls,
// on distinct cells and with distinct palette colors.
func NewLevel(id, name string, rows [][]Cell, tokens []Token) (*Level, error) {
	n := len(rows)
	if n == 0 {
		return nil, levelErrorf(CodeEmptyGrid, "grid has no rows")
	}

	cells := make([]Cell, 0, n*n)
	for r, row := range rows {
		if len(row) != n {
			return nil, levelErrorf(CodeNotSquare, "row %d has %d cells, want %d", r, len(row), n)
		}
		for c, cell := range row {
			if cell.Kind == KindGoal && !cell.Color.Valid() {
				return nil, levelErrorf(CodeUnknownColor, "goal at %s has unknown color %d", At(r, c), cell.Color)
			}
			cells = append(cells, cell)
		}
	}

	l := &Level{
		id:     id,
		name:   name,
		size:   n,
		cells:  cells,
		tokens: make([]Token, len(tokens)),
	}
	copy(l.tokens, tokens)

	seenPos := make(map[Coord]Color, len(tokens))
	seenColor := make(map[Color]bool, len(tokens))
	for _, t := range l.tokens {
		if !t.Color.Valid() {
			return nil, levelErrorf(CodeUnknownColor, "token at %s has unknown color %d", t.Pos, t.Color)
		}
		if seenColor[t.Color] {
			return nil, levelErrorf(CodeDuplicateColor, "more than one %s token", t.Color)
		}
		seenColor[t.Color] = true

		if !l.InBounds(t.Pos) {
			return nil, levelErrorf(CodeTokenOutOfBounds, "%s token at %s is outside the %dx%d grid", t.Color, t.Pos, n, n)
		}
		if l.cell(t.Pos).IsWall() {
			return nil, levelErrorf(CodeTokenOnWall, "%s token starts on a wall at %s", t.Color, t.Pos)
		}
		if other, ok := seenPos[t.Pos]; ok {
			return nil, levelErrorf(CodeDuplicatePosition, "%s and %s tokens both start at %s", other, t.Color, t.Pos)
		}
		seenPos[t.Pos] = t.Color
	}

	return l, nil
}

// ID returns the level identifier (may be empty).
func (l *Level) ID() string {
	return l.id
}

// Name returns the human readable level name (may be empty).
func (l *Level) Name() string {
	return l.name
}

// Size returns the side length of the square grid.
func (l *Level) Size() int {
	return l.size
}

// InBounds reports whether c lies inside the grid.
func (l *Level) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < l.size && c.Col >= 0 && c.Col < l.size
}

func (l *Level) cell(c Coord) Cell {
	return l.cells[c.Row*l.size+c.Col]
}

// CellAt returns the cell at c. ok is false when c is out of bounds.
func (l *Level) CellAt(c Coord) (cell Cell, ok bool) {
	if !l.InBounds(c) {
		return Cell{}, false
	}
	return l.cell(c), true
}

// InitialTokens returns a copy of the starting token layout.
func (l *Level) InitialTokens() []Token {
	out := make([]Token, len(l.tokens))
	copy(out, l.tokens)
	return out
}

// TokenCount returns the number of tokens in the level.
func (l *Level) TokenCount() int {
	return len(l.tokens)
}

// HasGoalFor reports whether the grid contains at least one goal of color c.
func (l *Level) HasGoalFor(c Color) bool {
	for _, cell := range l.cells {
		if cell.IsGoalFor(c) {
			return true
		}
	}
	return false
}

// Goals returns the coordinates of every goal cell, row by row.
func (l *Level) Goals() []Coord {
	var goals []Coord
	for i, cell := range l.cells {
		if cell.Kind == KindGoal {
			goals = append(goals, At(i/l.size, i%l.size))
		}
	}
	return goals
}

// Rows returns a copy of the grid as a slice of rows.
func (l *Level) Rows() [][]Cell {
	rows := make([][]Cell, l.size)
	for r := range rows {
		rows[r] = make([]Cell, l.size)
		copy(rows[r], l.cells[r*l.size:(r+1)*l.size])
	}
	return rows
}

// String renders the grid using level-file symbols, one row per line.
func (l *Level) String() string {
	buf := make([]rune, 0, l.size*(l.size+1))
	for r := 0; r < l.size; r++ {
		if r > 0 {
			buf = append(buf, '\n')
		}
		for c := 0; c < l.size; c++ {
			buf = append(buf, l.cell(At(r, c)).Symbol())
		}
	}
	return string(buf)
}
