package puzzle

// CellKind classifies a grid cell.
type CellKind uint8

const (
	KindEmpty CellKind = iota
	KindWall
	KindGoal
)

// String returns the string representation of a cell kind.
func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindWall:
		return "wall"
	case KindGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Cell is one square of a level grid. Color is meaningful only for goals.
type Cell struct {
	Kind  CellKind
	Color Color
}

// EmptyCell returns an open cell.
func EmptyCell() Cell {
	return Cell{Kind: KindEmpty}
}

// WallCell returns an impassable cell.
func WallCell() Cell {
	return Cell{Kind: KindWall}
}

// GoalCell returns a goal cell for the given color.
func GoalCell(c Color) Cell {
	return Cell{Kind: KindGoal, Color: c}
}

// IsWall reports whether the cell blocks movement.
func (c Cell) IsWall() bool {
	return c.Kind == KindWall
}

// IsGoalFor reports whether a token of color col is satisfied on this cell.
func (c Cell) IsGoalFor(col Color) bool {
	return c.Kind == KindGoal && c.Color == col
}

// Symbol returns the level-file symbol for the cell.
func (c Cell) Symbol() rune {
	switch c.Kind {
	case KindWall:
		return '#'
	case KindGoal:
		return c.Color.Symbol()
	default:
		return '.'
	}
}

// ParseCell converts a level-file symbol into a Cell.
// Accepts '.' or '0' for empty, '#' or '1' for wall and 'A'..'G' for goals.
func ParseCell(r rune) (Cell, bool) {
	switch r {
	case '.', '0':
		return EmptyCell(), true
	case '#', '1':
		return WallCell(), true
	}
	if c, ok := ColorForSymbol(r); ok {
		return GoalCell(c), true
	}
	return Cell{}, false
}

// Token is a movable piece. Its color is its identity within a level.
type Token struct {
	Color Color
	Pos   Coord
}
