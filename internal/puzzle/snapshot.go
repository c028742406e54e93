package puzzle

import "unicode"

// Snapshot captures the engine state for rendering, determinism tests and replay.
type Snapshot struct {
	LevelID string
	Size    int
	Tokens  []Token
	Moves   int
	OnGoal  int
	Solved  bool
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		LevelID: e.level.ID(),
		Size:    e.level.Size(),
		Tokens:  e.Tokens(),
		Moves:   e.moves,
		OnGoal:  e.OnGoal(),
		Solved:  e.Solved(),
	}
}

// Replay resets the engine and applies dirs in order.
// It stops at the first invalid direction.
func (e *Engine) Replay(dirs []Direction) error {
	e.Reset()
	for _, d := range dirs {
		if _, err := e.Move(d); err != nil {
			return err
		}
	}
	return nil
}

// String renders the grid like Level.String with each token drawn as the
// lowercase form of its color symbol.
func (e *Engine) String() string {
	grid := []rune(e.level.String())
	width := e.level.Size() + 1
	for _, t := range e.tokens {
		grid[t.Pos.Row*width+t.Pos.Col] = unicode.ToLower(t.Color.Symbol())
	}
	return string(grid)
}
