// Package puzzle implements the colored-token sliding puzzle: the level model,
// the simultaneous move rules and the win check.
// This package is UI-agnostic and deterministic; it owns no clock and does no I/O.
package puzzle

import "fmt"

// Engine holds the live state of one play session of a level.
// It is not safe for concurrent use; each session owns its own Engine.
type Engine struct {
	level  *Level
	tokens []Token
	moves  int

	// scratch buffers reused across moves
	next     []Coord
	occupied map[Coord]struct{}
}

// NewEngine starts a session on level with the initial layout.
func NewEngine(level *Level) *Engine {
	e := &Engine{
		level:    level,
		next:     make([]Coord, level.TokenCount()),
		occupied: make(map[Coord]struct{}, level.TokenCount()),
	}
	e.Reset()
	return e
}

// Reset restores the initial token layout and zeroes the move counter.
func (e *Engine) Reset() {
	e.tokens = e.level.InitialTokens()
	e.moves = 0
}

// Level returns the level being played.
func (e *Engine) Level() *Level {
	return e.level
}

// Moves returns the number of moves that changed the board.
func (e *Engine) Moves() int {
	return e.moves
}

// Tokens returns a copy of the current token positions in level order.
func (e *Engine) Tokens() []Token {
	out := make([]Token, len(e.tokens))
	copy(out, e.tokens)
	return out
}

// TokenAt returns the token occupying c, if any.
func (e *Engine) TokenAt(c Coord) (Token, bool) {
	for _, t := range e.tokens {
		if t.Pos == c {
			return t, true
		}
	}
	return Token{}, false
}

// Move slides every token one cell in dir at the same time.
//
// Each destination is checked against the board as it stood before the
// move: a token is blocked by the grid edge, by a wall, or by any token's
// pre-move cell, even if that token is itself leaving. Tokens never push
// each other. The move counter advances by one when at least one token
// moved. It reports whether anything changed.
func (e *Engine) Move(dir Direction) (bool, error) {
	if !dir.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidDirection, dir)
	}

	clear(e.occupied)
	for _, t := range e.tokens {
		e.occupied[t.Pos] = struct{}{}
	}

	// Phase one: decide every destination from the pre-move snapshot.
	changed := false
	for i, t := range e.tokens {
		cand := t.Pos.Step(dir)
		if e.legal(cand) {
			e.next[i] = cand
			changed = true
		} else {
			e.next[i] = t.Pos
		}
	}

	if !changed {
		return false, nil
	}

	// Phase two: commit.
	for i := range e.tokens {
		e.tokens[i].Pos = e.next[i]
	}
	e.moves++
	return true, nil
}

// legal reports whether a token may enter c given the pre-move occupancy.
// A token's own cell is never its candidate, so any occupant is another token.
func (e *Engine) legal(c Coord) bool {
	cell, ok := e.level.CellAt(c)
	if !ok || cell.IsWall() {
		return false
	}
	_, taken := e.occupied[c]
	return !taken
}

// Solved reports whether every token rests on a goal of its own color.
func (e *Engine) Solved() bool {
	for _, t := range e.tokens {
		cell, ok := e.level.CellAt(t.Pos)
		if !ok || !cell.IsGoalFor(t.Color) {
			return false
		}
	}
	return true
}

// OnGoal returns how many tokens currently sit on their own goal.
func (e *Engine) OnGoal() int {
	n := 0
	for _, t := range e.tokens {
		if cell, ok := e.level.CellAt(t.Pos); ok && cell.IsGoalFor(t.Color) {
			n++
		}
	}
	return n
}
