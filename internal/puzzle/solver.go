package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsolvable means every reachable layout was explored without a solution.
	ErrUnsolvable = errors.New("level is not solvable")

	// ErrSearchLimit means the search gave up after maxStates layouts.
	ErrSearchLimit = errors.New("solver state limit reached")
)

// DefaultMaxStates bounds Solve when the caller passes a non-positive limit.
const DefaultMaxStates = 2_000_000

// Solution is a shortest move sequence for a level.
type Solution struct {
	Moves    []Direction
	Explored int // Layouts visited during the search
}

// String returns the moves as a space-separated list.
func (s Solution) String() string {
	parts := make([]string, len(s.Moves))
	for i, d := range s.Moves {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}

type searchNode struct {
	tokens []Token
	parent int
	dir    Direction
}

// Solve runs a breadth-first search from the level's initial layout and
// returns a shortest solution under the same rules as Engine.Move.
func Solve(level *Level, maxStates int) (Solution, error) {
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}

	for _, t := range level.tokens {
		if !level.HasGoalFor(t.Color) {
			return Solution{}, fmt.Errorf("%w: no %s goal", ErrUnsolvable, t.Color)
		}
	}

	e := NewEngine(level)
	if e.Solved() {
		return Solution{Explored: 1}, nil
	}

	nodes := []searchNode{{tokens: e.Tokens(), parent: -1}}
	seen := map[string]bool{layoutKey(level.Size(), nodes[0].tokens): true}

	for head := 0; head < len(nodes); head++ {
		for _, d := range Directions {
			e.tokens = append(e.tokens[:0], nodes[head].tokens...)
			changed, _ := e.Move(d)
			if !changed {
				continue
			}
			key := layoutKey(level.Size(), e.tokens)
			if seen[key] {
				continue
			}
			seen[key] = true
			nodes = append(nodes, searchNode{tokens: e.Tokens(), parent: head, dir: d})

			if e.Solved() {
				return Solution{Moves: unwind(nodes, len(nodes)-1), Explored: len(nodes)}, nil
			}
			if len(nodes) >= maxStates {
				return Solution{Explored: len(nodes)}, ErrSearchLimit
			}
		}
	}

	return Solution{Explored: len(nodes)}, ErrUnsolvable
}

// layoutKey encodes token positions (in level order) as a map key.
func layoutKey(size int, tokens []Token) string {
	var sb strings.Builder
	sb.Grow(len(tokens) * 2)
	for _, t := range tokens {
		idx := t.Pos.Row*size + t.Pos.Col
		sb.WriteByte(byte(idx >> 8))
		sb.WriteByte(byte(idx))
	}
	return sb.String()
}

func unwind(nodes []searchNode, i int) []Direction {
	var rev []Direction
	for ; nodes[i].parent >= 0; i = nodes[i].parent {
		rev = append(rev, nodes[i].dir)
	}
	out := make([]Direction, len(rev))
	for j, d := range rev {
		out[len(rev)-1-j] = d
	}
	return out
}
