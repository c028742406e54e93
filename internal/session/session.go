// Package session is the play-session controller around the puzzle engine:
// level navigation, reset, pause and the elapsed-time clock.
package session

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorslide/internal/puzzle"
)

// ErrNoLevels is returned by New when the level list is empty.
var ErrNoLevels = errors.New("session: no levels")

// Result describes the outcome of one move request.
type Result struct {
	Changed    bool // At least one token moved
	Solved     bool // Board is solved after the move
	JustSolved bool // This move completed the level
	Ignored    bool // Suppressed because the session is paused or already solved
}

// Session owns one engine at a time and everything the engine does not:
// which level is active, the clock and the pause flag.
type Session struct {
	levels []*puzzle.Level
	index  int
	engine *puzzle.Engine
	clock  *Clock
	solved bool
	logger *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger reports session events at debug level.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithNow replaces the clock's time source.
func WithNow(now func() time.Time) Option {
	return func(s *Session) {
		s.clock = NewClock(now)
	}
}

// New starts a session on levels[start]. An out-of-range start falls back
// to the first level.
func New(levels []*puzzle.Level, start int, opts ...Option) (*Session, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}

	s := &Session{
		levels: levels,
		clock:  NewClock(nil),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Select(start)
	return s, nil
}

// Select switches to levels[i] with a fresh engine and a zeroed clock.
// An out-of-range index selects the first level.
func (s *Session) Select(i int) {
	if i < 0 || i >= len(s.levels) {
		i = 0
	}
	s.index = i
	s.engine = puzzle.NewEngine(s.levels[i])
	s.solved = s.engine.Solved()
	s.clock.Reset()
	s.logger.Debug("level started", "index", i, "id", s.levels[i].ID())
}

// Next advances to the following level. It reports false on the last level.
func (s *Session) Next() bool {
	if s.index+1 >= len(s.levels) {
		return false
	}
	s.Select(s.index + 1)
	return true
}

// Reset puts the tokens back and zeroes the move counter. The clock keeps
// running and a pause is lifted.
func (s *Session) Reset() {
	s.engine.Reset()
	s.solved = s.engine.Solved()
	if !s.clock.Running() {
		s.clock.Start()
	}
	s.clock.Resume()
	s.logger.Debug("level reset", "id", s.Level().ID())
}

// Restart resets the board and the clock.
func (s *Session) Restart() {
	s.Select(s.index)
}

// Move forwards dir to the engine unless the session is paused or solved.
// Completing the level stops the clock.
func (s *Session) Move(dir puzzle.Direction) (Result, error) {
	if s.clock.Paused() || s.solved {
		return Result{Solved: s.solved, Ignored: true}, nil
	}

	changed, err := s.engine.Move(dir)
	if err != nil {
		return Result{}, err
	}

	res := Result{Changed: changed}
	if changed && s.engine.Solved() {
		s.solved = true
		s.clock.Stop()
		res.JustSolved = true
		s.logger.Debug("level solved",
			"id", s.Level().ID(),
			"moves", s.engine.Moves(),
			"elapsed", s.clock.Elapsed(),
		)
	}
	res.Solved = s.solved
	return res, nil
}

// Pause suspends the clock and move handling.
func (s *Session) Pause() {
	if s.solved {
		return
	}
	s.clock.Pause()
}

// Resume undoes Pause.
func (s *Session) Resume() {
	s.clock.Resume()
}

// TogglePause flips the pause state and returns the new value.
func (s *Session) TogglePause() bool {
	if s.clock.Paused() {
		s.Resume()
	} else {
		s.Pause()
	}
	return s.clock.Paused()
}

// Paused reports whether the session is paused.
func (s *Session) Paused() bool {
	return s.clock.Paused()
}

// Solved reports whether the current level is complete.
func (s *Session) Solved() bool {
	return s.solved
}

// Engine returns the engine for the current level.
func (s *Session) Engine() *puzzle.Engine {
	return s.engine
}

// Level returns the current level.
func (s *Session) Level() *puzzle.Level {
	return s.levels[s.index]
}

// Index returns the 0-based index of the current level.
func (s *Session) Index() int {
	return s.index
}

// LevelCount returns the number of levels in the session.
func (s *Session) LevelCount() int {
	return len(s.levels)
}

// HasNext reports whether a following level exists.
func (s *Session) HasNext() bool {
	return s.index+1 < len(s.levels)
}

// Moves returns the move counter of the current engine.
func (s *Session) Moves() int {
	return s.engine.Moves()
}

// Elapsed returns play time on the current level.
func (s *Session) Elapsed() time.Duration {
	return s.clock.Elapsed()
}
