package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLevel is matched by every level construction failure.
	ErrInvalidLevel = errors.New("invalid level")

	// ErrInvalidDirection is returned by Engine.Move for values outside the four cardinal directions.
	ErrInvalidDirection = errors.New("invalid direction")
)

// Level validation codes.
const (
	CodeEmptyGrid         = "EMPTY_GRID"
	CodeNotSquare         = "NOT_SQUARE"
	CodeUnknownColor      = "UNKNOWN_COLOR"
	CodeTokenOutOfBounds  = "TOKEN_OUT_OF_BOUNDS"
	CodeTokenOnWall       = "TOKEN_ON_WALL"
	CodeDuplicatePosition = "DUPLICATE_POSITION"
	CodeDuplicateColor    = "DUPLICATE_COLOR"
)

// LevelError describes why a level definition was rejected.
type LevelError struct {
	Code    string
	Message string
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("%s: [%s] %s", ErrInvalidLevel, e.Code, e.Message)
}

// Unwrap lets errors.Is(err, ErrInvalidLevel) match.
func (e *LevelError) Unwrap() error {
	return ErrInvalidLevel
}

func levelErrorf(code, format string, args ...any) error {
	return &LevelError{Code: code, Message: fmt.Sprintf(format, args...)}
}
