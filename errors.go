package cubestate

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cubestate package.
var (
	// Move errors
	ErrUnsupportedMove     = errors.New("cubestate: unsupported move")
	ErrInvalidShuffleCount = errors.New("cubestate: shuffle count must be positive")

	// History errors
	ErrNothingToUndo = errors.New("cubestate: nothing to undo")

	// Parsing errors
	ErrInvalidNotation = errors.New("cubestate: invalid move notation")
	ErrInvalidState    = errors.New("cubestate: invalid encoded state")
)

// NotationError reports the token that failed to parse.
type NotationError struct {
	Token string
}

func (e *NotationError) Error() string {
	return fmt.Sprintf("cubestate: invalid move notation %q", e.Token)
}

// Unwrap lets errors.Is match ErrInvalidNotation.
func (e *NotationError) Unwrap() error {
	return ErrInvalidNotation
}
