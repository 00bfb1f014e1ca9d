package cubestate

import "strings"

// Direction is the sense of a quarter turn, seen from outside the face.
type Direction int

const (
	Clockwise        Direction = 1  // 90 degrees clockwise
	CounterClockwise Direction = -1 // 90 degrees counter-clockwise
)

// quarterTurns returns how many clockwise quarter turns realize d.
func (d Direction) quarterTurns() (int, bool) {
	switch d {
	case Clockwise:
		return 1, true
	case CounterClockwise:
		return 3, true
	default:
		return 0, false
	}
}

// Valid reports whether d is Clockwise or CounterClockwise.
func (d Direction) Valid() bool {
	_, ok := d.quarterTurns()
	return ok
}

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	default:
		return "?"
	}
}

// Move is a single quarter turn of one face.
type Move struct {
	Face      Face
	Direction Direction
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', U, U'
func (m Move) Notation() string {
	if m.Direction == CounterClockwise {
		return m.Face.String() + "'"
	}
	return m.Face.String()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R.
func (m Move) Inverse() Move {
	inv := m
	inv.Direction = -m.Direction
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation string into one or two quarter turns.
// Examples: R, R', R2 (two clockwise quarter turns)
// Returns ErrInvalidNotation if the notation is invalid.
func ParseMove(s string) ([]Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, ErrInvalidNotation
	}

	face, ok := ParseFace(s[0])
	if !ok {
		return nil, ErrInvalidNotation
	}

	switch s[1:] {
	case "":
		return []Move{{Face: face, Direction: Clockwise}}, nil
	case "'", "`":
		return []Move{{Face: face, Direction: CounterClockwise}}, nil
	case "2", "2'", "2`":
		m := Move{Face: face, Direction: Clockwise}
		return []Move{m, m}, nil
	default:
		return nil, ErrInvalidNotation
	}
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// The whole sequence is rejected if any token is invalid.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		parsed, err := ParseMove(part)
		if err != nil {
			return nil, &NotationError{Token: part}
		}
		moves = append(moves, parsed...)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
