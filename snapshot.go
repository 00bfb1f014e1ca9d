package cubestate

import (
	"fmt"
	"strings"
)

// EncodedLen is the length of an encoded snapshot: 6 faces x 9 facelets.
const EncodedLen = 54

// Snapshot is an immutable copy of a State at one instant.
// It owns its facelets; later changes to the live State never reach it.
type Snapshot struct {
	state State
}

// Capture deep-copies state into a new Snapshot.
func Capture(state *State) Snapshot {
	return Snapshot{state: *state}
}

// State returns a fresh, independently owned copy of the captured state.
func (s Snapshot) State() *State {
	st := s.state
	return &st
}

// Plane returns a copy of one face's grid.
func (s Snapshot) Plane(face Face) FacePlane {
	return s.state.Planes[face]
}

// Facelet returns the color at (row, col) on the given face.
func (s Snapshot) Facelet(face Face, row, col int) Color {
	return s.state.Planes[face][row][col]
}

// IsSolved reports whether the captured state is solved.
func (s Snapshot) IsSolved() bool {
	return s.state.IsSolved()
}

// Equal reports whether two snapshots hold identical facelets.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.state.Planes == other.state.Planes
}

// Encode returns the 54-character form: faces in U, D, F, B, L, R order,
// each face row-major, one color letter per facelet.
func (s Snapshot) Encode() string {
	var b strings.Builder
	b.Grow(EncodedLen)
	for _, face := range Faces {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				b.WriteString(s.state.Planes[face][row][col].String())
			}
		}
	}
	return b.String()
}

// String returns the unfolded net of the captured state.
func (s Snapshot) String() string {
	return s.state.String()
}

// DecodeSnapshot parses the form produced by Encode. The result must hold
// exactly nine facelets of each color.
func DecodeSnapshot(encoded string) (Snapshot, error) {
	if len(encoded) != EncodedLen {
		return Snapshot{}, fmt.Errorf("%w: length %d, want %d", ErrInvalidState, len(encoded), EncodedLen)
	}

	var st State
	i := 0
	for _, face := range Faces {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				c, ok := ParseColor(encoded[i])
				if !ok {
					return Snapshot{}, fmt.Errorf("%w: bad color %q at %d", ErrInvalidState, encoded[i], i)
				}
				st.Planes[face][row][col] = c
				i++
			}
		}
	}

	counts := st.ColorCounts()
	for _, c := range Colors {
		if n := counts[c]; n != 9 {
			return Snapshot{}, fmt.Errorf("%w: %d facelets of %s", ErrInvalidState, n, c)
		}
	}

	return Snapshot{state: st}, nil
}
