package cubestate

import (
	"fmt"
	"strings"
)

// Color represents a facelet color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Red    Color = 2 // Front face when solved
	Orange Color = 3 // Back face when solved
	Green  Color = 4 // Left face when solved
	Blue   Color = 5 // Right face when solved
)

// Colors lists every valid color.
var Colors = [6]Color{White, Yellow, Red, Orange, Green, Blue}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// Valid reports whether c is one of the six puzzle colors.
func (c Color) Valid() bool {
	return c <= Blue
}

// ParseColor converts a single-letter color code (W, Y, R, O, G, B) to a Color.
func ParseColor(b byte) (Color, bool) {
	switch b {
	case 'W', 'w':
		return White, true
	case 'Y', 'y':
		return Yellow, true
	case 'R', 'r':
		return Red, true
	case 'O', 'o':
		return Orange, true
	case 'G', 'g':
		return Green, true
	case 'B', 'b':
		return Blue, true
	default:
		return 0, false
	}
}

// Face identifies one of the six faces of the cube.
type Face int

const (
	FaceU Face = 0 // Up
	FaceD Face = 1 // Down
	FaceF Face = 2 // Front
	FaceB Face = 3 // Back
	FaceL Face = 4 // Left
	FaceR Face = 5 // Right
)

// Faces lists every face in persistence order (U, D, F, B, L, R).
var Faces = [6]Face{FaceU, FaceD, FaceF, FaceB, FaceL, FaceR}

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceL:
		return "L"
	case FaceR:
		return "R"
	default:
		return "?"
	}
}

// Valid reports whether f names one of the six faces.
func (f Face) Valid() bool {
	return f >= FaceU && f <= FaceR
}

// ParseFace converts a face letter (U, D, F, B, L, R) to a Face.
func ParseFace(b byte) (Face, bool) {
	switch b {
	case 'U', 'u':
		return FaceU, true
	case 'D', 'd':
		return FaceD, true
	case 'F', 'f':
		return FaceF, true
	case 'B', 'b':
		return FaceB, true
	case 'L', 'l':
		return FaceL, true
	case 'R', 'r':
		return FaceR, true
	default:
		return 0, false
	}
}

// solvedColor returns the color of a face when solved.
func solvedColor(f Face) Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Red
	case FaceB:
		return Orange
	case FaceL:
		return Green
	case FaceR:
		return Blue
	default:
		return White
	}
}

// FacePlane is the 3x3 grid of one face, indexed [row][column] with
// row 0 at the top and column 0 at the left.
type FacePlane [3][3]Color

// RotateClockwise turns the plane's content 90 degrees clockwise in place:
// the grid is transposed and each resulting row reversed.
func (p *FacePlane) RotateClockwise() {
	var out FacePlane
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[col][2-row] = p[row][col]
		}
	}
	*p = out
}

// Uniform returns the plane's color if all nine cells share it.
func (p *FacePlane) Uniform() (Color, bool) {
	first := p[0][0]
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if p[row][col] != first {
				return first, false
			}
		}
	}
	return first, true
}

// State is the color configuration of all 54 facelets.
// Planes is indexed by Face.
type State struct {
	Planes [6]FacePlane
}

// NewState returns a solved state with standard orientation:
// White on top, Red in front, Blue on the right.
func NewState() *State {
	s := &State{}
	for _, face := range Faces {
		color := solvedColor(face)
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				s.Planes[face][row][col] = color
			}
		}
	}
	return s
}

// Clone creates a deep copy of the state.
func (s *State) Clone() *State {
	clone := *s
	return &clone
}

// Equal reports whether two states hold identical facelets.
func (s *State) Equal(other *State) bool {
	return s.Planes == other.Planes
}

// Plane returns a copy of one face's grid.
func (s *State) Plane(face Face) FacePlane {
	return s.Planes[face]
}

// Facelet returns the color at (row, col) on the given face.
func (s *State) Facelet(face Face, row, col int) Color {
	return s.Planes[face][row][col]
}

// IsSolved returns true if every face shows a single color.
// Faces may differ from the standard coloring.
func (s *State) IsSolved() bool {
	for _, face := range Faces {
		if _, ok := s.Planes[face].Uniform(); !ok {
			return false
		}
	}
	return true
}

// ColorCounts returns how many facelets carry each color.
func (s *State) ColorCounts() map[Color]int {
	counts := make(map[Color]int, len(Colors))
	for _, face := range Faces {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				counts[s.Planes[face][row][col]]++
			}
		}
	}
	return counts
}

// Turn applies a quarter turn of face in the given direction.
// Counter-clockwise is three clockwise quarter turns.
func (s *State) Turn(face Face, dir Direction) error {
	if !face.Valid() {
		return fmt.Errorf("%w: face %d", ErrUnsupportedMove, int(face))
	}
	quarters, ok := dir.quarterTurns()
	if !ok {
		return fmt.Errorf("%w: direction %d", ErrUnsupportedMove, int(dir))
	}

	for i := 0; i < quarters; i++ {
		s.Planes[face].RotateClockwise()
		s.cycleStrips(face)
	}
	return nil
}

// cycleStrips moves each bordering strip one step along the face's ring:
// ring[0] -> ring[1] -> ring[2] -> ring[3] -> ring[0].
func (s *State) cycleStrips(face Face) {
	ring := adjacency[face]
	carry := s.readStrip(ring[3])
	for _, st := range ring {
		next := s.readStrip(st)
		s.writeStrip(st, carry)
		carry = next
	}
}

func (s *State) readStrip(st strip) [3]Color {
	var out [3]Color
	for i, cell := range st.cells() {
		out[i] = s.Planes[st.face][cell[0]][cell[1]]
	}
	return out
}

func (s *State) writeStrip(st strip, colors [3]Color) {
	for i, cell := range st.cells() {
		s.Planes[st.face][cell[0]][cell[1]] = colors[i]
	}
}

// String returns a text representation of the state as an unfolded net.
func (s *State) String() string {
	var b strings.Builder

	writeRow := func(face Face, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(s.Planes[face][row][col].String())
			b.WriteByte(' ')
		}
	}

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceU, row)
		b.WriteByte('\n')
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			writeRow(face, row)
		}
		b.WriteByte('\n')
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceD, row)
		b.WriteByte('\n')
	}

	return b.String()
}
