package cubestate

import (
	"testing"
)

func TestNewStateIsSolved(t *testing.T) {
	s := NewState()
	if !s.IsSolved() {
		t.Error("New state should be solved")
	}
}

func TestSingleTurnBreaksSolved(t *testing.T) {
	s := NewState()
	if err := s.Turn(FaceR, Clockwise); err != nil {
		t.Fatal(err)
	}
	if s.IsSolved() {
		t.Error("State should not be solved after R")
	}
}

func TestRotateClockwise(t *testing.T) {
	p := FacePlane{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	p.RotateClockwise()

	want := FacePlane{
		{7, 4, 1},
		{8, 5, 2},
		{9, 6, 3},
	}
	if p != want {
		t.Errorf("RotateClockwise = %v, want %v", p, want)
	}
}

func TestRotateClockwise_FourTimesIsIdentity(t *testing.T) {
	orig := FacePlane{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	p := orig
	for i := 0; i < 4; i++ {
		p.RotateClockwise()
	}
	if p != orig {
		t.Errorf("four rotations = %v, want %v", p, orig)
	}
}

func TestRTurnMovesStrips(t *testing.T) {
	s := NewState()
	if err := s.Turn(FaceR, Clockwise); err != nil {
		t.Fatal(err)
	}

	// F -> U, D -> F, B -> D, U -> B
	for i := 0; i < 3; i++ {
		if got := s.Facelet(FaceU, i, 2); got != Red {
			t.Errorf("U[%d][2] = %v, want R", i, got)
		}
		if got := s.Facelet(FaceF, i, 2); got != Yellow {
			t.Errorf("F[%d][2] = %v, want Y", i, got)
		}
		if got := s.Facelet(FaceD, i, 2); got != Orange {
			t.Errorf("D[%d][2] = %v, want O", i, got)
		}
		if got := s.Facelet(FaceB, i, 0); got != White {
			t.Errorf("B[%d][0] = %v, want W", i, got)
		}
		// Untouched columns keep their color
		if got := s.Facelet(FaceU, i, 0); got != White {
			t.Errorf("U[%d][0] = %v, want W", i, got)
		}
	}
	if _, ok := s.Planes[FaceR].Uniform(); !ok {
		t.Error("R face should stay uniform after turning itself")
	}
	if _, ok := s.Planes[FaceL].Uniform(); !ok {
		t.Error("L face should be untouched by R")
	}
}

func TestRTurnReversesBackStrip(t *testing.T) {
	s := NewState()
	// Mark the top of U's right column so its path is traceable.
	s.Planes[FaceU][0][2] = Green
	s.Planes[FaceL][0][0] = White

	if err := s.Turn(FaceR, Clockwise); err != nil {
		t.Fatal(err)
	}
	// U[0][2] lands on B[2][0]: the back strip runs bottom-to-top.
	if got := s.Facelet(FaceB, 2, 0); got != Green {
		t.Errorf("B[2][0] = %v, want G", got)
		t.Log(s.String())
	}

	if err := s.Turn(FaceR, Clockwise); err != nil {
		t.Fatal(err)
	}
	// B[2][0] lands on D[0][2].
	if got := s.Facelet(FaceD, 0, 2); got != Green {
		t.Errorf("D[0][2] = %v, want G", got)
		t.Log(s.String())
	}
}

func TestRRRR_ReturnsToSolved(t *testing.T) {
	s := NewState()
	// R R R R = identity
	for i := 0; i < 4; i++ {
		s.Turn(FaceR, Clockwise)
	}
	if !s.IsSolved() {
		t.Error("R R R R should return to solved")
		t.Log(s.String())
	}
}

func TestRRRR_ReturnsToSolved_AllFaces(t *testing.T) {
	for _, face := range Faces {
		s := NewState()
		for i := 0; i < 4; i++ {
			s.Turn(face, Clockwise)
		}
		if !s.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(s.String())
		}
	}
}

func TestTurnThenInverse_AllFaces(t *testing.T) {
	for _, face := range Faces {
		s := NewState()
		s.Turn(FaceF, Clockwise) // start from a non-trivial state
		before := s.Clone()

		s.Turn(face, Clockwise)
		s.Turn(face, CounterClockwise)
		if !s.Equal(before) {
			t.Errorf("%v %v' should be the identity", face, face)
			t.Log(s.String())
		}
	}
}

func TestCounterClockwiseIsThreeClockwise(t *testing.T) {
	for _, face := range Faces {
		a := NewState()
		a.Turn(FaceU, Clockwise)
		b := a.Clone()

		a.Turn(face, CounterClockwise)
		for i := 0; i < 3; i++ {
			b.Turn(face, Clockwise)
		}
		if !a.Equal(b) {
			t.Errorf("%v' differs from %v %v %v", face, face, face, face)
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	s := NewState()
	for i := 0; i < 6; i++ {
		for _, m := range SexyMove {
			s.Turn(m.Face, m.Direction)
		}
	}
	if !s.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(s.String())
	}
}

func TestTurnRejectsUnsupported(t *testing.T) {
	s := NewState()
	s.Turn(FaceR, Clockwise)
	before := s.Clone()

	if err := s.Turn(Face(9), Clockwise); err == nil {
		t.Error("expected error for unknown face")
	}
	if err := s.Turn(FaceU, Direction(2)); err == nil {
		t.Error("expected error for unknown direction")
	}
	if !s.Equal(before) {
		t.Error("rejected turns must not change the state")
	}
}

func TestIsSolved_NonStandardColoring(t *testing.T) {
	s := NewState()
	s.Planes[FaceU], s.Planes[FaceD] = s.Planes[FaceD], s.Planes[FaceU]
	if !s.IsSolved() {
		t.Error("uniform faces should count as solved whatever their colors")
	}
}

func TestColorCounts(t *testing.T) {
	s := NewState()
	s.Turn(FaceR, Clockwise)
	s.Turn(FaceF, CounterClockwise)
	s.Turn(FaceD, Clockwise)

	counts := s.ColorCounts()
	for _, c := range Colors {
		if counts[c] != 9 {
			t.Errorf("count[%v] = %d, want 9", c, counts[c])
		}
	}
}

func TestParseColorAndFace(t *testing.T) {
	for _, c := range Colors {
		got, ok := ParseColor(c.String()[0])
		if !ok || got != c {
			t.Errorf("ParseColor(%q) = %v, %v", c.String(), got, ok)
		}
	}
	for _, f := range Faces {
		got, ok := ParseFace(f.String()[0])
		if !ok || got != f {
			t.Errorf("ParseFace(%q) = %v, %v", f.String(), got, ok)
		}
	}
	if _, ok := ParseColor('X'); ok {
		t.Error("X is not a color")
	}
	if Color(6).Valid() {
		t.Error("Color(6) should be invalid")
	}
}
