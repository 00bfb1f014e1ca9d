package cubestate

import (
	"testing"

	"pgregory.net/rapid"
)

// ============================================================================
// Property-Based Tests for Turn Laws
// ============================================================================

func moveGen() *rapid.Generator[Move] {
	return rapid.Custom(func(t *rapid.T) Move {
		return Move{
			Face:      rapid.SampledFrom(Faces[:]).Draw(t, "face"),
			Direction: rapid.SampledFrom([]Direction{Clockwise, CounterClockwise}).Draw(t, "direction"),
		}
	})
}

// scrambled returns a state reached from solved by a random move sequence.
func scrambled(t *rapid.T) *State {
	s := NewState()
	for _, m := range rapid.SliceOfN(moveGen(), 0, 30).Draw(t, "scramble") {
		if err := s.Turn(m.Face, m.Direction); err != nil {
			t.Fatalf("turn %v: %v", m, err)
		}
	}
	return s
}

// TestProperty_FourQuarterTurnsAreIdentity verifies X X X X leaves any state unchanged.
func TestProperty_FourQuarterTurnsAreIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := scrambled(t)
		before := s.Clone()
		face := rapid.SampledFrom(Faces[:]).Draw(t, "face")

		for i := 0; i < 4; i++ {
			s.Turn(face, Clockwise)
		}

		if !s.Equal(before) {
			t.Errorf("%v x 4 changed the state", face)
		}
	})
}

// TestProperty_TurnThenInverseIsIdentity verifies X X' leaves any state unchanged.
func TestProperty_TurnThenInverseIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := scrambled(t)
		before := s.Clone()
		m := moveGen().Draw(t, "move")

		s.Turn(m.Face, m.Direction)
		inv := m.Inverse()
		s.Turn(inv.Face, inv.Direction)

		if !s.Equal(before) {
			t.Errorf("%v followed by %v changed the state", m, inv)
		}
	})
}

// TestProperty_ColorsAreConserved verifies every turn sequence keeps 9 facelets per color.
func TestProperty_ColorsAreConserved(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := scrambled(t)
		counts := s.ColorCounts()
		for _, c := range Colors {
			if counts[c] != 9 {
				t.Errorf("color %v appears %d times, want 9", c, counts[c])
			}
		}
	})
}

// TestProperty_UndoRestoresEveryPriorState verifies undo walks back through
// each committed state in order.
func TestProperty_UndoRestoresEveryPriorState(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := New()
		moves := rapid.SliceOfN(moveGen(), 1, 20).Draw(t, "moves")

		seen := []Snapshot{e.Snapshot()}
		for _, m := range moves {
			if err := e.Turn(m.Face, m.Direction); err != nil {
				t.Fatalf("turn %v: %v", m, err)
			}
			seen = append(seen, e.Snapshot())
		}

		for i := len(seen) - 2; i >= 0; i-- {
			if err := e.Undo(); err != nil {
				t.Fatalf("undo %d: %v", i, err)
			}
			if !e.Snapshot().Equal(seen[i]) {
				t.Fatalf("after undo the state differs from entry %d", i)
			}
		}

		if err := e.Undo(); err != ErrNothingToUndo {
			t.Errorf("expected ErrNothingToUndo at floor, got %v", err)
		}
	})
}

// TestProperty_SnapshotsNeverAlias verifies earlier snapshots survive later turns.
func TestProperty_SnapshotsNeverAlias(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := scrambled(t)
		snap := Capture(s)
		encoded := snap.Encode()

		for _, m := range rapid.SliceOfN(moveGen(), 1, 10).Draw(t, "moves") {
			s.Turn(m.Face, m.Direction)
		}

		if snap.Encode() != encoded {
			t.Error("snapshot changed after turning the live state")
		}
	})
}
