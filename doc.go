// Package cubestate models the state of a 3x3x3 cube puzzle: six faces of
// colored facelets, the face turns that permute them, and an undo history
// of whole-state snapshots.
//
// # Features
//
//   - Closed Color and Face enumerations
//   - Face turns driven by an adjacency table covering all six faces
//   - Immutable snapshots that never alias the live state
//   - Linear undo history with a fixed floor
//   - Random shuffles committed one turn at a time
//
// # Quick Start
//
//	engine := cubestate.New()
//
//	engine.TurnRight(cubestate.Clockwise)
//	engine.TurnRight(cubestate.CounterClockwise)
//	fmt.Println("Solved:", engine.IsSolved())
//
//	moves, _ := engine.Shuffle(15)
//	fmt.Println("Shuffle:", cubestate.FormatMoves(moves))
//
//	for {
//	    if err := engine.Undo(); errors.Is(err, cubestate.ErrNothingToUndo) {
//	        break
//	    }
//	}
//
// # Snapshots
//
// Snapshot values hold their own copy of the facelets. They can be encoded
// to a 54-letter string (faces U, D, F, B, L, R, each row-major) and
// decoded again:
//
//	s := engine.Snapshot().Encode()
//	snap, err := cubestate.DecodeSnapshot(s)
//
// An Engine is not safe for concurrent use.
package cubestate
