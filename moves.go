package cubestate

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	engine.Apply(cubestate.R, cubestate.U, cubestate.RPrime, cubestate.UPrime)
var (
	R      = Move{Face: FaceR, Direction: Clockwise}
	RPrime = Move{Face: FaceR, Direction: CounterClockwise}

	L      = Move{Face: FaceL, Direction: Clockwise}
	LPrime = Move{Face: FaceL, Direction: CounterClockwise}

	U      = Move{Face: FaceU, Direction: Clockwise}
	UPrime = Move{Face: FaceU, Direction: CounterClockwise}

	D      = Move{Face: FaceD, Direction: Clockwise}
	DPrime = Move{Face: FaceD, Direction: CounterClockwise}

	F      = Move{Face: FaceF, Direction: Clockwise}
	FPrime = Move{Face: FaceF, Direction: CounterClockwise}

	B      = Move{Face: FaceB, Direction: Clockwise}
	BPrime = Move{Face: FaceB, Direction: CounterClockwise}
)

// shuffleMoves is the move set Shuffle draws from.
var shuffleMoves = [2]Move{R, RPrime}

// SexyMove is R U R' U'. Six repetitions return to the starting state.
var SexyMove = []Move{R, U, RPrime, UPrime}
