package cubestate

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// EventKind distinguishes commit events.
type EventKind int

const (
	EventTurn EventKind = iota // a turn was committed
	EventUndo                  // the newest entry was dropped
)

func (k EventKind) String() string {
	switch k {
	case EventTurn:
		return "turn"
	case EventUndo:
		return "undo"
	default:
		return "unknown"
	}
}

// Event describes one change to an Engine's history.
type Event struct {
	Kind EventKind
	// Move is the committed turn; zero for undo events.
	Move Move
	// Snapshot is the entry that is current after the change.
	Snapshot Snapshot
	// Depth is the number of entries above the floor after the change.
	Depth int
}

// Engine owns the live cube state and its undo history.
// Every successful mutation commits a snapshot.
//
// An Engine is not safe for concurrent use; serialize calls through
// a single owner.
type Engine struct {
	state   *State
	history *History

	supported [6]bool
	rng       *rand.Rand
	logger    *slog.Logger
	onCommit  func(Event)
}

// New creates an engine holding a solved cube. The solved state is
// committed as the history floor.
func New(opts ...Option) *Engine {
	e := newEngine(opts)
	e.state = NewState()
	e.history = NewHistory(Capture(e.state))
	return e
}

// Resume creates an engine from a previously recorded history, oldest
// entry first. The first entry becomes the floor and the last one the
// live state.
func Resume(snapshots []Snapshot, opts ...Option) (*Engine, error) {
	if len(snapshots) == 0 {
		return nil, fmt.Errorf("%w: empty history", ErrInvalidState)
	}

	e := newEngine(opts)
	e.history = NewHistory(snapshots[0])
	for _, s := range snapshots[1:] {
		e.history.Push(s)
	}
	e.state = e.history.Current().State()
	return e, nil
}

func newEngine(opts []Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	e := &Engine{
		rng:      cfg.rng,
		logger:   cfg.logger,
		onCommit: cfg.onCommit,
	}
	for _, f := range cfg.faces {
		if f.Valid() {
			e.supported[f] = true
		}
	}
	return e
}

// Supports reports whether the engine accepts turns of face.
func (e *Engine) Supports(face Face) bool {
	return face.Valid() && e.supported[face]
}

// TurnRight turns the Right face and commits the result.
func (e *Engine) TurnRight(dir Direction) error {
	return e.Turn(FaceR, dir)
}

// Turn turns one face and commits the result. Unsupported faces or
// directions return ErrUnsupportedMove and leave the engine untouched.
func (e *Engine) Turn(face Face, dir Direction) error {
	m := Move{Face: face, Direction: dir}
	if err := e.check(m); err != nil {
		return err
	}
	e.commit(m)
	return nil
}

// Apply commits a sequence of moves, one history entry per move.
// All moves are validated first; if any is unsupported nothing is applied.
func (e *Engine) Apply(moves ...Move) error {
	for _, m := range moves {
		if err := e.check(m); err != nil {
			return err
		}
	}
	for _, m := range moves {
		e.commit(m)
	}
	return nil
}

// Shuffle applies n random Right-face turns, each R or R' with equal
// probability and each committed as its own history entry, so n undos
// restore the pre-shuffle state. It returns the moves applied.
func (e *Engine) Shuffle(n int) ([]Move, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShuffleCount, n)
	}

	moves := make([]Move, n)
	for i := range moves {
		m := shuffleMoves[e.intN(len(shuffleMoves))]
		e.commit(m)
		moves[i] = m
	}

	e.logger.Debug("shuffled", "moves", FormatMoves(moves), "depth", e.Depth())
	return moves, nil
}

// Undo restores the state before the most recent committed turn.
// At the history floor it returns ErrNothingToUndo and changes nothing.
func (e *Engine) Undo() error {
	prev, ok := e.history.StepBack()
	if !ok {
		e.logger.Debug("undo at floor")
		return ErrNothingToUndo
	}

	e.state = prev.State()
	e.logger.Debug("undo", "depth", e.Depth())
	e.notify(Event{Kind: EventUndo, Snapshot: prev, Depth: e.Depth()})
	return nil
}

// IsSolved returns true if every face shows a single color.
func (e *Engine) IsSolved() bool {
	return e.state.IsSolved()
}

// Snapshot returns a read-only view of the live state.
func (e *Engine) Snapshot() Snapshot {
	return Capture(e.state)
}

// Depth returns how many committed turns can be undone.
func (e *Engine) Depth() int {
	return e.history.Len() - 1
}

// History returns the committed snapshots, floor first.
func (e *Engine) History() []Snapshot {
	return e.history.Snapshots()
}

func (e *Engine) check(m Move) error {
	if !e.Supports(m.Face) || !m.Direction.Valid() {
		e.logger.Debug("move rejected", "face", m.Face.String(), "direction", int(m.Direction))
		return fmt.Errorf("%w: %s %s", ErrUnsupportedMove, m.Face, m.Direction)
	}
	return nil
}

// commit applies a validated move and pushes the resulting snapshot.
func (e *Engine) commit(m Move) {
	// check has already validated face and direction.
	_ = e.state.Turn(m.Face, m.Direction)

	snap := Capture(e.state)
	e.history.Push(snap)

	e.logger.Debug("turn committed", "move", m.Notation(), "depth", e.Depth())
	e.notify(Event{Kind: EventTurn, Move: m, Snapshot: snap, Depth: e.Depth()})
}

func (e *Engine) notify(ev Event) {
	if e.onCommit != nil {
		e.onCommit(ev)
	}
}

func (e *Engine) intN(n int) int {
	if e.rng != nil {
		return e.rng.IntN(n)
	}
	return rand.IntN(n)
}
