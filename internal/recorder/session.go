package recorder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/log"
	"github.com/SeamusWaldron/cubestate/internal/storage"
)

var (
	ErrSessionNotFound = errors.New("recorder: session not found")
	ErrNoActiveSession = errors.New("recorder: no active session")
)

// Session is an engine whose history is mirrored in storage. Each
// committed turn appends a snapshot row and each undo removes the top row.
//
// Like the engine it wraps, a Session has a single owner.
type Session struct {
	db        *storage.DB
	sessions  *storage.SessionRepository
	snapshots *storage.SnapshotRepository

	id      string
	engine  *cubestate.Engine
	pending []cubestate.Event
}

func newSession(db *storage.DB, id string) *Session {
	return &Session{
		db:        db,
		sessions:  storage.NewSessionRepository(db),
		snapshots: storage.NewSnapshotRepository(db),
		id:        id,
	}
}

// Start creates a new session holding a solved cube.
func Start(ctx context.Context, db *storage.DB, name string, opts ...cubestate.Option) (*Session, error) {
	s := newSession(db, "")
	s.engine = cubestate.New(s.engineOptions(opts)...)

	floor := s.engine.Snapshot().Encode()
	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		id, err := s.sessions.WithTx(tx).Create(ctx, name)
		if err != nil {
			return err
		}
		s.id = id
		return s.snapshots.WithTx(tx).Append(ctx, id, 0, floor, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	log.Info(log.CatSession, "Session started", "session", s.id)
	return s, nil
}

// Open loads a stored session and rebuilds its engine and history.
func Open(ctx context.Context, db *storage.DB, sessionID string, opts ...cubestate.Option) (*Session, error) {
	s := newSession(db, sessionID)

	row, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	records, err := s.snapshots.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	history := make([]cubestate.Snapshot, len(records))
	for i, rec := range records {
		if rec.Seq != i {
			return nil, fmt.Errorf("session %s: snapshot %d stored at seq %d", sessionID, i, rec.Seq)
		}
		snap, err := cubestate.DecodeSnapshot(rec.Facelets)
		if err != nil {
			return nil, fmt.Errorf("session %s seq %d: %w", sessionID, rec.Seq, err)
		}
		history[i] = snap
	}

	s.engine, err = cubestate.Resume(history, s.engineOptions(opts)...)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}

	log.Debug(log.CatSession, "Session opened", "session", sessionID, "depth", s.engine.Depth())
	return s, nil
}

func (s *Session) engineOptions(opts []cubestate.Option) []cubestate.Option {
	return append(append([]cubestate.Option(nil), opts...), cubestate.WithCommitHook(s.record))
}

func (s *Session) record(ev cubestate.Event) {
	s.pending = append(s.pending, ev)
}

// flush writes pending engine events in one transaction.
func (s *Session) flush(ctx context.Context) error {
	events := s.pending
	s.pending = nil
	if len(events) == 0 {
		return nil
	}

	err := s.db.Transaction(ctx, func(tx *sql.Tx) error {
		snaps := s.snapshots.WithTx(tx)
		for _, ev := range events {
			switch ev.Kind {
			case cubestate.EventTurn:
				move := ev.Move.Notation()
				if err := snaps.Append(ctx, s.id, ev.Depth, ev.Snapshot.Encode(), &move); err != nil {
					return err
				}
			case cubestate.EventUndo:
				if err := snaps.TruncateFrom(ctx, s.id, ev.Depth+1); err != nil {
					return err
				}
			}
		}
		return s.sessions.WithTx(tx).Touch(ctx, s.id)
	})
	if err != nil {
		// The engine is now ahead of storage; reopening the session resyncs it.
		log.ErrorErr(log.CatSession, "Failed to persist history", err, "session", s.id)
		return fmt.Errorf("failed to persist session %s: %w", s.id, err)
	}
	return nil
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.id
}

// Turn commits moves, one history entry each.
func (s *Session) Turn(ctx context.Context, moves ...cubestate.Move) error {
	if err := s.engine.Apply(moves...); err != nil {
		return err
	}
	return s.flush(ctx)
}

// Shuffle applies n random Right-face turns.
func (s *Session) Shuffle(ctx context.Context, n int) ([]cubestate.Move, error) {
	moves, err := s.engine.Shuffle(n)
	if err != nil {
		return nil, err
	}
	return moves, s.flush(ctx)
}

// Undo reverts the most recent committed turn. At the floor it returns
// cubestate.ErrNothingToUndo.
func (s *Session) Undo(ctx context.Context) error {
	if err := s.engine.Undo(); err != nil {
		return err
	}
	return s.flush(ctx)
}

// Snapshot returns a read-only view of the current state.
func (s *Session) Snapshot() cubestate.Snapshot {
	return s.engine.Snapshot()
}

// IsSolved reports whether the current state is solved.
func (s *Session) IsSolved() bool {
	return s.engine.IsSolved()
}

// Depth returns how many turns can be undone.
func (s *Session) Depth() int {
	return s.engine.Depth()
}
