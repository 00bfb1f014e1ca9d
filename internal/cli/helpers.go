package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/recorder"
	"github.com/SeamusWaldron/cubestate/internal/render"
	"github.com/SeamusWaldron/cubestate/internal/storage"
)

func openDB() (*storage.DB, error) {
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func loadStateFile() (*recorder.StateFile, error) {
	sf, err := recorder.NewStateFile(cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return sf, nil
}

// resolveSessionID returns id when set, otherwise the active session.
func resolveSessionID(id string) (string, error) {
	if id != "" {
		return id, nil
	}
	sf, err := loadStateFile()
	if err != nil {
		return "", err
	}
	if !sf.HasActiveSession() {
		return "", fmt.Errorf("%w\nStart one with: cubestate new", recorder.ErrNoActiveSession)
	}
	return sf.ActiveSessionID(), nil
}

// openSession opens the named or active session.
func openSession(ctx context.Context, db *storage.DB, id string) (*recorder.Session, error) {
	id, err := resolveSessionID(id)
	if err != nil {
		return nil, err
	}

	opts, err := cfg.EngineOptions()
	if err != nil {
		return nil, err
	}

	session, err := recorder.Open(ctx, db, id, opts...)
	if err != nil {
		if errors.Is(err, recorder.ErrSessionNotFound) {
			return nil, fmt.Errorf("%w\nList sessions with: cubestate list", err)
		}
		return nil, fmt.Errorf("failed to open session: %w", err)
	}
	return session, nil
}

func printCube(w io.Writer, snap cubestate.Snapshot, depth int) {
	fmt.Fprintln(w, render.New(cfg.Color).Net(snap))
	fmt.Fprintln(w)
	fmt.Fprintln(w, render.Status(snap, depth))
}
