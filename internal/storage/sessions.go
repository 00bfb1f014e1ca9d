package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents a recorded cube session in the database.
type Session struct {
	SessionID string
	Name      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	q queryer
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{q: db}
}

// WithTx returns a repository that runs its statements inside tx.
func (r *SessionRepository) WithTx(tx *sql.Tx) *SessionRepository {
	return &SessionRepository{q: tx}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(ctx context.Context, name string) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC().Format(timeFormat)

	var namePtr *string
	if name != "" {
		namePtr = &name
	}

	_, err := r.q.ExecContext(ctx, `
		INSERT INTO sessions (session_id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, id, namePtr, now, now)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// Get retrieves a session by ID. Returns nil if not found.
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*Session, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT session_id, name, created_at, updated_at
		FROM sessions
		WHERE session_id = ?
	`, sessionID)
	return scanSession(row)
}

// GetLast retrieves the most recently updated session. Returns nil if none exist.
func (r *SessionRepository) GetLast(ctx context.Context) (*Session, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT session_id, name, created_at, updated_at
		FROM sessions
		ORDER BY updated_at DESC
		LIMIT 1
	`)
	return scanSession(row)
}

// List retrieves sessions, most recently updated first.
func (r *SessionRepository) List(ctx context.Context, limit int) ([]Session, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT session_id, name, created_at, updated_at
		FROM sessions
		ORDER BY updated_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return sessions, nil
}

// Touch updates a session's updated_at timestamp.
func (r *SessionRepository) Touch(ctx context.Context, sessionID string) error {
	now := time.Now().UTC().Format(timeFormat)
	_, err := r.q.ExecContext(ctx, "UPDATE sessions SET updated_at = ? WHERE session_id = ?", now, sessionID)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

// Delete removes a session and, by cascade, its snapshots.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.q.ExecContext(ctx, "DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var createdAt, updatedAt string
	err := row.Scan(&s.SessionID, &s.Name, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}

	s.CreatedAt, err = time.Parse(timeFormat, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	s.UpdatedAt, err = time.Parse(timeFormat, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return &s, nil
}
