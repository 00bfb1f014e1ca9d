package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SnapshotRecord is one history entry of a session. Seq 0 is the floor.
type SnapshotRecord struct {
	SessionID string
	Seq       int
	Facelets  string
	Move      *string // nil for the floor
	CreatedAt time.Time
}

// SnapshotRepository provides operations on a session's snapshot stack.
type SnapshotRepository struct {
	q queryer
}

// NewSnapshotRepository creates a new snapshot repository.
func NewSnapshotRepository(db *DB) *SnapshotRepository {
	return &SnapshotRepository{q: db}
}

// WithTx returns a repository that runs its statements inside tx.
func (r *SnapshotRepository) WithTx(tx *sql.Tx) *SnapshotRepository {
	return &SnapshotRepository{q: tx}
}

// Append stores a snapshot at position seq.
func (r *SnapshotRepository) Append(ctx context.Context, sessionID string, seq int, facelets string, move *string) error {
	now := time.Now().UTC().Format(timeFormat)
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO snapshots (session_id, seq, facelets, move, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, sessionID, seq, facelets, move, now)
	if err != nil {
		return fmt.Errorf("failed to append snapshot: %w", err)
	}
	return nil
}

// TruncateFrom deletes every snapshot with seq >= from.
func (r *SnapshotRepository) TruncateFrom(ctx context.Context, sessionID string, from int) error {
	_, err := r.q.ExecContext(ctx, "DELETE FROM snapshots WHERE session_id = ? AND seq >= ?", sessionID, from)
	if err != nil {
		return fmt.Errorf("failed to truncate snapshots: %w", err)
	}
	return nil
}

// List retrieves a session's snapshots, floor first.
func (r *SnapshotRepository) List(ctx context.Context, sessionID string) ([]SnapshotRecord, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT session_id, seq, facelets, move, created_at
		FROM snapshots
		WHERE session_id = ?
		ORDER BY seq
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshots: %w", err)
	}
	defer rows.Close()

	var records []SnapshotRecord
	for rows.Next() {
		var rec SnapshotRecord
		var createdAt string
		if err := rows.Scan(&rec.SessionID, &rec.Seq, &rec.Facelets, &rec.Move, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		rec.CreatedAt, err = time.Parse(timeFormat, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get snapshots: %w", err)
	}

	return records, nil
}

// Count returns the number of snapshots for a session.
func (r *SnapshotRepository) Count(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM snapshots WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}
	return count, nil
}
