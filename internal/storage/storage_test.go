package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var solved = strings.Repeat("W", 9) + strings.Repeat("Y", 9) + strings.Repeat("R", 9) +
	strings.Repeat("O", 9) + strings.Repeat("G", 9) + strings.Repeat("B", 9)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "Open should create and migrate the database")
	t.Cleanup(func() { db.Close() })
	return db
}

func strPtr(s string) *string { return &s }

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err, "reopening should not re-run migrations")
	defer db.Close()

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "snapshots", name)
	assert.Equal(t, path, db.Path())
}

func TestSessionRepository_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(openTestDB(t))

	id, err := repo.Create(ctx, "lunch break")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	s, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, id, s.SessionID)
	require.NotNil(t, s.Name)
	assert.Equal(t, "lunch break", *s.Name)

	missing, err := repo.Get(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSessionRepository_ListAndLast(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(openTestDB(t))

	last, err := repo.GetLast(ctx)
	require.NoError(t, err)
	assert.Nil(t, last)

	first, err := repo.Create(ctx, "")
	require.NoError(t, err)
	second, err := repo.Create(ctx, "")
	require.NoError(t, err)
	require.NoError(t, repo.Touch(ctx, first))

	last, err = repo.GetLast(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, first, last.SessionID)
	assert.Nil(t, last.Name)

	list, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first, list[0].SessionID)
	assert.Equal(t, second, list[1].SessionID)
}

func TestSnapshotRepository_AppendTruncate(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	snaps := NewSnapshotRepository(db)

	id, err := sessions.Create(ctx, "")
	require.NoError(t, err)

	require.NoError(t, snaps.Append(ctx, id, 0, solved, nil))
	require.NoError(t, snaps.Append(ctx, id, 1, solved, strPtr("R")))
	require.NoError(t, snaps.Append(ctx, id, 2, solved, strPtr("R'")))

	n, err := snaps.Count(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, snaps.TruncateFrom(ctx, id, 2))

	records, err := snaps.List(ctx, id)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Nil(t, records[0].Move)
	require.NotNil(t, records[1].Move)
	assert.Equal(t, "R", *records[1].Move)
	assert.Equal(t, 1, records[1].Seq)
}

func TestSnapshotRepository_RejectsBadRows(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	id, err := NewSessionRepository(db).Create(ctx, "")
	require.NoError(t, err)
	snaps := NewSnapshotRepository(db)

	assert.Error(t, snaps.Append(ctx, id, 0, "WWW", nil), "facelets must be 54 long")
	assert.Error(t, snaps.Append(ctx, "unknown", 0, solved, nil), "session must exist")

	require.NoError(t, snaps.Append(ctx, id, 0, solved, nil))
	assert.Error(t, snaps.Append(ctx, id, 0, solved, nil), "seq must be unique")
}

func TestSessionDelete_Cascades(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	snaps := NewSnapshotRepository(db)

	id, err := sessions.Create(ctx, "")
	require.NoError(t, err)
	require.NoError(t, snaps.Append(ctx, id, 0, solved, nil))

	require.NoError(t, sessions.Delete(ctx, id))

	n, err := snaps.Count(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestTransaction_RollsBack(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	id, err := NewSessionRepository(db).Create(ctx, "")
	require.NoError(t, err)
	snaps := NewSnapshotRepository(db)

	err = db.Transaction(ctx, func(tx *sql.Tx) error {
		if err := snaps.WithTx(tx).Append(ctx, id, 0, solved, nil); err != nil {
			return err
		}
		return snaps.WithTx(tx).Append(ctx, id, 0, solved, nil) // duplicate seq
	})
	require.Error(t, err)

	n, err := snaps.Count(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "failed transaction must leave no rows")
}
