package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db))
	return db
}

func countReports(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM reports`).Scan(&n))
	return n
}

func TestWithTxCommits(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	ctx := context.Background()

	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO reports(id, road_address, purpose, price_line, plan, status, issued_at)
		VALUES('r1', '서울시 마포구 월드컵북로 400', 'jeonse', '전세 2억', 'once', 'done', '2026-08-30 10:00:00')`)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, countReports(t, db))
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		_, execErr := tx.ExecContext(ctx, `
		INSERT INTO reports(id, road_address, purpose, price_line, plan, status, issued_at)
		VALUES('r1', '서울시 마포구 월드컵북로 400', 'jeonse', '전세 2억', 'once', 'done', '2026-08-30 10:00:00')`)
		require.NoError(t, execErr)
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, countReports(t, db), "failed tx must leave no partial row")
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	require.NoError(t, RunMigrations(db))
}
