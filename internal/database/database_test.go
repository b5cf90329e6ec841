package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func countPlaces(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM places").Scan(&count); err != nil {
		t.Fatalf("count places: %v", err)
	}
	return count
}

func insertPlace(ctx context.Context, tx *sql.Tx, id string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO places (id, name, lat, lng, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, "Test Fort", 26.9, 75.8, time.Now().Unix(), time.Now().Unix())
	return err
}

func TestInitAndTransaction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	if err := Init(Config{Path: path}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { Close() })

	conn := GetDB()
	if err := Migrate(conn); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	ctx := context.Background()

	t.Run("rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := Transaction(ctx, func(tx *sql.Tx) error {
			if err := insertPlace(ctx, tx, "rollback-1"); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("err = %v, want the callback error", err)
		}
		if got := countPlaces(t, conn); got != 0 {
			t.Errorf("places = %d after rollback, want 0", got)
		}
	})

	t.Run("commits on success", func(t *testing.T) {
		err := Transaction(ctx, func(tx *sql.Tx) error {
			return insertPlace(ctx, tx, "commit-1")
		})
		if err != nil {
			t.Fatalf("Transaction: %v", err)
		}
		if got := countPlaces(t, conn); got != 1 {
			t.Errorf("places = %d after commit, want 1", got)
		}
	})
}
