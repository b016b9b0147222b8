package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func newTxTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "tx_test.db"), Migrations())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func countUsers(t *testing.T, db *DB) int {
	t.Helper()

	var n int
	if err := db.Conn.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}

func insertUser(tx *sql.Tx, id string) error {
	_, err := tx.Exec(
		`INSERT INTO users (id, username, email, password_hash) VALUES (?, ?, ?, ?)`,
		id, "user-"+id, id+"@example.com", "hash",
	)
	return err
}

func TestWithTxCommit(t *testing.T) {
	db := newTxTestDB(t)

	err := WithTx(context.Background(), db.Conn, func(tx *sql.Tx) error {
		return insertUser(tx, "a1")
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	if got := countUsers(t, db); got != 1 {
		t.Errorf("expected 1 user after commit, got %d", got)
	}
}

func TestWithTxRollbackOnError(t *testing.T) {
	db := newTxTestDB(t)
	boom := errors.New("boom")

	err := WithTx(context.Background(), db.Conn, func(tx *sql.Tx) error {
		if err := insertUser(tx, "a1"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected original error, got %v", err)
	}

	// İlk insert başarılıydı ama hata rollback tetikler — hiçbir satır kalmaz.
	if got := countUsers(t, db); got != 0 {
		t.Errorf("expected 0 users after rollback, got %d", got)
	}
}

func TestWithTxRollbackOnPanic(t *testing.T) {
	db := newTxTestDB(t)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("panic must propagate out of WithTx")
			}
		}()

		_ = WithTx(context.Background(), db.Conn, func(tx *sql.Tx) error {
			if err := insertUser(tx, "a1"); err != nil {
				return err
			}
			panic("something went wrong mid-transaction")
		})
	}()

	if got := countUsers(t, db); got != 0 {
		t.Errorf("expected 0 users after panic rollback, got %d", got)
	}

	// Transaction lock bırakılmış olmalı — yeni yazma çalışır.
	err := WithTx(context.Background(), db.Conn, func(tx *sql.Tx) error {
		return insertUser(tx, "a2")
	})
	if err != nil {
		t.Fatalf("write after panic rollback failed: %v", err)
	}
}
