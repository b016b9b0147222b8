// Package database — Transaction yönetimi.
//
// Reaction akışı gibi çok adımlı işlemler (reaction yaz + post sayaçlarını
// güncelle) atomik olmak zorundadır: ya her adım kalıcı olur ya hiçbiri.
// WithTx bu all-or-nothing davranışını sağlar:
//
//	err := database.WithTx(ctx, db.Conn, func(tx *sql.Tx) error {
//	    if err := reactionRepo.Create(ctx, tx, ...); err != nil {
//	        return err // → ROLLBACK
//	    }
//	    return postRepo.ApplyReactionDelta(ctx, tx, ...) // nil → COMMIT
//	})
//
// Repository'ler *sql.DB yerine TxQuerier interface'i kabul eder —
// hem *sql.DB hem *sql.Tx bu interface'i karşılar (duck typing),
// böylece aynı repository kodu transaction içinde ve dışında çalışır.
package database

import (
	"context"
	"database/sql"
	"fmt"
)

// TxQuerier, hem *sql.DB hem *sql.Tx tarafından karşılanan interface.
// database/sql bu interface'i tanımlamaz — biz tanımlıyoruz.
type TxQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx, verilen fonksiyonu bir SQL transaction içinde çalıştırır.
//
// 1. BEGIN TRANSACTION
// 2. fn(tx) çağır
// 3. fn nil dönerse → COMMIT
// 4. fn error dönerse → ROLLBACK
// 5. fn panic atarsa → ROLLBACK + panic'i tekrar fırlat
//
// Panic recovery olmadan transaction açık kalır ve SQLite write lock'u
// serbest bırakılmaz — recover + rollback + re-panic şart.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)
			}
			return
		}

		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", commitErr)
		}
	}()

	err = fn(tx)
	return
}
