package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/fikra/database"
	"github.com/akinalp/fikra/models"
	"github.com/akinalp/fikra/pkg"
)

// sqliteReactionRepo, ReactionRepository interface'inin SQLite implementasyonu.
type sqliteReactionRepo struct {
	db database.TxQuerier
}

// NewSQLiteReactionRepo, constructor — interface döner.
func NewSQLiteReactionRepo(db database.TxQuerier) ReactionRepository {
	return &sqliteReactionRepo{db: db}
}

func (r *sqliteReactionRepo) GetByPostAndUser(ctx context.Context, postID, userID string) (*models.Reaction, error) {
	query := `
		SELECT id, post_id, user_id, reaction, created_at, updated_at
		FROM post_reactions
		WHERE post_id = ? AND user_id = ?`

	reaction := &models.Reaction{}
	err := r.db.QueryRowContext(ctx, query, postID, userID).Scan(
		&reaction.ID, &reaction.PostID, &reaction.UserID,
		&reaction.Kind, &reaction.CreatedAt, &reaction.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reaction: %w", err)
	}

	return reaction, nil
}

func (r *sqliteReactionRepo) Create(ctx context.Context, reaction *models.Reaction) error {
	query := `
		INSERT INTO post_reactions (id, post_id, user_id, reaction)
		VALUES (?, ?, ?, ?)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		reaction.ID,
		reaction.PostID,
		reaction.UserID,
		reaction.Kind,
	).Scan(&reaction.CreatedAt, &reaction.UpdatedAt)

	if err != nil {
		// Eşzamanlı insert yarışı: başka bir istek aynı (post, user) için
		// reaction'ı bizden önce yazdı. Service bu hatayı yakalayıp
		// read-modify-write'ı bir kez yeniden dener.
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: reaction already exists for this post and user", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create reaction: %w", err)
	}

	return nil
}

func (r *sqliteReactionRepo) UpdateKind(ctx context.Context, reactionID string, kind models.ReactionKind) error {
	query := `
		UPDATE post_reactions
		SET reaction = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, kind, reactionID)
	if err != nil {
		return fmt.Errorf("failed to update reaction: %w", err)
	}
	return requireRowAffected(result)
}
