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

// sqlitePostRepo, PostRepository interface'inin SQLite implementasyonu.
type sqlitePostRepo struct {
	db database.TxQuerier
}

// NewSQLitePostRepo, constructor — interface döner.
func NewSQLitePostRepo(db database.TxQuerier) PostRepository {
	return &sqlitePostRepo{db: db}
}

func (r *sqlitePostRepo) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, content, user_id)
		VALUES (?, ?, ?)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		post.ID,
		post.Content,
		post.UserID,
	).Scan(&post.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *sqlitePostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `
		SELECT id, content, likes, dislikes, user_id, created_at
		FROM posts WHERE id = ?`

	post := &models.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Content, &post.Likes, &post.Dislikes,
		&post.UserID, &post.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

func (r *sqlitePostRepo) GetOwnerID(ctx context.Context, id string) (string, error) {
	var ownerID string
	err := r.db.QueryRowContext(ctx, `SELECT user_id FROM posts WHERE id = ?`, id).Scan(&ownerID)

	if errors.Is(err, sql.ErrNoRows) {
		return "", pkg.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get post owner: %w", err)
	}

	return ownerID, nil
}

func (r *sqlitePostRepo) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	query := `
		SELECT id, content, likes, dislikes, user_id, created_at
		FROM posts
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close() // rows kapatılmazsa bağlantı leak olur

	var posts []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Content, &p.Likes, &p.Dislikes, &p.UserID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate post rows: %w", err)
	}

	if posts == nil {
		posts = []models.Post{}
	}

	return posts, nil
}

// ApplyReactionDelta, sayaçları göreli delta ile günceller.
// MAX(..., 0) güvenlik ağıdır: doğru çalışan bir state machine'de sayaç
// hiçbir zaman negatife inmez, ama CHECK constraint'i yerine burada
// clamp'lenir (SQLite'ta kolay ALTER yok).
func (r *sqlitePostRepo) ApplyReactionDelta(ctx context.Context, postID string, likesDelta, dislikesDelta int) error {
	query := `
		UPDATE posts
		SET likes = MAX(likes + ?, 0), dislikes = MAX(dislikes + ?, 0)
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, likesDelta, dislikesDelta, postID)
	if err != nil {
		return fmt.Errorf("failed to apply reaction delta: %w", err)
	}
	return requireRowAffected(result)
}
