package repository

import (
	"context"

	"github.com/akinalp/fikra/models"
)

// CommentRepository, yorum veritabanı işlemleri için interface.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	// UpdateContent, yorumu SADECE sahibi güncelleyebilsin diye
	// WHERE id = ? AND user_id = ? ile çalışır. Yorum yoksa veya
	// başkasına aitse pkg.ErrNotFound döner.
	UpdateContent(ctx context.Context, commentID, userID, content string) error
}
