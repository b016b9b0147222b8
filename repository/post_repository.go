package repository

import (
	"context"

	"github.com/akinalp/fikra/models"
)

// PostRepository, post veritabanı işlemleri için interface.
//
// ApplyReactionDelta: post'un denormalize like/dislike sayaçlarını GÖRELİ
// delta ile günceller (SET likes = likes + ?). Sayaç asla Go tarafında
// okunup geri yazılmaz — read-then-write, eşzamanlı reaction'larda
// lost update'e yol açar. Delta'lı UPDATE + transaction bu riski kapatır.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	// GetOwnerID, sadece post sahibinin user_id'sini döner —
	// analytics ownership check'in ihtiyacı olan tek alan.
	GetOwnerID(ctx context.Context, id string) (string, error)
	List(ctx context.Context, limit, offset int) ([]models.Post, error)
	ApplyReactionDelta(ctx context.Context, postID string, likesDelta, dislikesDelta int) error
}
