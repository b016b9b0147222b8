package repository

import (
	"context"

	"github.com/akinalp/fikra/models"
)

// ReactionRepository, post reaction veritabanı işlemleri için interface.
//
// GetByPostAndUser: UNIQUE(post_id, user_id) anahtarı üzerinden lookup;
// kayıt yoksa pkg.ErrNotFound döner.
//
// Create: yeni reaction ekler. (post_id, user_id) zaten varsa UNIQUE
// constraint tetiklenir ve pkg.ErrAlreadyExists döner — service önce
// GetByPostAndUser ile kontrol eder, constraint eşzamanlı insert
// yarışlarına karşı güvenlik ağıdır.
//
// UpdateKind: mevcut reaction'ı yerinde flip'ler, updated_at'i günceller.
// Reaction silme operasyonu bilinçli olarak YOKTUR.
type ReactionRepository interface {
	GetByPostAndUser(ctx context.Context, postID, userID string) (*models.Reaction, error)
	Create(ctx context.Context, reaction *models.Reaction) error
	UpdateKind(ctx context.Context, reactionID string, kind models.ReactionKind) error
}
