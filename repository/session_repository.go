package repository

import (
	"context"

	"github.com/akinalp/fikra/models"
)

// SessionRepository, refresh token oturumları için interface.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByRefreshToken(ctx context.Context, refreshToken string) (*models.Session, error)
	DeleteByID(ctx context.Context, id string) error
	// DeleteByUserID, kullanıcının tüm oturumlarını iptal eder
	// (şifre sıfırlama sonrası güvenlik için).
	DeleteByUserID(ctx context.Context, userID string) error
}
