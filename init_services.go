// Package main — Service katmanı başlatma.
//
// initServices, tüm business logic service'lerini oluşturur.
// Her service ihtiyaç duyduğu repository interface'lerini ve
// yan bağımlılıkları (hub, email sender, cache) constructor'dan alır.
package main

import (
	"time"

	"github.com/akinalp/fikra/config"
	"github.com/akinalp/fikra/database"
	"github.com/akinalp/fikra/pkg/cache"
	"github.com/akinalp/fikra/pkg/email"
	"github.com/akinalp/fikra/services"
	"github.com/akinalp/fikra/ws"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth      services.AuthService
	User      services.UserService
	Post      services.PostService
	Reaction  services.ReactionService
	Comment   services.CommentService
	Analytics services.AnalyticsService
}

// initServices, service katmanını kurar.
//
// sender nil olabilir — email gönderimi opsiyoneldir (config'e bağlı).
// ownerCache, analytics ownership lookup'larını hafifletir; Close()
// sorumluluğu main'dedir.
func initServices(
	cfg *config.Config,
	db *database.DB,
	repos *Repositories,
	hub *ws.Hub,
	sender email.EmailSender,
	ownerCache *cache.TTLCache[string, string],
) *Services {
	return &Services{
		Auth: services.NewAuthService(
			repos.User,
			repos.Session,
			sender,
			cfg.JWT.Secret,
			cfg.JWT.AccessTokenExpiry,
			cfg.JWT.RefreshTokenExpiry,
			cfg.JWT.EmailTokenExpiry,
			cfg.Auth.AutoConfirm,
		),
		User:      services.NewUserService(repos.User),
		Post:      services.NewPostService(repos.Post, hub),
		Reaction:  services.NewReactionService(db, hub),
		Comment:   services.NewCommentService(repos.Comment, repos.Post, hub),
		Analytics: services.NewAnalyticsService(repos.Post, repos.Analytics, ownerCache),
	}
}

// newOwnerCache, post sahipliği cache'ini oluşturur.
// TTL kısa tutulur — sahiplik değişmez ama post silinme senaryolarında
// stale entry uzun yaşamasın.
func newOwnerCache() *cache.TTLCache[string, string] {
	return cache.New[string, string](5*time.Minute, 10*time.Minute)
}
