package services

import (
	"context"
	"time"

	"github.com/akinalp/fikra/models"
	"github.com/akinalp/fikra/repository"
)

// UserService, kullanıcı profil ve aktivite işlemlerini yönetir.
type UserService interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetActivity, kullanıcının son login ve son istek zamanlarını döner.
	GetActivity(ctx context.Context, id string) (*models.UserActivity, error)
	// TouchLastRequest, authenticated her istekte middleware tarafından çağrılır.
	TouchLastRequest(ctx context.Context, id string) error
}

// userService, UserService implementasyonu.
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService, constructor.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *userService) GetActivity(ctx context.Context, id string) (*models.UserActivity, error) {
	return s.userRepo.GetActivityByID(ctx, id)
}

func (s *userService) TouchLastRequest(ctx context.Context, id string) error {
	return s.userRepo.TouchLastRequest(ctx, id, time.Now().UTC())
}
