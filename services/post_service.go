package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/akinalp/fikra/models"
	"github.com/akinalp/fikra/pkg"
	"github.com/akinalp/fikra/repository"
	"github.com/akinalp/fikra/ws"
)

// Feed sayfalama sınırları.
const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

// PostService, post oluşturma ve feed okuma işlemlerini yönetir.
type PostService interface {
	Create(ctx context.Context, userID string, req *models.CreatePostRequest) (*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	// Feed, en yeni post'tan eskiye doğru sayfalanmış liste döner.
	Feed(ctx context.Context, limit, offset int) ([]models.Post, error)
}

// postService, PostService implementasyonu.
type postService struct {
	postRepo repository.PostRepository
	hub      ws.EventPublisher
}

// NewPostService, constructor.
func NewPostService(postRepo repository.PostRepository, hub ws.EventPublisher) PostService {
	return &postService{postRepo: postRepo, hub: hub}
}

func (s *postService) Create(ctx context.Context, userID string, req *models.CreatePostRequest) (*models.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	post := &models.Post{
		ID:      uuid.New().String(),
		Content: req.Content,
		UserID:  userID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.hub.BroadcastToAll(ws.Event{Op: ws.OpPostCreate, Data: post})

	return post, nil
}

func (s *postService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *postService) Feed(ctx context.Context, limit, offset int) ([]models.Post, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.postRepo.List(ctx, limit, offset)
}
