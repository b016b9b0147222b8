package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/akinalp/fikra/models"
	"github.com/akinalp/fikra/pkg"
	"github.com/akinalp/fikra/repository"
	"github.com/akinalp/fikra/ws"
)

// CommentService, yorum işlemlerini yönetir.
type CommentService interface {
	Create(ctx context.Context, userID string, req *models.CreateCommentRequest) (*models.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	// Update, yorumu günceller. Yorum yoksa veya kullanıcıya ait değilse
	// ErrNotFound döner — başkasının yorumunun varlığı sızdırılmaz.
	Update(ctx context.Context, userID string, req *models.UpdateCommentRequest) error
}

// commentService, CommentService implementasyonu.
type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	hub         ws.EventPublisher
}

// NewCommentService, constructor.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	hub ws.EventPublisher,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		hub:         hub,
	}
}

func (s *commentService) Create(ctx context.Context, userID string, req *models.CreateCommentRequest) (*models.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	// Var olmayan post'a yorum yapılamaz.
	if _, err := s.postRepo.GetOwnerID(ctx, req.PostID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: post does not exist", pkg.ErrNotFound)
		}
		return nil, err
	}

	comment := &models.Comment{
		ID:      uuid.New().String(),
		Content: req.Comment,
		PostID:  req.PostID,
		UserID:  userID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.hub.BroadcastToAll(ws.Event{Op: ws.OpCommentCreate, Data: comment})

	return comment, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	if _, err := s.postRepo.GetOwnerID(ctx, postID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: post does not exist", pkg.ErrNotFound)
		}
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *commentService) Update(ctx context.Context, userID string, req *models.UpdateCommentRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}
	return s.commentRepo.UpdateContent(ctx, req.CommentID, userID, req.Comment)
}
