package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akinalp/fikra/models"
	"github.com/akinalp/fikra/pkg"
	"github.com/akinalp/fikra/pkg/cache"
	"github.com/akinalp/fikra/repository"
)

// dateLayout, analytics tarih parametrelerinin formatı.
const dateLayout = "2006-01-02"

// AnalyticsService, post reaction istatistiklerini sunar.
type AnalyticsService interface {
	// PostReactionsByDay, bir post'un like/dislike sayılarını güne göre döner.
	//
	// Erişim kuralı: istatistikleri SADECE post'un sahibi görebilir.
	// Hata sırası sabittir:
	// 1. Tarih aralığı geçersiz (from > to) → ErrInvalidDateRange (store'a gidilmez)
	// 2. Post yok → ErrNotFound
	// 3. İstekte bulunan sahibi değil → ErrForbidden
	PostReactionsByDay(ctx context.Context, postID, requesterID, from, to string) ([]models.DayBucket, error)
}

// analyticsService, AnalyticsService implementasyonu.
type analyticsService struct {
	postRepo      repository.PostRepository
	analyticsRepo repository.AnalyticsRepository

	// ownerCache: postID → ownerID. Post sahipliği değişmez bir veri,
	// TTL cache ile her analytics isteğinde DB'ye gitmekten kaçınılır.
	ownerCache *cache.TTLCache[string, string]
}

// NewAnalyticsService, constructor.
func NewAnalyticsService(
	postRepo repository.PostRepository,
	analyticsRepo repository.AnalyticsRepository,
	ownerCache *cache.TTLCache[string, string],
) AnalyticsService {
	return &analyticsService{
		postRepo:      postRepo,
		analyticsRepo: analyticsRepo,
		ownerCache:    ownerCache,
	}
}

func (s *analyticsService) PostReactionsByDay(ctx context.Context, postID, requesterID, from, to string) ([]models.DayBucket, error) {
	// 1. Tarih validasyonu — store'a dokunmadan ÖNCE.
	fromDate, err := time.Parse(dateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start_date, expected YYYY-MM-DD", pkg.ErrBadRequest)
	}
	toDate, err := time.Parse(dateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end_date, expected YYYY-MM-DD", pkg.ErrBadRequest)
	}
	if fromDate.After(toDate) {
		return nil, pkg.ErrInvalidDateRange
	}

	// 2. Post var mı + 3. sahibi mi?
	ownerID, err := s.getOwnerID(ctx, postID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: post does not exist", pkg.ErrNotFound)
		}
		return nil, err
	}
	if ownerID != requesterID {
		return nil, fmt.Errorf("%w: only the post owner can view its analytics", pkg.ErrForbidden)
	}

	return s.analyticsRepo.CountByDay(ctx, postID, from, to)
}

// getOwnerID, post sahibini cache üzerinden bulur.
// Cache miss'te DB'ye gidilir ve sonuç cache'e yazılır.
// Negatif sonuç (post yok) CACHE'LENMEZ — yeni oluşturulan bir post'un
// analytics'i ilk istekte çalışmalı.
func (s *analyticsService) getOwnerID(ctx context.Context, postID string) (string, error) {
	if ownerID, ok := s.ownerCache.Get(postID); ok {
		return ownerID, nil
	}

	ownerID, err := s.postRepo.GetOwnerID(ctx, postID)
	if err != nil {
		return "", err
	}

	s.ownerCache.Set(postID, ownerID)
	return ownerID, nil
}
