package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akinalp/fikra/database"
	"github.com/akinalp/fikra/models"
	"github.com/akinalp/fikra/pkg"
	"github.com/akinalp/fikra/pkg/cache"
	"github.com/akinalp/fikra/repository"
)

func newAnalyticsService(t *testing.T, db *database.DB) AnalyticsService {
	t.Helper()

	ownerCache := cache.New[string, string](time.Minute, time.Minute)
	t.Cleanup(ownerCache.Close)

	return NewAnalyticsService(
		repository.NewSQLitePostRepo(db.Conn),
		repository.NewSQLiteAnalyticsRepo(db.Conn),
		ownerCache,
	)
}

func TestAnalyticsGroupsByDay(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(t, db)

	owner := createTestUser(t, db, "owner")
	u1 := createTestUser(t, db, "u1")
	u2 := createTestUser(t, db, "u2")
	u3 := createTestUser(t, db, "u3")
	post := createTestPost(t, db, owner.ID, "hello")

	seedReactionAt(t, db, post.ID, u1.ID, models.ReactionLike, "2023-01-05 10:00:00")
	seedReactionAt(t, db, post.ID, u2.ID, models.ReactionLike, "2023-01-10 14:30:00")
	seedReactionAt(t, db, post.ID, u3.ID, models.ReactionDislike, "2023-01-15 23:59:59")

	buckets, err := svc.PostReactionsByDay(context.Background(), post.ID, owner.ID, "2023-01-01", "2023-01-31")
	if err != nil {
		t.Fatalf("analytics failed: %v", err)
	}

	// Reaction'sız günler atlanır; satırlar artan tarihli olmalı.
	want := []models.DayBucket{
		{Date: "2023-01-05", Likes: 1, Dislikes: 0},
		{Date: "2023-01-10", Likes: 1, Dislikes: 0},
		{Date: "2023-01-15", Likes: 0, Dislikes: 1},
	}
	if len(buckets) != len(want) {
		t.Fatalf("expected %d buckets, got %d: %+v", len(want), len(buckets), buckets)
	}
	for i, b := range buckets {
		if b != want[i] {
			t.Errorf("bucket %d: expected %+v, got %+v", i, want[i], b)
		}
	}
}

func TestAnalyticsRangeIsInclusive(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(t, db)

	owner := createTestUser(t, db, "owner")
	u1 := createTestUser(t, db, "u1")
	u2 := createTestUser(t, db, "u2")
	post := createTestPost(t, db, owner.ID, "hello")

	seedReactionAt(t, db, post.ID, u1.ID, models.ReactionLike, "2023-01-05 00:00:00")
	seedReactionAt(t, db, post.ID, u2.ID, models.ReactionDislike, "2023-01-10 23:00:00")

	// Uç günler dahil: tam olarak [05, 10] aralığı her iki kaydı da kapsar.
	buckets, err := svc.PostReactionsByDay(context.Background(), post.ID, owner.ID, "2023-01-05", "2023-01-10")
	if err != nil {
		t.Fatalf("analytics failed: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets for inclusive range, got %d: %+v", len(buckets), buckets)
	}

	// Aralık dışı sorgu boş (nil değil, boş slice) dönmeli.
	buckets, err = svc.PostReactionsByDay(context.Background(), post.ID, owner.ID, "2023-01-06", "2023-01-09")
	if err != nil {
		t.Fatalf("analytics failed: %v", err)
	}
	if buckets == nil || len(buckets) != 0 {
		t.Fatalf("expected empty slice for out-of-range query, got %+v", buckets)
	}
}

func TestAnalyticsOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(t, db)

	owner := createTestUser(t, db, "owner")
	stranger := createTestUser(t, db, "stranger")
	post := createTestPost(t, db, owner.ID, "hello")

	_, err := svc.PostReactionsByDay(context.Background(), post.ID, stranger.ID, "2023-01-01", "2023-01-31")
	if !errors.Is(err, pkg.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
}

func TestAnalyticsUnknownPost(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(t, db)

	user := createTestUser(t, db, "user")

	_, err := svc.PostReactionsByDay(context.Background(), "no-such-post", user.ID, "2023-01-01", "2023-01-31")
	if !errors.Is(err, pkg.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAnalyticsInvalidDateRange(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(t, db)

	// from > to kontrolü post lookup'ından ÖNCE yapılır — post'un var
	// olmaması sonucu değiştirmemeli.
	_, err := svc.PostReactionsByDay(context.Background(), "no-such-post", "whoever", "2023-02-01", "2023-01-01")
	if !errors.Is(err, pkg.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestAnalyticsBadDateFormat(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(t, db)

	_, err := svc.PostReactionsByDay(context.Background(), "p", "u", "01/05/2023", "2023-01-31")
	if !errors.Is(err, pkg.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for bad start_date, got %v", err)
	}

	_, err = svc.PostReactionsByDay(context.Background(), "p", "u", "2023-01-01", "soon")
	if !errors.Is(err, pkg.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for bad end_date, got %v", err)
	}
}

func TestAnalyticsSingleDayRange(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(t, db)

	owner := createTestUser(t, db, "owner")
	u1 := createTestUser(t, db, "u1")
	post := createTestPost(t, db, owner.ID, "hello")

	seedReactionAt(t, db, post.ID, u1.ID, models.ReactionLike, "2023-03-07 12:00:00")

	// from == to geçerli bir aralıktır (tek gün).
	buckets, err := svc.PostReactionsByDay(context.Background(), post.ID, owner.ID, "2023-03-07", "2023-03-07")
	if err != nil {
		t.Fatalf("single-day range failed: %v", err)
	}
	if len(buckets) != 1 || buckets[0].Likes != 1 {
		t.Fatalf("expected one bucket with 1 like, got %+v", buckets)
	}
}
