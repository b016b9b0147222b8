package services

import (
	"context"
	"errors"
	"testing"

	"github.com/akinalp/fikra/database"
	"github.com/akinalp/fikra/models"
	"github.com/akinalp/fikra/pkg"
	"github.com/akinalp/fikra/repository"
)

func newPostTestService(db *database.DB) PostService {
	return NewPostService(repository.NewSQLitePostRepo(db.Conn), newTestHub())
}

func TestPostCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := newPostTestService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "writer")

	created, err := svc.Create(ctx, user.ID, &models.CreatePostRequest{Content: "  merhaba dünya  "})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Content != "merhaba dünya" {
		t.Errorf("content must be trimmed, got %q", created.Content)
	}
	if created.Likes != 0 || created.Dislikes != 0 {
		t.Errorf("new post must start with zero counters, got likes=%d dislikes=%d", created.Likes, created.Dislikes)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.UserID != user.ID || got.Content != created.Content {
		t.Fatalf("unexpected post: %+v", got)
	}
}

func TestPostCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newPostTestService(db)

	user := createTestUser(t, db, "writer")

	_, err := svc.Create(context.Background(), user.ID, &models.CreatePostRequest{Content: "   "})
	if !errors.Is(err, pkg.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for blank content, got %v", err)
	}
}

func TestPostGetUnknown(t *testing.T) {
	db := newTestDB(t)
	svc := newPostTestService(db)

	_, err := svc.GetByID(context.Background(), "no-such-post")
	if !errors.Is(err, pkg.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFeedPagination(t *testing.T) {
	db := newTestDB(t)
	svc := newPostTestService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "writer")
	for i := 0; i < 5; i++ {
		createTestPost(t, db, user.ID, "post")
	}

	page, err := svc.Feed(ctx, 3, 0)
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(page) != 3 {
		t.Fatalf("expected 3 posts on first page, got %d", len(page))
	}

	page, err = svc.Feed(ctx, 3, 3)
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 posts on second page, got %d", len(page))
	}

	// Veri bittikten sonraki sayfa boş slice'tır, nil değil.
	page, err = svc.Feed(ctx, 3, 100)
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if page == nil || len(page) != 0 {
		t.Fatalf("expected empty slice past the end, got %+v", page)
	}
}

func TestFeedLimitClamping(t *testing.T) {
	db := newTestDB(t)
	svc := newPostTestService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "writer")
	for i := 0; i < 25; i++ {
		createTestPost(t, db, user.ID, "post")
	}

	// limit <= 0 varsayılana düşer.
	page, err := svc.Feed(ctx, 0, 0)
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(page) != defaultFeedLimit {
		t.Errorf("expected default limit %d, got %d", defaultFeedLimit, len(page))
	}

	// Negatif offset sıfırlanır, aşırı limit tavana çekilir.
	page, err = svc.Feed(ctx, maxFeedLimit+500, -10)
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(page) != 25 {
		t.Errorf("expected all 25 posts, got %d", len(page))
	}
}
