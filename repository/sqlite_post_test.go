package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/akinalp/fikra/database"
	"github.com/akinalp/fikra/models"
	"github.com/akinalp/fikra/pkg"
)

func newRepoTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "repo_test.db"), database.Migrations())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func seedUser(t *testing.T, db *database.DB, name string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     name,
		Email:        name + "@example.com",
		PasswordHash: "hash",
		Confirmed:    true,
		IsActive:     true,
	}
	if err := NewSQLiteUserRepo(db.Conn).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedPost(t *testing.T, db *database.DB, userID string) *models.Post {
	t.Helper()

	post := &models.Post{ID: uuid.New().String(), Content: "content", UserID: userID}
	if err := NewSQLitePostRepo(db.Conn).Create(context.Background(), post); err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}
	return post
}

func TestApplyReactionDelta(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewSQLitePostRepo(db.Conn)
	ctx := context.Background()

	user := seedUser(t, db, "writer")
	post := seedPost(t, db, user.ID)

	if err := repo.ApplyReactionDelta(ctx, post.ID, +1, 0); err != nil {
		t.Fatalf("delta failed: %v", err)
	}
	if err := repo.ApplyReactionDelta(ctx, post.ID, -1, +1); err != nil {
		t.Fatalf("flip delta failed: %v", err)
	}

	got, err := repo.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Likes != 0 || got.Dislikes != 1 {
		t.Errorf("expected likes=0 dislikes=1, got likes=%d dislikes=%d", got.Likes, got.Dislikes)
	}
}

func TestApplyReactionDeltaClampsAtZero(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewSQLitePostRepo(db.Conn)
	ctx := context.Background()

	user := seedUser(t, db, "writer")
	post := seedPost(t, db, user.ID)

	// Sayaç hiçbir koşulda negatife inmez.
	if err := repo.ApplyReactionDelta(ctx, post.ID, -5, -5); err != nil {
		t.Fatalf("delta failed: %v", err)
	}

	got, err := repo.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Likes != 0 || got.Dislikes != 0 {
		t.Errorf("counters must clamp at zero, got likes=%d dislikes=%d", got.Likes, got.Dislikes)
	}
}

func TestApplyReactionDeltaUnknownPost(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewSQLitePostRepo(db.Conn)

	err := repo.ApplyReactionDelta(context.Background(), "no-such-post", 1, 0)
	if !errors.Is(err, pkg.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReactionUniquePerUser(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewSQLiteReactionRepo(db.Conn)
	ctx := context.Background()

	user := seedUser(t, db, "reader")
	post := seedPost(t, db, seedUser(t, db, "owner").ID)

	first := &models.Reaction{
		ID:     uuid.New().String(),
		PostID: post.ID,
		UserID: user.ID,
		Kind:   models.ReactionLike,
	}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// UNIQUE(post_id, user_id) ikinci satırı engeller — kind farklı olsa bile.
	dup := &models.Reaction{
		ID:     uuid.New().String(),
		PostID: post.ID,
		UserID: user.ID,
		Kind:   models.ReactionDislike,
	}
	err := repo.Create(ctx, dup)
	if !errors.Is(err, pkg.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestReactionUpdateKind(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewSQLiteReactionRepo(db.Conn)
	ctx := context.Background()

	user := seedUser(t, db, "reader")
	post := seedPost(t, db, seedUser(t, db, "owner").ID)

	reaction := &models.Reaction{
		ID:     uuid.New().String(),
		PostID: post.ID,
		UserID: user.ID,
		Kind:   models.ReactionLike,
	}
	if err := repo.Create(ctx, reaction); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.UpdateKind(ctx, reaction.ID, models.ReactionDislike); err != nil {
		t.Fatalf("update kind failed: %v", err)
	}

	got, err := repo.GetByPostAndUser(ctx, post.ID, user.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Kind != models.ReactionDislike {
		t.Errorf("expected dislike after update, got %s", got.Kind)
	}

	if err := repo.UpdateKind(ctx, "no-such-reaction", models.ReactionLike); !errors.Is(err, pkg.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown reaction, got %v", err)
	}
}

func TestUserEmailCaseInsensitive(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewSQLiteUserRepo(db.Conn)
	ctx := context.Background()

	seedUser(t, db, "ayse")

	// COLLATE NOCASE: aynı email farklı büyük/küçük harfle tekrar kayıt edilemez.
	dup := &models.User{
		Username:     "ayse2",
		Email:        "AYSE@example.com",
		PasswordHash: "hash",
	}
	if err := repo.Create(ctx, dup); !errors.Is(err, pkg.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for case-variant email, got %v", err)
	}

	// Lookup da case-insensitive çalışır.
	user, err := repo.GetByEmail(ctx, "Ayse@Example.COM")
	if err != nil {
		t.Fatalf("case-insensitive lookup failed: %v", err)
	}
	if user.Username != "ayse" {
		t.Errorf("unexpected user: %+v", user)
	}
}
