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

func newCommentTestService(db *database.DB) CommentService {
	return NewCommentService(
		repository.NewSQLiteCommentRepo(db.Conn),
		repository.NewSQLitePostRepo(db.Conn),
		newTestHub(),
	)
}

func TestCommentCreateAndList(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentTestService(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner")
	reader := createTestUser(t, db, "reader")
	post := createTestPost(t, db, owner.ID, "hello")

	first, err := svc.Create(ctx, reader.ID, &models.CreateCommentRequest{PostID: post.ID, Comment: "ilk yorum"})
	if err != nil {
		t.Fatalf("create comment failed: %v", err)
	}
	if first.ID == "" || first.UserID != reader.ID || first.PostID != post.ID {
		t.Fatalf("unexpected comment: %+v", first)
	}

	if _, err := svc.Create(ctx, owner.ID, &models.CreateCommentRequest{PostID: post.ID, Comment: "ikinci yorum"}); err != nil {
		t.Fatalf("second comment failed: %v", err)
	}

	comments, err := svc.ListByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
}

func TestCommentCreateUnknownPost(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentTestService(db)

	user := createTestUser(t, db, "user")

	_, err := svc.Create(context.Background(), user.ID, &models.CreateCommentRequest{
		PostID:  "no-such-post",
		Comment: "hello?",
	})
	if !errors.Is(err, pkg.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCommentListUnknownPost(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentTestService(db)

	_, err := svc.ListByPost(context.Background(), "no-such-post")
	if !errors.Is(err, pkg.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCommentUpdateOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentTestService(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner")
	author := createTestUser(t, db, "author")
	intruder := createTestUser(t, db, "intruder")
	post := createTestPost(t, db, owner.ID, "hello")

	comment, err := svc.Create(ctx, author.ID, &models.CreateCommentRequest{PostID: post.ID, Comment: "orijinal"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Başkasının yorumu güncellenemez — varlığı da sızdırılmaz (404, 403 değil).
	err = svc.Update(ctx, intruder.ID, &models.UpdateCommentRequest{CommentID: comment.ID, Comment: "ele geçirildi"})
	if !errors.Is(err, pkg.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign comment, got %v", err)
	}

	if err := svc.Update(ctx, author.ID, &models.UpdateCommentRequest{CommentID: comment.ID, Comment: "düzeltilmiş"}); err != nil {
		t.Fatalf("owner update failed: %v", err)
	}

	comments, err := svc.ListByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(comments) != 1 || comments[0].Content != "düzeltilmiş" {
		t.Fatalf("expected updated content, got %+v", comments)
	}
}

func TestCommentValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentTestService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "user")

	_, err := svc.Create(ctx, user.ID, &models.CreateCommentRequest{PostID: "whatever", Comment: "   "})
	if !errors.Is(err, pkg.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for blank comment, got %v", err)
	}

	err = svc.Update(ctx, user.ID, &models.UpdateCommentRequest{CommentID: "whatever", Comment: ""})
	if !errors.Is(err, pkg.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for empty update, got %v", err)
	}
}
