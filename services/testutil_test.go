package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/akinalp/fikra/database"
	"github.com/akinalp/fikra/models"
	"github.com/akinalp/fikra/repository"
	"github.com/akinalp/fikra/ws"
)

// newTestDB, geçici dosyada gerçek bir SQLite veritabanı açar.
// In-memory yerine dosya kullanılır — production ile aynı WAL/locking
// davranışı test edilir. t.TempDir() test bitince otomatik silinir.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "fikra_test.db"), database.Migrations())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// newTestHub, broadcast'leri yutan gerçek bir Hub döner.
// Run() başlatılmaz — client yokken BroadcastToAll no-op'tur.
func newTestHub() *ws.Hub {
	return ws.NewHub()
}

// createTestUser, FK constraint'leri için gerçek bir kullanıcı satırı oluşturur.
func createTestUser(t *testing.T, db *database.DB, name string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     name,
		Email:        name + "@example.com",
		PasswordHash: "irrelevant",
		Confirmed:    true,
		IsActive:     true,
	}
	if err := repository.NewSQLiteUserRepo(db.Conn).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user %s: %v", name, err)
	}
	return user
}

// createTestPost, verilen kullanıcıya ait bir post oluşturur.
func createTestPost(t *testing.T, db *database.DB, userID, content string) *models.Post {
	t.Helper()

	post := &models.Post{
		ID:      uuid.New().String(),
		Content: content,
		UserID:  userID,
	}
	if err := repository.NewSQLitePostRepo(db.Conn).Create(context.Background(), post); err != nil {
		t.Fatalf("failed to create test post: %v", err)
	}
	return post
}

// getPost, post'un güncel halini okur.
func getPost(t *testing.T, db *database.DB, postID string) *models.Post {
	t.Helper()

	post, err := repository.NewSQLitePostRepo(db.Conn).GetByID(context.Background(), postID)
	if err != nil {
		t.Fatalf("failed to get post %s: %v", postID, err)
	}
	return post
}

// countReactionRows, bir post için post_reactions tablosundaki satır sayısını döner.
func countReactionRows(t *testing.T, db *database.DB, postID string) int {
	t.Helper()

	var count int
	err := db.Conn.QueryRow(`SELECT COUNT(*) FROM post_reactions WHERE post_id = ?`, postID).Scan(&count)
	if err != nil {
		t.Fatalf("failed to count reactions: %v", err)
	}
	return count
}

// seedReactionAt, belirli bir created_at tarihi ile reaction satırı ekler.
// Analytics testleri geçmiş tarihli veri üretmek için kullanır.
func seedReactionAt(t *testing.T, db *database.DB, postID, userID string, kind models.ReactionKind, createdAt string) {
	t.Helper()

	_, err := db.Conn.Exec(`
		INSERT INTO post_reactions (id, post_id, user_id, reaction, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), postID, userID, kind, createdAt, createdAt,
	)
	if err != nil {
		t.Fatalf("failed to seed reaction: %v", err)
	}
}
