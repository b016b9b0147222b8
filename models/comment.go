package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxCommentLength, bir yorumun maksimum karakter uzunluğu.
const MaxCommentLength = 300

// Comment, bir post'a yapılmış yorumu temsil eder.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"comment"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommentRequest, yorum oluştururken gelen veri.
type CreateCommentRequest struct {
	PostID  string `json:"post_id"`
	Comment string `json:"comment"`
}

// Validate, yorum içeriğini kontrol eder.
func (r *CreateCommentRequest) Validate() error {
	if strings.TrimSpace(r.PostID) == "" {
		return fmt.Errorf("post_id is required")
	}
	r.Comment = strings.TrimSpace(r.Comment)
	if r.Comment == "" {
		return fmt.Errorf("comment is required")
	}
	if utf8.RuneCountInString(r.Comment) > MaxCommentLength {
		return fmt.Errorf("comment must be at most %d characters", MaxCommentLength)
	}
	return nil
}

// UpdateCommentRequest, yorum güncellerken gelen veri.
type UpdateCommentRequest struct {
	CommentID string `json:"comment_id"`
	Comment   string `json:"comment"`
}

// Validate, güncelleme isteğini kontrol eder.
func (r *UpdateCommentRequest) Validate() error {
	if strings.TrimSpace(r.CommentID) == "" {
		return fmt.Errorf("comment_id is required")
	}
	r.Comment = strings.TrimSpace(r.Comment)
	if r.Comment == "" {
		return fmt.Errorf("comment is required")
	}
	if utf8.RuneCountInString(r.Comment) > MaxCommentLength {
		return fmt.Errorf("comment must be at most %d characters", MaxCommentLength)
	}
	return nil
}
