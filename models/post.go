package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxPostLength, bir post içeriğinin maksimum karakter uzunluğu.
const MaxPostLength = 2000

// Post, bir gönderiyi temsil eder.
//
// Likes/Dislikes denormalize sayaçlardır — hızlı okuma için post üzerinde
// tutulur. Kaynak gerçek (source of truth) post_reactions tablosudur;
// sayaçlar her reaction mutasyonu ile AYNI transaction içinde güncellenir,
// asla ayrışmaz.
type Post struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	Dislikes  int       `json:"dislikes"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest, post oluştururken gelen veri.
type CreatePostRequest struct {
	Content string `json:"content"`
}

// Validate, post içeriğini kontrol eder.
func (r *CreatePostRequest) Validate() error {
	r.Content = strings.TrimSpace(r.Content)
	if r.Content == "" {
		return fmt.Errorf("content is required")
	}
	if utf8.RuneCountInString(r.Content) > MaxPostLength {
		return fmt.Errorf("content must be at most %d characters", MaxPostLength)
	}
	return nil
}
