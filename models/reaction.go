package models

import "time"

// ReactionKind, bir reaction'ın türü.
// Enum yerine typed constant kullanılır — sadece Like/Dislike geçerlidir.
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// Valid, reaction türünün bilinen bir değer olup olmadığını kontrol eder.
func (k ReactionKind) Valid() bool {
	return k == ReactionLike || k == ReactionDislike
}

// Opposite, zıt reaction türünü döner (like ↔ dislike).
func (k ReactionKind) Opposite() ReactionKind {
	if k == ReactionLike {
		return ReactionDislike
	}
	return ReactionLike
}

// Reaction, bir kullanıcının bir post'a verdiği like/dislike kaydı.
// DB'deki "post_reactions" tablosunun Go karşılığı.
//
// UNIQUE(post_id, user_id) constraint'i sayesinde bir kullanıcının bir
// post'a en fazla bir canlı reaction'ı olur. İkinci bir istek yeni satır
// yaratmaz — mevcut satır yerinde mutate edilir (reaction flip).
// Reaction silme işlemi yoktur; state machine geri NoReaction'a dönmez.
type Reaction struct {
	ID        string       `json:"id"`
	PostID    string       `json:"post_id"`
	UserID    string       `json:"user_id"`
	Kind      ReactionKind `json:"reaction"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
