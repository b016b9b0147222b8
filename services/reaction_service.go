package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/akinalp/fikra/database"
	"github.com/akinalp/fikra/models"
	"github.com/akinalp/fikra/pkg"
	"github.com/akinalp/fikra/repository"
	"github.com/akinalp/fikra/ws"
)

// ReactionService, like/dislike state machine'ini yönetir.
//
// State machine:
//
//	NoReaction --like--> Liked
//	NoReaction --dislike--> Disliked
//	Liked --dislike--> Disliked  (flip: likes-1, dislikes+1)
//	Disliked --like--> Liked     (flip: dislikes-1, likes+1)
//	Liked --like--> HATA (ErrAlreadyLiked)
//	Disliked --dislike--> HATA (ErrAlreadyDisliked)
//
// Reaction'ı tamamen kaldırma geçişi YOKTUR.
type ReactionService interface {
	// React, kullanıcının bir post'a like/dislike vermesini işler.
	// Başarıda post'un güncel halini (yeni sayaçlarla) döner.
	React(ctx context.Context, postID, userID string, kind models.ReactionKind) (*models.Post, error)
}

// reactionService, ReactionService implementasyonu.
//
// Diğer service'lerden farklı olarak repository yerine *database.DB tutar:
// reaction yazma + sayaç güncelleme TEK transaction'da yapılmak zorundadır,
// bu yüzden repo'lar her çağrıda tx üzerinden yeniden oluşturulur.
type reactionService struct {
	db  *database.DB
	hub ws.EventPublisher
}

// NewReactionService, constructor.
func NewReactionService(db *database.DB, hub ws.EventPublisher) ReactionService {
	return &reactionService{db: db, hub: hub}
}

// React, reaction state machine'ini tek transaction içinde çalıştırır.
//
// Adımlar (hepsi aynı tx'te):
// 1. Post var mı? (yoksa ErrNotFound)
// 2. Kullanıcının mevcut reaction'ı var mı?
//   - Yok → INSERT + sayaç +1
//   - Var, aynı tür → ErrAlreadyLiked/ErrAlreadyDisliked (rollback, sayaç değişmez)
//   - Var, zıt tür → UPDATE kind + eski sayaç -1, yeni sayaç +1
//
// 3. Güncel post'u oku ve dön
//
// Yarış durumu: iki istek aynı anda "reaction yok" görür, ikisi de INSERT
// dener. Kaybeden UNIQUE constraint'e takılır (ErrAlreadyExists) — bu
// durumda read-modify-write BİR KEZ yeniden denenir; ikinci turda mevcut
// satır görülür ve akış normal flip/conflict yoluna girer.
func (s *reactionService) React(ctx context.Context, postID, userID string, kind models.ReactionKind) (*models.Post, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: reaction must be 'like' or 'dislike'", pkg.ErrBadRequest)
	}

	var post *models.Post

	for attempt := 0; ; attempt++ {
		err := database.WithTx(ctx, s.db.Conn, func(tx *sql.Tx) error {
			var txErr error
			post, txErr = s.applyReaction(ctx, tx, postID, userID, kind)
			return txErr
		})

		if errors.Is(err, pkg.ErrAlreadyExists) && attempt == 0 {
			// Eşzamanlı ilk-reaction yarışını kaybettik — bir kez daha dene.
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}

	s.hub.BroadcastToAll(ws.Event{
		Op: ws.OpPostReaction,
		Data: ws.PostReactionData{
			PostID:   post.ID,
			UserID:   userID,
			Reaction: string(kind),
			Likes:    post.Likes,
			Dislikes: post.Dislikes,
		},
	})

	return post, nil
}

// applyReaction, state machine'in tek bir tx içindeki gövdesi.
func (s *reactionService) applyReaction(ctx context.Context, tx *sql.Tx, postID, userID string, kind models.ReactionKind) (*models.Post, error) {
	postRepo := repository.NewSQLitePostRepo(tx)
	reactionRepo := repository.NewSQLiteReactionRepo(tx)

	// Post yoksa hiçbir şey yazılmaz.
	if _, err := postRepo.GetOwnerID(ctx, postID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: post does not exist", pkg.ErrNotFound)
		}
		return nil, err
	}

	existing, err := reactionRepo.GetByPostAndUser(ctx, postID, userID)

	switch {
	case errors.Is(err, pkg.ErrNotFound):
		// İlk reaction: INSERT + yeni türün sayacı +1.
		reaction := &models.Reaction{
			ID:     uuid.New().String(),
			PostID: postID,
			UserID: userID,
			Kind:   kind,
		}
		if err := reactionRepo.Create(ctx, reaction); err != nil {
			return nil, err // ErrAlreadyExists → caller retry eder
		}
		likesDelta, dislikesDelta := deltaFor(kind, +1)
		if err := postRepo.ApplyReactionDelta(ctx, postID, likesDelta, dislikesDelta); err != nil {
			return nil, err
		}

	case err != nil:
		return nil, err

	case existing.Kind == kind:
		// Aynı reaction tekrar istendi — durum değişmez, sayaçlar değişmez.
		if kind == models.ReactionLike {
			return nil, pkg.ErrAlreadyLiked
		}
		return nil, pkg.ErrAlreadyDisliked

	default:
		// Flip: satır yerinde güncellenir, eski tür -1, yeni tür +1.
		// Toplam reaction sayısı değişmez.
		if err := reactionRepo.UpdateKind(ctx, existing.ID, kind); err != nil {
			return nil, err
		}
		likesDelta, dislikesDelta := deltaFor(kind, +1)
		oldLikes, oldDislikes := deltaFor(existing.Kind, -1)
		if err := postRepo.ApplyReactionDelta(ctx, postID, likesDelta+oldLikes, dislikesDelta+oldDislikes); err != nil {
			return nil, err
		}
	}

	return postRepo.GetByID(ctx, postID)
}

// deltaFor, bir reaction türü için (likesDelta, dislikesDelta) çifti üretir.
func deltaFor(kind models.ReactionKind, sign int) (likesDelta, dislikesDelta int) {
	if kind == models.ReactionLike {
		return sign, 0
	}
	return 0, sign
}
