package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/akinalp/fikra/models"
	"github.com/akinalp/fikra/pkg"
	"github.com/akinalp/fikra/services"
)

// PostHandler, post ve reaction endpoint'lerini yöneten struct.
type PostHandler struct {
	postService     services.PostService
	reactionService services.ReactionService
}

// NewPostHandler, constructor.
func NewPostHandler(postService services.PostService, reactionService services.ReactionService) *PostHandler {
	return &PostHandler{
		postService:     postService,
		reactionService: reactionService,
	}
}

// Create godoc
// POST /api/posts
// Body: { "content": "..." }
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.postService.Create(r.Context(), user.ID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, post)
}

// Feed godoc
// GET /api/posts?limit=20&offset=0
// En yeni post'tan eskiye doğru sayfalanmış feed.
func (h *PostHandler) Feed(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntParam(r, "limit")
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	offset, err := parseIntParam(r, "offset")
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "offset must be an integer")
		return
	}

	posts, err := h.postService.Feed(r.Context(), limit, offset)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, posts)
}

// GetByID godoc
// GET /api/posts/{postId}
func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")

	post, err := h.postService.GetByID(r.Context(), postID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, post)
}

// Like godoc
// POST /api/posts/{postId}/like
//
// 200: post güncel sayaçlarla döner (ilk like veya dislike→like flip).
// 404: post yok. 409: kullanıcı zaten like'lamış.
func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, models.ReactionLike)
}

// Dislike godoc
// POST /api/posts/{postId}/dislike
func (h *PostHandler) Dislike(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, models.ReactionDislike)
}

// parseIntParam, opsiyonel bir sayısal query parametresini okur.
// Parametre hiç yoksa 0 döner (service varsayılanı uygular);
// varsa ama sayı değilse hata döner — çöp input sessizce 0'a düşmez.
func parseIntParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// react, like/dislike endpoint'lerinin ortak gövdesi.
func (h *PostHandler) react(w http.ResponseWriter, r *http.Request, kind models.ReactionKind) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	postID := r.PathValue("postId")

	post, err := h.reactionService.React(r.Context(), postID, user.ID, kind)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, post)
}
