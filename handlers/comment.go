package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/fikra/models"
	"github.com/akinalp/fikra/pkg"
	"github.com/akinalp/fikra/services"
)

// CommentHandler, yorum endpoint'lerini yöneten struct.
type CommentHandler struct {
	commentService services.CommentService
}

// NewCommentHandler, constructor.
func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create godoc
// POST /api/posts/{postId}/comments
// Body: { "comment": "..." }
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// PostID URL'den gelir — body'deki değer yok sayılır.
	req.PostID = r.PathValue("postId")

	comment, err := h.commentService.Create(r.Context(), user.ID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, comment)
}

// ListByPost godoc
// GET /api/posts/{postId}/comments
func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentService.ListByPost(r.Context(), r.PathValue("postId"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, comments)
}

// Update godoc
// PUT /api/comments/{commentId}
// Body: { "comment": "..." }
// Sadece yorumun sahibi güncelleyebilir.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	var req models.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.CommentID = r.PathValue("commentId")

	if err := h.commentService.Update(r.Context(), user.ID, &req); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "comment updated"})
}
