package handlers

import (
	"net/http"

	"github.com/akinalp/fikra/models"
	"github.com/akinalp/fikra/pkg"
	"github.com/akinalp/fikra/services"
)

// AnalyticsHandler, reaction istatistik endpoint'lerini yöneten struct.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsHandler, constructor.
func NewAnalyticsHandler(analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// PostReactionsByDay godoc
// GET /api/analytics/posts/{postId}?start_date=2023-01-01&end_date=2023-01-31
//
// Bir post'un günlük like/dislike sayılarını döner.
// Sadece post sahibi erişebilir — diğer kullanıcılar 403 alır.
func (h *AnalyticsHandler) PostReactionsByDay(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	q := r.URL.Query()
	from := q.Get("start_date")
	to := q.Get("end_date")
	if from == "" || to == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "start_date and end_date are required")
		return
	}

	buckets, err := h.analyticsService.PostReactionsByDay(r.Context(), r.PathValue("postId"), user.ID, from, to)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, buckets)
}
