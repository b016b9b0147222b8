package handlers

import (
	"net/http"

	"github.com/akinalp/fikra/pkg"
	"github.com/akinalp/fikra/services"
)

// UserHandler, kullanıcı endpoint'lerini yöneten struct.
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler, constructor.
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetActivity godoc
// GET /api/users/{userId}/activity
// Kullanıcının son login ve son istek zamanlarını döner.
func (h *UserHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.userService.GetActivity(r.Context(), r.PathValue("userId"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, activity)
}
