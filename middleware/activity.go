package middleware

import (
	"log"
	"net/http"

	"github.com/akinalp/fikra/handlers"
	"github.com/akinalp/fikra/models"
	"github.com/akinalp/fikra/services"
)

// ActivityMiddleware, authenticated her istekte kullanıcının
// last_request_at alanını günceller. AuthMiddleware.Require'dan SONRA
// zincire eklenmeli — context'te user bekler.
type ActivityMiddleware struct {
	userService services.UserService
}

// NewActivityMiddleware, constructor.
func NewActivityMiddleware(userService services.UserService) *ActivityMiddleware {
	return &ActivityMiddleware{userService: userService}
}

// Track, last_request_at güncellemesini yapar ve zinciri devam ettirir.
// Güncelleme hatası isteği DURDURMAZ — aktivite takibi best-effort'tur,
// asıl işin önüne geçmemeli. Hata sadece loglanır.
func (m *ActivityMiddleware) Track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := r.Context().Value(handlers.UserContextKey).(*models.User); ok {
			if err := m.userService.TouchLastRequest(r.Context(), user.ID); err != nil {
				log.Printf("[activity] failed to touch last request for user %s: %v", user.ID, err)
			}
		}
		next.ServeHTTP(w, r)
	})
}
