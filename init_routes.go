// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// Middleware chain helper'ları burada tanımlıdır:
//   - auth: JWT token doğrulaması + last_request_at güncellemesi
package main

import (
	"net/http"

	"github.com/akinalp/fikra/middleware"
	"github.com/akinalp/fikra/repository"
	"github.com/akinalp/fikra/services"
)

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
//
// Route sıralama kuralı: Literal path'ler parametrik path'lerden ÖNCE tanımlanmalı —
// yoksa Go router literal kelimeyi bir path parametresi olarak yorumlar.
func initRoutes(
	mux *http.ServeMux,
	h *Handlers,
	authService services.AuthService,
	userService services.UserService,
	userRepo repository.UserRepository,
) {
	// ─── Middleware ───
	authMw := middleware.NewAuthMiddleware(authService, userRepo)
	activityMw := middleware.NewActivityMiddleware(userService)

	// ─── Middleware Chain Helper ───
	// auth: token doğrula → user'ı context'e koy → aktiviteyi işaretle → handler
	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(activityMw.Track(http.HandlerFunc(handler)))
	}

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"fikra"}`))
	})

	// Auth — public endpoint'ler (token gerekmez)
	mux.HandleFunc("POST /api/auth/signup", h.Auth.Signup)
	mux.HandleFunc("GET /api/auth/confirm/{token}", h.Auth.ConfirmEmail)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)
	mux.HandleFunc("POST /api/auth/forgot-password", h.Auth.ForgotPassword)
	mux.HandleFunc("POST /api/auth/reset-password", h.Auth.ResetPassword)

	// Users
	mux.Handle("GET /api/users/me", auth(h.Auth.Me))
	mux.Handle("GET /api/users/{userId}/activity", auth(h.User.GetActivity))

	// Posts + reactions
	mux.Handle("POST /api/posts", auth(h.Post.Create))
	mux.Handle("GET /api/posts", auth(h.Post.Feed))
	mux.Handle("GET /api/posts/{postId}", auth(h.Post.GetByID))
	mux.Handle("POST /api/posts/{postId}/like", auth(h.Post.Like))
	mux.Handle("POST /api/posts/{postId}/dislike", auth(h.Post.Dislike))

	// Comments
	mux.Handle("POST /api/posts/{postId}/comments", auth(h.Comment.Create))
	mux.Handle("GET /api/posts/{postId}/comments", auth(h.Comment.ListByPost))
	mux.Handle("PUT /api/comments/{commentId}", auth(h.Comment.Update))

	// Analytics — sadece post sahibi (kontrol service katmanında)
	mux.Handle("GET /api/analytics/posts/{postId}", auth(h.Analytics.PostReactionsByDay))

	// WebSocket — token query parameter ile authenticate edilir.
	// WebSocket upgrade sırasında tarayıcılar custom HTTP header gönderemez,
	// bu yüzden JWT token URL query parameter olarak gönderilir:
	//   ws://server/ws?token=JWT_TOKEN
	mux.HandleFunc("GET /ws", h.WS.HandleConnection)
}
