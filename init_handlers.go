// Package main — Handler katmanı başlatma.
//
// initHandlers, tüm HTTP handler'larını oluşturur.
// Her handler, ihtiyaç duyduğu service interface'lerini constructor'dan alır.
// Handler'lar "thin" dir — sadece HTTP parse + service call + response write.
package main

import (
	"github.com/akinalp/fikra/handlers"
	"github.com/akinalp/fikra/pkg/ratelimit"
	"github.com/akinalp/fikra/ws"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Post      *handlers.PostHandler
	Comment   *handlers.CommentHandler
	Analytics *handlers.AnalyticsHandler
	User      *handlers.UserHandler
	WS        *ws.Handler
}

// initHandlers, tüm handler'ları service ve rate limiter dependency'leri ile oluşturur.
func initHandlers(svcs *Services, limiter *ratelimit.Limiter, hub *ws.Hub) *Handlers {
	return &Handlers{
		Auth:      handlers.NewAuthHandler(svcs.Auth, limiter),
		Post:      handlers.NewPostHandler(svcs.Post, svcs.Reaction),
		Comment:   handlers.NewCommentHandler(svcs.Comment),
		Analytics: handlers.NewAnalyticsHandler(svcs.Analytics),
		User:      handlers.NewUserHandler(svcs.User),
		WS:        ws.NewHandler(hub, svcs.Auth),
	}
}
