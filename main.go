// Package main, fikra backend uygulamasının giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//  1. Config'i yükle
//  2. Database'i başlat (gömülü migration'lar ile)
//  3. Repository'leri oluştur
//  4. WebSocket Hub'ı başlat
//  5. Email sender + cache + rate limiter gibi yan bağımlılıkları kur
//  6. Service'leri oluştur
//  7. Handler'ları oluştur, route'ları bağla
//  8. CORS yapılandır, HTTP server'ı başlat
//  9. Graceful shutdown
//
// Global değişken YOK — her şey burada oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/akinalp/fikra/config"
	"github.com/akinalp/fikra/database"
	"github.com/akinalp/fikra/pkg/email"
	"github.com/akinalp/fikra/pkg/ratelimit"
	"github.com/akinalp/fikra/ws"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("[main] fikra server starting...")

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (port=%d)", cfg.Server.Port)

	// ─── 2. Database ───
	db, err := database.New(cfg.Database.Path, database.Migrations())
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	// ─── 3. Repository Layer ───
	repos := initRepositories(db.Conn)

	// ─── 4. WebSocket Hub ───
	// Hub tüm bağlantıları yönetir ve EventPublisher interface'ini karşılar —
	// service'ler hub'a doğrudan değil interface üzerinden erişir.
	hub := ws.NewHub()
	go hub.Run()

	// ─── 5. Yan Bağımlılıklar ───
	// Email sender: RESEND_API_KEY yoksa nil kalır — confirmation linkleri
	// log'a yazılır, development'ta gerçek email gerekmez.
	var sender email.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.FromEmail, cfg.Email.AppURL)
		log.Println("[main] email sending enabled (resend)")
	} else {
		log.Println("[main] RESEND_API_KEY not set, email sending disabled")
	}

	ownerCache := newOwnerCache()
	defer ownerCache.Close()

	limiter := ratelimit.New(cfg.RateLimit.MaxAttempts, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	defer limiter.Close()

	// ─── 6. Service Layer ───
	svcs := initServices(cfg, db, repos, hub, sender, ownerCache)

	// ─── 7. Handler Layer + Routes ───
	handlers := initHandlers(svcs, limiter, hub)

	mux := http.NewServeMux()
	initRoutes(mux, handlers, svcs.Auth, svcs.User, repos.User)

	// ─── 8. CORS + HTTP Server ───
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      corsHandler.Handler(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ─── 9. Graceful Shutdown ───
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[main] server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-done
	log.Println("[main] shutting down...")

	// Önce WebSocket bağlantılarını kapat, sonra HTTP server'ı durdur —
	// yeni request kabul edilmez, mevcutların bitmesi beklenir (5sn timeout).
	hub.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[main] forced shutdown: %v", err)
	}

	log.Println("[main] server stopped gracefully")
}
