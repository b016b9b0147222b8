// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Her yerde ayrı ayrı os.Getenv() çağırmak yerine tek bir Config nesnesi
// oluşturulup wire-up sırasında ihtiyacı olan katmanlara geçirilir —
// global/module-level state yok.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı bir struct — her struct tek bir concern'ü temsil eder.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Auth      AuthConfig
	Email     EmailConfig
	RateLimit RateLimitConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/fikra.db)
}

// JWTConfig, JWT token ayarları.
type JWTConfig struct {
	Secret             string // Token imzalama anahtarı — GİZLİ TUTULMALI
	AccessTokenExpiry  int    // Dakika cinsinden (varsayılan: 15)
	RefreshTokenExpiry int    // Gün cinsinden (varsayılan: 7)
	EmailTokenExpiry   int    // Saat cinsinden — confirmation/reset linkleri (varsayılan: 24)
}

// AuthConfig, kimlik doğrulama davranış ayarları.
type AuthConfig struct {
	// AutoConfirm true ise yeni hesaplar email doğrulaması beklemeden
	// aktif olur. SADECE development/load-test ortamı için — production'da
	// kapalı kalmalı.
	AutoConfirm bool
}

// EmailConfig, Resend üzerinden email gönderimi ayarları.
// ResendAPIKey boşsa email gönderimi devre dışı kalır —
// development ortamında confirmation linki log'a yazılır.
type EmailConfig struct {
	ResendAPIKey string
	FromEmail    string // Doğrulanmış domain altında olmalı (ör: noreply@fikra.app)
	AppURL       string // Confirmation/reset linklerinde kullanılan public URL
}

// RateLimitConfig, login/signup brute-force koruması ayarları.
type RateLimitConfig struct {
	MaxAttempts   int // Pencere başına izin verilen deneme
	WindowMinutes int // Pencere süresi (dakika)
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
func Load() (*Config, error) {
	// .env dosyasını yükle — dosya yoksa hata vermez, sessizce devam eder.
	// Production'da bu dosya olmaz, gerçek env variable'lar kullanılır.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	accessExpiry, err := strconv.Atoi(getEnv("JWT_ACCESS_EXPIRY_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRY_MINUTES: %w", err)
	}

	refreshExpiry, err := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRY_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_EXPIRY_DAYS: %w", err)
	}

	emailExpiry, err := strconv.Atoi(getEnv("JWT_EMAIL_EXPIRY_HOURS", "24"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EMAIL_EXPIRY_HOURS: %w", err)
	}

	maxAttempts, err := strconv.Atoi(getEnv("RATE_LIMIT_MAX_ATTEMPTS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_MAX_ATTEMPTS: %w", err)
	}

	windowMinutes, err := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_MINUTES", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW_MINUTES: %w", err)
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/fikra.db"),
		},
		JWT: JWTConfig{
			Secret:             jwtSecret,
			AccessTokenExpiry:  accessExpiry,
			RefreshTokenExpiry: refreshExpiry,
			EmailTokenExpiry:   emailExpiry,
		},
		Auth: AuthConfig{
			AutoConfirm: getEnv("AUTH_AUTO_CONFIRM", "false") == "true",
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromEmail:    getEnv("RESEND_FROM", ""),
			AppURL:       getEnv("APP_URL", ""),
		},
		RateLimit: RateLimitConfig{
			MaxAttempts:   maxAttempts,
			WindowMinutes: windowMinutes,
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:8000").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
