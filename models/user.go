// Package models, uygulamanın domain modellerini tanımlar.
//
// Her model veritabanındaki bir tablonun Go karşılığıdır ve aynı zamanda
// API'den gelen/giden verilerin şeklini belirler. json tag'leri
// serialize/deserialize davranışını kontrol eder.
package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// emailRegex, basit bir email format kontrolü.
// Tam RFC 5322 validasyonu değil — pratik bir süzgeç.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmailRegex, email format regex'ini döner.
func EmailRegex() *regexp.Regexp {
	return emailRegex
}

// User, bir kullanıcıyı temsil eder.
//
// Confirmed: email doğrulanana kadar false — login reddedilir.
// LastLoginAt/LastRequestAt: aktivite takibi için, nullable (*time.Time).
type User struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"` // API response'a ASLA dahil edilmez
	Confirmed     bool       `json:"confirmed"`
	IsActive      bool       `json:"is_active"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	LastRequestAt *time.Time `json:"last_request_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// SignupRequest, kayıt olurken gelen veri.
// PasswordHash yerine Password alınır — hash'leme service katmanında yapılır.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate, SignupRequest'in geçerli olup olmadığını kontrol eder.
//   - Username: 3-32 karakter
//   - Email: format kontrolü
//   - Password: minimum 6 karakter
func (r *SignupRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	usernameLen := utf8.RuneCountInString(r.Username)
	if usernameLen < 3 || usernameLen > 32 {
		return fmt.Errorf("username must be between 3 and 32 characters")
	}

	r.Email = strings.TrimSpace(r.Email)
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("invalid email format")
	}

	if utf8.RuneCountInString(r.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	return nil
}

// LoginRequest, giriş yaparken gelen veri. Login email ile yapılır.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate, LoginRequest'in geçerli olup olmadığını kontrol eder.
func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// UserActivity, bir kullanıcının aktivite bilgisi (GET /api/users/{id}/activity).
type UserActivity struct {
	LastLoginAt   *time.Time `json:"last_login_at"`
	LastRequestAt *time.Time `json:"last_request_at"`
}
