// Package services, business logic katmanını barındırır.
//
// Service Layer Pattern nedir?
// Handler (HTTP) ile Repository (DB) arasında oturan katmandır.
// Tüm iş kuralları burada yaşar:
//   - Şifre hash'leme, JWT token oluşturma
//   - Reaction state machine (like/dislike geçiş kuralları)
//   - Analytics erişim kontrolü
//
// Service ASLA http.Request/Response bilmez — sadece domain modelleri alır/verir.
// Service ASLA doğrudan SQL çalıştırmaz — Repository interface'i kullanır.
package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/akinalp/fikra/models"
	"github.com/akinalp/fikra/pkg"
	"github.com/akinalp/fikra/pkg/email"
	"github.com/akinalp/fikra/repository"
)

// AuthService interface'i — dışarıya açık API.
// Handler bu interface'e bağımlıdır, concrete struct'a değil.
type AuthService interface {
	// Signup, yeni kullanıcı kaydı oluşturur ve confirmation emaili gönderir.
	// Token çifti DÖNMEZ — kullanıcı email'ini doğrulayana kadar login edemez.
	Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error)
	// ConfirmEmail, confirmation linkindeki token'ı doğrular ve hesabı aktive eder.
	ConfirmEmail(ctx context.Context, token string) error
	Login(ctx context.Context, req *models.LoginRequest) (*AuthTokens, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, refreshToken string) error
	// ForgotPassword, şifre sıfırlama emaili gönderir.
	// Email kayıtlı değilse de nil döner — hangi email'lerin kayıtlı olduğu sızdırılmaz.
	ForgotPassword(ctx context.Context, emailAddr string) error
	// ResetPassword, reset token'ı ile yeni şifre belirler ve tüm oturumları kapatır.
	ResetPassword(ctx context.Context, token, newPassword string) error
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
}

// AuthTokens, login/refresh sonrası dönen token çifti.
type AuthTokens struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

// authService, AuthService interface'inin implementasyonu.
type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	// sender nil olabilir — RESEND_API_KEY yoksa email gönderilmez,
	// confirmation linki log'a yazılır (development kolaylığı).
	sender     email.EmailSender
	jwtSecret  []byte
	accessExp  time.Duration
	refreshExp time.Duration
	emailExp   time.Duration

	// autoConfirm: development/load-test kolaylığı — yeni hesaplar email
	// doğrulaması beklemeden aktive edilir.
	autoConfirm bool
}

// NewAuthService, constructor.
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	sender email.EmailSender,
	jwtSecret string,
	accessExpMinutes int,
	refreshExpDays int,
	emailExpHours int,
	autoConfirm bool,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sender:      sender,
		jwtSecret:   []byte(jwtSecret),
		accessExp:   time.Duration(accessExpMinutes) * time.Minute,
		refreshExp:  time.Duration(refreshExpDays) * 24 * time.Hour,
		emailExp:    time.Duration(emailExpHours) * time.Hour,
		autoConfirm: autoConfirm,
	}
}

// Signup, yeni kullanıcı kaydı oluşturur.
//
// Akış:
// 1. Validation
// 2. Bcrypt hash (cost=12)
// 3. User kaydı (confirmed=false)
// 4. Confirmation token üret, email gönder
//
// Email gönderimi başarısız olsa bile kayıt GERİ ALINMAZ — kullanıcı
// sonradan yeni bir confirmation emaili isteyebilir. Login, email
// doğrulanana kadar reddedilir.
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err // ErrAlreadyExists olabilir
	}

	if s.autoConfirm {
		if err := s.userRepo.ConfirmEmail(ctx, user.ID); err != nil {
			return nil, err
		}
		user.Confirmed = true
		user.PasswordHash = ""
		return user, nil
	}

	token, err := s.generateScopedToken(user, models.ScopeEmailConfirm, s.emailExp)
	if err != nil {
		return nil, err
	}

	if s.sender != nil {
		if err := s.sender.SendConfirmation(ctx, user.Email, user.Username, token); err != nil {
			log.Printf("[auth] failed to send confirmation email to %s: %v", user.Email, err)
		}
	} else {
		log.Printf("[auth] email sending disabled, confirmation token for %s: %s", user.Email, token)
	}

	user.PasswordHash = ""
	return user, nil
}

// ConfirmEmail, email doğrulama token'ını işler.
func (s *authService) ConfirmEmail(ctx context.Context, token string) error {
	claims, err := s.validateScopedToken(token, models.ScopeEmailConfirm)
	if err != nil {
		return err
	}
	return s.userRepo.ConfirmEmail(ctx, claims.UserID)
}

// Login, kullanıcı girişi yapar.
//
// Email doğrulanmamış hesap login EDEMEZ — confirmed kontrolü şifre
// kontrolünden SONRA yapılır, böylece yanlış şifre ile confirmed durumu
// probe edilemez.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*AuthTokens, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", pkg.ErrUnauthorized)
	}

	if !user.Confirmed {
		return nil, fmt.Errorf("%w: email not confirmed", pkg.ErrUnauthorized)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is deactivated", pkg.ErrUnauthorized)
	}

	now := time.Now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLoginAt = &now

	return s.generateTokens(ctx, user)
}

// RefreshToken, süresi dolmuş access token'ı yenilemek için kullanılır.
// Eski session silinir, yeni session oluşturulur (token rotation).
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	session, err := s.sessionRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid refresh token", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		if delErr := s.sessionRepo.DeleteByID(ctx, session.ID); delErr != nil {
			return nil, fmt.Errorf("failed to delete expired session: %w", delErr)
		}
		return nil, fmt.Errorf("%w: refresh token expired", pkg.ErrUnauthorized)
	}

	if err := s.sessionRepo.DeleteByID(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to delete old session: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	return s.generateTokens(ctx, user)
}

// Logout, refresh token'ı iptal eder (session siler).
// Token zaten yoksa sessizce başarı döner — logout idempotent'tir.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.sessionRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil
		}
		return err
	}

	return s.sessionRepo.DeleteByID(ctx, session.ID)
}

// ForgotPassword, şifre sıfırlama emaili gönderir.
func (s *authService) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			// Email kayıtlı değil — yine de başarı döner (enumeration koruması).
			return nil
		}
		return err
	}

	token, err := s.generateScopedToken(user, models.ScopePasswordReset, s.emailExp)
	if err != nil {
		return err
	}

	if s.sender != nil {
		if err := s.sender.SendPasswordReset(ctx, user.Email, user.Username, token); err != nil {
			return fmt.Errorf("failed to send password reset email: %w", err)
		}
	} else {
		log.Printf("[auth] email sending disabled, reset token for %s: %s", user.Email, token)
	}

	return nil
}

// ResetPassword, yeni şifre belirler.
// Tüm oturumlar kapatılır — çalınan refresh token'lar geçersizleşir.
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := s.validateScopedToken(token, models.ScopePasswordReset)
	if err != nil {
		return err
	}

	if len(newPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", pkg.ErrBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), 12)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, claims.UserID, string(hash)); err != nil {
		return err
	}

	return s.sessionRepo.DeleteByUserID(ctx, claims.UserID)
}

// ValidateAccessToken, JWT access token'ı doğrular ve claims'i döner.
// Scope kontrolü yapılır — confirmation/reset token'ları ile API erişilemez.
func (s *authService) ValidateAccessToken(tokenString string) (*models.TokenClaims, error) {
	return s.validateScopedToken(tokenString, models.ScopeAccess)
}

// ─── Private Helpers ───

// generateScopedToken, belirli bir scope ve ömürle HS256 JWT üretir.
func (s *authService) generateScopedToken(user *models.User, scope string, exp time.Duration) (string, error) {
	now := time.Now()
	claims := &models.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Scope:    scope,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "fikra",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", scope, err)
	}
	return signed, nil
}

// validateScopedToken, JWT'yi doğrular ve scope'un eşleştiğini kontrol eder.
func (s *authService) validateScopedToken(tokenString, wantScope string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", pkg.ErrUnauthorized)
	}

	if claims.Scope != wantScope {
		return nil, fmt.Errorf("%w: token scope mismatch", pkg.ErrUnauthorized)
	}

	return claims, nil
}

// generateTokens, access JWT + refresh session çiftini oluşturur.
func (s *authService) generateTokens(ctx context.Context, user *models.User) (*AuthTokens, error) {
	accessString, err := s.generateScopedToken(user, models.ScopeAccess, s.accessExp)
	if err != nil {
		return nil, err
	}

	// Refresh token JWT değildir — 32 byte crypto/rand, hex encoding.
	// DB'de saklanır; iptal edilebilirlik JWT'nin veremediği özelliktir.
	refreshBytes := make([]byte, 32)
	if _, err := rand.Read(refreshBytes); err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	refreshString := hex.EncodeToString(refreshBytes)

	session := &models.Session{
		UserID:       user.ID,
		RefreshToken: refreshString,
		ExpiresAt:    time.Now().Add(s.refreshExp),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	user.PasswordHash = ""

	return &AuthTokens{
		AccessToken:  accessString,
		RefreshToken: refreshString,
		User:         *user,
	}, nil
}
