package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/akinalp/fikra/database"
	"github.com/akinalp/fikra/models"
	"github.com/akinalp/fikra/pkg"
	"github.com/akinalp/fikra/repository"
)

const testJWTSecret = "test-secret-do-not-use-in-prod"

func newAuthTestService(t *testing.T, db *database.DB, autoConfirm bool) AuthService {
	t.Helper()

	return NewAuthService(
		repository.NewSQLiteUserRepo(db.Conn),
		repository.NewSQLiteSessionRepo(db.Conn),
		nil, // sender yok — token'lar log'a düşer
		testJWTSecret,
		15, // access: 15 dakika
		7,  // refresh: 7 gün
		24, // email token: 24 saat
		autoConfirm,
	)
}

func signupReq(name string) *models.SignupRequest {
	return &models.SignupRequest{
		Username: name,
		Email:    name + "@example.com",
		Password: "secret-password",
	}
}

func TestSignupAndLoginFlow(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthTestService(t, db, false)
	ctx := context.Background()

	user, err := svc.Signup(ctx, signupReq("aylin"))
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if user.Confirmed {
		t.Error("new account must not be confirmed before email verification")
	}
	if user.PasswordHash != "" {
		t.Error("signup response must not leak the password hash")
	}

	// Email doğrulanmadan login reddedilir.
	_, err = svc.Login(ctx, &models.LoginRequest{Email: "aylin@example.com", Password: "secret-password"})
	if !errors.Is(err, pkg.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized before confirmation, got %v", err)
	}

	if err := repository.NewSQLiteUserRepo(db.Conn).ConfirmEmail(ctx, user.ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	tokens, err := svc.Login(ctx, &models.LoginRequest{Email: "aylin@example.com", Password: "secret-password"})
	if err != nil {
		t.Fatalf("login after confirmation failed: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("login must return both tokens")
	}
	if tokens.User.PasswordHash != "" {
		t.Error("login response must not leak the password hash")
	}

	claims, err := svc.ValidateAccessToken(tokens.AccessToken)
	if err != nil {
		t.Fatalf("access token validation failed: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("expected claims for user %s, got %s", user.ID, claims.UserID)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthTestService(t, db, false)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, signupReq("mert")); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	req := signupReq("mert")
	req.Username = "mert2" // email aynı, username farklı
	_, err := svc.Signup(ctx, req)
	if !errors.Is(err, pkg.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestSignupValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthTestService(t, db, false)

	req := signupReq("deniz")
	req.Password = "12345" // 6 karakterden kısa
	_, err := svc.Signup(context.Background(), req)
	if !errors.Is(err, pkg.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for short password, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthTestService(t, db, true)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, signupReq("ece")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, err := svc.Login(ctx, &models.LoginRequest{Email: "ece@example.com", Password: "wrong-password"})
	if !errors.Is(err, pkg.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	// Bilinmeyen email aynı hatayı döner — ikisi ayırt edilememeli.
	_, err2 := svc.Login(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "wrong-password"})
	if !errors.Is(err2, pkg.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown email, got %v", err2)
	}
	if err.Error() != err2.Error() {
		t.Errorf("wrong password and unknown email must be indistinguishable: %q vs %q", err, err2)
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthTestService(t, db, true)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, signupReq("kerem")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	tokens, err := svc.Login(ctx, &models.LoginRequest{Email: "kerem@example.com", Password: "secret-password"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	rotated, err := svc.RefreshToken(ctx, tokens.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if rotated.RefreshToken == tokens.RefreshToken {
		t.Error("refresh must rotate the refresh token")
	}

	// Eski refresh token artık geçersiz — rotation tek kullanımlıktır.
	if _, err := svc.RefreshToken(ctx, tokens.RefreshToken); !errors.Is(err, pkg.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for used refresh token, got %v", err)
	}

	// Yenisi çalışmaya devam eder.
	if _, err := svc.RefreshToken(ctx, rotated.RefreshToken); err != nil {
		t.Fatalf("rotated refresh token must still work: %v", err)
	}
}

func TestLogout(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthTestService(t, db, true)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, signupReq("seda")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	tokens, err := svc.Login(ctx, &models.LoginRequest{Email: "seda@example.com", Password: "secret-password"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(ctx, tokens.RefreshToken); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	// İkinci logout da başarılı — idempotent.
	if err := svc.Logout(ctx, tokens.RefreshToken); err != nil {
		t.Fatalf("repeated logout must be a no-op: %v", err)
	}

	if _, err := svc.RefreshToken(ctx, tokens.RefreshToken); !errors.Is(err, pkg.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after logout, got %v", err)
	}
}

func TestAutoConfirmSignup(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthTestService(t, db, true)
	ctx := context.Background()

	user, err := svc.Signup(ctx, signupReq("berk"))
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if !user.Confirmed {
		t.Error("auto-confirm signup must return a confirmed account")
	}

	if _, err := svc.Login(ctx, &models.LoginRequest{Email: "berk@example.com", Password: "secret-password"}); err != nil {
		t.Fatalf("login right after auto-confirm signup failed: %v", err)
	}
}

func TestTokenScopeIsEnforced(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthTestService(t, db, true)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, signupReq("ozan")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	tokens, err := svc.Login(ctx, &models.LoginRequest{Email: "ozan@example.com", Password: "secret-password"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Access token ile email confirm edilemez — scope eşleşmez.
	if err := svc.ConfirmEmail(ctx, tokens.AccessToken); !errors.Is(err, pkg.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong-scope token, got %v", err)
	}

	// Bozuk token da reddedilir.
	if _, err := svc.ValidateAccessToken("not.a.jwt"); !errors.Is(err, pkg.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for garbage token, got %v", err)
	}
}

func TestResetPasswordRevokesSessions(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthTestService(t, db, true)
	ctx := context.Background()

	user, err := svc.Signup(ctx, signupReq("tuna"))
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	tokens, err := svc.Login(ctx, &models.LoginRequest{Email: "tuna@example.com", Password: "secret-password"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Reset token'ı service içinden üretilir — email gönderimi devre dışı.
	resetToken, err := svc.(*authService).generateScopedToken(user, models.ScopePasswordReset, svc.(*authService).emailExp)
	if err != nil {
		t.Fatalf("failed to generate reset token: %v", err)
	}

	if err := svc.ResetPassword(ctx, resetToken, "brand-new-password"); err != nil {
		t.Fatalf("reset password failed: %v", err)
	}

	// Eski şifre artık çalışmaz, yenisi çalışır.
	if _, err := svc.Login(ctx, &models.LoginRequest{Email: "tuna@example.com", Password: "secret-password"}); !errors.Is(err, pkg.ErrUnauthorized) {
		t.Fatalf("expected old password to be rejected, got %v", err)
	}
	if _, err := svc.Login(ctx, &models.LoginRequest{Email: "tuna@example.com", Password: "brand-new-password"}); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}

	// Reset tüm oturumları kapatır — eski refresh token geçersiz.
	if _, err := svc.RefreshToken(ctx, tokens.RefreshToken); !errors.Is(err, pkg.ErrUnauthorized) {
		t.Fatalf("expected old session to be revoked, got %v", err)
	}
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthTestService(t, db, false)

	// Enumeration koruması: kayıtlı olmayan email için de nil döner.
	if err := svc.ForgotPassword(context.Background(), "ghost@example.com"); err != nil {
		t.Fatalf("forgot password must not reveal unknown emails: %v", err)
	}
}

func TestSignupTrimsWhitespace(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthTestService(t, db, true)
	ctx := context.Background()

	req := &models.SignupRequest{
		Username: "  elif  ",
		Email:    " elif@example.com ",
		Password: "secret-password",
	}
	user, err := svc.Signup(ctx, req)
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if strings.Contains(user.Username, " ") || strings.Contains(user.Email, " ") {
		t.Errorf("username/email must be trimmed, got %q / %q", user.Username, user.Email)
	}
}
