package models

import "github.com/golang-jwt/jwt/v5"

// Token scope'ları — her JWT hangi amaçla üretildiğini taşır.
// Access token ile email confirmation token'ı birbirinin yerine
// KULLANILAMAZ; scope kontrolü bunu garanti eder.
const (
	ScopeAccess        = "access"
	ScopeEmailConfirm  = "email_confirm"
	ScopePasswordReset = "password_reset"
)

// TokenClaims, JWT payload'ı.
//
// Bu struct models paketinde tanımlanır çünkü birden fazla katman
// (services, ws, middleware) tarafından kullanılır — her katman models'e
// bağımlı olabilir, circular dependency oluşmaz.
type TokenClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Scope    string `json:"scope"`
	jwt.RegisteredClaims
}
