// Package email, uygulama genelinde email gönderimi için soyutlama katmanı sağlar.
//
// EmailSender interface'i ile gönderim detayları soyutlanır — service'ler
// concrete Resend implementasyonuna değil interface'e bağımlıdır.
// İleride farklı bir sağlayıcıya geçmek için yeni bir implementasyon
// yazıp wire-up'ta değiştirmek yeterli.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"
)

// EmailSender, email gönderimi için interface.
type EmailSender interface {
	// SendConfirmation, yeni kayıt olan kullanıcıya email doğrulama linki gönderir.
	// token: imzalı confirmation token'ı (linke gömülür).
	SendConfirmation(ctx context.Context, toEmail, username, token string) error

	// SendPasswordReset, kullanıcıya şifre sıfırlama linki gönderir.
	SendPasswordReset(ctx context.Context, toEmail, username, token string) error
}

// resendSender, Resend API ile email gönderen EmailSender implementasyonu.
type resendSender struct {
	client    *resend.Client
	fromEmail string // Gönderici adresi (ör: noreply@fikra.app)
	appURL    string // Uygulamanın public URL'i — linklerde kullanılır
}

// NewResendSender, Resend API client'ı ile yeni bir EmailSender oluşturur.
//
// apiKey: Resend dashboard'dan alınan API key (re_xxxxxxxx formatında).
// fromEmail: Resend'de doğrulanmış domain altında olmalı.
func NewResendSender(apiKey, fromEmail, appURL string) EmailSender {
	return &resendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		appURL:    appURL,
	}
}

// SendConfirmation, email doğrulama maili gönderir.
//
// Link format: {appURL}/api/auth/confirm/{token}
// Kullanıcı linke tıklayana kadar login reddedilir (email not confirmed).
func (s *resendSender) SendConfirmation(ctx context.Context, toEmail, username, token string) error {
	confirmLink := fmt.Sprintf("%s/api/auth/confirm/%s", s.appURL, token)

	html := buildMail(
		"Confirm Your Email",
		fmt.Sprintf("Hi %s, welcome to fikra! Click the button below to confirm your email address and activate your account.", username),
		"Confirm Email",
		confirmLink,
	)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("fikra <%s>", s.fromEmail),
		To:      []string{toEmail},
		Subject: "Confirm Your Email — fikra",
		Html:    html,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return nil
}

// SendPasswordReset, şifre sıfırlama maili gönderir.
//
// Link format: {appURL}/reset-password?token={token}
// Token mail'de plaintext bulunur; doğrulama JWT imzası ile yapılır.
func (s *resendSender) SendPasswordReset(ctx context.Context, toEmail, username, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.appURL, token)

	html := buildMail(
		"Password Reset Request",
		fmt.Sprintf("Hi %s, we received a request to reset your password. Click the button below to choose a new password. If you didn't request this, you can safely ignore this email.", username),
		"Reset Password",
		resetLink,
	)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("fikra <%s>", s.fromEmail),
		To:      []string{toEmail},
		Subject: "Reset Your Password — fikra",
		Html:    html,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	return nil
}

// buildMail, iki mail türünün paylaştığı basit HTML template'ini üretir.
func buildMail(title, body, buttonLabel, link string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0;padding:0;background-color:#10141f;font-family:Arial,Helvetica,sans-serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="background-color:#10141f;padding:40px 0;">
    <tr>
      <td align="center">
        <table width="480" cellpadding="0" cellspacing="0" style="background-color:#1b2233;border-radius:8px;padding:40px;">
          <tr>
            <td>
              <h1 style="color:#e2e8f0;font-size:24px;margin:0 0 8px 0;">fikra</h1>
              <h2 style="color:#e2e8f0;font-size:18px;margin:0 0 24px 0;">%s</h2>
              <p style="color:#94a3b8;font-size:15px;line-height:1.6;margin:0 0 24px 0;">%s</p>
              <table cellpadding="0" cellspacing="0" style="margin:0 0 24px 0;">
                <tr>
                  <td style="background-color:#6366f1;border-radius:6px;padding:12px 32px;">
                    <a href="%s" style="color:#ffffff;text-decoration:none;font-size:15px;font-weight:600;">%s</a>
                  </td>
                </tr>
              </table>
              <p style="color:#475569;font-size:13px;line-height:1.6;margin:0;word-break:break-all;">
                If the button doesn't work, copy and paste this link:<br>
                <a href="%s" style="color:#6366f1;">%s</a>
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, title, body, link, buttonLabel, link, link)
}
