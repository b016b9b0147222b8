// Package repository, veritabanı erişim katmanını barındırır.
//
// Her domain modeli için bir interface + bir SQLite implementasyonu vardır.
// Service katmanı interface'lere bağımlıdır, SQL detaylarını bilmez.
// Tüm implementasyonlar database.TxQuerier kabul eder — aynı kod hem
// *sql.DB hem de transaction içindeki *sql.Tx ile çalışır.
package repository

import (
	"context"
	"time"

	"github.com/akinalp/fikra/models"
)

// UserRepository, kullanıcı veritabanı işlemleri için interface.
//
// Create: yeni kullanıcı ekler; email zaten varsa pkg.ErrAlreadyExists döner.
// ConfirmEmail: kullanıcının email'ini doğrulanmış olarak işaretler.
// TouchLastRequest: aktivite middleware'ının her authenticated istekte
// çağırdığı hafif güncelleme.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ConfirmEmail(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	TouchLastRequest(ctx context.Context, id string, at time.Time) error
	GetActivityByID(ctx context.Context, id string) (*models.UserActivity, error)
}
