// Package main — Repository katmanı başlatma.
//
// initRepositories, tüm repository implementasyonlarını oluşturur.
// Her repository bir *sql.DB bağlantısı alır ve interface döner.
// main.go'daki wire-up'ı modülerleştirmek için bu dosyaya taşındı.
package main

import (
	"database/sql"

	"github.com/akinalp/fikra/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
//
// Neden struct? Ayrı ayrı değişkenler yerine tek struct kullanmak:
// 1. Fonksiyon imzalarını temiz tutar
// 2. Yeni repository eklendiğinde sadece struct + initRepositories güncellenir
type Repositories struct {
	User      repository.UserRepository
	Session   repository.SessionRepository
	Post      repository.PostRepository
	Comment   repository.CommentRepository
	Analytics repository.AnalyticsRepository
}

// initRepositories, veritabanı bağlantısından tüm repository'leri oluşturur.
//
// Her NewSQLite* fonksiyonu aynı *sql.DB'yi alır — Go'nun sql.DB'si
// thread-safe connection pool'dur, paylaşılması güvenlidir.
// (ReactionRepository burada YOK: reaction yazmaları her zaman transaction
// içinde yapılır, ReactionService kendi tx-scoped repo'larını oluşturur.)
func initRepositories(conn *sql.DB) *Repositories {
	return &Repositories{
		User:      repository.NewSQLiteUserRepo(conn),
		Session:   repository.NewSQLiteSessionRepo(conn),
		Post:      repository.NewSQLitePostRepo(conn),
		Comment:   repository.NewSQLiteCommentRepo(conn),
		Analytics: repository.NewSQLiteAnalyticsRepo(conn),
	}
}
