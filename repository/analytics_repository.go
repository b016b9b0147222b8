package repository

import (
	"context"

	"github.com/akinalp/fikra/models"
)

// AnalyticsRepository, reaction istatistikleri için read-only interface.
type AnalyticsRepository interface {
	// CountByDay, bir post'un reaction'larını güne göre gruplar.
	// from/to "2006-01-02" formatında ve her iki uç da DAHİLDİR.
	// Hiç reaction'ı olmayan günler sonuçta YER ALMAZ — sıfır
	// doldurma yapılmaz, sadece veri olan günler döner.
	CountByDay(ctx context.Context, postID, from, to string) ([]models.DayBucket, error)
}
