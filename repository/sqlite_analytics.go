package repository

import (
	"context"
	"fmt"

	"github.com/akinalp/fikra/database"
	"github.com/akinalp/fikra/models"
)

// sqliteAnalyticsRepo, AnalyticsRepository interface'inin SQLite implementasyonu.
//
// Gruplama tamamen SQL tarafında yapılır: date(created_at) gün anahtarı,
// SUM(CASE ...) ise tek taramada hem like hem dislike sayacı üretir.
// Go tarafında satır satır saymak hem yavaş hem gereksiz olurdu.
type sqliteAnalyticsRepo struct {
	db database.TxQuerier
}

// NewSQLiteAnalyticsRepo, constructor — interface döner.
func NewSQLiteAnalyticsRepo(db database.TxQuerier) AnalyticsRepository {
	return &sqliteAnalyticsRepo{db: db}
}

func (r *sqliteAnalyticsRepo) CountByDay(ctx context.Context, postID, from, to string) ([]models.DayBucket, error) {
	// BETWEEN iki ucu da kapsar; date(created_at) timestamp'i
	// "YYYY-MM-DD" gününe indirger, bu yüzden string karşılaştırma
	// kronolojik sırayla birebir örtüşür.
	query := `
		SELECT date(created_at) AS day,
		       SUM(CASE WHEN reaction = 'like' THEN 1 ELSE 0 END) AS likes,
		       SUM(CASE WHEN reaction = 'dislike' THEN 1 ELSE 0 END) AS dislikes
		FROM post_reactions
		WHERE post_id = ? AND date(created_at) BETWEEN ? AND ?
		GROUP BY day
		ORDER BY day ASC`

	rows, err := r.db.QueryContext(ctx, query, postID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count reactions by day: %w", err)
	}
	defer rows.Close()

	var buckets []models.DayBucket
	for rows.Next() {
		var b models.DayBucket
		if err := rows.Scan(&b.Date, &b.Likes, &b.Dislikes); err != nil {
			return nil, fmt.Errorf("failed to scan day bucket: %w", err)
		}
		buckets = append(buckets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analytics rows: %w", err)
	}

	if buckets == nil {
		buckets = []models.DayBucket{}
	}

	return buckets, nil
}
