// Package repo implements the durable persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// RankSnapshot model, written exclusively by the reconciliation job.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-trending-backend/internal/domain"
)

// UpsertSnapshot creates or updates the snapshot row keyed by
// (slug, period, date). On conflict only score, ranks, and updated_at are
// rewritten, which makes the operation idempotent: replaying the same
// leaderboard page produces byte-identical rows apart from updated_at.
//
// The date is normalized to midnight UTC so equal buckets always collide
// with the unique index regardless of the representative instant's clock
// time.
func UpsertSnapshot(db *gorm.DB, slug, periodTag string, date time.Time, score int64, rankGlobal, rankLocal int) error {
	now := time.Now().UTC()
	row := domain.RankSnapshot{
		ID:         uuid.NewString(),
		Slug:       slug,
		Period:     periodTag,
		Date:       midnightUTC(date),
		Score:      score,
		RankGlobal: rankGlobal,
		RankLocal:  rankLocal,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}, {Name: "period"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"score", "rank_global", "rank_local", "updated_at",
		}),
	}).Create(&row).Error
}

// ListSnapshots returns up to limit snapshot rows for one slug and period,
// most recent bucket first. Serves the historical time-series read.
func ListSnapshots(ctx context.Context, db *gorm.DB, slug, periodTag string, limit int) ([]domain.RankSnapshot, error) {
	if limit <= 0 {
		limit = 30
	}
	var out []domain.RankSnapshot
	err := db.WithContext(ctx).
		Where("slug = ? AND period = ?", slug, periodTag).
		Order("date desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// midnightUTC truncates t to its calendar date in UTC.
func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
