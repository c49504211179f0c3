// Package repo implements the durable persistence layer for domain entities,
// backed by GORM. This file provides read-only repository functions for the
// Profile model.
//
// The ranking subsystem never creates or mutates profiles; content management
// lives elsewhere. These queries serve trending-list enrichment, the random
// profile pick, and the slug index rebuild, so every function filters on the
// published flag.
//
// Error semantics:
//   - When a profile is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-trending-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// GetPublished fetches a single published profile by slug and locale. If the
// record does not exist (or is unpublished), it returns ErrNotFound.
func GetPublished(ctx context.Context, db *gorm.DB, slug, locale string) (*domain.Profile, error) {
	var p domain.Profile
	err := db.WithContext(ctx).
		Where("slug = ? AND locale = ? AND published = ?", slug, locale, true).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPublishedBySlugs returns the published profiles matching any of the
// given slugs in a locale. Missing or unpublished slugs are simply absent
// from the result; callers drop them silently (enrichment-miss semantics).
func ListPublishedBySlugs(ctx context.Context, db *gorm.DB, locale string, slugs []string) ([]domain.Profile, error) {
	if len(slugs) == 0 {
		return []domain.Profile{}, nil
	}
	var out []domain.Profile
	err := db.WithContext(ctx).
		Where("locale = ? AND published = ? AND slug IN ?", locale, true, slugs).
		Find(&out).Error
	return out, err
}

// ListPublishedSlugs returns every published slug in a locale, ordered by
// slug for deterministic output. Used by the reconciliation job to rebuild
// the live slug index wholesale.
func ListPublishedSlugs(ctx context.Context, db *gorm.DB, locale string) ([]string, error) {
	var slugs []string
	err := db.WithContext(ctx).
		Model(&domain.Profile{}).
		Where("locale = ? AND published = ?", locale, true).
		Order("slug asc").
		Pluck("slug", &slugs).Error
	return slugs, err
}
