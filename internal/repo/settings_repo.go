// Package repo implements the durable persistence layer for domain entities,
// backed by GORM. This file provides the lookup for runtime-tunable settings
// consumed by the boost cooldown gate and the fan-out writer.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-trending-backend/internal/domain"
)

// GetSetting returns the raw value of a settings row, or ErrNotFound when
// the key is absent. Callers are expected to fall back to hardcoded
// defaults on any error; a settings read must never block the interaction
// path.
func GetSetting(ctx context.Context, db *gorm.DB, key string) (string, error) {
	var s domain.Setting
	if err := db.WithContext(ctx).Where("key = ?", key).First(&s).Error; err != nil {
		return "", err
	}
	return s.Value, nil
}
