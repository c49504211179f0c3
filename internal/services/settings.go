// Package services – SettingsProvider
//
// Runtime-tunable ranking parameters (boost cooldown, boost weight) live in
// the settings table so operators can adjust them without a deploy. They are
// read on every rate-limit check and every boost fan-out, so the provider
// keeps a short in-process cache in front of the database and absorbs every
// read failure with hardcoded defaults: a broken settings read must never
// block or fail the interaction path.
package services

import (
	"context"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/go-trending-backend/internal/repo"
)

// Setting keys understood by the provider.
const (
	SettingBoostCooldown = "BOOST_COOLDOWN" // seconds between boosts per (ip, slug)
	SettingBoostWeight   = "BOOST_WEIGHT"   // score contribution of one boost
)

// In-process fallbacks used whenever a settings lookup fails or yields a
// non-positive value.
const (
	DefaultBoostCooldown = 60 * time.Second
	DefaultBoostWeight   = int64(10)
)

// settingsCacheTTL bounds the staleness window of a tuned value.
const settingsCacheTTL = 30 * time.Second

// SettingsProvider resolves runtime-tunable values with caching and
// fallback defaults. It is safe for concurrent use.
type SettingsProvider struct {
	DB    *gorm.DB
	cache *gocache.Cache
}

// NewSettingsProvider builds a provider over the settings table.
func NewSettingsProvider(db *gorm.DB) *SettingsProvider {
	return &SettingsProvider{
		DB:    db,
		cache: gocache.New(settingsCacheTTL, time.Minute),
	}
}

// BoostCooldown returns the configured cooldown between boosts from one
// source IP for one profile, or DefaultBoostCooldown on any failure.
func (p *SettingsProvider) BoostCooldown(ctx context.Context) time.Duration {
	secs := p.intSetting(ctx, SettingBoostCooldown, int64(DefaultBoostCooldown/time.Second))
	return time.Duration(secs) * time.Second
}

// BoostWeight returns the configured score contribution of one boost, or
// DefaultBoostWeight on any failure.
func (p *SettingsProvider) BoostWeight(ctx context.Context) int64 {
	return p.intSetting(ctx, SettingBoostWeight, DefaultBoostWeight)
}

// intSetting resolves one integer setting through the cache. Lookup or parse
// failures are logged at debug level and fall back to def; negative and zero
// values are treated as misconfiguration and also fall back.
func (p *SettingsProvider) intSetting(ctx context.Context, key string, def int64) int64 {
	if v, found := p.cache.Get(key); found {
		if n, ok := v.(int64); ok {
			return n
		}
	}

	raw, err := repo.GetSetting(ctx, p.DB, key)
	if err != nil {
		log.Debug().Err(err).Str("setting", key).Msg("settings lookup failed, using default")
		p.cache.Set(key, def, gocache.DefaultExpiration)
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		log.Debug().Str("setting", key).Str("value", raw).Msg("unusable setting value, using default")
		p.cache.Set(key, def, gocache.DefaultExpiration)
		return def
	}
	p.cache.Set(key, n, gocache.DefaultExpiration)
	return n
}
