// Package leaderboard implements the live ranking store on top of Redis
// sorted sets. It owns the key namespace for every leaderboard dimension,
// the raw view/boost counters, the boost cooldown tokens, and the per-locale
// published-slug index.
//
// This file defines key construction only. Keys are plain colon-delimited
// strings so they stay greppable in redis-cli:
//
//	lb:global:weekly:2024-W09              global score board
//	lb:locale:en:weekly:2024-W09           locale-global score board
//	lb:category:en:actor:daily:2024-03-01  category board
//	lb:zodiac:en:aries:all_time:all_time   attribute board
//	lb:year:en:1994:monthly:2024-03        year-attribute board
//	cnt:views:en:daily:2024-03-01          raw view counter
//	cnt:boosts:en:daily:2024-03-01         raw boost counter
//	cooldown:203.0.113.7:some-slug         boost cooldown token
//	slugs:en                               published-slug index
package leaderboard

import (
	"fmt"
	"strings"

	"github.com/tbourn/go-trending-backend/internal/period"
)

// Counter kinds tracked independently of the weighted score boards.
const (
	CounterViews  = "views"
	CounterBoosts = "boosts"
)

// GlobalKey returns the key of the global score leaderboard for one bucket.
func GlobalKey(g period.Granularity, bucket string) string {
	return fmt.Sprintf("lb:global:%s:%s", g, bucket)
}

// LocaleKey returns the key of the locale-scoped global score leaderboard.
func LocaleKey(locale string, g period.Granularity, bucket string) string {
	return fmt.Sprintf("lb:locale:%s:%s:%s", locale, g, bucket)
}

// CategoryKey returns the key of a per-category score leaderboard.
func CategoryKey(locale, category string, g period.Granularity, bucket string) string {
	return fmt.Sprintf("lb:category:%s:%s:%s:%s", locale, sanitizeTag(category), g, bucket)
}

// ZodiacKey returns the key of a per-zodiac-sign score leaderboard.
func ZodiacKey(locale, sign string, g period.Granularity, bucket string) string {
	return fmt.Sprintf("lb:zodiac:%s:%s:%s:%s", locale, sanitizeTag(sign), g, bucket)
}

// YearKey returns the key of a per-birth-year score leaderboard.
func YearKey(locale string, year int, g period.Granularity, bucket string) string {
	return fmt.Sprintf("lb:year:%s:%d:%s:%s", locale, year, g, bucket)
}

// CounterKey returns the key of a raw interaction counter (views or boosts).
// Raw counters are kept disjoint from the weighted boards and are used only
// for display disaggregation, never for ranking.
func CounterKey(kind, locale string, g period.Granularity, bucket string) string {
	return fmt.Sprintf("cnt:%s:%s:%s:%s", kind, locale, g, bucket)
}

// CooldownKey returns the cooldown token key for one (source IP, slug) pair.
func CooldownKey(ip, slug string) string {
	return fmt.Sprintf("cooldown:%s:%s", ip, slug)
}

// SlugIndexKey returns the key of the published-slug set for a locale.
func SlugIndexKey(locale string) string {
	return "slugs:" + locale
}

// sanitizeTag lowercases a free-form tag and collapses whitespace and colons
// so user-supplied tags cannot break the key namespace apart.
func sanitizeTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	tag = strings.ReplaceAll(tag, ":", "-")
	return strings.Join(strings.Fields(tag), "-")
}
