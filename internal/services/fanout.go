// Package services – leaderboard fan-out writer
//
// One recorded interaction fans out into many derived counters: a raw
// view/boost counter plus weighted score increments for every applicable
// dimension, each across all five period granularities. All increments of
// one interaction travel in a single pipeline to keep round trips flat.
package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-trending-backend/internal/domain"
	"github.com/tbourn/go-trending-backend/internal/leaderboard"
	"github.com/tbourn/go-trending-backend/internal/period"
)

// fanOut applies the full increment set for one interaction. It runs as a
// deferred task after the request has already succeeded: every failure is
// caught, logged, and dropped, never retried or surfaced.
func (s *InteractionService) fanOut(in domain.Interaction) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("slug", in.Slug).Msg("leaderboard fan-out panicked")
		}
	}()

	// The request that scheduled this task has already returned; the write
	// gets its own context bounded only by the store's operation timeout.
	ctx := context.Background()

	weight := int64(1)
	if in.Type == domain.InteractionBoost {
		weight = s.Settings.BoostWeight(ctx)
	}

	incs := Increments(in, weight, time.Now())
	if err := s.Store.Apply(ctx, incs); err != nil {
		log.Warn().Err(err).
			Str("slug", in.Slug).
			Str("type", in.Type).
			Int("increments", len(incs)).
			Msg("leaderboard fan-out dropped")
	}
}

// Increments builds the increment batch for one interaction at instant now:
// for each granularity, the raw counter for the interaction type plus the
// weighted score boards of every applicable dimension. The primary
// dimensions (global, locale-global) come first in the batch so a partially
// applied pipeline cannot lose them while minor dimensions survive.
func Increments(in domain.Interaction, weight int64, now time.Time) []leaderboard.Increment {
	counterKind := leaderboard.CounterViews
	if in.Type == domain.InteractionBoost {
		counterKind = leaderboard.CounterBoosts
	}

	incs := make([]leaderboard.Increment, 0, 6*len(period.All))
	for _, g := range period.All {
		bucket := period.Bucket(g, now)
		ttl := g.TTL()
		add := func(key string, delta int64) {
			incs = append(incs, leaderboard.Increment{Key: key, Member: in.Slug, Delta: delta, TTL: ttl})
		}

		add(leaderboard.GlobalKey(g, bucket), weight)
		add(leaderboard.LocaleKey(in.Locale, g, bucket), weight)
		add(leaderboard.CounterKey(counterKind, in.Locale, g, bucket), 1)
		if in.Category != "" {
			add(leaderboard.CategoryKey(in.Locale, in.Category, g, bucket), weight)
		}
		if in.Zodiac != "" {
			add(leaderboard.ZodiacKey(in.Locale, in.Zodiac, g, bucket), weight)
		}
		if in.BirthYear > 0 {
			add(leaderboard.YearKey(in.Locale, in.BirthYear, g, bucket), weight)
		}
	}
	return incs
}
