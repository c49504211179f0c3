// Package services – RankService
//
// Read path over the live leaderboards: per-profile rank reports, the
// trending list with cascading period fallback, the monthly top-100 badge,
// and the random published-profile pick. Every read is cached for a short
// fixed window and degrades to "no data" (empty list, null rank) on
// infrastructure failure. Storage errors are never shown to an end user.
package services

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-trending-backend/internal/domain"
	"github.com/tbourn/go-trending-backend/internal/leaderboard"
	"github.com/tbourn/go-trending-backend/internal/period"
	"github.com/tbourn/go-trending-backend/internal/repo"
)

// Read-path cache windows. There is no explicit invalidation: entries simply
// expire, and the staleness window is an accepted property of the design.
const (
	rankCacheTTL     = time.Minute
	trendingCacheTTL = 5 * time.Minute
)

// trendingMinEntries is the sufficiency threshold of the cascading fallback:
// a candidate leaderboard with fewer distinct entries is skipped in favor of
// the next coarser period.
const trendingMinEntries = 5

// badgeMaxRank is the largest locale-global monthly rank that still earns a
// badge.
const badgeMaxRank = 100

// trendingFallback is the ordered candidate list of the trending read. The
// last candidate is used regardless of sufficiency, so low-traffic locales get
// the best available list, never an "insufficient data" error.
var trendingFallback = []period.Granularity{period.Weekly, period.Monthly, period.AllTime}

// RankTags carries the optional dimension tags of a rank report request.
type RankTags struct {
	Category  string
	Zodiac    string
	BirthYear int
}

// PeriodRanks maps a granularity name to a 1-based rank, with explicit null
// when the profile is absent from that board.
type PeriodRanks map[string]*int64

// RankReport is the per-dimension, per-period rank view of one profile.
// Optional dimensions appear only when the corresponding tag was supplied.
type RankReport struct {
	Global   PeriodRanks `json:"global"`
	Locale   PeriodRanks `json:"locale"`
	Category PeriodRanks `json:"category,omitempty"`
	Zodiac   PeriodRanks `json:"zodiac,omitempty"`
	Year     PeriodRanks `json:"year,omitempty"`
}

// TrendingEntry is one row of the trending list, enriched with display data
// from durable storage. Rank is the position on the source leaderboard.
type TrendingEntry struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Score    int64  `json:"score"`
	Rank     int    `json:"rank"`
}

// CounterStats is the raw view/boost disaggregation for one granularity.
type CounterStats struct {
	Views  int64 `json:"views"`
	Boosts int64 `json:"boosts"`
}

// RankService serves rank, trending, badge, stats, and random-profile reads.
type RankService struct {
	DB    *gorm.DB
	Store LiveStore

	cache *gocache.Cache
}

// NewRankService builds a RankService with its read cache.
func NewRankService(db *gorm.DB, store LiveStore) *RankService {
	return &RankService{
		DB:    db,
		Store: store,
		cache: gocache.New(rankCacheTTL, 5*time.Minute),
	}
}

// Ranks returns the profile's 1-based rank in every relevant dimension and
// period. Absent boards yield null. Results are cached for one minute keyed
// by the exact input tuple.
func (s *RankService) Ranks(ctx context.Context, slug, locale string, tags RankTags) (*RankReport, error) {
	tr := otel.Tracer("services/RankService")
	ctx, span := tr.Start(ctx, "Ranks",
		trace.WithAttributes(
			attribute.String("profile.slug", slug),
			attribute.String("locale", locale),
		),
	)
	defer span.End()

	cacheKey := fmt.Sprintf("ranks|%s|%s|%s|%s|%d", slug, locale, tags.Category, tags.Zodiac, tags.BirthYear)
	if v, found := s.cache.Get(cacheKey); found {
		if rep, ok := v.(*RankReport); ok {
			return rep, nil
		}
	}

	now := time.Now()
	rep := &RankReport{
		Global: s.periodRanks(ctx, slug, now, func(g period.Granularity, b string) string {
			return leaderboard.GlobalKey(g, b)
		}),
		Locale: s.periodRanks(ctx, slug, now, func(g period.Granularity, b string) string {
			return leaderboard.LocaleKey(locale, g, b)
		}),
	}
	if tags.Category != "" {
		rep.Category = s.periodRanks(ctx, slug, now, func(g period.Granularity, b string) string {
			return leaderboard.CategoryKey(locale, tags.Category, g, b)
		})
	}
	if tags.Zodiac != "" {
		rep.Zodiac = s.periodRanks(ctx, slug, now, func(g period.Granularity, b string) string {
			return leaderboard.ZodiacKey(locale, tags.Zodiac, g, b)
		})
	}
	if tags.BirthYear > 0 {
		rep.Year = s.periodRanks(ctx, slug, now, func(g period.Granularity, b string) string {
			return leaderboard.YearKey(locale, tags.BirthYear, g, b)
		})
	}

	s.cache.Set(cacheKey, rep, rankCacheTTL)
	return rep, nil
}

// periodRanks queries one dimension across all granularities. A store error
// on a single board degrades that period to null.
func (s *RankService) periodRanks(ctx context.Context, slug string, now time.Time, keyFn func(period.Granularity, string) string) PeriodRanks {
	out := make(PeriodRanks, len(period.All))
	for _, g := range period.All {
		key := keyFn(g, period.Bucket(g, now))
		rank, ok, err := s.Store.Rank(ctx, key, slug)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("rank query failed")
			out[string(g)] = nil
			continue
		}
		if !ok {
			out[string(g)] = nil
			continue
		}
		r := rank
		out[string(g)] = &r
	}
	return out
}

// Trending returns the top `limit` profiles of a locale with display
// enrichment, choosing the first sufficiently populated leaderboard along
// weekly → monthly → all-time. The chosen granularity is returned alongside
// the entries. Cached for five minutes per (locale, limit).
func (s *RankService) Trending(ctx context.Context, locale string, limit int) ([]TrendingEntry, period.Granularity, error) {
	tr := otel.Tracer("services/RankService")
	ctx, span := tr.Start(ctx, "Trending",
		trace.WithAttributes(
			attribute.String("locale", locale),
			attribute.Int("limit", limit),
		),
	)
	defer span.End()

	if limit <= 0 {
		limit = 10
	}

	type cached struct {
		entries []TrendingEntry
		source  period.Granularity
	}
	cacheKey := fmt.Sprintf("trending|%s|%d", locale, limit)
	if v, found := s.cache.Get(cacheKey); found {
		if c, ok := v.(cached); ok {
			return c.entries, c.source, nil
		}
	}

	now := time.Now()
	source := trendingFallback[len(trendingFallback)-1]
	key := ""
	for _, g := range trendingFallback {
		candidate := leaderboard.LocaleKey(locale, g, period.Bucket(g, now))
		n, err := s.Store.Count(ctx, candidate)
		if err != nil {
			log.Warn().Err(err).Str("key", candidate).Msg("trending candidate count failed")
			continue
		}
		if n >= trendingMinEntries {
			source, key = g, candidate
			break
		}
		// Remember the candidate anyway: the last period serves whatever
		// it has when nothing reaches the threshold.
		source, key = g, candidate
	}
	if key == "" {
		return []TrendingEntry{}, source, nil
	}

	top, err := s.Store.TopN(ctx, key, int64(limit))
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("trending read failed, serving empty list")
		return []TrendingEntry{}, source, nil
	}

	entries := s.enrich(ctx, locale, top)
	s.cache.Set(cacheKey, cached{entries: entries, source: source}, trendingCacheTTL)
	return entries, source, nil
}

// enrich joins leaderboard entries with their published profiles. Entries
// without a published profile in the locale are silently dropped; the rank
// of surviving entries keeps its leaderboard position.
func (s *RankService) enrich(ctx context.Context, locale string, top []leaderboard.Entry) []TrendingEntry {
	slugs := make([]string, len(top))
	for i, e := range top {
		slugs[i] = e.Member
	}
	profiles, err := repo.ListPublishedBySlugs(ctx, s.DB, locale, slugs)
	if err != nil {
		log.Warn().Err(err).Str("locale", locale).Msg("trending enrichment failed, serving empty list")
		return []TrendingEntry{}
	}
	bySlug := make(map[string]domain.Profile, len(profiles))
	for _, p := range profiles {
		bySlug[p.Slug] = p
	}

	out := make([]TrendingEntry, 0, len(top))
	for i, e := range top {
		p, ok := bySlug[e.Member]
		if !ok {
			continue
		}
		out = append(out, TrendingEntry{
			Slug:     p.Slug,
			Name:     p.Name,
			Category: p.Category,
			Score:    e.Score,
			Rank:     i + 1,
		})
	}
	return out
}

// MonthlyBadge returns the profile's 1-based rank on the locale-global
// monthly board when it is within the top 100, and nil otherwise (including
// on store failure). Cached like Ranks.
func (s *RankService) MonthlyBadge(ctx context.Context, slug, locale string) (*int64, error) {
	cacheKey := fmt.Sprintf("badge|%s|%s", slug, locale)
	if v, found := s.cache.Get(cacheKey); found {
		if r, ok := v.(*int64); ok {
			return r, nil
		}
	}

	key := leaderboard.LocaleKey(locale, period.Monthly, period.Bucket(period.Monthly, time.Now()))
	rank, ok, err := s.Store.Rank(ctx, key, slug)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("badge query failed")
		return nil, nil
	}

	var badge *int64
	if ok && rank <= badgeMaxRank {
		badge = &rank
	}
	s.cache.Set(cacheKey, badge, rankCacheTTL)
	return badge, nil
}

// Stats returns the raw view/boost counters of a profile per granularity in
// one locale. Counters are display-only and never feed ranking.
func (s *RankService) Stats(ctx context.Context, slug, locale string) (map[string]CounterStats, error) {
	now := time.Now()
	out := make(map[string]CounterStats, len(period.All))
	for _, g := range period.All {
		bucket := period.Bucket(g, now)
		views, err := s.Store.Score(ctx, leaderboard.CounterKey(leaderboard.CounterViews, locale, g, bucket), slug)
		if err != nil {
			return nil, err
		}
		boosts, err := s.Store.Score(ctx, leaderboard.CounterKey(leaderboard.CounterBoosts, locale, g, bucket), slug)
		if err != nil {
			return nil, err
		}
		out[string(g)] = CounterStats{Views: views, Boosts: boosts}
	}
	return out, nil
}

// RandomProfile picks a uniformly random published profile of a locale via
// the slug index. Returns ErrProfileNotFound when the index is empty or the
// picked slug has been unpublished since the last reconciliation.
func (s *RankService) RandomProfile(ctx context.Context, locale string) (*domain.Profile, error) {
	slug, ok, err := s.Store.RandomSlug(ctx, leaderboard.SlugIndexKey(locale))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrProfileNotFound
	}
	p, err := repo.GetPublished(ctx, s.DB, slug, locale)
	if err != nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// History returns the durable snapshot time series of one profile for a
// period tag, most recent bucket first.
func (s *RankService) History(ctx context.Context, slug, periodTag string, limit int) ([]domain.RankSnapshot, error) {
	return repo.ListSnapshots(ctx, s.DB, slug, periodTag, limit)
}
