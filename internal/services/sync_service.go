// Package services – SyncService
//
// The reconciliation job replays the live global leaderboards into durable
// snapshot rows on a fixed external schedule, then rebuilds the per-locale
// published-slug index wholesale. The job is idempotent end to end: rows are
// written by upsert keyed on (slug, period, date), so re-running against an
// unchanged leaderboard produces identical rows, and a run that failed
// midway is simply resumed by the next scheduled run.
//
// Concurrency note: pagination reads rank by fixed offset windows while
// fan-out writes keep mutating the boards underneath. A few entries may be
// double-counted, skipped, or get a slightly stale rank across chunk
// boundaries; this bounded inconsistency self-corrects on the next run and
// is deliberately not solved with a snapshot or lock.
package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/tbourn/go-trending-backend/internal/leaderboard"
	"github.com/tbourn/go-trending-backend/internal/period"
	"github.com/tbourn/go-trending-backend/internal/repo"
)

const (
	// syncChunkSize is the page size of the leaderboard scan; each chunk's
	// upserts are committed as one transaction.
	syncChunkSize = 100
	// syncMaxOffset aborts pagination against pathological boards.
	syncMaxOffset = 100_000
)

// SyncReport summarizes one reconciliation run. Synced counts rows written
// per granularity; Errors carries the first failure per granularity (the
// remaining chunks of that granularity are skipped, already-committed chunks
// stay committed).
type SyncReport struct {
	Synced      map[string]int    `json:"synced"`
	SyncedSlugs int               `json:"synced_slugs"`
	Errors      map[string]string `json:"errors,omitempty"`
}

// SyncService reconciles live leaderboards into durable storage.
type SyncService struct {
	DB      *gorm.DB
	Store   LiveStore
	Locales []string // supported locales for rankLocal and the slug index
}

// Run executes one reconciliation pass over the current bucket of every
// granularity, then rebuilds the slug index for every supported locale.
// It never returns an error: partial failures are reported per granularity
// in the returned report and retried naturally by the next scheduled run.
func (s *SyncService) Run(ctx context.Context) *SyncReport {
	tr := otel.Tracer("services/SyncService")
	ctx, span := tr.Start(ctx, "Run")
	defer span.End()

	report := &SyncReport{
		Synced: make(map[string]int, len(period.All)),
		Errors: make(map[string]string),
	}

	now := time.Now()
	for _, g := range period.All {
		n, err := s.syncGranularity(ctx, g, now)
		report.Synced[string(g)] = n
		if err != nil {
			report.Errors[string(g)] = err.Error()
			log.Error().Err(err).Str("granularity", string(g)).Msg("leaderboard sync aborted")
		}
	}

	slugs, err := s.rebuildSlugIndex(ctx)
	report.SyncedSlugs = slugs
	if err != nil {
		report.Errors["slugs"] = err.Error()
		log.Error().Err(err).Msg("slug index rebuild failed")
	}

	if len(report.Errors) == 0 {
		report.Errors = nil
	}
	span.SetAttributes(attribute.Int("synced_slugs", report.SyncedSlugs))
	return report
}

// syncGranularity pages through the current global bucket of g in
// score-descending order and upserts one snapshot row per entry. Chunks are
// independent transactions: a failure aborts this granularity fail-fast but
// leaves earlier chunks durably committed.
func (s *SyncService) syncGranularity(ctx context.Context, g period.Granularity, now time.Time) (int, error) {
	bucket := period.Bucket(g, now)
	key := leaderboard.GlobalKey(g, bucket)
	date := period.Parse(g, bucket)
	periodTag := g.Period()

	total := 0
	for offset := int64(0); ; offset += syncChunkSize {
		if offset >= syncMaxOffset {
			log.Warn().Str("key", key).Int64("offset", offset).Msg("sync offset ceiling reached, aborting pagination")
			break
		}

		chunk, err := s.Store.Page(ctx, key, offset, syncChunkSize)
		if err != nil {
			return total, err
		}
		if len(chunk) == 0 {
			break
		}

		err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for i, entry := range chunk {
				rankGlobal := int(offset) + i + 1
				rankLocal := s.localRank(ctx, entry.Member, g, bucket)
				if err := repo.UpsertSnapshot(tx, entry.Member, periodTag, date, entry.Score, rankGlobal, rankLocal); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return total, err
		}

		total += len(chunk)
		if len(chunk) < syncChunkSize {
			break
		}
	}
	return total, nil
}

// localRank resolves the slug's rank on the first locale-global board that
// contains it, probing supported locales in configuration order. Slugs on no
// locale board (or probe failures) yield 0, the "not ranked locally" marker.
func (s *SyncService) localRank(ctx context.Context, slug string, g period.Granularity, bucket string) int {
	for _, locale := range s.Locales {
		rank, ok, err := s.Store.Rank(ctx, leaderboard.LocaleKey(locale, g, bucket), slug)
		if err != nil {
			log.Debug().Err(err).Str("slug", slug).Str("locale", locale).Msg("local rank probe failed")
			continue
		}
		if ok {
			return int(rank)
		}
	}
	return 0
}

// rebuildSlugIndex re-derives every locale's published-slug set from durable
// storage and swaps the live set atomically, so the index never keeps slugs
// that were unpublished or removed since the last run.
func (s *SyncService) rebuildSlugIndex(ctx context.Context) (int, error) {
	total := 0
	for _, locale := range s.Locales {
		slugs, err := repo.ListPublishedSlugs(ctx, s.DB, locale)
		if err != nil {
			return total, err
		}
		if err := s.Store.ReplaceSlugs(ctx, leaderboard.SlugIndexKey(locale), slugs); err != nil {
			return total, err
		}
		total += len(slugs)
	}
	return total, nil
}
