// Package services – LiveStore contract
//
// The in-memory leaderboard store is the single shared mutable resource of
// the subsystem. Services reach it exclusively through this narrow interface
// (increment, range, rank, cardinality, cooldown, slug-set ops), which keeps
// the Redis client out of the business layer and lets tests substitute an
// in-memory fake.
package services

import (
	"context"
	"time"

	"github.com/tbourn/go-trending-backend/internal/leaderboard"
)

// LiveStore is the operation set services are allowed to run against the
// live leaderboard store. *leaderboard.Store satisfies it.
type LiveStore interface {
	// Apply issues a batch of increments as one pipeline. Not atomic
	// across keys; partial application on crash is acceptable.
	Apply(ctx context.Context, incs []leaderboard.Increment) error
	// TopN returns up to n entries ordered by descending score.
	TopN(ctx context.Context, key string, n int64) ([]leaderboard.Entry, error)
	// Page returns count entries starting at offset, descending by score.
	Page(ctx context.Context, key string, offset, count int64) ([]leaderboard.Entry, error)
	// Rank returns the 1-based descending rank of member, ok=false if absent.
	Rank(ctx context.Context, key, member string) (int64, bool, error)
	// Score returns member's cumulative score (0 when absent).
	Score(ctx context.Context, key, member string) (int64, error)
	// Count returns the number of distinct members.
	Count(ctx context.Context, key string) (int64, error)
	// AcquireCooldown atomically claims a cooldown token; exactly one
	// concurrent caller wins while the token is absent.
	AcquireCooldown(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// ReplaceSlugs atomically swaps a slug-index set.
	ReplaceSlugs(ctx context.Context, key string, slugs []string) error
	// RandomSlug returns one random member of a slug-index set.
	RandomSlug(ctx context.Context, key string) (string, bool, error)
}
