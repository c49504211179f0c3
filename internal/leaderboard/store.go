// Package leaderboard implements the live ranking store on top of Redis
// sorted sets. This file wraps the narrow operation set the rest of the
// application is allowed to use: batched increments, descending range and
// rank queries, cardinality, the atomic cooldown gate, and slug-set
// maintenance. No other Redis commands are issued anywhere in the codebase.
package leaderboard

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultOpTimeout bounds every single store operation. The write path is
// asynchronous and the read path is cached, so a short ceiling is enough.
const defaultOpTimeout = 3 * time.Second

// Entry is one member of a leaderboard with its cumulative score.
type Entry struct {
	Member string
	Score  int64
}

// Increment describes one ZINCRBY to perform as part of a fan-out batch.
// A non-zero TTL re-arms the key's expiry after the increment, so active
// buckets never expire while still receiving traffic.
type Increment struct {
	Key    string
	Member string
	Delta  int64
	TTL    time.Duration
}

// Store exposes the live leaderboard operations backed by a Redis client.
// All methods are safe for concurrent use; the only operation requiring true
// atomicity (AcquireCooldown) maps to a single SETNX.
type Store struct {
	rdb       redis.Cmdable
	opTimeout time.Duration
}

// NewStore wraps an existing Redis client. The client's own dial/read
// timeouts still apply underneath the per-operation deadline added here.
func NewStore(rdb redis.Cmdable) *Store {
	return &Store{rdb: rdb, opTimeout: defaultOpTimeout}
}

// NewClient builds a Redis client for the given address and logical DB.
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Apply issues a batch of increments as one pipeline to minimize round
// trips. The pipeline is not transactional across keys: a partial
// application on failure is acceptable because every increment is
// independent and the primary dimensions are written first.
func (s *Store) Apply(ctx context.Context, incs []Increment) error {
	if len(incs) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	pipe := s.rdb.Pipeline()
	for _, inc := range incs {
		pipe.ZIncrBy(ctx, inc.Key, float64(inc.Delta), inc.Member)
		if inc.TTL > 0 {
			pipe.Expire(ctx, inc.Key, inc.TTL)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

// TopN returns up to n entries of a leaderboard ordered by descending score.
func (s *Store) TopN(ctx context.Context, key string, n int64) ([]Entry, error) {
	return s.Page(ctx, key, 0, n)
}

// Page returns `count` entries starting at `offset` in descending score
// order. Offsets index the board as it exists at call time; concurrent
// writes may shift entries between pages, which callers tolerate.
func (s *Store) Page(ctx context.Context, key string, offset, count int64) ([]Entry, error) {
	if count <= 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	zs, err := s.rdb.ZRevRangeWithScores(ctx, key, offset, offset+count-1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(zs))
	for _, z := range zs {
		member, _ := z.Member.(string)
		out = append(out, Entry{Member: member, Score: int64(z.Score)})
	}
	return out, nil
}

// Rank returns the 1-based descending rank of member in the leaderboard, or
// ok=false when the member is absent (or the key does not exist).
func (s *Store) Rank(ctx context.Context, key, member string) (rank int64, ok bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	pos, err := s.rdb.ZRevRank(ctx, key, member).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return pos + 1, true, nil
}

// Score returns member's cumulative score in a board (0 when absent).
func (s *Store) Score(ctx context.Context, key, member string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	v, err := s.rdb.ZScore(ctx, key, member).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// Count returns the number of distinct members in a leaderboard.
func (s *Store) Count(ctx context.Context, key string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()
	return s.rdb.ZCard(ctx, key).Result()
}

// AcquireCooldown atomically claims the cooldown token for key with the
// given lifetime. It returns true for exactly one caller among concurrent
// attempts while the token is absent; every other caller gets false until
// the token expires. Implemented as a single SETNX, never read-then-write.
func (s *Store) AcquireCooldown(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()
	return s.rdb.SetNX(ctx, key, 1, ttl).Result()
}

// ReplaceSlugs atomically swaps the contents of a slug-index set. The
// delete-then-add runs inside one MULTI/EXEC so readers never observe a
// half-rebuilt index.
func (s *Store) ReplaceSlugs(ctx context.Context, key string, slugs []string) error {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key)
	if len(slugs) > 0 {
		members := make([]interface{}, len(slugs))
		for i, sl := range slugs {
			members[i] = sl
		}
		pipe.SAdd(ctx, key, members...)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// RandomSlug returns one uniformly random member of a slug-index set, or
// ok=false when the set is empty.
func (s *Store) RandomSlug(ctx context.Context, key string) (slug string, ok bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	v, err := s.rdb.SRandMember(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}
