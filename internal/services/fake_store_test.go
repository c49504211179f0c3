package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tbourn/go-trending-backend/internal/leaderboard"
)

// fakeStore is an in-memory LiveStore used across the service tests. It
// mirrors the sorted-set semantics the Redis-backed store relies on:
// descending score order with lexicographic tie-break, atomic set-if-absent
// cooldown tokens, and wholesale slug-set replacement.
type fakeStore struct {
	mu        sync.Mutex
	boards    map[string]map[string]int64
	ttls      map[string]time.Duration
	cooldowns map[string]time.Time
	slugSets  map[string][]string

	// failKeys makes operations on matching keys return errFake.
	failKeys map[string]bool
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }

const errFake = fakeErr("fake store failure")

func newFakeStore() *fakeStore {
	return &fakeStore{
		boards:    make(map[string]map[string]int64),
		ttls:      make(map[string]time.Duration),
		cooldowns: make(map[string]time.Time),
		slugSets:  make(map[string][]string),
		failKeys:  make(map[string]bool),
	}
}

func (f *fakeStore) sorted(key string) []leaderboard.Entry {
	board := f.boards[key]
	out := make([]leaderboard.Entry, 0, len(board))
	for m, s := range board {
		out = append(out, leaderboard.Entry{Member: m, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Member < out[j].Member
	})
	return out
}

func (f *fakeStore) Apply(_ context.Context, incs []leaderboard.Increment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, inc := range incs {
		if f.failKeys[inc.Key] {
			return errFake
		}
		board, ok := f.boards[inc.Key]
		if !ok {
			board = make(map[string]int64)
			f.boards[inc.Key] = board
		}
		board[inc.Member] += inc.Delta
		if inc.TTL > 0 {
			f.ttls[inc.Key] = inc.TTL
		}
	}
	return nil
}

func (f *fakeStore) TopN(ctx context.Context, key string, n int64) ([]leaderboard.Entry, error) {
	return f.Page(ctx, key, 0, n)
}

func (f *fakeStore) Page(_ context.Context, key string, offset, count int64) ([]leaderboard.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failKeys[key] {
		return nil, errFake
	}
	all := f.sorted(key)
	if offset >= int64(len(all)) {
		return nil, nil
	}
	end := offset + count
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[offset:end], nil
}

func (f *fakeStore) Rank(_ context.Context, key, member string) (int64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failKeys[key] {
		return 0, false, errFake
	}
	for i, e := range f.sorted(key) {
		if e.Member == member {
			return int64(i) + 1, true, nil
		}
	}
	return 0, false, nil
}

func (f *fakeStore) Score(_ context.Context, key, member string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failKeys[key] {
		return 0, errFake
	}
	return f.boards[key][member], nil
}

func (f *fakeStore) Count(_ context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failKeys[key] {
		return 0, errFake
	}
	return int64(len(f.boards[key])), nil
}

func (f *fakeStore) AcquireCooldown(_ context.Context, key string, ttl time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failKeys[key] {
		return false, errFake
	}
	now := time.Now()
	if exp, ok := f.cooldowns[key]; ok && exp.After(now) {
		return false, nil
	}
	f.cooldowns[key] = now.Add(ttl)
	return true, nil
}

func (f *fakeStore) ReplaceSlugs(_ context.Context, key string, slugs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failKeys[key] {
		return errFake
	}
	f.slugSets[key] = append([]string(nil), slugs...)
	return nil
}

func (f *fakeStore) RandomSlug(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failKeys[key] {
		return "", false, errFake
	}
	set := f.slugSets[key]
	if len(set) == 0 {
		return "", false, nil
	}
	return set[0], true, nil
}

// seedBoard replaces a board's contents directly.
func (f *fakeStore) seedBoard(key string, scores map[string]int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	board := make(map[string]int64, len(scores))
	for m, s := range scores {
		board[m] = s
	}
	f.boards[key] = board
}

func (f *fakeStore) boardScore(key, member string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.boards[key][member]
}
