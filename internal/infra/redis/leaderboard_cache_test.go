package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"trivia-service/internal/domain"
	"trivia-service/internal/infra/memory"
)

func TestLeaderboardCacheServesCachedCopyWhenStoreDown(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	inner := &toggledStore{inner: memory.NewScoreStore()}
	cache := NewLeaderboardCache(inner, client, time.Minute)
	ctx := context.Background()

	if _, err := cache.AppendEntry(ctx, domain.LeaderboardEntry{
		ID: "e1", SessionID: "sess-1", PlayerName: "Ann", Score: 30, SubmittedAt: time.Now(),
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	// A successful read warms the cache.
	top, err := cache.TopEntries(ctx, 10)
	if err != nil {
		t.Fatalf("top entries: %v", err)
	}
	if len(top) != 1 || top[0].PlayerName != "Ann" {
		t.Fatalf("unexpected leaderboard %+v", top)
	}

	// Store of record goes down: the cached copy is served instead.
	inner.down = true
	cached, err := cache.TopEntries(ctx, 10)
	if err != nil {
		t.Fatalf("expected cached fallback, got %v", err)
	}
	if len(cached) != 1 || cached[0].PlayerName != "Ann" {
		t.Fatalf("unexpected cached leaderboard %+v", cached)
	}
}

func TestLeaderboardCacheSurfacesErrorWithoutCachedCopy(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	inner := &toggledStore{inner: memory.NewScoreStore(), down: true}
	cache := NewLeaderboardCache(inner, client, time.Minute)

	if _, err := cache.TopEntries(context.Background(), 10); err == nil {
		t.Fatalf("expected error when store is down and nothing is cached")
	}
}

func TestLeaderboardCacheInvalidatesOnAppend(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewLeaderboardCache(memory.NewScoreStore(), client, time.Minute)
	ctx := context.Background()

	if _, err := cache.AppendEntry(ctx, domain.LeaderboardEntry{ID: "e1", SessionID: "a", Score: 10}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := cache.TopEntries(ctx, 10); err != nil {
		t.Fatalf("top entries: %v", err)
	}
	if !mr.Exists("trivia:leaderboard:top") {
		t.Fatalf("expected cached leaderboard key")
	}

	if _, err := cache.AppendEntry(ctx, domain.LeaderboardEntry{ID: "e2", SessionID: "b", Score: 20}); err != nil {
		t.Fatalf("append 2: %v", err)
	}
	if mr.Exists("trivia:leaderboard:top") {
		t.Fatalf("expected cached leaderboard dropped after append")
	}
}

// toggledStore simulates a store of record that can be taken down.
type toggledStore struct {
	inner *memory.ScoreStore
	down  bool
}

func (s *toggledStore) AppendEntry(ctx context.Context, entry domain.LeaderboardEntry) (string, error) {
	if s.down {
		return "", domain.ErrPersistenceFailure
	}
	return s.inner.AppendEntry(ctx, entry)
}

func (s *toggledStore) TopEntries(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if s.down {
		return nil, domain.ErrRepositoryUnavailable
	}
	return s.inner.TopEntries(ctx, limit)
}
