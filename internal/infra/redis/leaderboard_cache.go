package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"trivia-service/internal/app"
	"trivia-service/internal/domain"
)

// LeaderboardCache decorates an app.ScoreStore with a Redis-cached copy of the
// top-N view. When the store of record is unavailable, the last-known cached
// leaderboard is served instead, so the leaderboard screen keeps working
// through transient outages.
type LeaderboardCache struct {
	inner  app.ScoreStore
	client *redis.Client
	ttl    time.Duration
}

func NewLeaderboardCache(inner app.ScoreStore, client *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{inner: inner, client: client, ttl: ttl}
}

// AppendEntry writes through to the store of record and drops the cached view
// so the next read reflects the new entry.
func (c *LeaderboardCache) AppendEntry(ctx context.Context, entry domain.LeaderboardEntry) (string, error) {
	id, err := c.inner.AppendEntry(ctx, entry)
	if err != nil {
		return "", err
	}
	if err := c.client.Del(ctx, c.key()).Err(); err != nil {
		log.Printf("leaderboard cache invalidate: %v", err)
	}
	return id, nil
}

// TopEntries reads from the store of record, refreshing the cached copy on
// success. On ErrRepositoryUnavailable it falls back to the cached copy; the
// error is surfaced only when no cached copy exists either.
func (c *LeaderboardCache) TopEntries(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	entries, err := c.inner.TopEntries(ctx, limit)
	if err == nil {
		if data, merr := json.Marshal(entries); merr == nil {
			_ = c.client.Set(ctx, c.key(), data, c.ttl).Err()
		}
		return entries, nil
	}
	if !errors.Is(err, domain.ErrRepositoryUnavailable) {
		return nil, err
	}

	raw, cerr := c.client.Get(ctx, c.key()).Bytes()
	if cerr != nil {
		return nil, err
	}
	var cached []domain.LeaderboardEntry
	if uerr := json.Unmarshal(raw, &cached); uerr != nil {
		return nil, err
	}
	if limit > 0 && len(cached) > limit {
		cached = cached[:limit]
	}
	return cached, nil
}

func (c *LeaderboardCache) key() string {
	return "trivia:leaderboard:top"
}
