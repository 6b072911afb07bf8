package memory

import (
	"context"
	"sort"
	"sync"

	"trivia-service/internal/domain"
)

// ScoreStore is an in-memory implementation of app.ScoreStore. Entries are
// append-only; a repeated session ID returns the already-stored entry instead
// of creating a duplicate.
type ScoreStore struct {
	mu      sync.RWMutex
	entries []domain.LeaderboardEntry
}

func NewScoreStore() *ScoreStore {
	return &ScoreStore{}
}

func (s *ScoreStore) AppendEntry(_ context.Context, entry domain.LeaderboardEntry) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.entries {
		if existing.SessionID == entry.SessionID {
			return existing.ID, nil
		}
	}
	s.entries = append(s.entries, entry)
	return entry.ID, nil
}

func (s *ScoreStore) TopEntries(_ context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	top := make([]domain.LeaderboardEntry, len(s.entries))
	copy(top, s.entries)
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Score != top[j].Score {
			return top[i].Score > top[j].Score
		}
		return top[i].SubmittedAt.Before(top[j].SubmittedAt)
	})
	if limit > 0 && len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}
