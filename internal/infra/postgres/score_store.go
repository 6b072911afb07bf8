package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"trivia-service/internal/domain"
)

// ScoreStore persists leaderboard entries in Postgres. The unique index on
// session_id makes submission idempotent: retrying a completed session's
// submit can never create a duplicate entry.
type ScoreStore struct {
	pool *pgxpool.Pool
}

func NewScoreStore(pool *pgxpool.Pool) *ScoreStore {
	return &ScoreStore{pool: pool}
}

func (s *ScoreStore) AppendEntry(ctx context.Context, entry domain.LeaderboardEntry) (string, error) {
	const insert = `
INSERT INTO leaderboard_entries (id, session_id, player_name, score, category_id, category_name, submitted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (session_id) DO NOTHING
RETURNING id`

	var id string
	err := s.pool.QueryRow(ctx, insert,
		entry.ID, entry.SessionID, entry.PlayerName, entry.Score,
		entry.CategoryID, entry.CategoryName, entry.SubmittedAt,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		// Conflict on session_id: the entry already exists, report its ID.
		err = s.pool.QueryRow(ctx,
			`SELECT id FROM leaderboard_entries WHERE session_id = $1`, entry.SessionID).Scan(&id)
	}
	if err != nil {
		return "", fmt.Errorf("%w: append entry: %v", domain.ErrPersistenceFailure, err)
	}
	return id, nil
}

func (s *ScoreStore) TopEntries(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := s.pool.Query(ctx, `
SELECT id, session_id, player_name, score, category_id, category_name, submitted_at
FROM leaderboard_entries
ORDER BY score DESC, submitted_at ASC
LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: top entries: %v", domain.ErrRepositoryUnavailable, err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.PlayerName, &e.Score, &e.CategoryID, &e.CategoryName, &e.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: top entries: %v", domain.ErrRepositoryUnavailable, err)
	}
	return entries, nil
}
