package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"trivia-service/internal/domain"
)

// Seed inserts categories and questions, skipping rows that already exist, so
// it is safe to run repeatedly.
func Seed(ctx context.Context, pool *pgxpool.Pool, categories []domain.Category, questions []domain.Question) error {
	for _, c := range categories {
		_, err := pool.Exec(ctx, `
INSERT INTO categories (id, name, description) VALUES ($1, $2, $3)
ON CONFLICT (id) DO NOTHING`, c.ID, c.Name, c.Description)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", c.ID, err)
		}
	}

	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("seed question %s: %w", q.ID, err)
		}
		incorrect, err := json.Marshal(q.IncorrectAnswers)
		if err != nil {
			return fmt.Errorf("marshal incorrect answers for %s: %w", q.ID, err)
		}
		_, err = pool.Exec(ctx, `
INSERT INTO questions (id, category_id, prompt, correct_answer, incorrect_answers, difficulty)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO NOTHING`, q.ID, q.CategoryID, q.Prompt, q.CorrectAnswer, incorrect, q.Difficulty)
		if err != nil {
			return fmt.Errorf("seed question %s: %w", q.ID, err)
		}
	}
	return nil
}
