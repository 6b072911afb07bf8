package domain

import (
	"strings"
	"time"
)

// Category is immutable reference data players pick from on the welcome screen.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Question models an MCQ question. Correctness is exact string equality
// against CorrectAnswer.
type Question struct {
	ID               string   `json:"id"`
	CategoryID       string   `json:"categoryId"`
	Prompt           string   `json:"prompt"`
	CorrectAnswer    string   `json:"correctAnswer"`
	IncorrectAnswers []string `json:"incorrectAnswers"`
	Difficulty       string   `json:"difficulty"`
}

// Validate rejects malformed question records at the repository boundary.
func (q Question) Validate() error {
	if strings.TrimSpace(q.ID) == "" ||
		strings.TrimSpace(q.CategoryID) == "" ||
		strings.TrimSpace(q.Prompt) == "" ||
		strings.TrimSpace(q.CorrectAnswer) == "" ||
		len(q.IncorrectAnswers) == 0 {
		return ErrMalformedQuestion
	}
	return nil
}

// AnswerResult summarizes the outcome of one answer. The correct answer is
// revealed regardless of outcome.
type AnswerResult struct {
	QuestionID    string `json:"questionId"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
	Awarded       int    `json:"awarded"`
	TotalScore    int    `json:"totalScore"`
}

// QuestionView is the per-presentation shape of the current question: options
// are already shuffled and stripped of the correct flag.
type QuestionView struct {
	QuestionID string   `json:"questionId"`
	CategoryID string   `json:"categoryId"`
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options"`
	Number     int      `json:"number"` // 1-based within the session
	Total      int      `json:"total"`
}

// LeaderboardEntry is a persisted record of one completed session's final
// score. Entries are append-only; SessionID is the idempotency key.
type LeaderboardEntry struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"sessionId"`
	PlayerName   string    `json:"playerName"`
	Score        int       `json:"score"`
	CategoryID   string    `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// Leaderboard is the ordered top-N view: score descending, ties broken by
// submission time ascending.
type Leaderboard struct {
	Entries   []LeaderboardEntry `json:"entries"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
