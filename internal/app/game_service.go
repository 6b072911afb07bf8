package app

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"trivia-service/internal/config"
	"trivia-service/internal/domain"
)

// QuestionRepository loads reference data (from cache/backing store).
type QuestionRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	FetchQuestions(ctx context.Context, categoryID string) ([]domain.Question, error)
}

// ScoreStore persists leaderboard entries and serves the top-N view.
type ScoreStore interface {
	AppendEntry(ctx context.Context, entry domain.LeaderboardEntry) (string, error)
	TopEntries(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

// SessionStore abstracts how active play-throughs are tracked (in-memory, Redis, etc).
type SessionStore interface {
	Put(session *Session)
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
}

// GameService contains the quiz session use cases: one play-through from
// category selection to leaderboard submission.
type GameService struct {
	sessions  SessionStore
	questions QuestionRepository
	scores    ScoreStore
	settings  config.Game

	newID func() string
	now   func() time.Time
	seed  func() rand.Source
}

func NewGameService(sessions SessionStore, questions QuestionRepository, scores ScoreStore, settings config.Game) *GameService {
	return &GameService{
		sessions:  sessions,
		questions: questions,
		scores:    scores,
		settings:  settings,
		newID:     uuid.NewString,
		now:       time.Now,
		seed:      func() rand.Source { return rand.NewSource(time.Now().UnixNano()) },
	}
}

// NewGameServiceWithClock is test-only for deterministic timestamps and shuffles.
func NewGameServiceWithClock(sessions SessionStore, questions QuestionRepository, scores ScoreStore, settings config.Game, now func() time.Time, seed int64) *GameService {
	s := NewGameService(sessions, questions, scores, settings)
	s.now = now
	s.seed = func() rand.Source { return rand.NewSource(seed) }
	return s
}

// StartedSession is the engine's answer to a successful session start.
type StartedSession struct {
	SessionID string              `json:"sessionId"`
	Category  domain.Category     `json:"category"`
	Question  domain.QuestionView `json:"question"`
	Score     int                 `json:"score"`
}

// AdvanceResult carries either the next question or the final score.
type AdvanceResult struct {
	Completed  bool                `json:"completed"`
	Question   domain.QuestionView `json:"question"`
	FinalScore int                 `json:"finalScore"`
	MaxScore   int                 `json:"maxScore"`
}

// Categories lists the selectable categories for the welcome screen.
func (s *GameService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.questions.ListCategories(ctx)
}

// StartSession begins a new play-through for the given category. The player
// name must be non-empty after trimming; the category pool must be non-empty.
func (s *GameService) StartSession(ctx context.Context, playerName, categoryID string) (StartedSession, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return StartedSession{}, domain.ErrInvalidInput
	}

	category, err := s.category(ctx, categoryID)
	if err != nil {
		return StartedSession{}, err
	}

	pool, err := s.questions.FetchQuestions(ctx, categoryID)
	if err != nil {
		return StartedSession{}, err
	}
	if len(pool) == 0 {
		return StartedSession{}, domain.ErrNoQuestionsAvailable
	}

	session := newSession(sessionParams{
		id:         s.newID(),
		playerName: playerName,
		category:   category,
		pool:       pool,
		target:     s.settings.QuestionsPerSession,
		points:     s.settings.PointsPerQuestion,
		rnd:        rand.New(s.seed()),
		now:        s.now,
	})
	s.sessions.Put(session)

	return StartedSession{
		SessionID: session.ID(),
		Category:  category,
		Question:  session.CurrentQuestion(),
		Score:     0,
	}, nil
}

// SelectAnswer evaluates the chosen option against the current question.
// Repeated selections before an advance are silently ignored and return the
// recorded result, so a double click can never double-score.
func (s *GameService) SelectAnswer(_ context.Context, sessionID, option string) (domain.AnswerResult, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.AnswerResult{}, domain.ErrSessionNotFound
	}
	return session.selectAnswer(option)
}

// Advance moves the session to the next question, or to its final score once
// the target count has been presented.
func (s *GameService) Advance(_ context.Context, sessionID string) (AdvanceResult, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return AdvanceResult{}, domain.ErrSessionNotFound
	}
	return session.advance()
}

// CurrentQuestion returns the presentation view of the session's current question.
func (s *GameService) CurrentQuestion(sessionID string) (domain.QuestionView, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.QuestionView{}, domain.ErrSessionNotFound
	}
	if session.Completed() {
		return domain.QuestionView{}, domain.ErrSessionCompleted
	}
	return session.CurrentQuestion(), nil
}

// SubmitScore persists the completed session's score as a leaderboard entry.
// The session ID doubles as the idempotency key, so a retried submission can
// never create a duplicate entry. Writes are retried with exponential backoff
// before surfacing ErrPersistenceFailure; the session stays completed either
// way, so the player can retry.
func (s *GameService) SubmitScore(ctx context.Context, sessionID, playerName string) (domain.LeaderboardEntry, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return domain.LeaderboardEntry{}, domain.ErrInvalidInput
	}

	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.LeaderboardEntry{}, domain.ErrSessionNotFound
	}
	score, category, err := session.finalScore()
	if err != nil {
		return domain.LeaderboardEntry{}, err
	}

	entry := domain.LeaderboardEntry{
		ID:           s.newID(),
		SessionID:    sessionID,
		PlayerName:   playerName,
		Score:        score,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		SubmittedAt:  s.now(),
	}

	storedID, err := s.appendWithRetry(ctx, entry)
	if err != nil {
		return domain.LeaderboardEntry{}, err
	}
	// A resubmitted session keeps its original entry; report the stored ID.
	entry.ID = storedID

	// Warm the cached leaderboard view; failures here are not the caller's problem.
	if _, err := s.scores.TopEntries(ctx, s.settings.LeaderboardLimit); err != nil {
		log.Printf("leaderboard refresh after submit: %v", err)
	}
	return entry, nil
}

func (s *GameService) appendWithRetry(ctx context.Context, entry domain.LeaderboardEntry) (string, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	bo.MaxInterval = time.Second

	var storedID string
	op := func() error {
		id, err := s.scores.AppendEntry(ctx, entry)
		if err == nil {
			storedID = id
			return nil
		}
		if errors.Is(err, domain.ErrPersistenceFailure) || errors.Is(err, domain.ErrRepositoryUnavailable) {
			return err
		}
		return backoff.Permanent(err)
	}
	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(s.settings.SubmitRetries)), ctx))
	if err == nil {
		return storedID, nil
	}
	if errors.Is(err, domain.ErrPersistenceFailure) || errors.Is(err, domain.ErrRepositoryUnavailable) {
		return "", domain.ErrPersistenceFailure
	}
	return "", err
}

// Leaderboard returns the configured top-N, sorted by score descending with
// ties broken by submission time.
func (s *GameService) Leaderboard(ctx context.Context) (domain.Leaderboard, error) {
	entries, err := s.scores.TopEntries(ctx, s.settings.LeaderboardLimit)
	if err != nil {
		return domain.Leaderboard{}, err
	}
	return domain.Leaderboard{Entries: entries, UpdatedAt: s.now()}, nil
}

// Reset discards the session; no partial state carries over.
func (s *GameService) Reset(sessionID string) {
	s.sessions.Delete(sessionID)
}

func (s *GameService) category(ctx context.Context, categoryID string) (domain.Category, error) {
	categories, err := s.questions.ListCategories(ctx)
	if err != nil {
		return domain.Category{}, err
	}
	for _, c := range categories {
		if c.ID == categoryID {
			return c, nil
		}
	}
	return domain.Category{}, domain.ErrCategoryNotFound
}
