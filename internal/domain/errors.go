package domain

import "errors"

var (
	// ErrInvalidInput is returned for empty player names; it never reaches the score store.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoQuestionsAvailable is returned when a category has zero matching questions.
	ErrNoQuestionsAvailable = errors.New("no questions available for category")
	// ErrCategoryNotFound indicates the requested category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrMalformedQuestion indicates a question record failed boundary validation.
	ErrMalformedQuestion = errors.New("malformed question record")
	// ErrRepositoryUnavailable is a transient read failure; callers fall back to cached data.
	ErrRepositoryUnavailable = errors.New("repository unavailable")
	// ErrPersistenceFailure indicates the leaderboard write failed; the score stays retryable.
	ErrPersistenceFailure = errors.New("leaderboard write failed")
	// ErrSessionNotFound is returned when no session exists for the given ID.
	ErrSessionNotFound = errors.New("session not found")
	// ErrQuestionUnanswered is returned when advancing before the current question is answered.
	ErrQuestionUnanswered = errors.New("current question not answered")
	// ErrSessionCompleted is returned when acting on a session that already finished.
	ErrSessionCompleted = errors.New("session already completed")
	// ErrSessionInProgress is returned when submitting a score before the session finishes.
	ErrSessionInProgress = errors.New("session still in progress")
)
