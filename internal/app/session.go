package app

import (
	"math/rand"
	"sync"
	"time"

	"trivia-service/internal/domain"
)

// Session is the mutable state of one play-through. It is owned by the engine
// and mutated only through its methods; the rendering layer never touches it.
type Session struct {
	id         string
	playerName string
	category   domain.Category
	target     int
	points     int

	mu        sync.Mutex
	pool      []domain.Question
	asked     map[string]struct{}
	presented int
	current   domain.Question
	options   []string
	score     int
	answered  bool
	last      domain.AnswerResult
	completed bool

	rnd       *rand.Rand
	now       func() time.Time
	createdAt time.Time
}

type sessionParams struct {
	id         string
	playerName string
	category   domain.Category
	pool       []domain.Question
	target     int
	points     int
	rnd        *rand.Rand
	now        func() time.Time
}

func newSession(p sessionParams) *Session {
	s := &Session{
		id:         p.id,
		playerName: p.playerName,
		category:   p.category,
		target:     p.target,
		points:     p.points,
		pool:       p.pool,
		asked:      make(map[string]struct{}, len(p.pool)),
		rnd:        p.rnd,
		now:        p.now,
		createdAt:  p.now(),
	}
	s.mu.Lock()
	s.pickNextLocked()
	s.mu.Unlock()
	return s
}

// NewSession is exported for infrastructure layers and tests that need to
// seed sessions directly.
func NewSession(id string, category domain.Category, pool []domain.Question, target, points int) *Session {
	return newSession(sessionParams{
		id:       id,
		category: category,
		pool:     pool,
		target:   target,
		points:   points,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	})
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// PlayerName returns the name the session was started with.
func (s *Session) PlayerName() string {
	return s.playerName
}

// Completed reports whether the final question has been answered and advanced past.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// Score returns the running score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// CurrentQuestion returns the presentation view of the current question with
// its per-presentation option order.
func (s *Session) CurrentQuestion() domain.QuestionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) selectAnswer(option string) (domain.AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return domain.AnswerResult{}, domain.ErrSessionCompleted
	}
	if s.answered {
		// Repeated selection before an advance: designed no-op.
		return s.last, nil
	}

	s.answered = true
	correct := option == s.current.CorrectAnswer
	awarded := 0
	if correct {
		awarded = s.points
		s.score += awarded
	}
	s.last = domain.AnswerResult{
		QuestionID:    s.current.ID,
		Correct:       correct,
		CorrectAnswer: s.current.CorrectAnswer,
		Awarded:       awarded,
		TotalScore:    s.score,
	}
	return s.last, nil
}

func (s *Session) advance() (AdvanceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return AdvanceResult{}, domain.ErrSessionCompleted
	}
	if !s.answered {
		return AdvanceResult{}, domain.ErrQuestionUnanswered
	}

	if s.presented >= s.target {
		s.completed = true
		return AdvanceResult{
			Completed:  true,
			FinalScore: s.score,
			MaxScore:   s.target * s.points,
		}, nil
	}

	s.pickNextLocked()
	return AdvanceResult{Question: s.viewLocked()}, nil
}

func (s *Session) finalScore() (int, domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.completed {
		return 0, domain.Category{}, domain.ErrSessionInProgress
	}
	return s.score, s.category, nil
}

// pickNextLocked selects the next question uniformly from the not-yet-asked
// remainder of the category pool, resampling from the full pool once every
// question has been asked. Callers hold s.mu.
func (s *Session) pickNextLocked() {
	remaining := make([]domain.Question, 0, len(s.pool))
	for _, q := range s.pool {
		if _, seen := s.asked[q.ID]; !seen {
			remaining = append(remaining, q)
		}
	}
	if len(remaining) == 0 {
		remaining = s.pool
	}

	s.current = remaining[s.rnd.Intn(len(remaining))]
	s.asked[s.current.ID] = struct{}{}
	s.presented++
	s.answered = false
	s.options = s.shuffledOptionsLocked()
}

// shuffledOptionsLocked permutes the options so the correct answer's position
// carries no signal.
func (s *Session) shuffledOptionsLocked() []string {
	options := make([]string, 0, len(s.current.IncorrectAnswers)+1)
	options = append(options, s.current.IncorrectAnswers...)
	options = append(options, s.current.CorrectAnswer)
	s.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func (s *Session) viewLocked() domain.QuestionView {
	options := make([]string, len(s.options))
	copy(options, s.options)
	return domain.QuestionView{
		QuestionID: s.current.ID,
		CategoryID: s.current.CategoryID,
		Prompt:     s.current.Prompt,
		Options:    options,
		Number:     s.presented,
		Total:      s.target,
	}
}
