package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"trivia-service/internal/domain"
)

// QuestionLoader fetches reference data from a backing store (e.g., Postgres).
type QuestionLoader interface {
	LoadCategories(ctx context.Context) ([]domain.Category, error)
	LoadQuestions(ctx context.Context, categoryID string) ([]domain.Question, error)
}

// QuestionRepository caches per-category question pools with TTL to avoid
// repeated DB hits. Questions are reference data, so a slightly stale pool is
// harmless.
type QuestionRepository struct {
	loader QuestionLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu         sync.RWMutex
	pools      map[string]cachedPool
	categories []domain.Category
	catExpiry  time.Time
}

type cachedPool struct {
	questions []domain.Question
	expiresAt time.Time
}

func NewQuestionRepository(loader QuestionLoader, ttl time.Duration) *QuestionRepository {
	return &QuestionRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		pools:  make(map[string]cachedPool),
	}
}

func (r *QuestionRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	now := r.clock()

	r.mu.RLock()
	if r.categories != nil && r.catExpiry.After(now) {
		cached := r.categories
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("categories", func() (interface{}, error) {
		categories, err := r.loader.LoadCategories(ctx)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.categories = categories
		r.catExpiry = r.clock().Add(r.ttlWithJitter())
		r.mu.Unlock()
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Category), nil
}

func (r *QuestionRepository) FetchQuestions(ctx context.Context, categoryID string) ([]domain.Question, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.pools[categoryID]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return entry.questions, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(categoryID, func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.pools[categoryID]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.questions, nil
		}
		r.mu.RUnlock()

		questions, err := r.loader.LoadQuestions(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		for _, q := range questions {
			if err := q.Validate(); err != nil {
				return nil, err
			}
		}

		r.mu.Lock()
		r.pools[categoryID] = cachedPool{
			questions: questions,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (r *QuestionRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticQuestionLoader is a loader backed by in-memory fixtures (useful for
// tests and for running without Postgres).
type StaticQuestionLoader struct {
	categories []domain.Category
	questions  []domain.Question
}

func NewStaticQuestionLoader(categories []domain.Category, questions []domain.Question) *StaticQuestionLoader {
	return &StaticQuestionLoader{categories: categories, questions: questions}
}

func (l *StaticQuestionLoader) LoadCategories(_ context.Context) ([]domain.Category, error) {
	return l.categories, nil
}

func (l *StaticQuestionLoader) LoadQuestions(_ context.Context, categoryID string) ([]domain.Question, error) {
	var pool []domain.Question
	for _, q := range l.questions {
		if q.CategoryID == categoryID {
			pool = append(pool, q)
		}
	}
	return pool, nil
}
