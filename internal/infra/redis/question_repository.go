package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"trivia-service/internal/domain"
	"trivia-service/internal/infra/memory"
)

// QuestionRepository caches question pools in Redis and falls back to a loader
// on cache miss.
// Pools are stored as:      HSET trivia:questions:{categoryID} {questionID} {json}
// Categories are stored as: SET  trivia:categories {json}
type QuestionRepository struct {
	client *redis.Client
	loader memory.QuestionLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewQuestionRepository(client *redis.Client, loader memory.QuestionLoader, ttl time.Duration) *QuestionRepository {
	return &QuestionRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *QuestionRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	raw, err := r.client.Get(ctx, r.categoriesKey()).Bytes()
	if err == nil {
		var categories []domain.Category
		if err := json.Unmarshal(raw, &categories); err == nil {
			return categories, nil
		}
		// Corrupt cache entry: fall through and rebuild from the loader.
	}

	result, err, _ := r.sf.Do("categories", func() (interface{}, error) {
		categories, err := r.loader.LoadCategories(ctx)
		if err != nil {
			return nil, err
		}
		if data, err := json.Marshal(categories); err == nil {
			_ = r.client.Set(ctx, r.categoriesKey(), data, r.ttlWithJitter()).Err()
		}
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Category), nil
}

func (r *QuestionRepository) FetchQuestions(ctx context.Context, categoryID string) ([]domain.Question, error) {
	key := r.poolKey(categoryID)

	cached, err := r.client.HGetAll(ctx, key).Result()
	if err == nil && len(cached) > 0 {
		if pool, ok := decodePool(cached); ok {
			return pool, nil
		}
	}

	result, err, _ := r.sf.Do(categoryID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		cached, err := r.client.HGetAll(ctx, key).Result()
		if err == nil && len(cached) > 0 {
			if pool, ok := decodePool(cached); ok {
				return pool, nil
			}
		}

		pool, err := r.loader.LoadQuestions(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		for _, q := range pool {
			if err := q.Validate(); err != nil {
				return nil, err
			}
		}

		ttl := r.ttlWithJitter()
		pipe := r.client.Pipeline()
		for _, q := range pool {
			data, err := json.Marshal(q)
			if err != nil {
				continue
			}
			pipe.HSet(ctx, key, q.ID, data)
		}
		if ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		_, _ = pipe.Exec(ctx)

		return pool, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func decodePool(cached map[string]string) ([]domain.Question, bool) {
	pool := make([]domain.Question, 0, len(cached))
	for _, raw := range cached {
		var q domain.Question
		if err := json.Unmarshal([]byte(raw), &q); err != nil {
			return nil, false
		}
		if err := q.Validate(); err != nil {
			return nil, false
		}
		pool = append(pool, q)
	}
	return pool, true
}

func (r *QuestionRepository) poolKey(categoryID string) string {
	return "trivia:questions:" + categoryID
}

func (r *QuestionRepository) categoriesKey() string {
	return "trivia:categories"
}

func (r *QuestionRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
