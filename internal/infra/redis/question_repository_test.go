package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"trivia-service/internal/domain"
	"trivia-service/internal/infra/memory"
)

func TestQuestionRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)

	loader := &countingLoader{QuestionLoader: memory.NewStaticQuestionLoader(sampleCategories(), samplePool())}
	repo := NewQuestionRepository(client, loader, time.Minute)

	pool, err := repo.FetchQuestions(context.Background(), "science")
	if err != nil {
		t.Fatalf("fetch questions: %v", err)
	}
	if len(pool) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(pool))
	}
	if loader.questionCalls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.questionCalls)
	}
	if !mr.Exists("trivia:questions:science") {
		t.Fatalf("expected pool cached in redis")
	}

	// Second call should hit the redis cache, loader not incremented.
	if _, err := repo.FetchQuestions(context.Background(), "science"); err != nil {
		t.Fatalf("fetch questions 2: %v", err)
	}
	if loader.questionCalls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.questionCalls)
	}
}

func TestQuestionRepositoryCachesCategories(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)

	loader := &countingLoader{QuestionLoader: memory.NewStaticQuestionLoader(sampleCategories(), samplePool())}
	repo := NewQuestionRepository(client, loader, time.Minute)

	if _, err := repo.ListCategories(context.Background()); err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if _, err := repo.ListCategories(context.Background()); err != nil {
		t.Fatalf("list categories 2: %v", err)
	}
	if loader.categoryCalls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.categoryCalls)
	}
}

type countingLoader struct {
	memory.QuestionLoader
	categoryCalls int
	questionCalls int
}

func (l *countingLoader) LoadCategories(ctx context.Context) ([]domain.Category, error) {
	l.categoryCalls++
	return l.QuestionLoader.LoadCategories(ctx)
}

func (l *countingLoader) LoadQuestions(ctx context.Context, categoryID string) ([]domain.Question, error) {
	l.questionCalls++
	return l.QuestionLoader.LoadQuestions(ctx, categoryID)
}

func sampleCategories() []domain.Category {
	return []domain.Category{
		{ID: "science", Name: "Science"},
	}
}

func samplePool() []domain.Question {
	return []domain.Question{
		{ID: "s1", CategoryID: "science", Prompt: "Chemical symbol for gold?", CorrectAnswer: "Au", IncorrectAnswers: []string{"Ag", "Fe", "Hg"}, Difficulty: "easy"},
		{ID: "s2", CategoryID: "science", Prompt: "The Red Planet?", CorrectAnswer: "Mars", IncorrectAnswers: []string{"Venus", "Jupiter", "Saturn"}, Difficulty: "easy"},
	}
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
