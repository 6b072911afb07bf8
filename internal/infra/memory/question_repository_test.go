package memory

import (
	"context"
	"testing"
	"time"

	"trivia-service/internal/domain"
)

func TestQuestionRepositoryCaches(t *testing.T) {
	loader := &countingLoader{QuestionLoader: NewStaticQuestionLoader(sampleCategories(), samplePool())}
	repo := NewQuestionRepository(loader, time.Minute)

	if _, err := repo.FetchQuestions(context.Background(), "science"); err != nil {
		t.Fatalf("fetch questions: %v", err)
	}
	if loader.questionCalls != 1 {
		t.Fatalf("expected loader once, got %d", loader.questionCalls)
	}

	if _, err := repo.FetchQuestions(context.Background(), "science"); err != nil {
		t.Fatalf("fetch questions 2: %v", err)
	}
	if loader.questionCalls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.questionCalls)
	}
}

func TestQuestionRepositoryCachesCategories(t *testing.T) {
	loader := &countingLoader{QuestionLoader: NewStaticQuestionLoader(sampleCategories(), samplePool())}
	repo := NewQuestionRepository(loader, time.Minute)

	if _, err := repo.ListCategories(context.Background()); err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if _, err := repo.ListCategories(context.Background()); err != nil {
		t.Fatalf("list categories 2: %v", err)
	}
	if loader.categoryCalls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.categoryCalls)
	}
}

func TestQuestionRepositoryRejectsMalformedRecords(t *testing.T) {
	loader := NewStaticQuestionLoader(sampleCategories(), []domain.Question{
		{ID: "bad", CategoryID: "science", Prompt: "", CorrectAnswer: "x", IncorrectAnswers: []string{"y"}},
	})
	repo := NewQuestionRepository(loader, time.Minute)

	if _, err := repo.FetchQuestions(context.Background(), "science"); err == nil {
		t.Fatalf("expected malformed record to be rejected")
	}
}

func TestStaticLoaderFiltersByCategory(t *testing.T) {
	loader := NewStaticQuestionLoader(sampleCategories(), samplePool())

	pool, err := loader.LoadQuestions(context.Background(), "science")
	if err != nil {
		t.Fatalf("load questions: %v", err)
	}
	for _, q := range pool {
		if q.CategoryID != "science" {
			t.Fatalf("unexpected category %q in science pool", q.CategoryID)
		}
	}
	if len(pool) != 2 {
		t.Fatalf("expected 2 science questions, got %d", len(pool))
	}
}

type countingLoader struct {
	QuestionLoader
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
		{ID: "history", Name: "History"},
	}
}

func samplePool() []domain.Question {
	return []domain.Question{
		{ID: "s1", CategoryID: "science", Prompt: "Chemical symbol for gold?", CorrectAnswer: "Au", IncorrectAnswers: []string{"Ag", "Fe", "Hg"}, Difficulty: "easy"},
		{ID: "s2", CategoryID: "science", Prompt: "The Red Planet?", CorrectAnswer: "Mars", IncorrectAnswers: []string{"Venus", "Jupiter", "Saturn"}, Difficulty: "easy"},
		{ID: "h1", CategoryID: "history", Prompt: "Year World War II ended?", CorrectAnswer: "1945", IncorrectAnswers: []string{"1943", "1947", "1939"}, Difficulty: "easy"},
	}
}
