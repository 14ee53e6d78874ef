package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"kanzanso-wellness-service/internal/app"
	"kanzanso-wellness-service/internal/domain"
	"kanzanso-wellness-service/internal/infra/memory"
	"kanzanso-wellness-service/internal/questionbank"
	"kanzanso-wellness-service/internal/remote"
	"kanzanso-wellness-service/internal/store"
)

// downRemote simulates an upstream that never answers, forcing every store
// into its local fallback path.
type downRemote[T any] struct{}

func (downRemote[T]) Create(context.Context, T) (T, error) {
	var zero T
	return zero, &remote.NetworkError{Err: errors.New("connection refused")}
}

func (downRemote[T]) List(context.Context) ([]T, error) {
	return nil, &remote.NetworkError{Err: errors.New("connection refused")}
}

func (downRemote[T]) Get(context.Context, string) (T, error) {
	var zero T
	return zero, &remote.NetworkError{Err: errors.New("connection refused")}
}

func (downRemote[T]) Update(context.Context, string, T) (T, error) {
	var zero T
	return zero, &remote.NetworkError{Err: errors.New("connection refused")}
}

func (downRemote[T]) Delete(context.Context, string) error {
	return &remote.NetworkError{Err: errors.New("connection refused")}
}

func newResultStore() *app.ResultsStore {
	return store.New[domain.QuizResult, *domain.QuizResult](
		"quiz-result", app.QuizResultsKey, downRemote[domain.QuizResult]{}, memory.NewKV())
}

func newTestService() *app.QuizService {
	bank := questionbank.NewCachedRepository(questionbank.NewStaticLoader(questionbank.Catalog()), 5*time.Minute)
	return app.NewQuizService(bank, newResultStore())
}

func TestSubmitLowScoreInitialAssessment(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	answers := make(map[string]int)
	for _, q := range questionbank.Catalog()[domain.QuizInitialAssessment] {
		answers[q.ID] = 0 // every first option scores 1
	}

	result, err := service.Submit(ctx, domain.Submission{
		UserID:   "u1",
		QuizType: domain.QuizInitialAssessment,
		Answers:  answers,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.TotalScore != 10 {
		t.Fatalf("expected total 10, got %d", result.TotalScore)
	}
	if !strings.Contains(result.Interpretation, "DISORDER FREE") {
		t.Fatalf("expected low-severity interpretation, got %q", result.Interpretation)
	}
	if !result.Persisted {
		t.Fatalf("expected result persisted via fallback store")
	}
	if result.ID == "" {
		t.Fatalf("expected generated id")
	}

	results, err := service.ResultsForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("results for user: %v", err)
	}
	if len(results) != 1 || results[0].ID != result.ID {
		t.Fatalf("expected stored result, got %+v", results)
	}
}

// anxietyBank returns an initial assessment where anxiety dominates, so high
// totals resolve to the anxiety-specific interpretation.
type anxietyBank struct{}

func (anxietyBank) QuestionsByType(_ context.Context, quizType domain.QuizType) ([]domain.Question, error) {
	questions := make([]domain.Question, 0, 10)
	for i := 0; i < 10; i++ {
		category := "anxiety"
		if i == 9 {
			category = "mood"
		}
		questions = append(questions, domain.Question{
			ID:       "x" + string(rune('a'+i)),
			Options:  []string{"a", "b", "c", "d"},
			Scores:   []int{1, 2, 3, 4},
			Category: category,
			QuizType: quizType,
		})
	}
	return questions, nil
}

func TestSubmitHighScorePicksLeadingCategory(t *testing.T) {
	service := app.NewQuizService(anxietyBank{}, newResultStore())

	answers := map[string]int{}
	for i := 0; i < 10; i++ {
		answers["x"+string(rune('a'+i))] = 3 // max score everywhere
	}

	result, err := service.Submit(context.Background(), domain.Submission{
		UserID:   "u1",
		QuizType: domain.QuizInitialAssessment,
		Answers:  answers,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.TotalScore != 40 {
		t.Fatalf("expected total 40, got %d", result.TotalScore)
	}
	if !strings.Contains(result.Interpretation, "ANXIETY") {
		t.Fatalf("expected anxiety interpretation, got %q", result.Interpretation)
	}
	if result.CategoryScores["anxiety"] != 36 {
		t.Fatalf("expected anxiety category 36, got %+v", result.CategoryScores)
	}
}

// brokenResults fails persistence outright, exercising the pipeline's own
// degradation layer (distinct from the store's fallback).
type brokenResults struct{}

func (brokenResults) Create(context.Context, domain.QuizResult) (domain.QuizResult, error) {
	return domain.QuizResult{}, errors.New("both backends down")
}

func (brokenResults) List(context.Context, func(domain.QuizResult) bool) ([]domain.QuizResult, error) {
	return nil, errors.New("both backends down")
}

func TestSubmitSurvivesTotalPersistenceFailure(t *testing.T) {
	bank := questionbank.NewCachedRepository(questionbank.NewStaticLoader(questionbank.Catalog()), 5*time.Minute)
	fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	service := app.NewQuizServiceWithClock(bank, brokenResults{}, func() time.Time { return fixed })

	result, err := service.Submit(context.Background(), domain.Submission{
		UserID:   "u1",
		QuizType: domain.QuizDailyMood,
		Answers:  map[string]int{"dm1": 0, "dm2": 0, "dm3": 0, "dm4": 0, "dm5": 0},
	})
	if err != nil {
		t.Fatalf("submit must not fail when persistence does: %v", err)
	}
	if result.Persisted {
		t.Fatalf("expected unpersisted result")
	}
	if !strings.HasPrefix(result.ID, "local-") {
		t.Fatalf("expected local id, got %q", result.ID)
	}
	if !result.CreatedAt.Equal(fixed) {
		t.Fatalf("expected clock-stamped result, got %v", result.CreatedAt)
	}
	if !strings.Contains(result.Interpretation, "GOOD DAY") {
		t.Fatalf("expected daily mood low interpretation, got %q", result.Interpretation)
	}
}

func TestSubmitRequiresUser(t *testing.T) {
	service := newTestService()
	_, err := service.Submit(context.Background(), domain.Submission{QuizType: domain.QuizDailyMood})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmitUnknownQuizTypeStillScores(t *testing.T) {
	service := newTestService()

	result, err := service.Submit(context.Background(), domain.Submission{
		UserID:   "u1",
		QuizType: domain.QuizType("tea_leaves"),
		Answers:  map[string]int{"q1": 3, "q2": 3},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	// Scored against the embedded initial assessment, like historical clients.
	if result.TotalScore != 8 {
		t.Fatalf("expected best-effort total 8, got %d", result.TotalScore)
	}
	if result.Interpretation == "" {
		t.Fatalf("expected an interpretation for unknown quiz type")
	}
}

func TestSubscribeReceivesSubmittedResults(t *testing.T) {
	service := newTestService()
	updates, cancel := service.Subscribe()
	defer cancel()

	want, err := service.Submit(context.Background(), domain.Submission{
		UserID:   "u1",
		QuizType: domain.QuizDailyMood,
		Answers:  map[string]int{"dm1": 1},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	select {
	case got := <-updates:
		if got.ID != want.ID {
			t.Fatalf("expected feed to carry the new result, got %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for feed update")
	}
}

func TestAttemptWalksQuestionsInOrder(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	attempt, err := service.StartAttempt(ctx, "u1", domain.QuizDailyMood)
	if err != nil {
		t.Fatalf("start attempt: %v", err)
	}

	if err := attempt.Answer(9); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected out-of-range option to be rejected, got %v", err)
	}

	for i := 0; i < 5; i++ {
		q, ok := attempt.Current()
		if !ok {
			t.Fatalf("expected question %d to be available", i)
		}
		if q.QuizType != domain.QuizDailyMood {
			t.Fatalf("unexpected question %+v", q)
		}
		if err := attempt.Answer(1); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	if attempt.Phase() != app.PhaseSubmitting {
		t.Fatalf("expected submitting phase after final answer")
	}
	if err := attempt.Answer(0); !errors.Is(err, domain.ErrAttemptFinished) {
		t.Fatalf("expected finished error, got %v", err)
	}

	result, err := service.CompleteAttempt(ctx, attempt)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if result.TotalScore != 10 {
		t.Fatalf("expected total 10 for all second options, got %d", result.TotalScore)
	}
	if attempt.Phase() != app.PhaseCompleted {
		t.Fatalf("expected completed phase")
	}
}

func TestCompleteAttemptRejectsUnfinished(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	attempt, err := service.StartAttempt(ctx, "u1", domain.QuizDailyMood)
	if err != nil {
		t.Fatalf("start attempt: %v", err)
	}
	_ = attempt.Answer(0)

	if _, err := service.CompleteAttempt(ctx, attempt); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for unfinished attempt, got %v", err)
	}
}
