// Package app contains the wellness use cases: quiz attempts and the
// per-entity services built on the resilient store.
package app

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"kanzanso-wellness-service/internal/domain"
	"kanzanso-wellness-service/internal/questionbank"
	"kanzanso-wellness-service/internal/scoring"
)

// ResultStore is how the quiz service persists and reads results. The
// resilient store satisfies it; tests substitute doubles.
type ResultStore interface {
	Create(ctx context.Context, result domain.QuizResult) (domain.QuizResult, error)
	List(ctx context.Context, keep func(domain.QuizResult) bool) ([]domain.QuizResult, error)
}

// QuizService orchestrates a quiz attempt start to finish: question
// delivery, scoring, persistence and the live result feed.
type QuizService struct {
	bank    questionbank.Repository
	results ResultStore
	feed    *ResultFeed
	clock   func() time.Time
}

func NewQuizService(bank questionbank.Repository, results ResultStore) *QuizService {
	return &QuizService{
		bank:    bank,
		results: results,
		feed:    NewResultFeed(),
		clock:   time.Now,
	}
}

// NewQuizServiceWithClock is test-only for deterministic timestamps.
func NewQuizServiceWithClock(bank questionbank.Repository, results ResultStore, now func() time.Time) *QuizService {
	s := NewQuizService(bank, results)
	s.clock = now
	return s
}

// QuizTypes lists the available assessments.
func (s *QuizService) QuizTypes() []domain.QuizType {
	return domain.QuizTypes()
}

// QuestionsByType returns the question set for one quiz type.
func (s *QuizService) QuestionsByType(ctx context.Context, quizType domain.QuizType) ([]domain.Question, error) {
	return s.bank.QuestionsByType(ctx, quizType)
}

// StartAttempt loads the questions for quizType and opens an attempt.
func (s *QuizService) StartAttempt(ctx context.Context, userID string, quizType domain.QuizType) (*Attempt, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id required", domain.ErrValidation)
	}
	questions, err := s.bank.QuestionsByType(ctx, quizType)
	if err != nil {
		return nil, err
	}
	return NewAttempt(userID, quizType, questions), nil
}

// CompleteAttempt submits a fully answered attempt.
func (s *QuizService) CompleteAttempt(ctx context.Context, attempt *Attempt) (domain.QuizResult, error) {
	if attempt.Phase() == PhaseAnswering {
		return domain.QuizResult{}, fmt.Errorf("%w: attempt still has unanswered questions", domain.ErrValidation)
	}
	result, err := s.Submit(ctx, attempt.Submission())
	if err == nil {
		attempt.complete()
	}
	return result, err
}

// Submit scores a submission, persists the result and publishes it to the
// feed. Persistence failure does not block the user from seeing their
// result: the store already falls back to the local collection, and if even
// that fails the result is returned unpersisted with a locally minted ID.
// Those are two independent layers of degradation.
func (s *QuizService) Submit(ctx context.Context, submission domain.Submission) (domain.QuizResult, error) {
	if submission.UserID == "" {
		return domain.QuizResult{}, fmt.Errorf("%w: user id required", domain.ErrValidation)
	}

	questions := s.questionsForScoring(ctx, submission.QuizType)
	total := scoring.TotalScore(submission.Answers, questions)
	categories := scoring.CategoryScores(submission.Answers, questions)

	result := domain.QuizResult{
		UserID:          submission.UserID,
		QuizType:        submission.QuizType,
		TotalScore:      total,
		CategoryScores:  scoring.CategoryScoreMap(categories),
		Interpretation:  scoring.Interpret(total, submission.QuizType, categories),
		Recommendations: scoring.RecommendationsText(categories),
	}

	persisted, err := s.results.Create(ctx, result)
	if err != nil {
		log.Printf("quiz result for %s could not be persisted anywhere: %v", submission.UserID, err)
		now := s.clock()
		result.ID = "local-" + strconv.FormatInt(now.UnixMilli(), 10)
		result.CreatedAt = now
		result.UpdatedAt = now
		result.Persisted = false
		s.feed.Publish(result)
		return result, nil
	}
	persisted.Persisted = true
	s.feed.Publish(persisted)
	return persisted, nil
}

// questionsForScoring never fails: a submission for an unknown or
// unloadable quiz type is scored against the embedded initial assessment,
// matching how historical clients behaved.
func (s *QuizService) questionsForScoring(ctx context.Context, quizType domain.QuizType) []domain.Question {
	questions, err := s.bank.QuestionsByType(ctx, quizType)
	if err == nil {
		return questions
	}
	catalog := questionbank.Catalog()
	if fallback, ok := catalog[quizType]; ok {
		return fallback
	}
	return catalog[domain.QuizInitialAssessment]
}

// ResultsForUser returns the user's past results.
func (s *QuizService) ResultsForUser(ctx context.Context, userID string) ([]domain.QuizResult, error) {
	return s.results.List(ctx, func(result domain.QuizResult) bool {
		return result.UserID == userID
	})
}

// Subscribe streams newly created results.
func (s *QuizService) Subscribe() (<-chan domain.QuizResult, func()) {
	return s.feed.Subscribe()
}
