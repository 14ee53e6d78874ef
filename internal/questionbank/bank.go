// Package questionbank serves the quiz question catalog. Questions are
// immutable for a session: loaded once at quiz start and cached.
package questionbank

import (
	"context"

	"kanzanso-wellness-service/internal/domain"
)

// Repository is what the application layer consumes.
type Repository interface {
	QuestionsByType(ctx context.Context, quizType domain.QuizType) ([]domain.Question, error)
}

// Loader fetches question sets from a backing store (Postgres in
// production, the embedded catalog otherwise).
type Loader interface {
	LoadQuestions(ctx context.Context, quizType domain.QuizType) ([]domain.Question, error)
}

// StaticLoader serves the embedded catalog.
type StaticLoader struct {
	questions map[domain.QuizType][]domain.Question
}

func NewStaticLoader(questions map[domain.QuizType][]domain.Question) *StaticLoader {
	return &StaticLoader{questions: questions}
}

func (l *StaticLoader) LoadQuestions(_ context.Context, quizType domain.QuizType) ([]domain.Question, error) {
	if questions, ok := l.questions[quizType]; ok {
		return questions, nil
	}
	return nil, domain.ErrQuizTypeUnknown
}

// QuestionsByCategory filters a flat view of every quiz type's questions by
// category tag.
func QuestionsByCategory(catalog map[domain.QuizType][]domain.Question, category string) []domain.Question {
	var matched []domain.Question
	for _, quizType := range domain.QuizTypes() {
		for _, q := range catalog[quizType] {
			if q.Category == category {
				matched = append(matched, q)
			}
		}
	}
	return matched
}
