// Package postgres loads question sets stored as JSONB, one row per quiz
// type.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"kanzanso-wellness-service/internal/domain"
)

// QuestionLoader implements questionbank.Loader over a pgx pool.
type QuestionLoader struct {
	pool *pgxpool.Pool
}

func NewQuestionLoader(pool *pgxpool.Pool) *QuestionLoader {
	return &QuestionLoader{pool: pool}
}

func (l *QuestionLoader) LoadQuestions(ctx context.Context, quizType domain.QuizType) ([]domain.Question, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM quiz_questions WHERE quiz_type=$1`, string(quizType)).Scan(&raw)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	var questions []domain.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}
	return questions, nil
}
