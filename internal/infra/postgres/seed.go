package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"kanzanso-wellness-service/internal/domain"
)

// Seed upserts question sets into quiz_questions, one JSONB row per quiz
// type. Safe to run repeatedly.
func Seed(ctx context.Context, pool *pgxpool.Pool, catalog map[domain.QuizType][]domain.Question) error {
	for quizType, questions := range catalog {
		data, err := json.Marshal(questions)
		if err != nil {
			return fmt.Errorf("marshal %s questions: %w", quizType, err)
		}
		_, err = pool.Exec(ctx,
			`INSERT INTO quiz_questions (quiz_type, data) VALUES ($1, $2)
			 ON CONFLICT (quiz_type) DO UPDATE SET data = EXCLUDED.data`,
			string(quizType), data)
		if err != nil {
			return fmt.Errorf("seed %s: %w", quizType, err)
		}
	}
	return nil
}
