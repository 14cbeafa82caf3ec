package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/category-quiz-bot/internal/infra/postgres"
)

// AttemptRepository appends answers to the attempt log.
type AttemptRepository struct {
	db postgres.DBTX
}

// NewAttemptRepository creates a new AttemptRepository.
func NewAttemptRepository(db postgres.DBTX) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// Save inserts an attempt and sets its ID.
func (r *AttemptRepository) Save(ctx context.Context, a *entities.Attempt) error {
	query := `
		INSERT INTO quiz_attempts (
			user_id, category_id, position, quiz_type,
			user_answer, correct_answer, is_correct, answered_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(
		ctx,
		query,
		a.UserID,
		a.CategoryID,
		a.Position,
		string(a.QuizType),
		a.UserAnswer,
		a.CorrectAnswer,
		a.IsCorrect,
		a.AnsweredAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}

	return nil
}
