package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/category-quiz-bot/internal/infra/postgres"
)

// ProgressRepository stores which quizzes of a category a user has played.
type ProgressRepository struct {
	db postgres.DBTX
}

// NewProgressRepository creates a new ProgressRepository.
func NewProgressRepository(db postgres.DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// MarkSolved records the outcome of the quiz at position. A later answer to
// the same quiz overwrites the earlier outcome.
func (r *ProgressRepository) MarkSolved(ctx context.Context, a *entities.Attempt) error {
	query := `
		INSERT INTO quiz_progress (user_id, category_id, position, is_correct, solved_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, category_id, position) DO UPDATE SET
			is_correct = EXCLUDED.is_correct,
			solved_at = EXCLUDED.solved_at
	`

	_, err := r.db.Exec(ctx, query, a.UserID, a.CategoryID, a.Position, a.IsCorrect, a.AnsweredAt)
	if err != nil {
		return fmt.Errorf("mark solved: %w", err)
	}

	return nil
}

// Get returns the progress of a user in a category. Missing rows yield
// empty progress.
func (r *ProgressRepository) Get(ctx context.Context, userID int64, categoryID string) (*entities.CategoryProgress, error) {
	query := `
		SELECT position, is_correct
		FROM quiz_progress
		WHERE user_id = $1 AND category_id = $2
	`

	rows, err := r.db.Query(ctx, query, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer rows.Close()

	progress := entities.NewCategoryProgress(userID, categoryID)
	for rows.Next() {
		var (
			position  int
			isCorrect bool
		)
		if err := rows.Scan(&position, &isCorrect); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		progress.Solved[position] = isCorrect
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress: %w", err)
	}

	return progress, nil
}

// Reset forgets the progress of a user in a category.
func (r *ProgressRepository) Reset(ctx context.Context, userID int64, categoryID string) error {
	query := `DELETE FROM quiz_progress WHERE user_id = $1 AND category_id = $2`
	if _, err := r.db.Exec(ctx, query, userID, categoryID); err != nil {
		return fmt.Errorf("delete quiz_progress: %w", err)
	}
	return nil
}
