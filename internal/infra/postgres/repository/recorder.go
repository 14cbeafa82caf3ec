package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/category-quiz-bot/internal/infra/postgres"
)

// AttemptRecorder writes an attempt and the resulting progress atomically.
type AttemptRecorder struct {
	transactor *postgres.Transactor
}

// NewAttemptRecorder creates a new AttemptRecorder.
func NewAttemptRecorder(transactor *postgres.Transactor) *AttemptRecorder {
	return &AttemptRecorder{transactor: transactor}
}

// Record saves the attempt and marks its quiz solved in one transaction.
func (r *AttemptRecorder) Record(ctx context.Context, a *entities.Attempt) error {
	return r.transactor.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := NewAttemptRepository(tx).Save(ctx, a); err != nil {
			return err
		}
		return NewProgressRepository(tx).MarkSolved(ctx, a)
	})
}
