package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/category-quiz-bot/internal/infra/postgres"
)

// UserRepository keeps track of the players who talked to the bot.
type UserRepository struct {
	db postgres.DBTX
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db postgres.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Save registers the player on first contact. Later calls refresh the chat
// and last_seen_at and reactivate the player. CreatedAt is set from the
// stored row. It reports whether the row was created.
func (r *UserRepository) Save(ctx context.Context, user *entities.User) (bool, error) {
	query := `
		INSERT INTO users (id, chat_id, is_active, created_at, last_seen_at)
		VALUES ($1, $2, TRUE, $3, $3)
		ON CONFLICT (id) DO UPDATE SET
			chat_id = EXCLUDED.chat_id,
			is_active = TRUE,
			last_seen_at = EXCLUDED.last_seen_at
		RETURNING (xmax = 0) AS created, created_at
	`

	var created bool
	err := r.db.QueryRow(ctx, query, user.ID, user.ChatID, user.LastSeenAt).Scan(&created, &user.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("save user %d: %w", user.ID, err)
	}
	user.IsActive = true

	return created, nil
}
