package telegram

import (
	"context"

	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/category-quiz-bot/internal/service"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) (bool, error)
}

type QuizService interface {
	Categories(ctx context.Context) ([]*entities.Category, error)
	Start(ctx context.Context, userID int64, categoryID string) (*service.Turn, error)
	Current(ctx context.Context, userID int64) (*service.Turn, error)
	Answer(ctx context.Context, userID int64, input string) (*service.Result, error)
	Reset(ctx context.Context, userID int64, categoryID string) error
}
