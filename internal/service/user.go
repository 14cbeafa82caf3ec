package service

import (
	"context"

	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
)

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
}

type UserService struct {
	repository UserRepository
}

func NewUserService(repository UserRepository) *UserService {
	return &UserService{repository: repository}
}

// EnsureUser registers the user on first contact and keeps the chat ID current.
// It reports whether the user is new.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64) (bool, error) {
	return s.repository.Save(ctx, entities.NewUser(userID, chatID))
}
