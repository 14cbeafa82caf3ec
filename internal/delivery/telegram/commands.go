package telegram

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/category-quiz-bot/internal/repository"
	"github.com/aliskhannn/category-quiz-bot/internal/service"
)

// handleStart greets the user and offers the categories.
func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		categories, err := h.quizService.Categories(ctx)
		if err != nil {
			return err
		}

		msg := newMessage(chatID, welcomeMessage())
		if len(categories) > 0 {
			msg.ReplyMarkup = buildCategoriesKeyboard(categories)
		}
		return h.send(msg)
	}
}

// handleCategories lists the catalog.
func (h *Handler) handleCategories() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		categories, err := h.quizService.Categories(ctx)
		if err != nil {
			return err
		}

		if len(categories) == 0 {
			return h.send(newPlainMessage(chatID, msgNoCategories))
		}

		msg := newMessage(chatID, formatCategories(categories))
		msg.ReplyMarkup = buildCategoriesKeyboard(categories)
		return h.send(msg)
	}
}

// handlePlay starts or resumes a category.
func (h *Handler) handlePlay(userID int64, args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		categoryID := strings.TrimSpace(args)
		if categoryID == "" {
			return h.send(newPlainMessage(chatID, msgUsePlay))
		}
		return h.startCategory(ctx, chatID, userID, categoryID)
	}
}

func (h *Handler) startCategory(ctx context.Context, chatID, userID int64, categoryID string) error {
	turn, err := h.quizService.Start(ctx, userID, categoryID)
	switch {
	case errors.Is(err, repository.ErrCategoryNotFound):
		return h.send(newPlainMessage(chatID, msgCategoryNotFound))

	case errors.Is(err, service.ErrCategoryComplete):
		msg := newPlainMessage(chatID, msgCategoryIsComplete)
		msg.ReplyMarkup = buildCategoryDoneKeyboard(categoryID)
		return h.send(msg)

	case err != nil:
		return err
	}

	h.logger.Debug("category started",
		zap.Int64("user_id", userID),
		zap.String("category_id", categoryID),
		zap.Int("position", turn.Position),
	)

	return h.sendTurn(chatID, turn)
}

// handleCurrent repeats the question the user is on.
func (h *Handler) handleCurrent(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		turn, err := h.quizService.Current(ctx, userID)
		if errors.Is(err, service.ErrNoActiveSession) {
			return h.send(newPlainMessage(chatID, msgNoActiveSession))
		}
		if err != nil {
			return err
		}
		return h.sendTurn(chatID, turn)
	}
}

// handleReset asks for confirmation before a category is replayed.
func (h *Handler) handleReset(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		categoryID := strings.TrimSpace(args)
		if categoryID == "" {
			return h.send(newPlainMessage(chatID, msgUseReset))
		}

		msg := newMessage(chatID, formatResetPrompt(categoryID))
		msg.ReplyMarkup = buildResetKeyboard(categoryID)
		return h.send(msg)
	}
}

// handleAnswer checks free text against the current question.
func (h *Handler) handleAnswer(userID int64, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		res, err := h.quizService.Answer(ctx, userID, text)

		var inputErr *service.InputError
		switch {
		case errors.Is(err, service.ErrNoActiveSession):
			return h.send(newPlainMessage(chatID, msgNoActiveSession))

		case errors.As(err, &inputErr):
			return h.send(newPlainMessage(chatID, capitalize(inputErr.Hint)+"."))

		case err != nil:
			return err
		}

		h.logger.Debug("answer checked",
			zap.Int64("user_id", userID),
			zap.Bool("correct", res.Correct),
			zap.Int("score", res.Score),
		)

		return h.sendResult(chatID, res)
	}
}

func (h *Handler) sendTurn(chatID int64, turn *service.Turn) error {
	msg := newMessage(chatID, formatQuestion(turn))
	if kb := buildAnswerKeyboard(turn); kb != nil {
		msg.ReplyMarkup = *kb
	}
	return h.send(msg)
}

func (h *Handler) sendResult(chatID int64, res *service.Result) error {
	if err := h.send(newMessage(chatID, formatAnswerFeedback(res))); err != nil {
		return err
	}

	if res.Next != nil {
		return h.sendTurn(chatID, res.Next)
	}

	msg := newMessage(chatID, formatCategoryResult(res))
	msg.ReplyMarkup = buildCategoryDoneKeyboard(res.CategoryID)
	return h.send(msg)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
