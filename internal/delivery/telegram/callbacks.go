package telegram

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}

	chatID := cb.Message.Chat.ID
	userID := cb.From.ID
	data := decodeCallback(cb.Data)

	var fn HandlerFunc
	switch data.Action {
	case actionCategories:
		fn = h.handleCategories()

	case actionCategory:
		if len(data.Params) != 1 {
			h.logger.Warn("invalid category callback", zap.String("data", data.Raw))
			break
		}
		categoryID := data.Params[0]
		fn = func(ctx context.Context, chatID int64) error {
			return h.startCategory(ctx, chatID, userID, categoryID)
		}

	case actionAnswer:
		fn = h.handleAnswerCallback(userID, data)

	case actionReset:
		fn = h.handleResetCallback(userID, cb.Message.MessageID, data)

	default:
		h.logger.Warn("unknown callback", zap.String("data", data.Raw))
	}

	if fn != nil {
		_ = h.withErrorHandling(fn)(ctx, chatID)
	}

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, "")
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}

// handleAnswerCallback answers the current question from a button press.
// Buttons of earlier questions are ignored.
func (h *Handler) handleAnswerCallback(userID int64, data callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if len(data.Params) != 2 {
			h.logger.Warn("invalid answer callback", zap.String("data", data.Raw))
			return nil
		}

		position, err := strconv.Atoi(data.Params[0])
		if err != nil {
			h.logger.Warn("invalid answer position", zap.String("data", data.Raw))
			return nil
		}

		turn, err := h.quizService.Current(ctx, userID)
		if err != nil || turn.Position != position {
			return h.send(newPlainMessage(chatID, msgStaleButton))
		}

		return h.handleAnswer(userID, data.Params[1])(ctx, chatID)
	}
}

func (h *Handler) handleResetCallback(userID int64, messageID int, data callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if len(data.Params) == 0 {
			h.logger.Warn("invalid reset callback", zap.String("data", data.Raw))
			return nil
		}

		switch data.Params[0] {
		case resetCancel:
			return h.send(newEdit(chatID, messageID, md(msgResetCancelled)))

		case resetConfirm:
			if len(data.Params) != 2 {
				h.logger.Warn("invalid reset callback", zap.String("data", data.Raw))
				return nil
			}
			categoryID := data.Params[1]
			if err := h.quizService.Reset(ctx, userID, categoryID); err != nil {
				return err
			}

			h.logger.Info("category reset",
				zap.Int64("user_id", userID),
				zap.String("category_id", categoryID),
			)

			return h.startCategory(ctx, chatID, userID, categoryID)
		}

		return nil
	}
}
