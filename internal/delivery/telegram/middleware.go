package telegram

import (
	"context"

	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs a failed or panicking handler and tells the user
// something went wrong. The update loop keeps running either way.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		defer func() {
			if r := recover(); r != nil {
				h.logger.Error("handler panicked",
					zap.Int64("chat_id", chatID),
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
				_ = h.send(newPlainMessage(chatID, msgInternalError))
			}
		}()

		if err := fn(ctx, chatID); err != nil {
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			_ = h.send(newPlainMessage(chatID, msgInternalError))
		}
		return nil
	}
}
