package telegram

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/service"
)

// HandlerFunc handles one chat action.
type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs failures of the named action and tells the chat.
// A panic inside fn is reported the same way and does not stop the update loop.
func (h *Handler) withErrorHandling(action string, fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		defer func() {
			if r := recover(); r != nil {
				h.reportError(action, chatID, fmt.Errorf("panic: %v", r))
			}
		}()

		if err := fn(ctx, chatID); err != nil {
			h.reportError(action, chatID, err)
		}
		return nil
	}
}

func (h *Handler) reportError(action string, chatID int64, err error) {
	if errors.Is(err, service.ErrSessionNotFound) {
		h.sendError(chatID, msgNoSession)
		return
	}

	h.logger.Error("handle error",
		zap.String("action", action),
		zap.Int64("chat_id", chatID),
		zap.Error(err),
	)
	h.sendError(chatID, msgInternalError)
}
