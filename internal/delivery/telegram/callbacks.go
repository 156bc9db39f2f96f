package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.Message.Chat == nil {
		h.answer(cb.ID, "")
		return
	}

	cd := decodeCallback(cb.Data)

	switch cd.Action {
	case actionPick:
		h.handlePickCallback(ctx, cb, cd)
	case actionNext:
		h.handleNextCallback(ctx, cb, cd)
	default:
		h.logger.Warn("unknown callback action", zap.String("data", cb.Data))
		h.answer(cb.ID, "")
	}
}

func (h *Handler) handlePickCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) {
	chatID := cb.Message.Chat.ID

	roundID, idx, err := parsePick(cd)
	if err != nil {
		h.logger.Warn("invalid pick callback", zap.String("data", cd.Raw))
		h.answer(cb.ID, toastBadOption)
		return
	}

	outcome, err := h.quiz.Select(ctx, chatID, cb.From.ID, roundID, idx)
	if err != nil {
		h.answer(cb.ID, h.toastFor(chatID, err))
		return
	}

	if !outcome.Changed {
		h.answer(cb.ID, toastAlreadyWrong)
		return
	}

	caption, kb, err := h.renderRound(outcome.Session)
	if err != nil {
		h.logger.Error("failed to render round",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.answer(cb.ID, toastError)
		return
	}

	if cb.Message.Text != "" {
		// Text fallback message: it has no caption to edit.
		text := buildFlagText(outcome.Session.Round.Target, caption)
		h.send(newTextEdit(chatID, cb.Message.MessageID, text, kb))
	} else {
		h.send(newCaptionEdit(chatID, cb.Message.MessageID, caption, kb))
	}

	if outcome.Correct {
		h.answer(cb.ID, toastCorrect)
		return
	}
	h.answer(cb.ID, toastWrong)
}

func (h *Handler) handleNextCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) {
	chatID := cb.Message.Chat.ID

	roundID, err := parseNext(cd)
	if err != nil {
		h.logger.Warn("invalid next callback", zap.String("data", cd.Raw))
		h.answer(cb.ID, "")
		return
	}

	session, err := h.quiz.Advance(ctx, chatID, roundID)
	if err != nil {
		h.answer(cb.ID, h.toastFor(chatID, err))
		return
	}

	h.answer(cb.ID, "")

	// The solved message keeps its caption but loses its buttons.
	h.send(tgbotapi.NewEditMessageReplyMarkup(chatID, cb.Message.MessageID, emptyKeyboard()))

	_ = h.withErrorHandling("next", func(ctx context.Context, _ int64) error {
		return h.sendRound(ctx, session)
	})(ctx, chatID)
}

// toastFor maps quiz errors to a short callback answer.
func (h *Handler) toastFor(chatID int64, err error) string {
	switch {
	case errors.Is(err, service.ErrStaleRound):
		return toastStale
	case errors.Is(err, service.ErrRoundSolved):
		return toastSolved
	case errors.Is(err, service.ErrSessionNotFound):
		return toastNoSession
	case errors.Is(err, service.ErrInvalidOption):
		return toastBadOption
	case errors.Is(err, service.ErrRoundNotSolved):
		return toastNotSolved
	default:
		h.logger.Error("quiz callback failed",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return toastError
	}
}
