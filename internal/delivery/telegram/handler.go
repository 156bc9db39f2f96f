package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot       Sender
	logger    *zap.Logger
	quiz      QuizService
	countries CountryService
	players   PlayerService
}

func NewHandler(
	bot Sender,
	logger *zap.Logger,
	quiz QuizService,
	countries CountryService,
	players PlayerService,
) *Handler {
	return &Handler{
		bot:       bot,
		logger:    logger,
		quiz:      quiz,
		countries: countries,
		players:   players,
	}
}

// Run handles updates one at a time until ctx is cancelled or updates is closed.
func (h *Handler) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if from := update.Message.From; from != nil {
		err := h.players.EnsurePlayer(ctx, from.ID, chatID, from.UserName, from.LanguageCode)
		if err != nil {
			h.logger.Error("failed to ensure player",
				zap.Int64("user_id", from.ID),
				zap.Error(err),
			)
		}
	}

	if !update.Message.IsCommand() {
		h.send(newHTMLMessage(chatID, msgHelp))
		return
	}

	switch update.Message.Command() {
	case "start":
		h.send(newHTMLMessage(chatID, msgWelcome))
		_ = h.withErrorHandling("play", h.playHandler())(ctx, chatID)

	case "play":
		_ = h.withErrorHandling("play", h.playHandler())(ctx, chatID)

	case "score":
		_ = h.withErrorHandling("score", h.scoreHandler())(ctx, chatID)

	case "history":
		_ = h.withErrorHandling("history", h.historyHandler())(ctx, chatID)

	case "help":
		h.send(newHTMLMessage(chatID, msgHelp))

	default:
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) sendError(chatID int64, err string) {
	msg := newHTMLMessage(chatID, err)
	h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

// answer removes the button spinner, optionally showing a toast.
func (h *Handler) answer(callbackID, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}
