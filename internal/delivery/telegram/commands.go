package telegram

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// playHandler starts a new round and shows its flag.
func (h *Handler) playHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, err := h.quiz.Start(ctx, chatID)
		if err != nil {
			return fmt.Errorf("start round: %w", err)
		}
		return h.sendRound(ctx, session)
	}
}

// scoreHandler replies with the chat's running score.
func (h *Handler) scoreHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		score, policy, err := h.quiz.Score(ctx, chatID)
		if err != nil {
			return fmt.Errorf("get score: %w", err)
		}

		h.send(newHTMLMessage(chatID, buildScoreMessage(score, policy)))
		return nil
	}
}

// historyHandler lists the chat's latest solved rounds.
func (h *Handler) historyHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		results, err := h.quiz.History(ctx, chatID, historySize)
		if err != nil {
			return fmt.Errorf("get history: %w", err)
		}

		lines := make([]historyLine, 0, len(results))
		for _, r := range results {
			name, err := h.countries.Name(r.Target)
			if err != nil {
				name = string(r.Target)
			}
			lines = append(lines, historyLine{Country: name, WrongGuesses: r.WrongGuesses, Scored: r.Scored})
		}

		h.send(newHTMLMessage(chatID, buildHistoryMessage(lines)))
		return nil
	}
}

// sendRound posts the flag photo of the session's round and remembers the message.
func (h *Handler) sendRound(ctx context.Context, session *entities.QuizSession) error {
	round := session.Round

	caption, kb, err := h.renderRound(session)
	if err != nil {
		return err
	}

	photo := newFlagPhoto(session.ChatID, h.countries.FlagPath(round.Target), caption, kb)
	msg, err := h.bot.Send(photo)
	if err != nil {
		// No image for this flag: show the emoji flag as text with the same buttons.
		h.logger.Warn("failed to send flag photo, falling back to text",
			zap.Int64("chat_id", session.ChatID),
			zap.String("country", string(round.Target)),
			zap.Error(err),
		)

		msg, err = h.bot.Send(newFlagText(session.ChatID, buildFlagText(round.Target, caption), kb))
		if err != nil {
			return fmt.Errorf("send flag text: %w", err)
		}
	}

	return h.quiz.AttachMessage(ctx, session.ChatID, round.ID, msg.MessageID)
}
