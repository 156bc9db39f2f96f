package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flag-quiz-bot/internal/service"
)

// Sender is the part of *tgbotapi.BotAPI the handler needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type QuizService interface {
	Start(ctx context.Context, chatID int64) (*entities.QuizSession, error)
	Select(ctx context.Context, chatID, userID int64, roundID uuid.UUID, optionIndex int) (*service.SelectOutcome, error)
	Advance(ctx context.Context, chatID int64, roundID uuid.UUID) (*entities.QuizSession, error)
	AttachMessage(ctx context.Context, chatID int64, roundID uuid.UUID, messageID int) error
	Score(ctx context.Context, chatID int64) (entities.Score, entities.ScoringPolicy, error)
	History(ctx context.Context, chatID int64, limit int) ([]entities.RoundResult, error)
}

type CountryService interface {
	Name(code entities.CountryCode) (string, error)
	FlagPath(code entities.CountryCode) string
}

type PlayerService interface {
	EnsurePlayer(ctx context.Context, userID, chatID int64, username, languageCode string) error
}
