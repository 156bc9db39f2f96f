package service

import (
	"context"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// RoundSource produces new rounds.
type RoundSource interface {
	Generate() entities.Round
}

// SessionStorage keeps one quiz session per chat.
type SessionStorage interface {
	Get(chatID int64) (*entities.QuizSession, bool)
	Save(session *entities.QuizSession)
}

// RoundRecorder appends solved rounds to the round log and reads them back.
type RoundRecorder interface {
	RecordRound(ctx context.Context, result *entities.RoundResult) error
	Recent(ctx context.Context, chatID int64, limit int) ([]entities.RoundResult, error)
}

// PlayerRepository manages the player registry.
type PlayerRepository interface {
	Exists(ctx context.Context, playerID int64) (bool, error)
	Save(ctx context.Context, player *entities.Player) error
}

// QuizMetrics receives quiz events for instrumentation.
type QuizMetrics interface {
	SessionStarted()
	RoundStarted()
	OptionSelected(correct bool)
	RoundSolved(scored bool, wrongGuesses int)
}

type nopMetrics struct{}

func (nopMetrics) SessionStarted()       {}
func (nopMetrics) RoundStarted()         {}
func (nopMetrics) OptionSelected(bool)   {}
func (nopMetrics) RoundSolved(bool, int) {}
