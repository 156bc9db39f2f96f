package service

import (
	"context"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

type PlayerService struct {
	repository PlayerRepository
}

func NewPlayerService(repository PlayerRepository) *PlayerService {
	return &PlayerService{repository: repository}
}

// EnsurePlayer registers the player on first contact.
func (s *PlayerService) EnsurePlayer(ctx context.Context, userID, chatID int64, username, languageCode string) error {
	player := entities.NewPlayer(userID, chatID, username, languageCode)

	exists, err := s.repository.Exists(ctx, player.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return s.repository.Save(ctx, player)
}
