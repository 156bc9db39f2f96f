package entities

import "time"

// Player represents a bot user who has played at least one round.
type Player struct {
	ID           int64 // Telegram user ID
	ChatID       int64
	Username     string
	LanguageCode string
	CreatedAt    time.Time
}

func NewPlayer(id, chatID int64, username, languageCode string) *Player {
	return &Player{
		ID:           id,
		ChatID:       chatID,
		Username:     username,
		LanguageCode: languageCode,
	}
}
