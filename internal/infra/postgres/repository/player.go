package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flag-quiz-bot/internal/infra/postgres"
)

// PlayerRepository provides access to player data in the database.
type PlayerRepository struct {
	db postgres.DBTX
}

// NewPlayerRepository creates a new PlayerRepository with the provided database handle.
func NewPlayerRepository(db postgres.DBTX) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Save inserts a new player or refreshes an existing one.
func (r *PlayerRepository) Save(ctx context.Context, player *entities.Player) error {
	query := `
		INSERT INTO players (id, chat_id, username, language_code)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			chat_id = EXCLUDED.chat_id,
			username = EXCLUDED.username,
			language_code = EXCLUDED.language_code
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		player.ID,
		player.ChatID,
		player.Username,
		player.LanguageCode,
	).Scan(&player.CreatedAt)
	if err != nil {
		return fmt.Errorf("save player: %w", err)
	}

	return nil
}

// Exists checks if a player with the given ID exists in the database.
func (r *PlayerRepository) Exists(ctx context.Context, playerID int64) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM players WHERE id = $1)"

	var exists bool
	err := r.db.QueryRow(ctx, query, playerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check player existence: %w", err)
	}

	return exists, nil
}
