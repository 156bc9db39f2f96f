package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flag-quiz-bot/internal/infra/postgres"
)

// TxRunner runs a function inside a database transaction.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// RoundResultRepository stores solved rounds in the round log.
type RoundResultRepository struct {
	db postgres.DBTX
	tx TxRunner
}

// NewRoundResultRepository creates a new RoundResultRepository.
func NewRoundResultRepository(db postgres.DBTX, tx TxRunner) *RoundResultRepository {
	return &RoundResultRepository{db: db, tx: tx}
}

// RecordRound inserts the result and touches the player's last_played_at
// in one transaction.
func (r *RoundResultRepository) RecordRound(ctx context.Context, result *entities.RoundResult) error {
	insert := `
		INSERT INTO round_results (
			chat_id, user_id, round_id, target,
			wrong_guesses, scored, score_after, solved_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	touch := `
		UPDATE players
		SET last_played_at = $2
		WHERE id = $1
	`

	return r.tx.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insert,
			result.ChatID,
			result.UserID,
			result.RoundID,
			string(result.Target),
			result.WrongGuesses,
			result.Scored,
			result.ScoreAfter,
			result.SolvedAt,
		).Scan(&result.ID)
		if err != nil {
			return fmt.Errorf("insert round result: %w", err)
		}

		if _, err := tx.Exec(ctx, touch, result.UserID, result.SolvedAt); err != nil {
			return fmt.Errorf("touch player: %w", err)
		}

		return nil
	})
}

// Recent returns the chat's latest results, newest first.
func (r *RoundResultRepository) Recent(ctx context.Context, chatID int64, limit int) ([]entities.RoundResult, error) {
	query := `
		SELECT id, chat_id, user_id, round_id, target,
		       wrong_guesses, scored, score_after, solved_at
		FROM round_results
		WHERE chat_id = $1
		ORDER BY solved_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, chatID, limit)
	if err != nil {
		return nil, fmt.Errorf("query round results: %w", err)
	}
	defer rows.Close()

	var results []entities.RoundResult
	for rows.Next() {
		var (
			res    entities.RoundResult
			target string
		)
		if err := rows.Scan(
			&res.ID,
			&res.ChatID,
			&res.UserID,
			&res.RoundID,
			&target,
			&res.WrongGuesses,
			&res.Scored,
			&res.ScoreAfter,
			&res.SolvedAt,
		); err != nil {
			return nil, fmt.Errorf("scan round result: %w", err)
		}
		res.Target = entities.CountryCode(target)
		results = append(results, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate round results: %w", err)
	}

	return results, nil
}
