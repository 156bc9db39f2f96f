package service

import (
	"errors"
	"fmt"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

var (
	ErrInvalidOption   = errors.New("option is not part of the round")
	ErrRoundSolved     = errors.New("round is already solved")
	ErrRoundNotSolved  = errors.New("round is not solved yet")
	ErrStaleRound      = errors.New("round is no longer active")
	ErrSessionNotFound = errors.New("quiz session not found")
)

// Select applies a pick to a round and returns the updated round and score.
// The inputs are left untouched.
//
// A correct first pick solves the round and rewards the score. A correct pick
// after wrong ones solves the round without reward. A wrong pick is recorded
// once and resets the current score.
func Select(
	round entities.Round,
	score entities.Score,
	policy entities.ScoringPolicy,
	chosen entities.CountryCode,
) (entities.Round, entities.Score, error) {
	if !round.HasOption(chosen) {
		return round, score, fmt.Errorf("%w: %s", ErrInvalidOption, chosen)
	}

	if round.Solved {
		return round, score, ErrRoundSolved
	}

	next := round.Clone()

	if chosen == round.Target {
		next.Solved = true
		if len(round.WrongSelections) == 0 {
			next.Scored = true
			score = policy.Reward(score)
		}
		return next, score, nil
	}

	if !next.IsWrong(chosen) {
		next.WrongSelections = append(next.WrongSelections, chosen)
	}

	return next, policy.Reset(score), nil
}

// Advance replaces a solved round with a fresh one from the generator.
func Advance(round entities.Round, source RoundSource) (entities.Round, error) {
	if !round.Solved {
		return round, ErrRoundNotSolved
	}
	return source.Generate(), nil
}
