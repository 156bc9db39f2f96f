package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OptionsPerRound is the number of candidate countries shown for one flag.
const OptionsPerRound = 4

var ErrInvalidRound = errors.New("invalid round")

// RoundState is the presentation state of a round.
type RoundState int

const (
	RoundGuessing       RoundState = iota // waiting for the correct pick
	RoundSolvedScored                     // solved on the first pick
	RoundSolvedUnscored                   // solved after at least one wrong pick
)

func (s RoundState) String() string {
	switch s {
	case RoundGuessing:
		return "guessing"
	case RoundSolvedScored:
		return "solved_scored"
	case RoundSolvedUnscored:
		return "solved_unscored"
	default:
		return "unknown"
	}
}

// Round is one flag-guessing turn.
type Round struct {
	ID              uuid.UUID                    // identifies the round in callback data
	Target          CountryCode                  // the country whose flag is shown
	Options         [OptionsPerRound]CountryCode // display order, target included once
	WrongSelections []CountryCode                // wrong picks in the order they were made
	Solved          bool                         // the target has been picked
	Scored          bool                         // solved without a wrong pick
	CreatedAt       time.Time                    // when the round was generated
}

// NewRound creates an unsolved round for the given target and display order.
func NewRound(target CountryCode, options [OptionsPerRound]CountryCode) Round {
	return Round{
		ID:        uuid.New(),
		Target:    target,
		Options:   options,
		CreatedAt: time.Now(),
	}
}

// State derives the presentation state from the round fields.
func (r Round) State() RoundState {
	switch {
	case !r.Solved:
		return RoundGuessing
	case r.Scored:
		return RoundSolvedScored
	default:
		return RoundSolvedUnscored
	}
}

// IndexOf returns the display position of code, or -1.
func (r Round) IndexOf(code CountryCode) int {
	for i, opt := range r.Options {
		if opt == code {
			return i
		}
	}
	return -1
}

// HasOption reports whether code is one of the round's options.
func (r Round) HasOption(code CountryCode) bool {
	return r.IndexOf(code) >= 0
}

// IsWrong reports whether code was already picked as a wrong answer.
func (r Round) IsWrong(code CountryCode) bool {
	for _, w := range r.WrongSelections {
		if w == code {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no mutable state with r.
func (r Round) Clone() Round {
	c := r
	if r.WrongSelections != nil {
		c.WrongSelections = make([]CountryCode, len(r.WrongSelections))
		copy(c.WrongSelections, r.WrongSelections)
	}
	return c
}

// Validate checks the round invariants.
func (r Round) Validate() error {
	seen := make(map[CountryCode]struct{}, OptionsPerRound)
	for _, opt := range r.Options {
		if opt == "" {
			return fmt.Errorf("%w: empty option", ErrInvalidRound)
		}
		if _, ok := seen[opt]; ok {
			return fmt.Errorf("%w: duplicate option %s", ErrInvalidRound, opt)
		}
		seen[opt] = struct{}{}
	}

	if !r.HasOption(r.Target) {
		return fmt.Errorf("%w: target %s not among options", ErrInvalidRound, r.Target)
	}

	for _, w := range r.WrongSelections {
		if w == r.Target || !r.HasOption(w) {
			return fmt.Errorf("%w: bad wrong selection %s", ErrInvalidRound, w)
		}
	}

	return nil
}
