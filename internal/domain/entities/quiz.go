package entities

import (
	"time"
)

// QuizSession is the quiz state owned by a single chat.
// It tracks the current round, the running score and the flag message on screen.
type QuizSession struct {
	ChatID    int64         // Telegram chat that owns the session
	Round     Round         // round currently shown
	Score     Score         // running score, kept across rounds
	Policy    ScoringPolicy // scoring policy fixed at session start
	MessageID int           // flag message to edit, 0 until sent
	StartedAt time.Time     // when the session was created
	UpdatedAt time.Time     // last state transition
}

// NewQuizSession creates a session for a chat with the given first round.
func NewQuizSession(chatID int64, round Round, policy ScoringPolicy) *QuizSession {
	now := time.Now()
	return &QuizSession{
		ChatID:    chatID,
		Round:     round,
		Policy:    policy,
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy of the session.
func (qs *QuizSession) Clone() *QuizSession {
	c := *qs
	c.Round = qs.Round.Clone()
	return &c
}

// RoundResult is a finished round, written to the round log.
type RoundResult struct {
	ID           int64       // unique result ID
	ChatID       int64       // chat that played the round
	UserID       int64       // user who made the final pick
	RoundID      string      // round identifier
	Target       CountryCode // country that had to be guessed
	WrongGuesses int         // number of wrong picks before solving
	Scored       bool        // solved on the first pick
	ScoreAfter   int         // current score after the round
	SolvedAt     time.Time   // when the target was picked
}

// NewRoundResult builds a log entry for a solved round.
func NewRoundResult(chatID, userID int64, r Round, score Score) *RoundResult {
	return &RoundResult{
		ChatID:       chatID,
		UserID:       userID,
		RoundID:      r.ID.String(),
		Target:       r.Target,
		WrongGuesses: len(r.WrongSelections),
		Scored:       r.Scored,
		ScoreAfter:   score.Current,
		SolvedAt:     time.Now(),
	}
}
