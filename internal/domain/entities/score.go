package entities

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownScoringPolicy = errors.New("unknown scoring policy")

// ScoringPolicy controls which score fields a session maintains.
type ScoringPolicy string

const (
	ScoringBest   ScoringPolicy = "best"   // current score plus best score
	ScoringStreak ScoringPolicy = "streak" // current streak only
)

// ParseScoringPolicy converts a config value into a policy.
func ParseScoringPolicy(s string) (ScoringPolicy, error) {
	switch p := ScoringPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case ScoringBest, ScoringStreak:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScoringPolicy, s)
	}
}

// TracksBest reports whether the policy keeps a best score.
func (p ScoringPolicy) TracksBest() bool {
	return p == ScoringBest
}

// Reward applies a round solved on the first pick.
func (p ScoringPolicy) Reward(s Score) Score {
	s.Current++
	if p.TracksBest() && s.Current > s.Best {
		s.Best = s.Current
	}
	return s
}

// Reset applies a wrong pick. Best is kept.
func (p ScoringPolicy) Reset(s Score) Score {
	s.Current = 0
	return s
}

// Score is the running score of a session.
type Score struct {
	Current int // consecutive rounds solved on the first pick
	Best    int // highest Current seen; always 0 under ScoringStreak
}

// IsNewBest reports whether the current score has just reached the best score.
func (s Score) IsNewBest(p ScoringPolicy) bool {
	return p.TracksBest() && s.Current > 0 && s.Current == s.Best
}
