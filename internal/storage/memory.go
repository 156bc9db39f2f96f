package storage

import (
	"context"
	"sync"
	"time"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

const defaultRoundLogSize = 50

// RoundLog keeps the most recent solved rounds per chat in memory.
// It is used when no database is configured.
type RoundLog struct {
	mu      sync.RWMutex
	limit   int
	results map[int64][]entities.RoundResult
	nextID  int64
}

func NewRoundLog(limit int) *RoundLog {
	if limit <= 0 {
		limit = defaultRoundLogSize
	}
	return &RoundLog{
		limit:   limit,
		results: make(map[int64][]entities.RoundResult),
	}
}

// RecordRound appends a result, dropping the oldest one past the limit.
func (l *RoundLog) RecordRound(_ context.Context, result *entities.RoundResult) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	r := *result
	r.ID = l.nextID
	if r.SolvedAt.IsZero() {
		r.SolvedAt = time.Now()
	}

	list := append(l.results[r.ChatID], r)
	if len(list) > l.limit {
		list = list[len(list)-l.limit:]
	}
	l.results[r.ChatID] = list

	return nil
}

// Recent returns up to limit of the chat's latest results, newest first.
func (l *RoundLog) Recent(_ context.Context, chatID int64, limit int) ([]entities.RoundResult, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	list := l.results[chatID]
	if limit <= 0 || limit > len(list) {
		limit = len(list)
	}

	out := make([]entities.RoundResult, 0, limit)
	for i := len(list) - 1; i >= len(list)-limit; i-- {
		out = append(out, list[i])
	}
	return out, nil
}

// PlayerRegistry is an in-memory player registry.
type PlayerRegistry struct {
	mu      sync.RWMutex
	players map[int64]entities.Player
}

func NewPlayerRegistry() *PlayerRegistry {
	return &PlayerRegistry{
		players: make(map[int64]entities.Player),
	}
}

func (r *PlayerRegistry) Exists(_ context.Context, playerID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.players[playerID]
	return ok, nil
}

func (r *PlayerRegistry) Save(_ context.Context, player *entities.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := *player
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	r.players[p.ID] = p

	return nil
}
