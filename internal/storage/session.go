package storage

import (
	"sync"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// SessionStorage provides in-memory storage for quiz sessions by chat ID.
// Sessions are copied on the way in and out, so callers never share state.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.QuizSession
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*entities.QuizSession),
	}
}

// Save stores the session under its chat ID, replacing any previous one.
func (s *SessionStorage) Save(session *entities.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ChatID] = session.Clone()
}

// Get retrieves the session for a chat.
func (s *SessionStorage) Get(chatID int64) (*entities.QuizSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[chatID]
	if !ok {
		return nil, false
	}
	return session.Clone(), true
}

// Len returns the number of stored sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
