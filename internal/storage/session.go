package storage

import (
	"errors"
	"sync"

	"github.com/aliskhannn/state-capitals-bot/internal/service"
)

var ErrSessionNotFound = errors.New("quiz session not found")

// Session is the per-chat quiz state kept between Telegram updates.
type Session struct {
	Coordinator *service.Coordinator
	MessageID   int    // message showing the current question
	Selected    []bool // multi-choice toggles by option index
}

// ResetSelection clears the toggles for a question with n options.
func (s *Session) ResetSelection(n int) {
	s.Selected = make([]bool, n)
}

// SessionStorage provides in-memory storage for quiz sessions by chat ID.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*Session),
	}
}

// Store saves the session for a given chat ID, replacing any previous one.
func (s *SessionStorage) Store(chatID int64, session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = session
}

// Get retrieves the session for a given chat ID.
func (s *SessionStorage) Get(chatID int64) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[chatID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Delete removes the session for a given chat ID.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// Len returns the number of active sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
