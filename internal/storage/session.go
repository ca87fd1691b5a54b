package storage

import (
	"sync"

	"github.com/aliskhannn/bilingual-quiz/internal/service"
)

// SessionStorage provides in-memory storage for quiz sessions by chat ID.
// Sessions live only as long as the process.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*service.Session
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*service.Session),
	}
}

// Store saves the session for a given chat ID, replacing any previous one.
func (s *SessionStorage) Store(chatID int64, session *service.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = session
}

// Get retrieves the session for a given chat ID.
func (s *SessionStorage) Get(chatID int64) (*service.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[chatID]
	return session, ok
}

// Delete removes the session for a given chat ID.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// Len returns the number of live sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
