package storage

import (
	"slices"
	"sync"
	"time"
)

// Session is a player's pass through one category. Quizzes hold the native
// form of each record so every request restores its own copy.
type Session struct {
	CategoryID   string
	CategoryName string
	Position     int
	Quizzes      [][]byte
}

func (s Session) clone() Session {
	quizzes := make([][]byte, len(s.Quizzes))
	for i, q := range s.Quizzes {
		quizzes[i] = slices.Clone(q)
	}
	s.Quizzes = quizzes
	return s
}

type sessionEntry struct {
	session Session
	touched time.Time
}

// SessionStorage provides in-memory storage for play sessions by user ID.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]sessionEntry
	now      func() time.Time
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]sessionEntry),
		now:      time.Now,
	}
}

// Store saves the session for a user, replacing any previous one.
func (s *SessionStorage) Store(userID int64, session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sessionEntry{session: session.clone(), touched: s.now()}
}

// Get retrieves the session of a user.
func (s *SessionStorage) Get(userID int64) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[userID]
	if !ok {
		return Session{}, false
	}
	return entry.session.clone(), true
}

// Delete removes the session of a user.
func (s *SessionStorage) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// EvictIdle removes sessions not stored for longer than ttl and returns how
// many were removed.
func (s *SessionStorage) EvictIdle(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	evicted := 0
	for userID, entry := range s.sessions {
		if entry.touched.Before(cutoff) {
			delete(s.sessions, userID)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of live sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
