package session

import (
	"sync"
	"time"

	"github.com/ravitejak/legal-assist-bot/internal/models"
)

// Store maps user IDs to sessions. Abandoned sessions are reclaimed lazily:
// a session older than the TTL is dropped the next time that user is looked
// up, so no background sweeper is needed.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[int64]*Session
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[int64]*Session),
	}
}

// Create replaces any existing session for the user with a fresh one holding
// an empty complaint record.
func (s *Store) Create(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		UserID:    userID,
		Step:      StepIdle,
		Complaint: &models.Complaint{UserID: userID},
		UpdatedAt: time.Now(),
	}
	s.sessions[userID] = sess
	return sess
}

// Get returns the user's session if present and not expired.
func (s *Store) Get(userID int64) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if s.ttl > 0 {
		// Taken without the store lock held: handlers hold the session
		// lock while calling Clear, so nesting the two here would invert
		// the lock order.
		sess.Lock()
		expired := time.Since(sess.UpdatedAt) > s.ttl
		sess.Unlock()
		if expired {
			s.Clear(userID)
			return nil, false
		}
	}
	return sess, true
}

// GetOrCreate returns the existing session or creates a fresh one.
func (s *Store) GetOrCreate(userID int64) *Session {
	if sess, ok := s.Get(userID); ok {
		return sess
	}
	return s.Create(userID)
}

// Clear removes the user's session.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Len reports the number of live sessions, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
