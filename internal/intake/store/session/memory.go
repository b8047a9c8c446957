package session

import (
	"context"
	"sync"

	"promissa/internal/intake/models"
	"promissa/internal/sentinel"
	id "promissa/pkg/domain"
)

// Error Contract:
// All store methods follow this error pattern:
// - Return ErrNotFound when the requested session does not exist
// - Return nil for successful operations
// - Return wrapped errors with context for infrastructure failures

// InMemoryStore keeps sessions in process memory. Sessions are cloned on
// both write and read so callers never share mutable answer maps with the
// store.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// New constructs an empty in-memory session store.
func New() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*models.Session)}
}

func (s *InMemoryStore) Save(_ context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID.String()] = sess.Clone()
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, sessionID id.SessionID) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID.String()]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return sess.Clone(), nil
}

func (s *InMemoryStore) Update(_ context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sess.ID.String()]; !ok {
		return sentinel.ErrNotFound
	}
	s.sessions[sess.ID.String()] = sess.Clone()
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, sessionID id.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID.String()]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.sessions, sessionID.String())
	return nil
}

// Count reports how many sessions are held. The health handler exposes it.
func (s *InMemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions), nil
}
