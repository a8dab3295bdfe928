package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"mockmate/interview/internal/models"
)

// MemoryStore keeps sessions in an in-process map. Sessions are cloned on
// the way in and out so callers never share memory with the stored copy;
// this matches the behavior of the redis-backed store, where every load is
// a JSON round-trip.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*models.Session),
	}
}

func (s *MemoryStore) Create(ctx context.Context, session *models.Session) error {
	clone, err := cloneSession(session)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[session.ID]; exists {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	s.sessions[session.ID] = clone
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	session, exists := s.sessions[id]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrNotFound
	}
	return cloneSession(session)
}

func (s *MemoryStore) Update(ctx context.Context, session *models.Session) error {
	clone, err := cloneSession(session)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[session.ID]; !exists {
		return ErrNotFound
	}
	s.sessions[session.ID] = clone
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[id]; !exists {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		clone, err := cloneSession(session)
		if err != nil {
			return nil, err
		}
		out = append(out, clone)
	}
	return out, nil
}

func cloneSession(session *models.Session) (*models.Session, error) {
	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to clone session: %w", err)
	}
	var clone models.Session
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, fmt.Errorf("failed to clone session: %w", err)
	}
	return &clone, nil
}

var _ Store = (*MemoryStore)(nil)
