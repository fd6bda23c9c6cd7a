package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
)

// MemoryStore keeps the record in process memory only.
type MemoryStore struct {
	mu   sync.Mutex
	sess *models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(_ context.Context) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil {
		return nil, nil
	}
	return clone(m.sess), nil
}

func (m *MemoryStore) Set(_ context.Context, s *models.Session) error {
	if s == nil {
		return ErrNilSession
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = clone(s)
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = nil
	return nil
}
