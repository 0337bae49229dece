package tokenstore

import (
	"context"
	"errors"
	"sync"

	"github.com/AbdelhakNemri/sports-arena-client/internal/ports"
)

// MemoryStore keeps the token in process memory only. It is the
// session-scoped medium: the credential is gone when the process exits.
// Also used as the store double in tests.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore creates a session-scoped token store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ports.ErrNoToken
	}
	return s.token, nil
}

func (s *MemoryStore) Remove(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

func (s *MemoryStore) Has(_ context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}
