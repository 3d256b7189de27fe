package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store implementation.
// Useful for tests and for embedding clients that do not persist
// credentials across process restarts.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	user  *User
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNotFound
	}
	return s.token, nil
}

func (s *MemoryStore) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) RemoveToken(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

func (s *MemoryStore) User(ctx context.Context) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, ErrNotFound
	}
	u := *s.user
	return &u, nil
}

func (s *MemoryStore) SetUser(ctx context.Context, user *User) error {
	if user == nil {
		return ErrInvalidUser
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	s.user = &u
	return nil
}

func (s *MemoryStore) RemoveUser(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}
