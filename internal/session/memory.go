package session

import (
	"context"
	"sync"
	"time"

	"todolist_api/internal/domain"
)

// MemoryStore keeps sessions in-process. Used when no Redis address is
// configured; sessions do not survive a restart.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	user      domain.SessionUser
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, user domain.SessionUser) (string, error) {
	token := newToken()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeExpired()
	s.entries[token] = memoryEntry{user: user, expiresAt: s.now().Add(TTL)}
	return token, nil
}

// purgeExpired drops expired entries so abandoned sessions do not
// accumulate. Caller must hold mu.
func (s *MemoryStore) purgeExpired() {
	now := s.now()
	for token, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, token)
		}
	}
}

func (s *MemoryStore) Resolve(_ context.Context, token string) (*domain.SessionUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[token]
	if !ok {
		return nil, ErrNoSession
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, token)
		return nil, ErrNoSession
	}
	u := e.user
	return &u, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}
