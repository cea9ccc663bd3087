package session

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

const cleanupInterval = 10 * time.Minute

// memoryStore keeps sessions in process memory. Good enough for tests and
// single-instance deployments; go-cache guards every key operation with its
// own lock, and all writes here are full-record overwrites.
type memoryStore struct {
	cache *cache.Cache
}

// NewMemoryStore builds the in-process store used when no redis address is
// configured.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		cache: cache.New(ttl, cleanupInterval),
	}
}

func (m *memoryStore) Get(_ context.Context, userID string) (Session, error) {
	if v, found := m.cache.Get(sessionKey(userID)); found {
		return v.(Session), nil
	}

	return Session{}, nil
}

func (m *memoryStore) Put(_ context.Context, userID string, s Session) error {
	m.cache.Set(sessionKey(userID), s, cache.DefaultExpiration)
	return nil
}

func (m *memoryStore) Delete(_ context.Context, userID string) error {
	m.cache.Delete(sessionKey(userID))
	m.cache.Delete(promptKey(userID))
	return nil
}

func (m *memoryStore) GetLastPrompt(_ context.Context, userID string) (*LastPrompt, error) {
	if v, found := m.cache.Get(promptKey(userID)); found {
		p := v.(LastPrompt)
		return &p, nil
	}

	return nil, nil
}

func (m *memoryStore) PutLastPrompt(_ context.Context, userID string, p LastPrompt) error {
	m.cache.Set(promptKey(userID), p, cache.DefaultExpiration)
	return nil
}
