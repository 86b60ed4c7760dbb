package banner

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store with an in-process map. Expired entries are
// swept by a background loop started when cleanupInterval is positive.
type MemoryStore struct {
	mu      sync.RWMutex
	expires map[string]time.Time
	ticker  *time.Ticker
	done    chan struct{}
	once    sync.Once
}

// NewMemoryStore creates an in-memory dismissal store.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		expires: make(map[string]time.Time),
		done:    make(chan struct{}),
	}

	if cleanupInterval > 0 {
		store.ticker = time.NewTicker(cleanupInterval)
		go store.cleanupLoop()
	}

	return store
}

func (m *MemoryStore) Dismissed(ctx context.Context, token string) (bool, error) {
	m.mu.RLock()
	expiry, ok := m.expires[token]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		m.mu.Lock()
		delete(m.expires, token)
		m.mu.Unlock()
		return false, nil
	}
	return true, nil
}

func (m *MemoryStore) Dismiss(ctx context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return ErrInvalidToken
	}

	m.mu.Lock()
	m.expires[token] = time.Now().Add(ttl)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Restore(ctx context.Context, token string) error {
	m.mu.Lock()
	delete(m.expires, token)
	m.mu.Unlock()
	return nil
}

// Close stops the cleanup loop. Safe for repeated calls.
func (m *MemoryStore) Close() {
	m.once.Do(func() {
		if m.ticker != nil {
			m.ticker.Stop()
		}
		close(m.done)
	})
}

func (m *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			now := time.Now()
			m.mu.Lock()
			for token, expiry := range m.expires {
				if now.After(expiry) {
					delete(m.expires, token)
				}
			}
			m.mu.Unlock()
		case <-m.done:
			return
		}
	}
}
