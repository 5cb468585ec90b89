package session

import (
	"context"
	"sync"
	"time"
)

type record struct {
	data      map[string]string
	expiresAt time.Time
}

// MemoryStore implements Store with process-memory storage, TTL expiry and
// periodic cleanup of expired sessions.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*record
	ttl      time.Duration
	ticker   *time.Ticker
	done     chan struct{}
}

// NewMemoryStore creates a memory store. Sessions expire ttl after their
// last write. A positive cleanupInterval starts a background sweeper;
// call Close to stop it.
func NewMemoryStore(ttl, cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		sessions: make(map[string]*record),
		ttl:      ttl,
		done:     make(chan struct{}),
	}

	if cleanupInterval > 0 {
		store.ticker = time.NewTicker(cleanupInterval)
		go store.cleanupLoop(store.ticker)
	}

	return store
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context, token, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.sessions[token]
	if !ok || time.Now().After(rec.expiresAt) {
		return "", false, nil
	}

	value, ok := rec.data[key]
	return value, ok, nil
}

// Set implements Store.
func (m *MemoryStore) Set(_ context.Context, token, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.sessions[token]
	if !ok || time.Now().After(rec.expiresAt) {
		rec = &record{data: make(map[string]string)}
		m.sessions[token] = rec
	}

	rec.data[key] = value
	rec.expiresAt = time.Now().Add(m.ttl)
	return nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

// Close stops the cleanup goroutine.
func (m *MemoryStore) Close() error {
	if m.ticker != nil {
		m.ticker.Stop()
		close(m.done)
		m.ticker = nil
	}
	return nil
}

func (m *MemoryStore) cleanupLoop(ticker *time.Ticker) {
	for {
		select {
		case <-ticker.C:
			m.deleteExpired()
		case <-m.done:
			return
		}
	}
}

func (m *MemoryStore) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for token, rec := range m.sessions {
		if now.After(rec.expiresAt) {
			delete(m.sessions, token)
		}
	}
}
