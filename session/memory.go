package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/hedibld92/margueritecookie/apperr"
)

// MemoryStore is the no-redis fallback for development and tests. Sessions
// are stored as JSON bytes, like the redis store, so callers never share
// state with the stored copy.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	entry, ok := m.sessions[id]
	if ok && time.Now().After(entry.expiresAt) {
		delete(m.sessions, id)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return nil, ErrNotFound
	}

	var sess Session
	if err := json.Unmarshal(entry.data, &sess); err != nil {
		return nil, apperr.Storage("Failed to decode session", err)
	}
	return &sess, nil
}

func (m *MemoryStore) Save(_ context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return apperr.Storage("Failed to encode session", err)
	}

	m.mu.Lock()
	m.sessions[sess.ID] = memoryEntry{data: data, expiresAt: time.Now().Add(TTL)}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}
