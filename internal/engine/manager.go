package engine

import (
	"sync"
	"time"
)

// Manager hands out one Session per user id. Sessions are created lazily on
// first access and dropped on Discard (logout or user switch), at which point
// the next access reloads state from storage.
type Manager struct {
	store SnapshotStore
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a Manager using the wall clock.
func NewManager(store SnapshotStore) *Manager {
	return NewManagerWithClock(store, time.Now)
}

// NewManagerWithClock creates a Manager with an injectable clock for tests.
func NewManagerWithClock(store SnapshotStore, now func() time.Time) *Manager {
	return &Manager{
		store:    store,
		now:      now,
		sessions: make(map[string]*Session),
	}
}

// Session returns the live session for the user, creating and initializing
// one if needed.
func (m *Manager) Session(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		return s
	}
	s := NewSession(userID, m.store, m.now)
	m.sessions[userID] = s
	return s
}

// Discard drops the user's in-memory session. Persisted state is untouched.
func (m *Manager) Discard(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
