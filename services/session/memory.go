package session

import (
	"context"
	"sync"
	"time"

	"festquote/models"
)

type memoryEntry struct {
	session   models.QuoteSession
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. A zero ttl never expires entries.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*memoryEntry
	locks    map[string]bool
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*memoryEntry),
		locks:    make(map[string]bool),
	}
}

func (m *MemoryStore) Create(_ context.Context, s *models.QuoteSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = &memoryEntry{session: cloneSession(*s), expiresAt: m.expiry()}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*models.QuoteSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	e.expiresAt = m.expiry()
	out := cloneSession(e.session)
	return &out, nil
}

func (m *MemoryStore) Update(_ context.Context, id string, fn func(*models.QuoteSession) error) (*models.QuoteSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	working := cloneSession(e.session)
	if err := fn(&working); err != nil {
		return nil, err
	}
	e.session = cloneSession(working)
	e.expiresAt = m.expiry()
	return &working, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) AcquireSubmit(_ context.Context, id string) (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[id] {
		return nil, ErrSubmitInFlight
	}
	m.locks[id] = true
	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.locks, id)
			m.mu.Unlock()
		})
	}, nil
}

func (m *MemoryStore) lookup(id string) (*memoryEntry, error) {
	e, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !e.expiresAt.IsZero() && m.now().After(e.expiresAt) {
		delete(m.sessions, id)
		return nil, ErrSessionNotFound
	}
	return e, nil
}

func (m *MemoryStore) expiry() time.Time {
	if m.ttl <= 0 {
		return time.Time{}
	}
	return m.now().Add(m.ttl)
}
