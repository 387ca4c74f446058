package session

import (
	"context"
	"sync"
	"time"

	"github.com/onja-org/w2-scss-lab/internal/models"
)

type memoryEntry struct {
	state   models.WidgetState
	touched time.Time
}

// MemoryStore keeps sessions in process memory. Entries are dropped by Sweep.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]memoryEntry), now: time.Now}
}

func (m *MemoryStore) Save(_ context.Context, id string, state models.WidgetState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[id] = memoryEntry{state: state, touched: m.now()}
	return nil
}

func (m *MemoryStore) Load(_ context.Context, id string) (models.WidgetState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.data[id]
	if !ok {
		return models.WidgetState{}, ErrSessionNotFound
	}
	e.touched = m.now()
	m.data[id] = e
	return e.state, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.data, id)
	return nil
}

// Len reports the number of live sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Sweep removes sessions not touched within maxIdle and returns how many were removed.
func (m *MemoryStore) Sweep(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-maxIdle)
	removed := 0
	for id, e := range m.data {
		if e.touched.Before(cutoff) {
			delete(m.data, id)
			removed++
		}
	}
	return removed
}
