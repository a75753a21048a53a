// Package requeststore persists ProjectCreationRequest records: the
// audit trail of provisioning attempts and the status field polled by
// external callers.
package requeststore

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when no request exists for an id.
var ErrNotFound = errors.New("requeststore: not found")

// Record is one provisioning attempt. Records are never deleted.
type Record struct {
	ID        string
	UserID    string
	Name      string
	RepoURL   string
	Branch    string
	Status    string
	FileCount int
	ProjectID string
	ErrorNote string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is the persistence boundary for creation requests.
type Store interface {
	Create(ctx context.Context, rec Record) error
	Get(ctx context.Context, id string) (Record, error)
	// Update applies mutate to the stored record and persists the
	// result. The callback sees the latest stored state.
	Update(ctx context.Context, id string, mutate func(*Record)) (Record, error)
}

// MemoryStore keeps records in memory; used when no database is
// configured and in tests.
type MemoryStore struct {
	mu   sync.RWMutex
	byID map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]Record)}
}

func (m *MemoryStore) Create(ctx context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.UpdatedAt = rec.CreatedAt
	m.byID[rec.ID] = rec
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (m *MemoryStore) Update(ctx context.Context, id string, mutate func(*Record)) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	mutate(&rec)
	rec.UpdatedAt = time.Now()
	m.byID[id] = rec
	return rec, nil
}
