// Package commitstore persists per-commit reindex state: the cached
// modified-file list and the needs_reindex flag.
package commitstore

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when no commit row exists.
var ErrNotFound = errors.New("commitstore: not found")

// Row is one ingested commit. ModifiedFiles is nil until the diff has
// been fetched once; after that it is the cache of record (possibly
// empty but non-nil).
type Row struct {
	ID            string
	ProjectID     string
	Hash          string
	Author        string
	CommittedAt   time.Time
	Summary       string
	ModifiedFiles []string
	FilesCached   bool
	NeedsReindex  bool
}

// Store is the persistence boundary for commit rows.
type Store interface {
	GetByHash(ctx context.Context, projectID, hash string) (Row, error)
	// Upsert creates the row if missing and returns the stored state.
	// Existing rows are returned untouched.
	Upsert(ctx context.Context, row Row) (Row, error)
	SetModifiedFiles(ctx context.Context, id string, files []string) error
	SetNeedsReindex(ctx context.Context, id string, v bool) error
}

// MemoryStore keeps commit rows in memory.
type MemoryStore struct {
	mu   sync.RWMutex
	byID map[string]Row
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]Row)}
}

func (m *MemoryStore) GetByHash(ctx context.Context, projectID, hash string) (Row, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.byID {
		if r.ProjectID == projectID && r.Hash == hash {
			return r, nil
		}
	}
	return Row{}, ErrNotFound
}

func (m *MemoryStore) Upsert(ctx context.Context, row Row) (Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.byID {
		if r.ProjectID == row.ProjectID && r.Hash == row.Hash {
			return r, nil
		}
	}
	m.byID[row.ID] = row
	return row, nil
}

func (m *MemoryStore) SetModifiedFiles(ctx context.Context, id string, files []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	if files == nil {
		files = []string{}
	}
	r.ModifiedFiles = files
	r.FilesCached = true
	m.byID[id] = r
	return nil
}

func (m *MemoryStore) SetNeedsReindex(ctx context.Context, id string, v bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	r.NeedsReindex = v
	m.byID[id] = r
	return nil
}
