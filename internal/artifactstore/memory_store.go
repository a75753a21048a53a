package artifactstore

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is the fallback backend used when no S3 config is present,
// and the backend of choice in tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Put(ctx context.Context, scope, path string, content []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(content))
	copy(buf, content)
	m.data[objectKey(scope, path)] = buf
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, scope, path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.data[objectKey(scope, path)]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (m *MemoryStore) List(ctx context.Context, scope string) ([]string, error) {
	prefix := strings.TrimSuffix(strings.TrimSpace(scope), "/") + "/"
	m.mu.RLock()
	defer m.mu.RUnlock()
	var paths []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			paths = append(paths, strings.TrimPrefix(k, prefix))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
