package commitstore

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedStore fronts a Store with an LRU over the modified-files cache,
// keyed by project and hash. Modified-file lists are written once and
// never change afterwards, so there is no invalidation concern.
type CachedStore struct {
	origin Store
	files  *lru.Cache[string, []string]

	mu  sync.Mutex
	ids map[string]string
}

func NewCachedStore(origin Store, maxEntries int) *CachedStore {
	if maxEntries <= 0 {
		maxEntries = 4096
	}
	cache, err := lru.New[string, []string](maxEntries)
	if err != nil {
		cache, _ = lru.New[string, []string](4096)
	}
	return &CachedStore{
		origin: origin,
		files:  cache,
		ids:    make(map[string]string),
	}
}

func (s *CachedStore) GetByHash(ctx context.Context, projectID, hash string) (Row, error) {
	row, err := s.origin.GetByHash(ctx, projectID, hash)
	if err != nil {
		return Row{}, err
	}
	if !row.FilesCached {
		if files, ok := s.files.Get(cacheKey(projectID, hash)); ok {
			row.ModifiedFiles = files
			row.FilesCached = true
		}
	}
	return row, nil
}

func (s *CachedStore) Upsert(ctx context.Context, row Row) (Row, error) {
	stored, err := s.origin.Upsert(ctx, row)
	if err != nil {
		return Row{}, err
	}
	s.mu.Lock()
	s.ids[stored.ID] = cacheKey(stored.ProjectID, stored.Hash)
	s.mu.Unlock()
	return stored, nil
}

func (s *CachedStore) SetModifiedFiles(ctx context.Context, id string, files []string) error {
	if err := s.origin.SetModifiedFiles(ctx, id, files); err != nil {
		return err
	}
	s.mu.Lock()
	key, ok := s.ids[id]
	s.mu.Unlock()
	if ok {
		if files == nil {
			files = []string{}
		}
		s.files.Add(key, files)
	}
	return nil
}

func (s *CachedStore) SetNeedsReindex(ctx context.Context, id string, v bool) error {
	return s.origin.SetNeedsReindex(ctx, id, v)
}

func cacheKey(projectID, hash string) string {
	return projectID + "@" + hash
}
