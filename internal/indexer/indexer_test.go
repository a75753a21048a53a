package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repolens/internal/artifactstore"
	"repolens/internal/repohost"
)

type fakeEmbedder struct{ fail bool }

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if f.fail {
		return nil, errors.New("embed down")
	}
	return []float32{float32(len(text)), 0.5}, nil
}
func (f *fakeEmbedder) Model() string { return "fake-embed" }
func (f *fakeEmbedder) Close() error  { return nil }

type fakeHost struct {
	files  map[string]string
	failOn map[string]bool
}

func (f *fakeHost) Validate(ctx context.Context) (repohost.RepoInfo, error) {
	return repohost.RepoInfo{}, nil
}
func (f *fakeHost) ListFiles(ctx context.Context, branch string) ([]string, error) {
	return nil, nil
}
func (f *fakeHost) CommitDiff(ctx context.Context, sha string) (string, error) { return "", nil }
func (f *fakeHost) CommitMeta(ctx context.Context, sha string) (repohost.CommitMeta, error) {
	return repohost.CommitMeta{}, nil
}
func (f *fakeHost) FileContent(ctx context.Context, ref, path string) (string, error) {
	if f.failOn[path] {
		return "", repohost.ErrFetch
	}
	return f.files[path], nil
}

func TestIndexFilesStoresVectorRecords(t *testing.T) {
	store := artifactstore.NewMemoryStore()
	svc := New(&fakeEmbedder{}, store, 2)
	host := &fakeHost{files: map[string]string{
		"a.go": "package a",
		"b.go": "package b",
	}}

	err := svc.IndexFiles(context.Background(), "proj-1", "main", host, []string{"a.go", "b.go"})
	require.NoError(t, err)

	data, err := store.Get(context.Background(), "proj-1/main", "a.go.embedding.json")
	require.NoError(t, err)

	var rec FileRecord
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, "a.go", rec.Path)
	assert.Equal(t, "fake-embed", rec.Model)
	assert.Equal(t, 2, rec.Dimension)
	assert.Len(t, rec.Vector, 2)
}

func TestIndexFilesPartialFailureIsReportedNotFatal(t *testing.T) {
	store := artifactstore.NewMemoryStore()
	svc := New(&fakeEmbedder{}, store, 2)
	host := &fakeHost{
		files:  map[string]string{"ok.go": "package ok", "bad.go": "x"},
		failOn: map[string]bool{"bad.go": true},
	}

	err := svc.IndexFiles(context.Background(), "proj-1", "main", host, []string{"ok.go", "bad.go"})
	require.Error(t, err)

	// The healthy file is still indexed.
	_, err = store.Get(context.Background(), "proj-1/main", "ok.go.embedding.json")
	assert.NoError(t, err)
	_, err = store.Get(context.Background(), "proj-1/main", "bad.go.embedding.json")
	assert.ErrorIs(t, err, artifactstore.ErrNotFound)
}

func TestIndexFilesEmptyBatchIsNoop(t *testing.T) {
	svc := New(&fakeEmbedder{fail: true}, artifactstore.NewMemoryStore(), 2)
	require.NoError(t, svc.IndexFiles(context.Background(), "p", "main", &fakeHost{}, nil))
}

func TestIndexFilesSkipsEmptyContent(t *testing.T) {
	store := artifactstore.NewMemoryStore()
	svc := New(&fakeEmbedder{}, store, 1)
	host := &fakeHost{files: map[string]string{"empty.go": "   \n"}}

	require.NoError(t, svc.IndexFiles(context.Background(), "p", "main", host, []string{"empty.go"}))
	_, err := store.Get(context.Background(), "p/main", "empty.go.embedding.json")
	assert.ErrorIs(t, err, artifactstore.ErrNotFound)
}
