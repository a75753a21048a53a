package commitstore

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCachedStoreServesModifiedFilesFromCache(t *testing.T) {
	cached := NewCachedStore(NewMemoryStore(), 8)
	ctx := context.Background()

	row, err := cached.Upsert(ctx, Row{
		ID:           "row-1",
		ProjectID:    "proj-1",
		Hash:         "abc123",
		CommittedAt:  time.Now(),
		NeedsReindex: true,
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := cached.SetModifiedFiles(ctx, row.ID, []string{"a.go", "b.go"}); err != nil {
		t.Fatalf("SetModifiedFiles: %v", err)
	}

	got, err := cached.GetByHash(ctx, "proj-1", "abc123")
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}
	if !got.FilesCached || len(got.ModifiedFiles) != 2 {
		t.Fatalf("row = %+v, want cached file list of 2", got)
	}
}

func TestCachedStoreNilFilesBecomeEmptyList(t *testing.T) {
	cached := NewCachedStore(NewMemoryStore(), 8)
	ctx := context.Background()

	row, err := cached.Upsert(ctx, Row{ID: "row-1", ProjectID: "p", Hash: "h", NeedsReindex: true})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := cached.SetModifiedFiles(ctx, row.ID, nil); err != nil {
		t.Fatalf("SetModifiedFiles: %v", err)
	}

	got, err := cached.GetByHash(ctx, "p", "h")
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}
	// An empty commit still counts as fetched: nil would mean "never
	// computed" and trigger a refetch.
	if !got.FilesCached || got.ModifiedFiles == nil {
		t.Fatalf("row = %+v, want empty non-nil cached list", got)
	}
}

func TestCachedStoreUpsertReturnsExistingRow(t *testing.T) {
	cached := NewCachedStore(NewMemoryStore(), 8)
	ctx := context.Background()

	first, err := cached.Upsert(ctx, Row{ID: "row-1", ProjectID: "p", Hash: "h", Author: "alice", NeedsReindex: true})
	if err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	second, err := cached.Upsert(ctx, Row{ID: "row-2", ProjectID: "p", Hash: "h", Author: "bob", NeedsReindex: true})
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	if second.ID != first.ID || second.Author != "alice" {
		t.Fatalf("second upsert = %+v, want the existing row untouched", second)
	}
}

func TestCachedStoreMissPassesThrough(t *testing.T) {
	cached := NewCachedStore(NewMemoryStore(), 8)
	_, err := cached.GetByHash(context.Background(), "p", "no-such")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByHash error = %v, want ErrNotFound", err)
	}
}
