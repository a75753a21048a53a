package requeststore

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreUpdateSeesLatestState(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Create(ctx, Record{ID: "req-1", Status: "PENDING"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := store.Update(ctx, "req-1", func(r *Record) {
		r.Status = "CREATING_PROJECT"
		r.FileCount = 42
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != "CREATING_PROJECT" || updated.FileCount != 42 {
		t.Fatalf("updated = %+v", updated)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) && !updated.UpdatedAt.Equal(updated.CreatedAt) {
		t.Fatalf("UpdatedAt %v predates CreatedAt %v", updated.UpdatedAt, updated.CreatedAt)
	}

	got, err := store.Get(ctx, "req-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != "CREATING_PROJECT" {
		t.Fatalf("Get after Update = %+v", got)
	}
}

func TestMemoryStoreUnknownID(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "no-such"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get error = %v, want ErrNotFound", err)
	}
	if _, err := store.Update(ctx, "no-such", func(*Record) {}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update error = %v, want ErrNotFound", err)
	}
}
