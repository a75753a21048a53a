// Package artifactstore persists index artifacts (embedding records,
// archived diffs) under a scope key, backed by S3-compatible storage or
// memory.
package artifactstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no artifact exists for the given key.
var ErrNotFound = errors.New("artifact not found")

// Store is a flat blob store keyed by (scope, path). Scopes group the
// artifacts of one project/ref pair.
type Store interface {
	Put(ctx context.Context, scope, path string, content []byte) error
	Get(ctx context.Context, scope, path string) ([]byte, error)
	List(ctx context.Context, scope string) ([]string, error)
}
