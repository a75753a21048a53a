// Package repohost abstracts the upstream code host. Everything the
// ingestion core needs from a repository (existence checks, tree
// listing, raw commit diffs, commit metadata, file content) goes
// through Client so the pipeline can be driven by a fake in tests.
package repohost

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrInvalidRepository marks an unreachable or malformed repository
	// reference. Fatal to provisioning.
	ErrInvalidRepository = errors.New("repohost: invalid repository")

	// ErrAuthorizationRequired marks a private repository accessed
	// without a credential. Fatal to provisioning.
	ErrAuthorizationRequired = errors.New("repohost: authorization required")

	// ErrFetch marks a transient upstream failure (diff or metadata
	// fetch). Recoverable: callers skip and continue.
	ErrFetch = errors.New("repohost: fetch failed")
)

// RepoInfo describes a validated repository.
type RepoInfo struct {
	Owner         string
	Name          string
	Private       bool
	DefaultBranch string
}

// CommitMeta is the commit header as reported by the code host.
type CommitMeta struct {
	Hash    string
	Author  string
	Summary string
	Date    time.Time
}

// Client is a read-only view of one repository on the code host.
type Client interface {
	// Validate checks that the repository exists and is accessible.
	Validate(ctx context.Context) (RepoInfo, error)

	// ListFiles returns every blob path on the given branch.
	ListFiles(ctx context.Context, branch string) ([]string, error)

	// CommitDiff returns the raw unified diff for one commit.
	CommitDiff(ctx context.Context, sha string) (string, error)

	// CommitMeta returns author, date and summary for one commit.
	CommitMeta(ctx context.Context, sha string) (CommitMeta, error)

	// FileContent returns the decoded content of path at ref.
	FileContent(ctx context.Context, ref, path string) (string, error)
}

// Factory builds a Client for a repository URL and optional credential.
// Provisioning and reindex both go through the factory so the credential
// can differ per request.
type Factory func(repoURL, credential string) (Client, error)
