// Package reindex drives incremental reindexing of a project over a
// batch of commits. Commits are processed oldest first, one at a time;
// a single commit's failure never stops the batch. Per-commit progress
// lives in the commit store so an interrupted batch resumes from its
// cached state on the next run.
package reindex

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"repolens/internal/gateway/repository/commitstore"
	"repolens/internal/gateway/repository/projectstore"
	"repolens/internal/indexfilter"
	"repolens/internal/repohost"
	"repolens/internal/unidiff"
)

// Indexer is the embedding submission collaborator.
type Indexer interface {
	IndexFiles(ctx context.Context, projectID, ref string, host repohost.Client, paths []string) error
}

// Batch is one reindex request: the commit IDs are unordered on input.
type Batch struct {
	ProjectID  string
	RepoURL    string
	Branch     string
	CommitIDs  []string
	Credential string
}

// Summary reports what a batch run did.
type Summary struct {
	ProjectID string
	Processed int
	Skipped   int
}

// Service runs reindex batches. A per-project lease serializes batches
// for the same project so two triggers cannot interleave writes to the
// same commit rows; a later batch waits for the running one and then
// executes in full. Batches for different projects run independently.
type Service struct {
	projects          projectstore.Store
	commits           commitstore.Store
	newHost           repohost.Factory
	indexer           Indexer
	defaultCredential string

	mu     sync.Mutex
	leases map[string]*sync.Mutex
}

func NewService(
	projects projectstore.Store,
	commits commitstore.Store,
	newHost repohost.Factory,
	indexer Indexer,
	defaultCredential string,
) *Service {
	return &Service{
		projects:          projects,
		commits:           commits,
		newHost:           newHost,
		indexer:           indexer,
		defaultCredential: defaultCredential,
		leases:            make(map[string]*sync.Mutex),
	}
}

// lease returns the mutex guarding one project's commit rows.
func (s *Service) lease(projectID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.leases[projectID]
	if !ok {
		l = &sync.Mutex{}
		s.leases[projectID] = l
	}
	return l
}

// Run executes one batch to completion. It returns an error only for
// failures outside the per-commit loop: unknown project, unusable
// repository URL. Everything inside the loop is logged and absorbed.
func (s *Service) Run(ctx context.Context, batch Batch) (Summary, error) {
	project, err := s.projects.Get(ctx, batch.ProjectID)
	if err != nil {
		return Summary{}, fmt.Errorf("resolve project %s: %w", batch.ProjectID, err)
	}

	repoURL := strings.TrimSpace(batch.RepoURL)
	if repoURL == "" {
		repoURL = project.RepoURL
	}
	branch := strings.TrimSpace(batch.Branch)
	if branch == "" {
		branch = project.Branch
	}
	if branch == "" {
		branch = "main"
	}

	credential := strings.TrimSpace(batch.Credential)
	if credential == "" {
		credential = s.defaultCredential
	}
	host, err := s.newHost(repoURL, credential)
	if err != nil {
		return Summary{}, fmt.Errorf("open repository %s: %w", repoURL, err)
	}

	l := s.lease(batch.ProjectID)
	l.Lock()
	defer l.Unlock()
	return s.runLocked(ctx, batch.ProjectID, branch, host, batch.CommitIDs), nil
}

// runLocked holds the per-project lease for the whole batch.
func (s *Service) runLocked(ctx context.Context, projectID, branch string, host repohost.Client, commitIDs []string) Summary {
	sum := Summary{ProjectID: projectID}

	metas := make([]repohost.CommitMeta, 0, len(commitIDs))
	for _, id := range commitIDs {
		meta, err := host.CommitMeta(ctx, id)
		if err != nil {
			// No row yet means nothing to mark; the commit stays
			// eligible for a later batch.
			log.Printf("reindex %s: commit meta %s: %v", projectID, id, err)
			sum.Skipped++
			continue
		}
		if meta.Hash == "" {
			meta.Hash = id
		}
		metas = append(metas, meta)
	}

	// Oldest first. Later commits may assume earlier ones are already
	// reflected in the index, so the order is part of the contract.
	sort.Slice(metas, func(i, j int) bool {
		if !metas[i].Date.Equal(metas[j].Date) {
			return metas[i].Date.Before(metas[j].Date)
		}
		return metas[i].Hash < metas[j].Hash
	})

	for _, meta := range metas {
		done, err := s.reindexOne(ctx, projectID, branch, host, meta)
		if err != nil {
			log.Printf("reindex %s: commit %s: %v", projectID, meta.Hash, err)
		}
		if done {
			sum.Processed++
		} else {
			sum.Skipped++
		}
	}
	return sum
}

// reindexOne processes a single commit. done reports whether the commit
// reached needsReindex = false; a false return means the commit stays
// marked and a later batch will pick it up again.
func (s *Service) reindexOne(ctx context.Context, projectID, branch string, host repohost.Client, meta repohost.CommitMeta) (bool, error) {
	row, err := s.commits.Upsert(ctx, commitstore.Row{
		ID:           uuid.NewString(),
		ProjectID:    projectID,
		Hash:         meta.Hash,
		Author:       meta.Author,
		CommittedAt:  meta.Date,
		Summary:      meta.Summary,
		NeedsReindex: true,
	})
	if err != nil {
		return false, fmt.Errorf("upsert commit row: %w", err)
	}

	files, err := s.modifiedFiles(ctx, host, row)
	if err != nil {
		return false, fmt.Errorf("%w: %v", repohost.ErrFetch, err)
	}

	eligible := indexfilter.Apply(files)
	if len(eligible) > 0 {
		// Best effort: an indexing failure is logged but the commit is
		// still marked done so it never blocks the ones behind it.
		if err := s.indexer.IndexFiles(ctx, projectID, branch, host, eligible); err != nil {
			log.Printf("reindex %s: index commit %s: %v", projectID, row.Hash, err)
		}
	}

	if err := s.commits.SetNeedsReindex(ctx, row.ID, false); err != nil {
		return false, fmt.Errorf("mark commit done: %w", err)
	}
	return true, nil
}

// modifiedFiles returns the commit's file list, filling the cache from
// the diff on first use.
func (s *Service) modifiedFiles(ctx context.Context, host repohost.Client, row commitstore.Row) ([]string, error) {
	if row.FilesCached {
		return row.ModifiedFiles, nil
	}

	diff, err := host.CommitDiff(ctx, row.Hash)
	if err != nil {
		return nil, fmt.Errorf("fetch diff: %w", err)
	}
	files := unidiff.ExtractPaths(diff)
	if err := s.commits.SetModifiedFiles(ctx, row.ID, files); err != nil {
		return nil, fmt.Errorf("cache modified files: %w", err)
	}
	return files, nil
}
