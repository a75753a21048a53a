package reindex

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"repolens/internal/gateway/repository/commitstore"
	"repolens/internal/gateway/repository/projectstore"
	"repolens/internal/repohost"
)

type fakeHost struct {
	metas     map[string]repohost.CommitMeta
	diffs     map[string]string
	failDiff  map[string]bool
	failMeta  map[string]bool
	diffCalls []string
}

func (f *fakeHost) Validate(ctx context.Context) (repohost.RepoInfo, error) {
	return repohost.RepoInfo{}, nil
}
func (f *fakeHost) ListFiles(ctx context.Context, branch string) ([]string, error) {
	return nil, nil
}
func (f *fakeHost) CommitDiff(ctx context.Context, sha string) (string, error) {
	f.diffCalls = append(f.diffCalls, sha)
	if f.failDiff[sha] {
		return "", fmt.Errorf("%w: rate limited", repohost.ErrFetch)
	}
	return f.diffs[sha], nil
}
func (f *fakeHost) CommitMeta(ctx context.Context, sha string) (repohost.CommitMeta, error) {
	if f.failMeta[sha] {
		return repohost.CommitMeta{}, fmt.Errorf("%w: not found", repohost.ErrFetch)
	}
	m, ok := f.metas[sha]
	if !ok {
		m = repohost.CommitMeta{Hash: sha}
	}
	return m, nil
}
func (f *fakeHost) FileContent(ctx context.Context, ref, path string) (string, error) {
	return "package x", nil
}

type recordingIndexer struct {
	batches [][]string
	err     error
}

func (r *recordingIndexer) IndexFiles(ctx context.Context, projectID, ref string, host repohost.Client, paths []string) error {
	r.batches = append(r.batches, paths)
	return r.err
}

func diffFor(paths ...string) string {
	out := ""
	for _, p := range paths {
		out += fmt.Sprintf("diff --git a/%s b/%s\n--- a/%s\n+++ b/%s\n", p, p, p, p)
	}
	return out
}

func metaAt(hash string, offset int) repohost.CommitMeta {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return repohost.CommitMeta{
		Hash:   hash,
		Author: "dev",
		Date:   base.Add(time.Duration(offset) * time.Hour),
	}
}

func newTestService(host *fakeHost, idx Indexer) (*Service, *commitstore.MemoryStore, *projectstore.MemoryStore) {
	commits := commitstore.NewMemoryStore()
	projects := projectstore.NewMemoryStore()
	projects.SeedUser("user-1", 100)
	if _, err := projects.CreateWithCharge(context.Background(), projectstore.CreateInput{
		ProjectID:    "proj-1",
		MembershipID: "m-1",
		Name:         "Widgets",
		RepoURL:      "https://github.com/acme/widgets",
		Branch:       "main",
		UserID:       "user-1",
	}); err != nil {
		panic(err)
	}
	factory := func(repoURL, credential string) (repohost.Client, error) { return host, nil }
	return NewService(projects, commits, factory, idx, ""), commits, projects
}

func TestRunProcessesChronologicallyOldestFirst(t *testing.T) {
	host := &fakeHost{
		metas: map[string]repohost.CommitMeta{
			"c-new": metaAt("c-new", 3),
			"c-old": metaAt("c-old", 1),
			"c-mid": metaAt("c-mid", 2),
		},
		diffs: map[string]string{
			"c-new": diffFor("new.go"),
			"c-old": diffFor("old.go"),
			"c-mid": diffFor("mid.go"),
		},
	}
	idx := &recordingIndexer{}
	svc, _, _ := newTestService(host, idx)

	sum, err := svc.Run(context.Background(), Batch{
		ProjectID: "proj-1",
		CommitIDs: []string{"c-new", "c-old", "c-mid"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Processed != 3 {
		t.Fatalf("processed = %d, want 3", sum.Processed)
	}

	want := []string{"old.go", "mid.go", "new.go"}
	if len(idx.batches) != 3 {
		t.Fatalf("index batches = %d, want 3", len(idx.batches))
	}
	for i, batch := range idx.batches {
		if len(batch) != 1 || batch[0] != want[i] {
			t.Fatalf("batch %d = %v, want [%s]", i, batch, want[i])
		}
	}
}

func TestRunDiffFailureSkipsCommitButNotBatch(t *testing.T) {
	host := &fakeHost{
		metas: map[string]repohost.CommitMeta{
			"c1": metaAt("c1", 1),
			"c2": metaAt("c2", 2),
			"c3": metaAt("c3", 3),
		},
		diffs: map[string]string{
			"c1": diffFor("a.go"),
			"c3": diffFor("c.go"),
		},
		failDiff: map[string]bool{"c2": true},
	}
	idx := &recordingIndexer{}
	svc, commits, _ := newTestService(host, idx)

	sum, err := svc.Run(context.Background(), Batch{ProjectID: "proj-1", CommitIDs: []string{"c1", "c2", "c3"}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Processed != 2 || sum.Skipped != 1 {
		t.Fatalf("summary = %+v, want 2 processed, 1 skipped", sum)
	}

	// c3 was still indexed after c2's failure.
	if len(idx.batches) != 2 {
		t.Fatalf("index batches = %d, want 2", len(idx.batches))
	}

	// The failed commit stays marked for a later retry.
	row, err := commits.GetByHash(context.Background(), "proj-1", "c2")
	if err != nil {
		t.Fatalf("commit row c2: %v", err)
	}
	if !row.NeedsReindex {
		t.Fatalf("c2 needsReindex = false, want true after diff failure")
	}
	if row.FilesCached {
		t.Fatalf("c2 must not cache a file list it never fetched")
	}

	done, err := commits.GetByHash(context.Background(), "proj-1", "c3")
	if err != nil {
		t.Fatalf("commit row c3: %v", err)
	}
	if done.NeedsReindex {
		t.Fatalf("c3 needsReindex = true, want done")
	}
}

func TestRunUsesCachedFileListWithoutRefetch(t *testing.T) {
	host := &fakeHost{
		metas: map[string]repohost.CommitMeta{"c1": metaAt("c1", 1)},
		// A diff fetch would fail; the cache must make it unnecessary.
		failDiff: map[string]bool{"c1": true},
	}
	idx := &recordingIndexer{}
	svc, commits, _ := newTestService(host, idx)

	seeded, err := commits.Upsert(context.Background(), commitstore.Row{
		ID:           "row-c1",
		ProjectID:    "proj-1",
		Hash:         "c1",
		CommittedAt:  metaAt("c1", 1).Date,
		NeedsReindex: true,
	})
	if err != nil {
		t.Fatalf("seed commit: %v", err)
	}
	if err := commits.SetModifiedFiles(context.Background(), seeded.ID, []string{"cached.go"}); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	sum, err := svc.Run(context.Background(), Batch{ProjectID: "proj-1", CommitIDs: []string{"c1"}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Processed != 1 {
		t.Fatalf("processed = %d, want 1", sum.Processed)
	}
	if len(host.diffCalls) != 0 {
		t.Fatalf("diff fetched %v, want cache hit", host.diffCalls)
	}
	if len(idx.batches) != 1 || idx.batches[0][0] != "cached.go" {
		t.Fatalf("index batches = %v, want [[cached.go]]", idx.batches)
	}
}

func TestRunReindexIsIdempotentViaCache(t *testing.T) {
	host := &fakeHost{
		metas: map[string]repohost.CommitMeta{"c1": metaAt("c1", 1)},
		diffs: map[string]string{"c1": diffFor("a.go", "b.go")},
	}
	idx := &recordingIndexer{}
	svc, _, _ := newTestService(host, idx)

	for i := 0; i < 2; i++ {
		if _, err := svc.Run(context.Background(), Batch{ProjectID: "proj-1", CommitIDs: []string{"c1"}}); err != nil {
			t.Fatalf("Run() #%d error = %v", i+1, err)
		}
	}

	if len(host.diffCalls) != 1 {
		t.Fatalf("diff fetched %d times, want once", len(host.diffCalls))
	}
	if len(idx.batches) != 2 {
		t.Fatalf("index batches = %d, want 2", len(idx.batches))
	}
	if len(idx.batches[0]) != len(idx.batches[1]) {
		t.Fatalf("second run produced a different file set: %v vs %v", idx.batches[0], idx.batches[1])
	}
	for i := range idx.batches[0] {
		if idx.batches[0][i] != idx.batches[1][i] {
			t.Fatalf("second run produced a different file set: %v vs %v", idx.batches[0], idx.batches[1])
		}
	}
}

func TestRunZeroEligibleFilesIsSuccess(t *testing.T) {
	host := &fakeHost{
		metas: map[string]repohost.CommitMeta{"c1": metaAt("c1", 1)},
		diffs: map[string]string{"c1": diffFor("logo.png", "package-lock.json")},
	}
	idx := &recordingIndexer{}
	svc, commits, _ := newTestService(host, idx)

	sum, err := svc.Run(context.Background(), Batch{ProjectID: "proj-1", CommitIDs: []string{"c1"}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Processed != 1 {
		t.Fatalf("processed = %d, want 1", sum.Processed)
	}
	if len(idx.batches) != 0 {
		t.Fatalf("indexer called with %v, want no calls", idx.batches)
	}
	row, _ := commits.GetByHash(context.Background(), "proj-1", "c1")
	if row.NeedsReindex {
		t.Fatalf("needsReindex = true, want done when nothing was eligible")
	}
}

func TestRunIndexingErrorStillMarksCommitDone(t *testing.T) {
	host := &fakeHost{
		metas: map[string]repohost.CommitMeta{"c1": metaAt("c1", 1)},
		diffs: map[string]string{"c1": diffFor("a.go")},
	}
	idx := &recordingIndexer{err: errors.New("embedder unavailable")}
	svc, commits, _ := newTestService(host, idx)

	sum, err := svc.Run(context.Background(), Batch{ProjectID: "proj-1", CommitIDs: []string{"c1"}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Processed != 1 {
		t.Fatalf("processed = %d, want 1", sum.Processed)
	}
	row, _ := commits.GetByHash(context.Background(), "proj-1", "c1")
	if row.NeedsReindex {
		t.Fatalf("needsReindex = true, want done despite the indexing error")
	}
}

func TestRunCommitMetaFailureIsSkipped(t *testing.T) {
	host := &fakeHost{
		metas:    map[string]repohost.CommitMeta{"c2": metaAt("c2", 2)},
		diffs:    map[string]string{"c2": diffFor("b.go")},
		failMeta: map[string]bool{"c1": true},
	}
	idx := &recordingIndexer{}
	svc, _, _ := newTestService(host, idx)

	sum, err := svc.Run(context.Background(), Batch{ProjectID: "proj-1", CommitIDs: []string{"c1", "c2"}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Processed != 1 || sum.Skipped != 1 {
		t.Fatalf("summary = %+v, want 1 processed, 1 skipped", sum)
	}
}

// gatedIndexer blocks inside the first IndexFiles call until released,
// holding the project lease open for the duration.
type gatedIndexer struct {
	mu      sync.Mutex
	batches [][]string
	first   bool
	firstIn chan struct{}
	release chan struct{}
}

func (g *gatedIndexer) IndexFiles(ctx context.Context, projectID, ref string, host repohost.Client, paths []string) error {
	g.mu.Lock()
	isFirst := !g.first
	g.first = true
	g.batches = append(g.batches, paths)
	g.mu.Unlock()
	if isFirst {
		close(g.firstIn)
		<-g.release
	}
	return nil
}

func TestRunConcurrentBatchesForSameProjectBothExecute(t *testing.T) {
	host := &fakeHost{
		metas: map[string]repohost.CommitMeta{
			"c1": metaAt("c1", 1),
			"c2": metaAt("c2", 2),
		},
		diffs: map[string]string{
			"c1": diffFor("a.go"),
			"c2": diffFor("b.go"),
		},
	}
	idx := &gatedIndexer{firstIn: make(chan struct{}), release: make(chan struct{})}
	svc, commits, _ := newTestService(host, idx)

	errs := make(chan error, 2)
	go func() {
		_, err := svc.Run(context.Background(), Batch{ProjectID: "proj-1", CommitIDs: []string{"c1"}})
		errs <- err
	}()
	<-idx.firstIn

	// The first batch now holds the lease inside the indexer; a second
	// batch with a different commit arrives while it is running.
	go func() {
		_, err := svc.Run(context.Background(), Batch{ProjectID: "proj-1", CommitIDs: []string{"c2"}})
		errs <- err
	}()
	time.Sleep(50 * time.Millisecond)
	close(idx.release)

	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	}

	// The later batch must have waited for the lease and then run, not
	// been coalesced into the first.
	row, err := commits.GetByHash(context.Background(), "proj-1", "c2")
	if err != nil {
		t.Fatalf("commit row c2: %v", err)
	}
	if row.NeedsReindex {
		t.Fatalf("c2 needsReindex = true, want done after the second batch ran")
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	if len(idx.batches) != 2 {
		t.Fatalf("index batches = %d, want both batches executed", len(idx.batches))
	}
}

func TestRunUnknownProjectFails(t *testing.T) {
	svc, _, _ := newTestService(&fakeHost{}, &recordingIndexer{})

	_, err := svc.Run(context.Background(), Batch{ProjectID: "no-such", CommitIDs: []string{"c1"}})
	if !errors.Is(err, projectstore.ErrNotFound) {
		t.Fatalf("Run() error = %v, want ErrNotFound", err)
	}
}
