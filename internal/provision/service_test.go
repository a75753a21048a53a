package provision

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"repolens/internal/credit"
	"repolens/internal/gateway/repository/projectstore"
	"repolens/internal/gateway/repository/requeststore"
	"repolens/internal/repohost"
)

type stubHost struct {
	info        repohost.RepoInfo
	validateErr error
	files       []string
	listErr     error
}

func (h *stubHost) Validate(ctx context.Context) (repohost.RepoInfo, error) {
	return h.info, h.validateErr
}
func (h *stubHost) ListFiles(ctx context.Context, branch string) ([]string, error) {
	return h.files, h.listErr
}
func (h *stubHost) CommitDiff(ctx context.Context, sha string) (string, error) { return "", nil }
func (h *stubHost) CommitMeta(ctx context.Context, sha string) (repohost.CommitMeta, error) {
	return repohost.CommitMeta{}, nil
}
func (h *stubHost) FileContent(ctx context.Context, ref, path string) (string, error) {
	return "content of " + path, nil
}

type stubIndexer struct {
	err   error
	calls int
	paths []string
}

func (i *stubIndexer) IndexFiles(ctx context.Context, projectID, ref string, host repohost.Client, paths []string) error {
	i.calls++
	i.paths = paths
	return i.err
}

func hostFactory(h repohost.Client, err error) repohost.Factory {
	return func(repoURL, credential string) (repohost.Client, error) {
		if err != nil {
			return nil, err
		}
		return h, nil
	}
}

func newTestService(h repohost.Client, idx *stubIndexer, balance int) (*Service, *requeststore.MemoryStore, *projectstore.MemoryStore) {
	requests := requeststore.NewMemoryStore()
	projects := projectstore.NewMemoryStore()
	projects.SeedUser("user-1", balance)
	svc := NewService(requests, projects, hostFactory(h, nil), idx, credit.Pricing{CreditsPerFile: 1}, "")
	svc.spawn = func(fn func()) { fn() }
	return svc, requests, projects
}

func baseRequest() Request {
	return Request{
		RequestID: "req-1",
		Name:      "Widgets",
		RepoURL:   "https://github.com/acme/widgets",
		Branch:    "main",
		UserID:    "user-1",
	}
}

func TestProvisionHappyPath(t *testing.T) {
	host := &stubHost{files: []string{"a.go", "b.go", "logo.png"}}
	idx := &stubIndexer{}
	svc, requests, projects := newTestService(host, idx, 10)

	res, err := svc.Provision(context.Background(), baseRequest())
	if err != nil {
		t.Fatalf("Provision() error = %v", err)
	}
	if res.Status != StatusIndexing {
		t.Fatalf("Provision() status = %s, want %s", res.Status, StatusIndexing)
	}
	if res.FileCount != 2 {
		t.Fatalf("Provision() fileCount = %d, want 2 (png excluded)", res.FileCount)
	}
	if res.ProjectID == "" {
		t.Fatalf("Provision() returned empty project id")
	}

	if _, err := projects.Get(context.Background(), res.ProjectID); err != nil {
		t.Fatalf("project not created: %v", err)
	}
	bal, _ := projects.Balance(context.Background(), "user-1")
	if bal != 8 {
		t.Fatalf("balance = %d, want 8", bal)
	}

	rec, err := requests.Get(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("request record: %v", err)
	}
	if rec.Status != string(StatusCompleted) {
		t.Fatalf("final status = %s, want %s", rec.Status, StatusCompleted)
	}
	if rec.ErrorNote != "" {
		t.Fatalf("error note = %q, want empty", rec.ErrorNote)
	}
	if idx.calls != 1 {
		t.Fatalf("indexer calls = %d, want 1", idx.calls)
	}
	for _, p := range idx.paths {
		if p == "logo.png" {
			t.Fatalf("ineligible file submitted for indexing")
		}
	}
}

func TestProvisionInsufficientCredits(t *testing.T) {
	files := make([]string, 120)
	for i := range files {
		files[i] = fmt.Sprintf("src/f%03d.go", i)
	}
	host := &stubHost{files: files}
	idx := &stubIndexer{}
	svc, requests, projects := newTestService(host, idx, 100)

	_, err := svc.Provision(context.Background(), baseRequest())
	if !errors.Is(err, credit.ErrInsufficientCredits) {
		t.Fatalf("Provision() error = %v, want ErrInsufficientCredits", err)
	}

	bal, _ := projects.Balance(context.Background(), "user-1")
	if bal != 100 {
		t.Fatalf("balance = %d, want unchanged 100", bal)
	}

	rec, _ := requests.Get(context.Background(), "req-1")
	if rec.Status != string(StatusError) {
		t.Fatalf("status = %s, want %s", rec.Status, StatusError)
	}
	if rec.FileCount != 120 {
		t.Fatalf("file count = %d, want 120 persisted before the credit check", rec.FileCount)
	}
	if idx.calls != 0 {
		t.Fatalf("indexer must not run after a rejected charge")
	}
}

func TestProvisionInvalidRepository(t *testing.T) {
	host := &stubHost{validateErr: fmt.Errorf("%w: acme/missing", repohost.ErrInvalidRepository)}
	svc, requests, projects := newTestService(host, &stubIndexer{}, 50)

	_, err := svc.Provision(context.Background(), baseRequest())
	if !errors.Is(err, repohost.ErrInvalidRepository) {
		t.Fatalf("Provision() error = %v, want ErrInvalidRepository", err)
	}
	rec, _ := requests.Get(context.Background(), "req-1")
	if rec.Status != string(StatusError) {
		t.Fatalf("status = %s, want ERROR", rec.Status)
	}
	if bal, _ := projects.Balance(context.Background(), "user-1"); bal != 50 {
		t.Fatalf("balance = %d, want unchanged 50", bal)
	}
}

func TestProvisionAuthorizationRequired(t *testing.T) {
	host := &stubHost{validateErr: fmt.Errorf("%w: acme/secret", repohost.ErrAuthorizationRequired)}
	svc, requests, _ := newTestService(host, &stubIndexer{}, 50)

	_, err := svc.Provision(context.Background(), baseRequest())
	if !errors.Is(err, repohost.ErrAuthorizationRequired) {
		t.Fatalf("Provision() error = %v, want ErrAuthorizationRequired", err)
	}
	rec, _ := requests.Get(context.Background(), "req-1")
	if rec.Status != string(StatusError) {
		t.Fatalf("status = %s, want ERROR", rec.Status)
	}
}

func TestProvisionChargeRollsBackOnCreateFailure(t *testing.T) {
	host := &stubHost{files: []string{"a.go", "b.go"}}
	idx := &stubIndexer{}
	requests := requeststore.NewMemoryStore()
	projects := projectstore.NewMemoryStore()
	projects.SeedUser("user-1", 10)
	projects.CreateHook = func() error { return errors.New("db gone away") }

	svc := NewService(requests, projects, hostFactory(host, nil), idx, credit.Pricing{CreditsPerFile: 1}, "")
	svc.spawn = func(fn func()) { fn() }

	res, err := svc.Provision(context.Background(), baseRequest())
	if err == nil {
		t.Fatalf("Provision() = %+v, want error", res)
	}

	// The debit must have been rolled back and no project created.
	bal, _ := projects.Balance(context.Background(), "user-1")
	if bal != 10 {
		t.Fatalf("balance = %d, want restored 10", bal)
	}
	rec, _ := requests.Get(context.Background(), "req-1")
	if rec.Status != string(StatusError) {
		t.Fatalf("status = %s, want ERROR", rec.Status)
	}
	if idx.calls != 0 {
		t.Fatalf("indexer must not run after a failed create")
	}
}

func TestProvisionIndexingFailureStillCompletes(t *testing.T) {
	host := &stubHost{files: []string{"a.go"}}
	idx := &stubIndexer{err: errors.New("embedder unavailable")}
	svc, requests, projects := newTestService(host, idx, 10)

	res, err := svc.Provision(context.Background(), baseRequest())
	if err != nil {
		t.Fatalf("Provision() error = %v; indexing failure is not provisioning failure", err)
	}

	rec, _ := requests.Get(context.Background(), "req-1")
	if rec.Status != string(StatusCompleted) {
		t.Fatalf("status = %s, want COMPLETED", rec.Status)
	}
	if !strings.Contains(rec.ErrorNote, "embedder unavailable") {
		t.Fatalf("error note = %q, want indexing note", rec.ErrorNote)
	}
	// The project is kept: already paid for and usable.
	if _, err := projects.Get(context.Background(), res.ProjectID); err != nil {
		t.Fatalf("project missing after indexing failure: %v", err)
	}
}

func TestProvisionDefaultsBranchFromRepoInfo(t *testing.T) {
	host := &stubHost{info: repohost.RepoInfo{DefaultBranch: "trunk"}, files: []string{"a.go"}}
	svc, requests, _ := newTestService(host, &stubIndexer{}, 10)

	req := baseRequest()
	req.Branch = ""
	if _, err := svc.Provision(context.Background(), req); err != nil {
		t.Fatalf("Provision() error = %v", err)
	}
	rec, _ := requests.Get(context.Background(), "req-1")
	if rec.Status != string(StatusCompleted) {
		t.Fatalf("status = %s, want COMPLETED", rec.Status)
	}
}
