package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"repolens/internal/credit"
	"repolens/internal/gateway/repository/requeststore"
	"repolens/internal/provision"
	"repolens/internal/reindex"
	"repolens/internal/repohost"
)

type stubProvisioner struct {
	res provision.Result
	err error
	got provision.Request
}

func (p *stubProvisioner) Provision(ctx context.Context, req provision.Request) (provision.Result, error) {
	p.got = req
	if p.err != nil {
		return provision.Result{}, p.err
	}
	res := p.res
	res.RequestID = req.RequestID
	return res, nil
}

type stubReindexer struct {
	got   reindex.Batch
	calls int
	err   error
}

func (r *stubReindexer) Run(ctx context.Context, batch reindex.Batch) (reindex.Summary, error) {
	r.got = batch
	r.calls++
	return reindex.Summary{ProjectID: batch.ProjectID, Processed: len(batch.CommitIDs)}, r.err
}

func newTestMux(svc *Service) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/projects", svc.HandleCreateProject)
	mux.HandleFunc("POST /api/reindex", svc.HandleReindex)
	mux.HandleFunc("GET /api/requests/{id}", svc.HandleGetRequest)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestCreateProjectReturnsCreatedProject(t *testing.T) {
	prov := &stubProvisioner{res: provision.Result{
		ProjectID: "project-abc",
		Status:    provision.StatusIndexing,
		FileCount: 12,
	}}
	svc := NewService(prov, &stubReindexer{}, requeststore.NewMemoryStore())
	mux := newTestMux(svc)

	rr := doJSON(t, mux, http.MethodPost, "/api/projects",
		`{"userId":"u1","name":"Widgets","repositoryUrl":"https://github.com/acme/widgets"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rr.Code, rr.Body)
	}

	var out createProjectResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.ProjectID != "project-abc" || out.Status != "INDEXING" || out.FileCount != 12 {
		t.Fatalf("response = %+v", out)
	}
	if out.RequestID == "" {
		t.Fatalf("response missing requestId")
	}
	if prov.got.RepoURL != "https://github.com/acme/widgets" {
		t.Fatalf("provisioner got %+v", prov.got)
	}
}

func TestCreateProjectHonorsCallerRequestID(t *testing.T) {
	prov := &stubProvisioner{res: provision.Result{
		ProjectID: "project-abc",
		Status:    provision.StatusIndexing,
		FileCount: 3,
	}}
	svc := NewService(prov, &stubReindexer{}, requeststore.NewMemoryStore())
	mux := newTestMux(svc)

	rr := doJSON(t, mux, http.MethodPost, "/api/projects",
		`{"requestId":"req-42","userId":"u1","name":"Widgets","repositoryUrl":"https://github.com/acme/widgets","branch":"main"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rr.Code, rr.Body)
	}

	var out createProjectResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.RequestID != "req-42" {
		t.Fatalf("requestId = %q, want the caller-supplied req-42", out.RequestID)
	}
	if prov.got.RequestID != "req-42" {
		t.Fatalf("provisioner got request id %q, want req-42", prov.got.RequestID)
	}
}

func TestCreateProjectValidatesRequiredFields(t *testing.T) {
	svc := NewService(&stubProvisioner{}, &stubReindexer{}, requeststore.NewMemoryStore())
	mux := newTestMux(svc)

	rr := doJSON(t, mux, http.MethodPost, "/api/projects", `{"name":"Widgets"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}

	var out errorBody
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := map[string]bool{"userId": true, "repositoryUrl": true}
	if len(out.Fields) != 2 || !want[out.Fields[0]] || !want[out.Fields[1]] {
		t.Fatalf("fields = %v, want userId and repositoryUrl", out.Fields)
	}
}

func TestCreateProjectErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"insufficient credits", fmt.Errorf("%w: balance 100, need 120", credit.ErrInsufficientCredits), http.StatusPaymentRequired},
		{"authorization required", fmt.Errorf("%w: acme/secret", repohost.ErrAuthorizationRequired), http.StatusUnauthorized},
		{"invalid repository", fmt.Errorf("%w: not-a-url", repohost.ErrInvalidRepository), http.StatusBadRequest},
		{"internal", fmt.Errorf("db gone away"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(&stubProvisioner{err: tc.err}, &stubReindexer{}, requeststore.NewMemoryStore())
			rr := doJSON(t, newTestMux(svc), http.MethodPost, "/api/projects",
				`{"userId":"u1","name":"Widgets","repositoryUrl":"https://github.com/acme/widgets"}`)
			if rr.Code != tc.code {
				t.Fatalf("status = %d, want %d; body %s", rr.Code, tc.code, rr.Body)
			}
		})
	}
}

func TestReindexAcceptsAndRunsDetached(t *testing.T) {
	re := &stubReindexer{}
	svc := NewService(&stubProvisioner{}, re, requeststore.NewMemoryStore())
	svc.spawn = func(fn func()) { fn() }
	mux := newTestMux(svc)

	rr := doJSON(t, mux, http.MethodPost, "/api/reindex",
		`{"projectId":"project-abc","commitIds":["c1","c2","c3"]}`)
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202; body %s", rr.Code, rr.Body)
	}

	var out reindexResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.ProjectID != "project-abc" || out.CommitCount != 3 {
		t.Fatalf("response = %+v", out)
	}
	if re.calls != 1 {
		t.Fatalf("reindexer calls = %d, want 1", re.calls)
	}
	if len(re.got.CommitIDs) != 3 {
		t.Fatalf("reindexer got %+v", re.got)
	}
}

func TestReindexValidatesRequiredFields(t *testing.T) {
	re := &stubReindexer{}
	svc := NewService(&stubProvisioner{}, re, requeststore.NewMemoryStore())
	svc.spawn = func(fn func()) { fn() }

	rr := doJSON(t, newTestMux(svc), http.MethodPost, "/api/reindex", `{"projectId":"project-abc"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if re.calls != 0 {
		t.Fatalf("reindexer must not run on invalid input")
	}
}

func TestGetRequestSnapshot(t *testing.T) {
	requests := requeststore.NewMemoryStore()
	if err := requests.Create(context.Background(), requeststore.Record{
		ID:        "req-1",
		UserID:    "u1",
		Status:    string(provision.StatusIndexing),
		FileCount: 7,
		ProjectID: "project-abc",
	}); err != nil {
		t.Fatalf("seed request: %v", err)
	}
	svc := NewService(&stubProvisioner{}, &stubReindexer{}, requests)
	mux := newTestMux(svc)

	rr := doJSON(t, mux, http.MethodGet, "/api/requests/req-1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rr.Code, rr.Body)
	}
	var out requestStatusResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Status != "INDEXING" || out.ProjectID != "project-abc" || out.FileCount != 7 {
		t.Fatalf("response = %+v", out)
	}

	rr = doJSON(t, mux, http.MethodGet, "/api/requests/no-such", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}
