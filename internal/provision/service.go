// Package provision implements project provisioning: validate the
// repository, charge credits, create the Project atomically, then run
// the full initial index in a detached task. The caller-visible result
// is available as soon as the atomic charge-and-create commits; the
// indexing outcome is observable only through the persisted request
// status.
package provision

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"repolens/internal/credit"
	"repolens/internal/gateway/repository/projectstore"
	"repolens/internal/gateway/repository/requeststore"
	"repolens/internal/indexfilter"
	"repolens/internal/repohost"
)

// Indexer is the full-index collaborator.
type Indexer interface {
	IndexFiles(ctx context.Context, projectID, ref string, host repohost.Client, paths []string) error
}

// Request is one provisioning attempt.
type Request struct {
	RequestID  string
	Name       string
	RepoURL    string
	Branch     string
	UserID     string
	Credential string
}

// Result is the synchronous acknowledgment: the request is INDEXING and
// the Project exists and has been paid for.
type Result struct {
	RequestID string
	ProjectID string
	Status    Status
	FileCount int
}

// Service drives the provisioning workflow.
type Service struct {
	requests          requeststore.Store
	projects          projectstore.Store
	newHost           repohost.Factory
	indexer           Indexer
	pricing           credit.Pricing
	defaultCredential string

	// spawn runs the post-response indexing phase. Tests replace it to
	// run inline.
	spawn func(func())
}

func NewService(
	requests requeststore.Store,
	projects projectstore.Store,
	newHost repohost.Factory,
	indexer Indexer,
	pricing credit.Pricing,
	defaultCredential string,
) *Service {
	return &Service{
		requests:          requests,
		projects:          projects,
		newHost:           newHost,
		indexer:           indexer,
		pricing:           pricing,
		defaultCredential: defaultCredential,
		spawn:             func(fn func()) { go fn() },
	}
}

// Provision runs the synchronous phase (steps up to and including the
// atomic charge-and-create) and schedules the full index before
// returning. On error the request record is left in ERROR with the
// causing message; on success it is INDEXING and will reach COMPLETED
// when the detached index task finishes, whatever its outcome.
func (s *Service) Provision(ctx context.Context, req Request) (Result, error) {
	rec := requeststore.Record{
		ID:      req.RequestID,
		UserID:  req.UserID,
		Name:    req.Name,
		RepoURL: req.RepoURL,
		Branch:  req.Branch,
		Status:  string(StatusPending),
	}
	if err := s.requests.Create(ctx, rec); err != nil {
		return Result{}, fmt.Errorf("create request record: %w", err)
	}

	if err := s.transition(ctx, req.RequestID, StatusCreatingProject, nil); err != nil {
		return Result{}, err
	}

	credential := strings.TrimSpace(req.Credential)
	if credential == "" {
		credential = s.defaultCredential
	}

	host, err := s.newHost(req.RepoURL, credential)
	if err != nil {
		return Result{}, s.fail(ctx, req.RequestID, err)
	}

	info, err := host.Validate(ctx)
	if err != nil {
		return Result{}, s.fail(ctx, req.RequestID, err)
	}

	branch := strings.TrimSpace(req.Branch)
	if branch == "" {
		branch = info.DefaultBranch
	}
	if branch == "" {
		branch = "main"
	}

	files, err := host.ListFiles(ctx, branch)
	if err != nil {
		return Result{}, s.fail(ctx, req.RequestID, err)
	}
	eligible := indexfilter.Apply(files)

	// The charge amount is persisted before the credit check so a later
	// failure still leaves an auditable file count on the request.
	if _, err := s.requests.Update(ctx, req.RequestID, func(r *requeststore.Record) {
		r.FileCount = len(eligible)
	}); err != nil {
		return Result{}, s.fail(ctx, req.RequestID, err)
	}

	charge := s.pricing.Cost(len(eligible))
	balance, err := s.projects.Balance(ctx, req.UserID)
	if err != nil {
		return Result{}, s.fail(ctx, req.RequestID, err)
	}
	if balance < charge {
		return Result{}, s.fail(ctx, req.RequestID,
			fmt.Errorf("%w: balance %d, need %d", credit.ErrInsufficientCredits, balance, charge))
	}

	projectID := "project-" + uuid.NewString()
	project, err := s.projects.CreateWithCharge(ctx, projectstore.CreateInput{
		ProjectID:    projectID,
		MembershipID: uuid.NewString(),
		Name:         req.Name,
		RepoURL:      req.RepoURL,
		Branch:       branch,
		UserID:       req.UserID,
		Charge:       charge,
	})
	if err != nil {
		return Result{}, s.fail(ctx, req.RequestID, err)
	}

	if err := s.transition(ctx, req.RequestID, StatusIndexing, func(r *requeststore.Record) {
		r.ProjectID = project.ID
	}); err != nil {
		return Result{}, err
	}

	// Respond first, index after. The detached task must not inherit
	// the request's cancellation.
	bgCtx := context.WithoutCancel(ctx)
	s.spawn(func() {
		s.runFullIndex(bgCtx, req.RequestID, project.ID, branch, host, eligible)
	})

	return Result{
		RequestID: req.RequestID,
		ProjectID: project.ID,
		Status:    StatusIndexing,
		FileCount: len(eligible),
	}, nil
}

// runFullIndex is the post-response phase. An indexing failure is not a
// provisioning failure: the Project is kept and the request completes
// with a note.
func (s *Service) runFullIndex(ctx context.Context, requestID, projectID, branch string, host repohost.Client, paths []string) {
	note := ""
	if err := s.indexer.IndexFiles(ctx, projectID, branch, host, paths); err != nil {
		log.Printf("full index %s: %v", projectID, err)
		note = fmt.Sprintf("indexing incomplete: %v", err)
	}
	if err := s.transition(ctx, requestID, StatusCompleted, func(r *requeststore.Record) {
		r.ErrorNote = note
	}); err != nil {
		log.Printf("complete request %s: %v", requestID, err)
	}
}

// fail marks the request ERROR with the causing message and returns err
// unchanged for the caller.
func (s *Service) fail(ctx context.Context, requestID string, err error) error {
	if _, uerr := s.requests.Update(ctx, requestID, func(r *requeststore.Record) {
		if CanTransition(Status(r.Status), StatusError) {
			r.Status = string(StatusError)
			r.ErrorNote = err.Error()
		}
	}); uerr != nil {
		log.Printf("mark request %s failed: %v", requestID, uerr)
	}
	return err
}

func (s *Service) transition(ctx context.Context, requestID string, to Status, extra func(*requeststore.Record)) error {
	var illegal error
	_, err := s.requests.Update(ctx, requestID, func(r *requeststore.Record) {
		if !CanTransition(Status(r.Status), to) {
			illegal = fmt.Errorf("illegal status transition %s -> %s", r.Status, to)
			return
		}
		r.Status = string(to)
		if extra != nil {
			extra(r)
		}
	})
	if err != nil {
		return err
	}
	return illegal
}
