// Package projectstore persists Project records and owns the atomic
// charge-and-create operation: debiting the user's credit balance and
// creating the Project plus its owner membership must commit or roll
// back as one unit.
package projectstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"repolens/internal/credit"
)

// ErrNotFound is returned when no project exists for an id.
var ErrNotFound = errors.New("projectstore: not found")

// Project is the stored project record.
type Project struct {
	ID        string
	Name      string
	RepoURL   string
	Branch    string
	CreatedAt time.Time
}

// CreateInput carries everything the atomic create needs.
type CreateInput struct {
	ProjectID    string
	MembershipID string
	Name         string
	RepoURL      string
	Branch       string
	UserID       string
	Charge       int
}

// Store is the persistence boundary for projects.
type Store interface {
	Get(ctx context.Context, id string) (Project, error)
	Balance(ctx context.Context, userID string) (int, error)
	// CreateWithCharge atomically debits the user and creates the
	// Project and its owner membership. On any failure nothing is
	// visible: no project, no membership, no debit.
	CreateWithCharge(ctx context.Context, in CreateInput) (Project, error)
}

// MemoryStore keeps projects and balances in memory. CreateHook, when
// set, runs between the debit and the insert so tests can verify
// rollback behavior.
type MemoryStore struct {
	mu          sync.Mutex
	projects    map[string]Project
	memberships map[string]string
	balances    map[string]int

	CreateHook func() error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		projects:    make(map[string]Project),
		memberships: make(map[string]string),
		balances:    make(map[string]int),
	}
}

// SeedUser registers a user with an initial balance.
func (m *MemoryStore) SeedUser(userID string, balance int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[userID] = balance
}

func (m *MemoryStore) Get(ctx context.Context, id string) (Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return Project{}, ErrNotFound
	}
	return p, nil
}

func (m *MemoryStore) Balance(ctx context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bal, ok := m.balances[userID]
	if !ok {
		return 0, fmt.Errorf("projectstore: unknown user %s", userID)
	}
	return bal, nil
}

func (m *MemoryStore) CreateWithCharge(ctx context.Context, in CreateInput) (Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bal, ok := m.balances[in.UserID]
	if !ok {
		return Project{}, fmt.Errorf("projectstore: unknown user %s", in.UserID)
	}
	if bal < in.Charge {
		return Project{}, fmt.Errorf("%w: balance %d, need %d", credit.ErrInsufficientCredits, bal, in.Charge)
	}

	m.balances[in.UserID] = bal - in.Charge
	if m.CreateHook != nil {
		if err := m.CreateHook(); err != nil {
			m.balances[in.UserID] = bal
			return Project{}, fmt.Errorf("projectstore: create aborted: %w", err)
		}
	}

	p := Project{
		ID:        in.ProjectID,
		Name:      in.Name,
		RepoURL:   in.RepoURL,
		Branch:    in.Branch,
		CreatedAt: time.Now(),
	}
	m.projects[p.ID] = p
	m.memberships[in.MembershipID] = in.UserID + ":" + in.ProjectID
	return p, nil
}
