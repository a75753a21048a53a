package projectstore

import (
	"context"
	"fmt"

	"repolens/internal/credit"
	"repolens/internal/gateway/ent"
	"repolens/internal/gateway/ent/project"
)

// EntStore persists projects in the database. CreateWithCharge runs the
// debit, the project insert and the membership insert in one
// transaction.
type EntStore struct {
	client *ent.Client
}

func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

func (s *EntStore) Get(ctx context.Context, id string) (Project, error) {
	p, err := s.client.Project.Query().
		Where(project.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	return Project{
		ID:        p.ID,
		Name:      p.Name,
		RepoURL:   p.RepoURL,
		Branch:    p.Branch,
		CreatedAt: p.CreatedAt,
	}, nil
}

func (s *EntStore) Balance(ctx context.Context, userID string) (int, error) {
	return credit.Balance(ctx, s.client, userID)
}

func (s *EntStore) CreateWithCharge(ctx context.Context, in CreateInput) (Project, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return Project{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := credit.DebitTx(ctx, tx, in.UserID, in.Charge); err != nil {
		return Project{}, err
	}

	p, err := tx.Project.Create().
		SetID(in.ProjectID).
		SetName(in.Name).
		SetRepoURL(in.RepoURL).
		SetBranch(in.Branch).
		Save(ctx)
	if err != nil {
		return Project{}, fmt.Errorf("create project: %w", err)
	}

	if err := tx.ProjectMembership.Create().
		SetID(in.MembershipID).
		SetUserID(in.UserID).
		SetProjectID(in.ProjectID).
		SetRole("owner").
		Exec(ctx); err != nil {
		return Project{}, fmt.Errorf("create membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Project{}, fmt.Errorf("commit: %w", err)
	}

	return Project{
		ID:        p.ID,
		Name:      p.Name,
		RepoURL:   p.RepoURL,
		Branch:    p.Branch,
		CreatedAt: p.CreatedAt,
	}, nil
}
