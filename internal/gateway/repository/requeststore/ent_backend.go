package requeststore

import (
	"context"
	"fmt"

	"repolens/internal/gateway/ent"
	"repolens/internal/gateway/ent/creationrequest"
)

// EntStore persists creation requests in the database.
type EntStore struct {
	client *ent.Client
}

func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

func (s *EntStore) Create(ctx context.Context, rec Record) error {
	return s.client.CreationRequest.Create().
		SetID(rec.ID).
		SetUserID(rec.UserID).
		SetName(rec.Name).
		SetRepoURL(rec.RepoURL).
		SetBranch(rec.Branch).
		SetStatus(rec.Status).
		SetFileCount(rec.FileCount).
		SetProjectID(rec.ProjectID).
		SetErrorNote(rec.ErrorNote).
		Exec(ctx)
}

func (s *EntStore) Get(ctx context.Context, id string) (Record, error) {
	r, err := s.client.CreationRequest.Query().
		Where(creationrequest.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return fromEnt(r), nil
}

func (s *EntStore) Update(ctx context.Context, id string, mutate func(*Record)) (Record, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return Record{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	r, err := tx.CreationRequest.Query().
		Where(creationrequest.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}

	rec := fromEnt(r)
	mutate(&rec)

	saved, err := tx.CreationRequest.UpdateOneID(id).
		SetStatus(rec.Status).
		SetFileCount(rec.FileCount).
		SetProjectID(rec.ProjectID).
		SetErrorNote(rec.ErrorNote).
		Save(ctx)
	if err != nil {
		return Record{}, err
	}
	if err := tx.Commit(); err != nil {
		return Record{}, err
	}
	return fromEnt(saved), nil
}

func fromEnt(r *ent.CreationRequest) Record {
	return Record{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		RepoURL:   r.RepoURL,
		Branch:    r.Branch,
		Status:    r.Status,
		FileCount: r.FileCount,
		ProjectID: r.ProjectID,
		ErrorNote: r.ErrorNote,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
