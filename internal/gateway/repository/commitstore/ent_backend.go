package commitstore

import (
	"context"

	"repolens/internal/gateway/ent"
	"repolens/internal/gateway/ent/repocommit"
)

// EntStore persists commit rows in the database.
type EntStore struct {
	client *ent.Client
}

func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

func (s *EntStore) GetByHash(ctx context.Context, projectID, hash string) (Row, error) {
	c, err := s.client.RepoCommit.Query().
		Where(repocommit.ProjectID(projectID), repocommit.Hash(hash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Row{}, ErrNotFound
		}
		return Row{}, err
	}
	return fromEnt(c), nil
}

func (s *EntStore) Upsert(ctx context.Context, row Row) (Row, error) {
	existing, err := s.GetByHash(ctx, row.ProjectID, row.Hash)
	if err == nil {
		return existing, nil
	}
	if err != ErrNotFound {
		return Row{}, err
	}

	create := s.client.RepoCommit.Create().
		SetID(row.ID).
		SetProjectID(row.ProjectID).
		SetHash(row.Hash).
		SetAuthor(row.Author).
		SetCommittedAt(row.CommittedAt).
		SetSummary(row.Summary).
		SetNeedsReindex(row.NeedsReindex)
	if row.FilesCached {
		files := row.ModifiedFiles
		if files == nil {
			files = []string{}
		}
		create = create.SetModifiedFiles(files)
	}
	c, err := create.Save(ctx)
	if err != nil {
		// Lost a race with a concurrent insert; read back the winner.
		if ent.IsConstraintError(err) {
			return s.GetByHash(ctx, row.ProjectID, row.Hash)
		}
		return Row{}, err
	}
	return fromEnt(c), nil
}

func (s *EntStore) SetModifiedFiles(ctx context.Context, id string, files []string) error {
	if files == nil {
		files = []string{}
	}
	return s.client.RepoCommit.UpdateOneID(id).
		SetModifiedFiles(files).
		Exec(ctx)
}

func (s *EntStore) SetNeedsReindex(ctx context.Context, id string, v bool) error {
	return s.client.RepoCommit.UpdateOneID(id).
		SetNeedsReindex(v).
		Exec(ctx)
}

func fromEnt(c *ent.RepoCommit) Row {
	return Row{
		ID:            c.ID,
		ProjectID:     c.ProjectID,
		Hash:          c.Hash,
		Author:        c.Author,
		CommittedAt:   c.CommittedAt,
		Summary:       c.Summary,
		ModifiedFiles: c.ModifiedFiles,
		FilesCached:   c.ModifiedFiles != nil,
		NeedsReindex:  c.NeedsReindex,
	}
}
