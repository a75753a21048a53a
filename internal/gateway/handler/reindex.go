package handler

import (
	"context"
	"log"
	"net/http"

	"repolens/internal/reindex"
)

type reindexRequest struct {
	ProjectID     string   `json:"projectId"`
	RepositoryURL string   `json:"repositoryUrl,omitempty"`
	Branch        string   `json:"branch,omitempty"`
	CommitIDs     []string `json:"commitIds"`
	Credential    string   `json:"credential,omitempty"`
}

type reindexResponse struct {
	ProjectID   string `json:"projectId"`
	CommitCount int    `json:"commitCount"`
	Status      string `json:"status"`
}

// HandleReindex is POST /api/reindex. The batch is acknowledged with
// 202 immediately; the per-commit work runs detached and records its
// progress on the commit rows.
func (s *Service) HandleReindex(w http.ResponseWriter, r *http.Request) {
	var in reindexRequest
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	var fields []string
	if trimmed(in.ProjectID) == "" {
		fields = append(fields, "projectId")
	}
	if len(in.CommitIDs) == 0 {
		fields = append(fields, "commitIds")
	}
	if len(fields) > 0 {
		writeError(w, http.StatusBadRequest, "missing required fields", fields...)
		return
	}

	batch := reindex.Batch{
		ProjectID:  trimmed(in.ProjectID),
		RepoURL:    trimmed(in.RepositoryURL),
		Branch:     trimmed(in.Branch),
		CommitIDs:  in.CommitIDs,
		Credential: trimmed(in.Credential),
	}

	// The caller gets the acknowledgment before any commit is touched;
	// the detached task must not inherit the request's cancellation.
	ctx := context.WithoutCancel(r.Context())
	s.spawn(func() {
		if sum, err := s.reindexer.Run(ctx, batch); err != nil {
			log.Printf("reindex %s: %v", batch.ProjectID, err)
		} else {
			log.Printf("reindex %s: %d processed, %d skipped", sum.ProjectID, sum.Processed, sum.Skipped)
		}
	})

	writeJSON(w, http.StatusAccepted, reindexResponse{
		ProjectID:   batch.ProjectID,
		CommitCount: len(batch.CommitIDs),
		Status:      "PROCESSING",
	})
}
