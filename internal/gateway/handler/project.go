package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"repolens/internal/gateway/repository/requeststore"
	"repolens/internal/provision"
)

type createProjectRequest struct {
	RequestID     string `json:"requestId,omitempty"`
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	RepositoryURL string `json:"repositoryUrl"`
	Branch        string `json:"branch,omitempty"`
	Credential    string `json:"credential,omitempty"`
}

type createProjectResponse struct {
	RequestID string `json:"requestId"`
	ProjectID string `json:"projectId"`
	Status    string `json:"status"`
	FileCount int    `json:"fileCount"`
}

// HandleCreateProject is POST /api/projects. It returns once the
// atomic charge-and-create has committed; full indexing continues in
// the background and is observable via the request status endpoints.
func (s *Service) HandleCreateProject(w http.ResponseWriter, r *http.Request) {
	var in createProjectRequest
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	var fields []string
	if trimmed(in.UserID) == "" {
		fields = append(fields, "userId")
	}
	if trimmed(in.Name) == "" {
		fields = append(fields, "name")
	}
	if trimmed(in.RepositoryURL) == "" {
		fields = append(fields, "repositoryUrl")
	}
	if len(fields) > 0 {
		writeError(w, http.StatusBadRequest, "missing required fields", fields...)
		return
	}

	// Callers may supply their own request id for correlation; one is
	// generated otherwise.
	requestID := trimmed(in.RequestID)
	if requestID == "" {
		requestID = "req-" + uuid.NewString()
	}

	res, err := s.provisioner.Provision(r.Context(), provision.Request{
		RequestID:  requestID,
		Name:       trimmed(in.Name),
		RepoURL:    trimmed(in.RepositoryURL),
		Branch:     trimmed(in.Branch),
		UserID:     trimmed(in.UserID),
		Credential: trimmed(in.Credential),
	})
	if err != nil {
		writeWorkflowError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, createProjectResponse{
		RequestID: res.RequestID,
		ProjectID: res.ProjectID,
		Status:    string(res.Status),
		FileCount: res.FileCount,
	})
}

type requestStatusResponse struct {
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
	ProjectID string `json:"projectId,omitempty"`
	FileCount int    `json:"fileCount"`
	ErrorNote string `json:"errorNote,omitempty"`
}

// HandleGetRequest is GET /api/requests/{id}: a point-in-time snapshot
// of one provisioning request.
func (s *Service) HandleGetRequest(w http.ResponseWriter, r *http.Request) {
	id := trimmed(r.PathValue("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing request id")
		return
	}

	rec, err := s.requests.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, requeststore.ErrNotFound) {
			writeError(w, http.StatusNotFound, "request not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, statusResponse(rec))
}

func statusResponse(rec requeststore.Record) requestStatusResponse {
	return requestStatusResponse{
		RequestID: rec.ID,
		Status:    rec.Status,
		ProjectID: rec.ProjectID,
		FileCount: rec.FileCount,
		ErrorNote: rec.ErrorNote,
	}
}
