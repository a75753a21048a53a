// Package handler exposes the gateway's HTTP API: project provisioning,
// commit reindexing, and request status (snapshot and websocket watch).
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"repolens/internal/credit"
	"repolens/internal/gateway/repository/requeststore"
	"repolens/internal/provision"
	"repolens/internal/reindex"
	"repolens/internal/repohost"
)

// Provisioner runs the synchronous provisioning phase.
type Provisioner interface {
	Provision(ctx context.Context, req provision.Request) (provision.Result, error)
}

// Reindexer runs one reindex batch to completion.
type Reindexer interface {
	Run(ctx context.Context, batch reindex.Batch) (reindex.Summary, error)
}

// Service implements all gateway HTTP handlers. It holds the two
// workflow services and the request store as its dependencies.
type Service struct {
	provisioner Provisioner
	reindexer   Reindexer
	requests    requeststore.Store

	// spawn runs detached work after a 202 has been written. Tests
	// replace it to run inline.
	spawn func(func())
}

// NewService creates a gateway service over the given workflows.
func NewService(provisioner Provisioner, reindexer Reindexer, requests requeststore.Store) *Service {
	return &Service{
		provisioner: provisioner,
		reindexer:   reindexer,
		requests:    requests,
		spawn:       func(fn func()) { go fn() },
	}
}

type errorBody struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, fields ...string) {
	writeJSON(w, status, errorBody{Error: msg, Fields: fields})
}

// writeWorkflowError maps a provisioning error to its response code.
func writeWorkflowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repohost.ErrAuthorizationRequired):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, credit.ErrInsufficientCredits):
		writeError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, repohost.ErrInvalidRepository):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func trimmed(s string) string { return strings.TrimSpace(s) }
