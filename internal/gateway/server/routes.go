package server

import (
	"net/http"

	"repolens/internal/gateway/handler"
	"repolens/internal/gateway/middleware"
)

func NewMux(svc *handler.Service) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/projects", svc.HandleCreateProject)
	mux.HandleFunc("POST /api/reindex", svc.HandleReindex)
	mux.HandleFunc("GET /api/requests/{id}", svc.HandleGetRequest)
	mux.HandleFunc("GET /api/requests/{id}/watch", svc.HandleWatchRequest)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return middleware.CORS(mux)
}
