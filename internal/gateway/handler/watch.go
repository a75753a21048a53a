package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"repolens/internal/gateway/repository/requeststore"
	"repolens/internal/provision"
)

const (
	watchWSWriteWait = 10 * time.Second
	watchWSPoll      = time.Second
)

var watchWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// HandleWatchRequest is GET /api/requests/{id}/watch. It upgrades to a
// websocket and pushes the request status on every change until the
// request reaches a terminal state, then closes.
func (s *Service) HandleWatchRequest(w http.ResponseWriter, r *http.Request) {
	id := trimmed(r.PathValue("id"))
	if id == "" {
		http.Error(w, "request id is required", http.StatusBadRequest)
		return
	}

	if _, err := s.requests.Get(r.Context(), id); err != nil {
		if errors.Is(err, requeststore.ErrNotFound) {
			http.Error(w, "request not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	conn, err := watchWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx := r.Context()
	ticker := time.NewTicker(watchWSPoll)
	defer ticker.Stop()

	var last string
	for {
		rec, err := s.requests.Get(ctx, id)
		if err != nil {
			log.Printf("watch %s: %v", id, err)
			return
		}

		if rec.Status != last {
			last = rec.Status
			if err := conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)); err != nil {
				return
			}
			if err := conn.WriteJSON(statusResponse(rec)); err != nil {
				return
			}
		}
		if provision.Status(rec.Status).Terminal() {
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, rec.Status)
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(watchWSWriteWait))
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
