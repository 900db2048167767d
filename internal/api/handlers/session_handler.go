package handlers

import (
	"net/http"

	"github.com/Cheertaboi/bookstore-locale-service/internal/api/middleware"
	"github.com/Cheertaboi/bookstore-locale-service/internal/session"
)

type SessionHandler struct {
	sessions *session.Manager
}

func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": s.ID})
}

// EndSession handles DELETE /sessions
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(middleware.SessionHeader)
	if id == "" {
		writeError(w, http.StatusBadRequest, "session id required")
		return
	}
	h.sessions.End(id)
	w.WriteHeader(http.StatusNoContent)
}
