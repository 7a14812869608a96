package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cch-dev/cch/internal/store"
)

// OKResponse is the success shape for mutating endpoints.
type OKResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, err string, msg string) {
	writeJSON(w, status, ErrorResponse{Error: err, Message: msg})
}

// handleListSessions returns every session as a JSON array, most recent
// first. An empty store yields an empty array, not an error.
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	st, err := store.Open(s.config.DBPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "open_store_failed", err.Error())
		return
	}
	defer st.Close()

	sessions, err := st.All()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_sessions_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, sessions)
}

// handleDeleteSession deletes by exact ID only. Delete is idempotent at
// this boundary: the response is success-shaped whether or not a record
// existed.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	st, err := store.Open(s.config.DBPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "open_store_failed", err.Error())
		return
	}
	defer st.Close()

	if _, err := st.DeleteByID(id); err != nil {
		writeError(w, http.StatusInternalServerError, "delete_session_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, OKResponse{OK: true})
}
