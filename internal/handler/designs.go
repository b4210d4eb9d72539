package handler

import (
	"net/http"
	"strings"
)

// handleDesigns handles /api/designs?session_id= (history listing).
func (a *API) handleDesigns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sessionID := strings.TrimSpace(r.URL.Query().Get("session_id"))
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": sessionID,
		"designs":    a.designs.BySession(sessionID),
	})
}

// handleDesign handles /api/designs/{id}.
func (a *API) handleDesign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/api/designs/"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "design id required")
		return
	}
	d, ok := a.designs.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "design not found")
		return
	}
	writeJSON(w, http.StatusOK, d)
}
