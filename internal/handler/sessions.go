package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"desthetik/internal/form"
	"desthetik/internal/run"
)

// handleSessions handles /api/sessions (create).
func (a *API) handleSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess := a.sessions.Create()
	writeJSON(w, http.StatusCreated, viewOf(sess))
}

// handleSession routes /api/sessions/{id} and its sub-resources.
func (a *API) handleSession(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	parts := strings.SplitN(rest, "/", 2)
	id := strings.TrimSpace(parts[0])
	if id == "" {
		writeError(w, http.StatusBadRequest, "session id required")
		return
	}
	action := ""
	if len(parts) == 2 {
		action = strings.Trim(parts[1], "/")
	}

	switch action {
	case "":
		a.getSession(w, r, id)
	case "next":
		a.advanceSession(w, r, id, true)
	case "previous":
		a.advanceSession(w, r, id, false)
	case "generate":
		a.startGeneration(w, r, id)
	case "export":
		a.exportGraph(w, r, id)
	case "import":
		a.importGraph(w, r, id)
	default:
		if name, ok := strings.CutPrefix(action, "fields/"); ok {
			a.setField(w, r, id, name)
			return
		}
		http.NotFound(w, r)
	}
}

func (a *API) getSession(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, ok := a.sessions.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

func (a *API) setField(w http.ResponseWriter, r *http.Request, id, name string) {
	if r.Method != http.MethodPut && r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	sess, err := a.sessions.SetField(id, strings.TrimSpace(name), in.Value)
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

func (a *API) advanceSession(w http.ResponseWriter, r *http.Request, id string, forward bool) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var (
		sess *form.Session
		err  error
	)
	if forward {
		sess, err = a.sessions.Next(id)
	} else {
		sess, err = a.sessions.Previous(id)
	}
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

func (a *API) startGeneration(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	runID, err := a.runner.Start(id)
	if err != nil {
		var ve *run.ValidationError
		switch {
		case errors.As(err, &ve):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":      "answers are not submittable",
				"violations": ve.Violations,
			})
		case strings.Contains(err.Error(), "not found"):
			writeError(w, http.StatusNotFound, err.Error())
		case strings.Contains(err.Error(), "in progress"):
			writeError(w, http.StatusConflict, err.Error())
		default:
			log.Printf("start generation for %s: %v", id, err)
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{"run_id": runID})
}
