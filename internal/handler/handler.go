package handler

import (
	"encoding/json"
	"net/http"

	"desthetik/internal/form"
	"desthetik/internal/run"
	"desthetik/internal/store/design"
)

// API serves the HTTP surface: form sessions, generation runs, design
// history, prompt templates and the share codec.
type API struct {
	sessions *form.Store
	designs  *design.Store
	runner   *run.Runner
}

func New(sessions *form.Store, designs *design.Store, runner *run.Runner) *API {
	return &API{sessions: sessions, designs: designs, runner: runner}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}

// sessionView is the session plus the derived state the form UI renders
// from: the active question, its validity and the submit gate.
type sessionView struct {
	*form.Session
	CurrentField form.FieldSpec `json:"current_field"`
	CurrentValid bool           `json:"current_valid"`
	Submittable  bool           `json:"submittable"`
	Violations   []string       `json:"violations,omitempty"`
}

func viewOf(sess *form.Session) sessionView {
	return sessionView{
		Session:      sess,
		CurrentField: sess.CurrentField(),
		CurrentValid: sess.CurrentValid(),
		Submittable:  sess.Submittable(),
		Violations:   form.Violations(&sess.Answers),
	}
}
