package handler

import (
	"net/http"

	"desthetik/internal/prompt"
)

// handlePrompts serves the two templates read-only so the frontend can show
// exactly what will be sent to the model.
func (a *API) handlePrompts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"detailed_design": prompt.DetailedDesign,
		"graph_structure": prompt.GraphStructure,
	})
}
