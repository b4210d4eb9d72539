package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"desthetik/internal/graph"
	"desthetik/internal/jsonutil"
	"desthetik/internal/share"
)

// handleShareEncode turns the posted graph into a URL fragment.
func (a *API) handleShareEncode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var env share.Envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	encoded := share.Encode(env)
	if encoded == "" {
		writeError(w, http.StatusUnprocessableEntity, "graph could not be encoded")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"fragment": share.FragmentMarker + encoded,
	})
}

// handleShareDecode decodes a fragment back into a graph. A fragment that
// does not decode yields the placeholder graph with fallback set, never an
// error status.
func (a *API) handleShareDecode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in struct {
		Fragment string `json:"fragment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	env, ok := share.Decode(in.Fragment)
	if !ok {
		g := graph.Placeholder()
		writeJSON(w, http.StatusOK, map[string]any{
			"nodes":    g.Nodes,
			"edges":    g.Edges,
			"viewport": graph.Viewport{Zoom: 1},
			"fallback": true,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"nodes":    env.Nodes,
		"edges":    env.Edges,
		"viewport": env.Viewport,
		"fallback": false,
	})
}

// exportGraph downloads the session's graph as a dated JSON file.
func (a *API) exportGraph(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, ok := a.sessions.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	g := sess.Graph
	if g == nil {
		g = graph.Placeholder()
	}
	payload := map[string]any{
		"nodes":    g.Nodes,
		"edges":    g.Edges,
		"viewport": sess.Viewport,
	}
	raw, err := jsonutil.MarshalIndentNoEscape(payload, "", "  ")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	name := graph.ExportFileName(time.Now())
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// importGraph replaces the session graph wholesale with an uploaded one.
// Replacement is conditional: a payload without array-typed nodes and edges
// is rejected and the previous graph stays on the canvas.
func (a *API) importGraph(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var shape struct {
		Nodes json.RawMessage `json:"nodes"`
		Edges json.RawMessage `json:"edges"`
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := json.Unmarshal(body, &shape); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if !isJSONArray(shape.Nodes) || !isJSONArray(shape.Edges) {
		writeError(w, http.StatusUnprocessableEntity, "import requires nodes and edges arrays")
		return
	}
	var in struct {
		Nodes    []graph.Node   `json:"nodes"`
		Edges    []graph.Edge   `json:"edges"`
		Viewport graph.Viewport `json:"viewport"`
	}
	if err := json.Unmarshal(body, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	g := &graph.Graph{Nodes: in.Nodes, Edges: in.Edges}
	if err := graph.Validate(g); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	sess, err := a.sessions.ReplaceGraph(id, g, in.Viewport)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
