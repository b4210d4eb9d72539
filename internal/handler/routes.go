package handler

import (
	"net/http"
	"strings"
)

// Routes assembles the full mux, CORS included.
func (a *API) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/sessions", a.handleSessions)
	mux.HandleFunc("/api/sessions/", a.handleSession)
	mux.HandleFunc("/api/watch/", a.handleWatchSSE)
	mux.HandleFunc("/api/ws/watch", a.handleWatchWS)
	mux.HandleFunc("/api/prompts", a.handlePrompts)
	mux.HandleFunc("/api/designs", a.handleDesigns)
	mux.HandleFunc("/api/designs/", a.handleDesign)
	mux.HandleFunc("/api/share/encode", a.handleShareEncode)
	mux.HandleFunc("/api/share/decode", a.handleShareDecode)
	mux.HandleFunc("/debug/frontend-trace", a.handleFrontendTrace)
	mux.HandleFunc("/debug/run-logs", a.handleRunLogs)
	return withCORS(mux)
}

// Simple CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Vary", "Origin")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if r.Method == http.MethodOptions {
			return
		}
		next.ServeHTTP(w, r)
	})
}
