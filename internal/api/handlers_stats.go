package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleCompileStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		jsonError(w, "compile stats unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"stats":           s.stats.Snapshot(),
		"active_sessions": s.sessions.Active(),
		"cached_decks":    s.sessions.CachedDecks(),
	})
}

func (s *Server) handlePresentationConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.presentation)
}
