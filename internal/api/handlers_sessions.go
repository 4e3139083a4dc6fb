package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dgallion1/slidedeck/internal/navigator"
	"github.com/dgallion1/slidedeck/internal/session"
	"github.com/go-chi/chi/v5"
)

type sourceRequest struct {
	Source string `json:"source"`
	Title  string `json:"title"`
}

// eventRequest carries either a command string ("next", "goto 3", "Home")
// or an explicit kind and index.
type eventRequest struct {
	Command string               `json:"command"`
	Kind    *navigator.EventKind `json:"kind"`
	Index   int                  `json:"index"`
}

func (e eventRequest) event() (navigator.Event, error) {
	switch {
	case e.Command != "":
		return navigator.ParseEvent(e.Command)
	case e.Kind != nil:
		return navigator.Event{Kind: *e.Kind, Index: e.Index}, nil
	}
	return navigator.Event{}, errors.New("command or kind is required")
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req sourceRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	sess, err := s.sessions.Create([]byte(req.Source), req.Title)
	if err != nil {
		s.sessionError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess.Snapshot())
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(w, r)
	if sess == nil {
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleSessionOutline(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(w, r)
	if sess == nil {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": sess.ID,
		"outline":    sess.Deck().Outline,
	})
}

func (s *Server) handleSessionEvent(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(w, r)
	if sess == nil {
		return
	}
	var req eventRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	ev, err := req.event()
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	state, changed := sess.Handle(ev)
	s.log.With("session_id", sess.ID).Debug("event applied",
		"event", ev.String(),
		"changed", changed,
		"slide", state.Slide,
		"reveal", state.Reveal,
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"event":   ev.String(),
		"changed": changed,
		"session": sess.Snapshot(),
	})
}

func (s *Server) handleReplaceSource(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	var req sourceRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	sess := s.sessions.Replace(id, []byte(req.Source))
	if sess == nil {
		jsonError(w, "session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if !s.sessions.Delete(id) {
		jsonError(w, "session not found", http.StatusNotFound)
		return
	}
	s.log.Info("session deleted", "session_id", id)
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) *session.Session {
	sess := s.sessions.Get(chi.URLParam(r, "sessionID"))
	if sess == nil {
		jsonError(w, "session not found", http.StatusNotFound)
	}
	return sess
}

func (s *Server) sessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrStoreFull) {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	s.log.Error("create session", "error", err)
	jsonError(w, "failed to create session", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
