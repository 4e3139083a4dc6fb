package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dgallion1/slidedeck/internal/compiler"
	"github.com/dgallion1/slidedeck/internal/importer"
)

// handleCompile compiles the markdown request body into a deck.
func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	src, ok := s.readBody(w, r)
	if !ok {
		return
	}
	d, hash := s.sessions.Compile(src)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"content_hash": hash,
		"deck":         d,
		"stats":        compiler.Summarize(d),
		"warnings":     nonNil(compiler.Lint(string(src))),
	})
}

// handleImport converts an uploaded document into deck markdown and
// compiles it. With start_session=true a session presenting the result is
// created as well.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !importer.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	maxWords := s.cfg.ImportMaxWords
	if v := r.FormValue("max_words"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxWords = n
		}
	}

	src, err := importer.Convert(strings.NewReader(string(data)), filename, maxWords)
	if err != nil {
		s.log.Warn("import failed", "filename", filename, "error", err)
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	resp := map[string]any{
		"filename": filename,
		"source":   src,
	}
	status := http.StatusOK
	if r.FormValue("start_session") == "true" {
		title := r.FormValue("title")
		if title == "" {
			title = strings.TrimSuffix(filename, filepath.Ext(filename))
		}
		sess, err := s.sessions.Create([]byte(src), title)
		if err != nil {
			s.sessionError(w, err)
			return
		}
		resp["session"] = sess.Snapshot()
		status = http.StatusCreated
	} else {
		d, hash := s.sessions.Compile([]byte(src))
		resp["content_hash"] = hash
		resp["stats"] = compiler.Summarize(d)
	}

	s.log.Info("document imported", "filename", filename, "bytes", len(data), "max_words", maxWords)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// readBody reads the whole request body, rejecting bodies over the upload
// limit with 413.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("body exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return nil, false
		}
		jsonError(w, "failed to read body", http.StatusBadRequest)
		return nil, false
	}
	return data, true
}

// decodeJSON decodes a size-limited JSON request body into v.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	data, ok := s.readBody(w, r)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		jsonError(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." || name == "/" {
		name = "unnamed"
	}
	return name
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
