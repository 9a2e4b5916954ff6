package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var (
	errMissingURL = errors.New("missing url query parameter")
	errBadID      = errors.New("archive id must be an integer")
)

// handleHealth reports liveness and the running version.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

// handleWatchlist returns all watched URLs with their last-checked times.
func (s *Server) handleWatchlist(w http.ResponseWriter, r *http.Request) {
	urls, err := s.store.ListWatched(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(urls),
		"urls":  urls,
	})
}

// handleSnapshot returns the current snapshot of a URL, content included.
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeError(w, http.StatusBadRequest, errMissingURL)
		return
	}

	snap, err := s.store.GetSnapshot(r.Context(), url)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if snap == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no snapshot stored for url"})
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// handleArchives lists the archived versions of a URL, newest first.
// Content is omitted from listings; fetch single records for the body.
func (s *Server) handleArchives(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeError(w, http.StatusBadRequest, errMissingURL)
		return
	}

	archives, err := s.store.ListArchives(r.Context(), url)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(archives),
		"archives": archives,
	})
}

// handleArchive returns one archived version by ID, content included.
func (s *Server) handleArchive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errBadID)
		return
	}

	arch, err := s.store.GetArchive(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if arch == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no archive record with that id"})
		return
	}

	writeJSON(w, http.StatusOK, arch)
}

// handleFetchLog lists fetch attempts, optionally filtered by url and
// capped by limit.
func (s *Server) handleFetchLog(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	limit := queryInt(r, "limit", 50)

	records, err := s.store.ListFetchRecords(r.Context(), url, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":   len(records),
		"fetches": records,
	})
}

// handleSnapshotView renders the current snapshot of a URL as Markdown.
func (s *Server) handleSnapshotView(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeError(w, http.StatusBadRequest, errMissingURL)
		return
	}

	snap, err := s.store.GetSnapshot(r.Context(), url)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if snap == nil {
		http.Error(w, "no snapshot stored for url", http.StatusNotFound)
		return
	}

	s.writeMarkdown(w, snap.Content, snap.URL)
}

// handleArchiveView renders one archived version as Markdown.
func (s *Server) handleArchiveView(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errBadID)
		return
	}

	arch, err := s.store.GetArchive(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if arch == nil {
		http.Error(w, "no archive record with that id", http.StatusNotFound)
		return
	}

	s.writeMarkdown(w, arch.Content, arch.URL)
}

// writeMarkdown writes stored page content converted to Markdown.
// Content that cannot be converted is served as stored.
func (s *Server) writeMarkdown(w http.ResponseWriter, content, sourceURL string) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(s.renderer.Markdown(content, sourceURL, content)))
}
