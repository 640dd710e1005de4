package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/store"
)

const (
	msgNotFound        = "Playlist not found"
	msgTitleAndDesc    = "Title and description are required"
	msgInvalidJSON     = "invalid JSON body"
	msgInternal        = "Internal server error"
	msgServerIsRunning = "Server is running"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": msgServerIsRunning,
	})
}

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := s.store.List(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, playlists)
}

func (s *Server) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.log.Debug().Str("id", id).Int("items", len(p.Items)).
		Int("playable", len(catalog.Playable(p.Items))).Msg("playlist fetched")
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}
	p, err := s.store.Create(r.Context(), draft)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleUpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}
	p, err := s.store.Update(r.Context(), id, draft)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeDraft reads a playlist document (current or legacy field names).
func decodeDraft(w http.ResponseWriter, r *http.Request) (store.Draft, bool) {
	defer r.Body.Close()

	var body catalog.Playlist
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return store.Draft{}, false
		}
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return store.Draft{}, false
	}
	return store.DraftOf(body), true
}

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, store.ErrInvalid):
		writeError(w, http.StatusBadRequest, msgTitleAndDesc)
	default:
		s.log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("store error")
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}
