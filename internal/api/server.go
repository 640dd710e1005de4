// Package api serves the playlist catalog over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/jojongai/portfolio/internal/store"
)

const maxBodyBytes = 1 << 20

// Options configure the HTTP surface.
type Options struct {
	AssetsDir      string   // serves /audio, /png and /resume when set
	AllowedOrigins []string // CORS allow-list; empty allows any origin
}

type Server struct {
	store store.Store
	hub   *Hub
	opts  Options
	log   zerolog.Logger
}

// NewServer wires the store's change notifications into the events hub.
func NewServer(st store.Store, opts Options, log zerolog.Logger) *Server {
	s := &Server{
		store: st,
		hub:   NewHub(log),
		opts:  opts,
		log:   log.With().Str("component", "api").Logger(),
	}
	st.OnChange(func(id string) {
		s.hub.Publish(ChangeEvent{Type: EventPlaylistsChanged, ID: id})
	})
	return s
}

// Hub returns the change-notification hub. Run must be started for
// websocket clients to receive events.
func (s *Server) Hub() *Hub {
	return s.hub
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogMiddleware(s.log))
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware(s.opts.AllowedOrigins))
	for _, mw := range middlewares {
		r.Use(mw)
	}

	s.routes(r)
	r.Route("/api", s.routes)

	if s.opts.AssetsDir != "" {
		assets := http.FileServer(http.Dir(s.opts.AssetsDir))
		r.Handle("/audio/*", assets)
		r.Handle("/png/*", assets)
		r.Handle("/resume/*", assets)
	}

	return r
}

func (s *Server) routes(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Get("/events", s.handleEvents)

	r.Group(func(r chi.Router) {
		r.Use(bodySizeLimitMiddleware(maxBodyBytes))

		r.Get("/playlists", s.handleListPlaylists)
		r.Post("/playlists", s.handleCreatePlaylist)
		r.Get("/playlists/{id}", s.handleGetPlaylist)
		r.Put("/playlists/{id}", s.handleUpdatePlaylist)
		r.Delete("/playlists/{id}", s.handleDeletePlaylist)
	})
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	go s.hub.Run(hubCtx)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info().Msg("server shutting down")
	return srv.Shutdown(shutdownCtx)
}
