// Package server is the HTTP delivery surface: the rendered page, the
// content API every section consumes, and the admin editor mount.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tahajib/reelsite/internal/logger"
	"github.com/tahajib/reelsite/internal/site"
	"github.com/tahajib/reelsite/internal/store"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server serves the site and its content API on top of the content
// store. Sections never talk to the fetcher directly; everything reads
// {content, isLoading, isError} and posts retry.
type Server struct {
	cfg        Config
	store      *store.Store
	renderer   *site.Renderer
	hub        *hub
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over the given content store.
func New(cfg Config, contentStore *store.Store) (*Server, error) {
	renderer, err := site.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("building renderer: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		store:    contentStore,
		renderer: renderer,
		hub:      newHub(),
	}
	// Every store transition is pushed to connected pages.
	contentStore.OnChange(func(snap store.Snapshot) {
		s.hub.broadcast(snap)
	})

	s.router = s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handlePage)
	r.Get("/static/site.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Write([]byte(site.Stylesheet))
	})
	r.Get("/api/content", s.handleContent)
	r.Post("/api/content/retry", s.handleRetry)
	r.Get("/api/content/ws", s.hub.handleWS)

	return r
}

// Router returns the chi router for registering additional routes
// (the admin editor mounts itself here).
func (s *Server) Router() chi.Router { return s.router }

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Render(w, s.store.Snapshot()); err != nil {
		logger.Error("rendering page", err)
	}
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.store.Snapshot())
}

// handleRetry kicks an asynchronous reload and returns immediately;
// clients observe the outcome via polling or the websocket feed.
func (s *Server) handleRetry(w http.ResponseWriter, r *http.Request) {
	go s.store.Retry(context.Background())
	w.WriteHeader(http.StatusAccepted)
	w.Write([]byte(`{"status":"reloading"}`))
}

// Reload triggers a store reload; the admin editor calls this after
// every successful mutation.
func (s *Server) Reload() {
	go s.store.Retry(context.Background())
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("reelsite server listening", map[string]interface{}{"addr": addr})
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and closes the change feed.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.closeAll()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
