// Package api implements the HTTP layer for the OncoScreen backend.
// Handlers are methods on *Server. Each handler file is responsible for one
// resource group and only imports the dependencies it actually uses.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oncoscreen/oncoscreen-backend/internal/assistant"
	"github.com/oncoscreen/oncoscreen-backend/internal/store"
)

// Config holds values read from environment variables at startup.
type Config struct {
	// AllowedOrigin is the SPA origin allowed to call the API in production.
	AllowedOrigin string

	// Env is "production", "staging", or "development".
	Env string
}

// Server holds all shared dependencies. Each handler file attaches methods to
// this type and uses only the fields it needs.
type Server struct {
	// store holds the in-memory session table.
	store *store.Store

	// assistant answers chat messages (keyword rules or hosted model).
	assistant *assistant.Assistant

	cfg    Config
	logger *slog.Logger
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to http.ListenAndServe.
func NewServer(
	st *store.Store,
	asst *assistant.Assistant,
	cfg Config,
	logger *slog.Logger,
) http.Handler {
	s := &Server{
		store:     st,
		assistant: asst,
		cfg:       cfg,
		logger:    logger,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)
	r.Use(middleware.Timeout(30 * time.Second))

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// ── API v1 ────────────────────────────────────────────────────────────────
	r.Route("/api", func(r chi.Router) {

		// Static catalog + content — no auth, nothing user-specific.
		r.Get("/assessments", s.handleListAssessments)
		r.Get("/assessments/{assessmentID}", s.handleGetAssessment)
		r.Get("/cancer-info", s.handleListCancerInfo)
		r.Get("/cancer-info/{infoID}", s.handleGetCancerInfo)

		// Sessions — no auth required (anonymous creation).
		r.Post("/session", s.handleCreateSession)

		// Session-scoped routes — require a valid anon token header.
		r.Route("/session/{sessionID}", func(r chi.Router) {
			r.Use(s.requireAnonToken)
			r.Put("/answers", s.handleUpsertAnswers)
			r.Get("/result", s.handleGetResult)
			r.Get("/progress", s.handleGetProgress)
			r.Delete("/", s.handleDeleteSession)
		})

		// Chat — no auth; the OpenAI key (if any) rides in the request body.
		r.Post("/chat", s.handleChat)
	})

	return r
}
