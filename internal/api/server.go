// Package api provides the HTTP API server and handlers for the
// community business directory.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/communitydirectory/directory-server/internal/cache"
	"github.com/communitydirectory/directory-server/internal/ratelimit"
)

// Options holds server construction knobs beyond the service set.
type Options struct {
	// CORSOrigins lists allowed origins; empty means allow all.
	CORSOrigins []string
	// ContributionLimiter throttles POST /api/v1/contributions/* per
	// client IP. Nil disables throttling.
	ContributionLimiter *ratelimit.KeyedLimiter
	// Cache is the last-known-good dataset cache, reported by the health
	// endpoint. Nil when the remote source is not configured.
	Cache *cache.Cache
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	services *Services
	cache    *cache.Cache
	router   *chi.Mux
	api      huma.API
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(services *Services, opts Options, logger *slog.Logger) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Use(contributionRateLimit(opts.ContributionLimiter, logger))

	humaConfig := huma.DefaultConfig("Community Directory API", "1.0.0")
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)

	humaAPI := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		services: services,
		cache:    opts.Cache,
		router:   router,
		api:      humaAPI,
		logger:   logger,
	}

	s.registerHealthRoutes()
	s.registerBusinessRoutes()
	s.registerCategoryRoutes()
	s.registerSuburbRoutes()
	s.registerStatsRoutes()
	s.registerSearchRoutes()
	s.registerContributionRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
