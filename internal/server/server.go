// Package server sets up the HTTP server, router, and all route definitions.
//
// This is the composition root: the stores, handlers, and middleware are all
// wired together here, so main.go stays minimal and tests can build a fully
// wired router without starting a listener.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/property-listings/internal/handler"
	"github.com/sakif/property-listings/internal/middleware"
	"github.com/sakif/property-listings/internal/model"
	"github.com/sakif/property-listings/internal/store"
)

// Config holds server configuration.
type Config struct {
	Port int
}

// Server owns the router and the in-memory stores. The stores live exactly
// as long as the process — there is no persistence layer behind them.
type Server struct {
	router   *chi.Mux
	config   Config
	logger   *slog.Logger
	users    *store.UserStore
	listings *store.ListingStore
}

// New creates a Server with freshly seeded stores and all routes wired.
func New(cfg Config, logger *slog.Logger) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		config:   cfg,
		logger:   logger,
		users:    store.NewUserStore(),
		listings: store.NewListingStore(),
	}

	s.seed()
	s.setupRoutes()
	return s
}

// seed inserts the demo users a fresh process starts with.
func (s *Server) seed() {
	for _, req := range []model.CreateUserRequest{
		{Name: "John Doe", Email: "john@example.com"},
		{Name: "Jane Smith", Email: "jane@example.com"},
	} {
		if _, err := s.users.Create(&req); err != nil {
			s.logger.Warn("failed to seed user",
				slog.String("email", req.Email),
				slog.String("error", err.Error()),
			)
		}
	}
}

// Handler returns the fully wired router. Exposed so tests can drive the
// server through httptest without binding a port.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures all middleware and route handlers.
//
// Middleware order matters: request ID and real IP first so the logger sees
// them, Recoverer last in the chain before handlers so a panic becomes a 500
// instead of killing the process.
func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	metaHandler := handler.NewMetaHandler(s.logger)
	s.router.Get("/", metaHandler.HandleIndex)
	s.router.Get("/health", metaHandler.HandleHealth)

	userHandler := handler.NewUserHandler(s.users, s.logger)
	listingHandler := handler.NewListingHandler(s.listings, s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/users", userHandler.HandleList)
		r.Get("/users/{id}", userHandler.HandleGetByID)
		r.Post("/users", userHandler.HandleCreate)
		r.Put("/users/{id}", userHandler.HandleUpdate)
		r.Delete("/users/{id}", userHandler.HandleDelete)

		r.Get("/listings", listingHandler.HandleList)
		r.Get("/listings/{id}", listingHandler.HandleGetByID)
		r.Post("/listings", listingHandler.HandleCreate)
		r.Put("/listings/{id}", listingHandler.HandleUpdate)
		r.Delete("/listings/{id}", listingHandler.HandleDelete)
	})
}

// Start runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests for up to 30 seconds before returning.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
