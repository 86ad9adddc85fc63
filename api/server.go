package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpupo63/fyyur/config"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(app *App) (Server, error) {
	if app == nil {
		return Server{}, errors.New("nil app")
	}
	c := app.Config

	port := config.GetString(c, "PORT", "5000")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	server := &http.Server{
		Addr:         address,
		Handler:      NewRouter(app),
		ReadTimeout:  config.GetSeconds(c, "READ_TIMEOUT_SECONDS", 30),
		WriteTimeout: config.GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 30),
		IdleTimeout:  config.GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 120),
	}

	return Server{server, startupTime}, nil
}

// NewRouter builds the middleware chain and every route around app.
func NewRouter(app *App) *chi.Mux {
	responder := NewResponder(log.With().Str("handlerName", "router").Logger(), app.Renderer, app.Flashes)

	chiRouter := chi.NewRouter()
	chiRouter.Use(middleware.RealIP)
	chiRouter.Use(middleware.CleanPath)
	chiRouter.Use(RequestLogger(log.Logger))
	chiRouter.Use(LogInternalServerErrors(responder))

	if cors := corsMiddleware(config.GetList(app.Config, "ACCEPTED_ORIGINS")); cors != nil {
		chiRouter.Use(cors)
	}

	chiRouter.NotFound(responder.NotFound)

	setupRoutes(chiRouter, initializeHandlers(app))

	return chiRouter
}

// Start serves until the server is shut down. A graceful shutdown is not
// reported as an error.
func (s Server) Start() error {
	log.Info().Msgf("Server started on: %s", s.Addr)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s Server) ShutdownGracefully(timeout time.Duration) error {
	log.Info().Dur("uptime", time.Since(s.startupTime)).Msg("Gracefully shutting down...")

	gracefulCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefulCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
		return err
	}
	log.Info().Msg("HttpServer gracefully shut down")
	return nil
}
