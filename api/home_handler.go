package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rpupo63/fyyur/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type homeHandler struct {
	responder Responder
	logger    zerolog.Logger
	database  database.Database
}

func newHomeHandler(app *App) homeHandler {
	logger := log.With().Str("handlerName", "homeHandler").Logger()

	return homeHandler{
		responder: NewResponder(logger, app.Renderer, app.Flashes),
		logger:    logger,
		database:  app.Database,
	}
}

func (h homeHandler) index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.Render(w, r, http.StatusOK, "pages/home", nil)
	}
}

// healthz reports whether the database answers within two seconds
func (h homeHandler) healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.database.Ping(ctx); err != nil {
			h.logger.Warn().Err(err).Msg("database ping failed")
			h.responder.WriteJSONStatus(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Database: "down"})
			return
		}
		h.responder.WriteJSON(w, HealthResponse{Status: "ok", Database: "up"})
	}
}
