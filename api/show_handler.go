package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rpupo63/fyyur/database"
	"github.com/rpupo63/fyyur/errs"
	"github.com/rpupo63/fyyur/models"
	"github.com/rpupo63/fyyur/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type showHandler struct {
	responder  Responder
	logger     zerolog.Logger
	catalog    *services.Catalog
	showRepo   *database.ShowRepo
	venueRepo  *database.VenueRepo
	artistRepo *database.ArtistRepo
	clock      func() time.Time
}

func newShowHandler(app *App) showHandler {
	logger := log.With().Str("handlerName", "showHandler").Logger()

	return showHandler{
		responder:  NewResponder(logger, app.Renderer, app.Flashes),
		logger:     logger,
		catalog:    app.Catalog,
		showRepo:   app.Database.ShowRepo(),
		venueRepo:  app.Database.VenueRepo(),
		artistRepo: app.Database.ArtistRepo(),
		clock:      app.Clock,
	}
}

// listShows renders every show with its venue and artist
func (h showHandler) listShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shows, err := h.catalog.ListShows(r.Context())
		if err != nil {
			h.responder.RenderError(w, r, err)
			return
		}
		h.responder.Render(w, r, http.StatusOK, "pages/shows", map[string]any{"shows": shows})
	}
}

// showFormData loads the venue and artist choices concurrently.
func (h showHandler) showFormData(ctx context.Context, view showFormView) (map[string]any, error) {
	var (
		venues  []*models.Venue
		artists []*models.Artist
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		venues, err = h.venueRepo.FindAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		artists, err = h.artistRepo.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return map[string]any{
		"form":    view,
		"venues":  venues,
		"artists": artists,
	}, nil
}

func (h showHandler) createShowForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := showFormView{StartTime: h.clock().Format("2006-01-02T15:04")}
		data, err := h.showFormData(r.Context(), view)
		if err != nil {
			h.responder.RenderError(w, r, err)
			return
		}
		h.responder.Render(w, r, http.StatusOK, "forms/new_show", data)
	}
}

// createShow books an artist at a venue and redirects home
func (h showHandler) createShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		show, view, err := decodeShow(r)
		if err == nil {
			err = h.showRepo.Add(r.Context(), show)
		}

		switch {
		case err == nil:
			h.logger.Info().Uint("showID", show.ID).Msg("show created")
			h.responder.Flash(w, r, flashSuccess, "Show was successfully listed!")
		case errs.IsValidation(err):
			data, loadErr := h.showFormData(r.Context(), view)
			if loadErr != nil {
				h.responder.RenderError(w, r, loadErr)
				return
			}
			data["flashes"] = formErrorFlash(err)
			h.responder.Render(w, r, http.StatusBadRequest, "forms/new_show", data)
			return
		default:
			h.logger.Error().Err(err).Msg("create show failed")
			h.responder.Flash(w, r, flashDanger, "An error occurred. Show could not be listed.")
		}
		h.responder.Redirect(w, r, "/")
	}
}
