package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rpupo63/fyyur/database"
	"github.com/rpupo63/fyyur/errs"
	"github.com/rpupo63/fyyur/models"
	"github.com/rpupo63/fyyur/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type venueHandler struct {
	responder Responder
	logger    zerolog.Logger
	catalog   *services.Catalog
	venueRepo *database.VenueRepo
	clock     func() time.Time
}

func newVenueHandler(app *App) venueHandler {
	logger := log.With().Str("handlerName", "venueHandler").Logger()

	return venueHandler{
		responder: NewResponder(logger, app.Renderer, app.Flashes),
		logger:    logger,
		catalog:   app.Catalog,
		venueRepo: app.Database.VenueRepo(),
		clock:     app.Clock,
	}
}

func venueFormData(venue *models.Venue) map[string]any {
	return map[string]any{
		"form":   venue,
		"genres": Genres,
		"states": States,
	}
}

// listVenues renders every venue grouped by city
func (h venueHandler) listVenues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areas, err := h.catalog.GroupVenuesByCity(r.Context(), h.clock())
		if err != nil {
			h.responder.RenderError(w, r, err)
			return
		}
		h.responder.Render(w, r, http.StatusOK, "pages/venues", map[string]any{"areas": areas})
	}
}

// searchVenues renders the venues whose name contains search_term
func (h venueHandler) searchVenues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.PostFormValue("search_term")

		results, err := h.catalog.SearchByName(r.Context(), services.KindVenue, term, h.clock())
		if err != nil {
			h.responder.RenderError(w, r, err)
			return
		}
		h.responder.Render(w, r, http.StatusOK, "pages/search_venues", map[string]any{
			"results":     results,
			"search_term": term,
		})
	}
}

// getVenue renders one venue with its past and upcoming shows
func (h venueHandler) getVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, ok := pathID(r)
		if !ok {
			h.responder.NotFound(w, r)
			return
		}

		venue, err := h.catalog.ListShowsForVenue(r.Context(), venueID, h.clock())
		if err != nil {
			h.responder.RenderError(w, r, err)
			return
		}
		h.responder.Render(w, r, http.StatusOK, "pages/show_venue", map[string]any{"venue": venue})
	}
}

func (h venueHandler) createVenueForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.Render(w, r, http.StatusOK, "forms/new_venue", venueFormData(&models.Venue{}))
	}
}

// createVenue inserts the submitted venue and redirects home
func (h venueHandler) createVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venue, err := decodeVenue(r)
		if err != nil {
			data := venueFormData(&models.Venue{})
			data["flashes"] = formErrorFlash(err)
			h.responder.Render(w, r, http.StatusBadRequest, "forms/new_venue", data)
			return
		}
		name := venue.Name

		err = h.venueRepo.Add(r.Context(), venue)
		switch {
		case err == nil:
			h.logger.Info().Uint("venueID", venue.ID).Msg("venue created")
			h.responder.Flash(w, r, flashSuccess, fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
		case errs.IsValidation(err):
			data := venueFormData(venue)
			data["flashes"] = formErrorFlash(err)
			h.responder.Render(w, r, http.StatusBadRequest, "forms/new_venue", data)
			return
		default:
			h.logger.Error().Err(err).Str("name", name).Msg("create venue failed")
			h.responder.Flash(w, r, flashDanger, fmt.Sprintf("An error occurred. Venue %s could not be listed.", name))
		}
		h.responder.Redirect(w, r, "/")
	}
}

func (h venueHandler) editVenueForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, ok := pathID(r)
		if !ok {
			h.responder.NotFound(w, r)
			return
		}

		venue, err := h.venueRepo.FindByID(r.Context(), venueID)
		if err != nil {
			h.responder.RenderError(w, r, err)
			return
		}

		data := venueFormData(venue)
		data["id"] = venueID
		h.responder.Render(w, r, http.StatusOK, "forms/edit_venue", data)
	}
}

// editVenue replaces the venue's fields and redirects to its page
func (h venueHandler) editVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, ok := pathID(r)
		if !ok {
			h.responder.NotFound(w, r)
			return
		}

		venue, err := decodeVenue(r)
		if err == nil {
			err = h.venueRepo.Update(r.Context(), venueID, venue)
		}

		switch {
		case err == nil:
			h.logger.Info().Uint("venueID", venueID).Msg("venue updated")
			h.responder.Flash(w, r, flashSuccess, fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
		case errs.IsNotFound(err):
			h.responder.NotFound(w, r)
			return
		case errs.IsValidation(err):
			if venue == nil {
				venue = &models.Venue{}
			}
			data := venueFormData(venue)
			data["id"] = venueID
			data["flashes"] = formErrorFlash(err)
			h.responder.Render(w, r, http.StatusBadRequest, "forms/edit_venue", data)
			return
		default:
			h.logger.Error().Err(err).Uint("venueID", venueID).Msg("update venue failed")
			h.responder.Flash(w, r, flashDanger, fmt.Sprintf("An error occurred. Venue %s could not be updated.", venue.Name))
		}
		h.responder.Redirect(w, r, fmt.Sprintf("/venues/%d", venueID))
	}
}

// deleteVenue removes the venue and its shows, answering in JSON
func (h venueHandler) deleteVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, ok := pathID(r)
		if !ok {
			h.responder.WriteJSONStatus(w, http.StatusNotFound, DeleteResponse{Success: false, Error: "venue not found"})
			return
		}

		if err := h.venueRepo.Delete(r.Context(), venueID); err != nil {
			if errs.IsNotFound(err) {
				h.responder.WriteJSONStatus(w, http.StatusNotFound, DeleteResponse{Success: false, Error: "venue not found"})
				return
			}
			h.logger.Error().Err(err).Uint("venueID", venueID).Msg("delete venue failed")
			h.responder.WriteJSONStatus(w, errs.StatusCode(err), DeleteResponse{Success: false, Error: "venue could not be deleted"})
			return
		}

		h.logger.Info().Uint("venueID", venueID).Msg("venue deleted")
		h.responder.WriteJSON(w, DeleteResponse{Success: true})
	}
}

// deleteVenueForm is the POST fallback for browsers without JavaScript
func (h venueHandler) deleteVenueForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, ok := pathID(r)
		if !ok {
			h.responder.NotFound(w, r)
			return
		}

		err := h.venueRepo.Delete(r.Context(), venueID)
		switch {
		case err == nil:
			h.logger.Info().Uint("venueID", venueID).Msg("venue deleted")
			h.responder.Flash(w, r, flashSuccess, "Venue was successfully deleted!")
			h.responder.Redirect(w, r, "/")
		case errs.IsNotFound(err):
			h.responder.NotFound(w, r)
		default:
			h.logger.Error().Err(err).Uint("venueID", venueID).Msg("delete venue failed")
			h.responder.Flash(w, r, flashDanger, "An error occurred. Venue could not be deleted.")
			h.responder.Redirect(w, r, fmt.Sprintf("/venues/%d", venueID))
		}
	}
}
