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

type artistHandler struct {
	responder  Responder
	logger     zerolog.Logger
	catalog    *services.Catalog
	artistRepo *database.ArtistRepo
	clock      func() time.Time
}

func newArtistHandler(app *App) artistHandler {
	logger := log.With().Str("handlerName", "artistHandler").Logger()

	return artistHandler{
		responder:  NewResponder(logger, app.Renderer, app.Flashes),
		logger:     logger,
		catalog:    app.Catalog,
		artistRepo: app.Database.ArtistRepo(),
		clock:      app.Clock,
	}
}

func artistFormData(artist *models.Artist) map[string]any {
	return map[string]any{
		"form":   artist,
		"genres": Genres,
		"states": States,
	}
}

// listArtists renders every artist by name
func (h artistHandler) listArtists() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artists, err := h.artistRepo.FindAll(r.Context())
		if err != nil {
			h.responder.RenderError(w, r, err)
			return
		}
		h.responder.Render(w, r, http.StatusOK, "pages/artists", map[string]any{"artists": artists})
	}
}

// searchArtists renders the artists whose name contains search_term
func (h artistHandler) searchArtists() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.PostFormValue("search_term")

		results, err := h.catalog.SearchByName(r.Context(), services.KindArtist, term, h.clock())
		if err != nil {
			h.responder.RenderError(w, r, err)
			return
		}
		h.responder.Render(w, r, http.StatusOK, "pages/search_artists", map[string]any{
			"results":     results,
			"search_term": term,
		})
	}
}

// getArtist renders one artist with its past and upcoming shows
func (h artistHandler) getArtist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, ok := pathID(r)
		if !ok {
			h.responder.NotFound(w, r)
			return
		}

		artist, err := h.catalog.ListShowsForArtist(r.Context(), artistID, h.clock())
		if err != nil {
			h.responder.RenderError(w, r, err)
			return
		}
		h.responder.Render(w, r, http.StatusOK, "pages/show_artist", map[string]any{"artist": artist})
	}
}

func (h artistHandler) createArtistForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.Render(w, r, http.StatusOK, "forms/new_artist", artistFormData(&models.Artist{}))
	}
}

// createArtist inserts the submitted artist and redirects home
func (h artistHandler) createArtist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artist, err := decodeArtist(r)
		if err != nil {
			data := artistFormData(&models.Artist{})
			data["flashes"] = formErrorFlash(err)
			h.responder.Render(w, r, http.StatusBadRequest, "forms/new_artist", data)
			return
		}
		name := artist.Name

		err = h.artistRepo.Add(r.Context(), artist)
		switch {
		case err == nil:
			h.logger.Info().Uint("artistID", artist.ID).Msg("artist created")
			h.responder.Flash(w, r, flashSuccess, fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
		case errs.IsValidation(err):
			data := artistFormData(artist)
			data["flashes"] = formErrorFlash(err)
			h.responder.Render(w, r, http.StatusBadRequest, "forms/new_artist", data)
			return
		default:
			h.logger.Error().Err(err).Str("name", name).Msg("create artist failed")
			h.responder.Flash(w, r, flashDanger, fmt.Sprintf("An error occurred. Artist %s could not be listed.", name))
		}
		h.responder.Redirect(w, r, "/")
	}
}

func (h artistHandler) editArtistForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, ok := pathID(r)
		if !ok {
			h.responder.NotFound(w, r)
			return
		}

		artist, err := h.artistRepo.FindByID(r.Context(), artistID)
		if err != nil {
			h.responder.RenderError(w, r, err)
			return
		}

		data := artistFormData(artist)
		data["id"] = artistID
		h.responder.Render(w, r, http.StatusOK, "forms/edit_artist", data)
	}
}

// editArtist replaces the artist's fields and redirects to its page
func (h artistHandler) editArtist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, ok := pathID(r)
		if !ok {
			h.responder.NotFound(w, r)
			return
		}

		artist, err := decodeArtist(r)
		if err == nil {
			err = h.artistRepo.Update(r.Context(), artistID, artist)
		}

		switch {
		case err == nil:
			h.logger.Info().Uint("artistID", artistID).Msg("artist updated")
			h.responder.Flash(w, r, flashSuccess, fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
		case errs.IsNotFound(err):
			h.responder.NotFound(w, r)
			return
		case errs.IsValidation(err):
			if artist == nil {
				artist = &models.Artist{}
			}
			data := artistFormData(artist)
			data["id"] = artistID
			data["flashes"] = formErrorFlash(err)
			h.responder.Render(w, r, http.StatusBadRequest, "forms/edit_artist", data)
			return
		default:
			h.logger.Error().Err(err).Uint("artistID", artistID).Msg("update artist failed")
			h.responder.Flash(w, r, flashDanger, fmt.Sprintf("An error occurred. Artist %s could not be updated.", artist.Name))
		}
		h.responder.Redirect(w, r, fmt.Sprintf("/artists/%d", artistID))
	}
}

// deleteArtist removes the artist and its shows, answering in JSON
func (h artistHandler) deleteArtist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, ok := pathID(r)
		if !ok {
			h.responder.WriteJSONStatus(w, http.StatusNotFound, DeleteResponse{Success: false, Error: "artist not found"})
			return
		}

		if err := h.artistRepo.Delete(r.Context(), artistID); err != nil {
			if errs.IsNotFound(err) {
				h.responder.WriteJSONStatus(w, http.StatusNotFound, DeleteResponse{Success: false, Error: "artist not found"})
				return
			}
			h.logger.Error().Err(err).Uint("artistID", artistID).Msg("delete artist failed")
			h.responder.WriteJSONStatus(w, errs.StatusCode(err), DeleteResponse{Success: false, Error: "artist could not be deleted"})
			return
		}

		h.logger.Info().Uint("artistID", artistID).Msg("artist deleted")
		h.responder.WriteJSON(w, DeleteResponse{Success: true})
	}
}

// deleteArtistForm is the POST fallback for browsers without JavaScript
func (h artistHandler) deleteArtistForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, ok := pathID(r)
		if !ok {
			h.responder.NotFound(w, r)
			return
		}

		err := h.artistRepo.Delete(r.Context(), artistID)
		switch {
		case err == nil:
			h.logger.Info().Uint("artistID", artistID).Msg("artist deleted")
			h.responder.Flash(w, r, flashSuccess, "Artist was successfully deleted!")
			h.responder.Redirect(w, r, "/")
		case errs.IsNotFound(err):
			h.responder.NotFound(w, r)
		default:
			h.logger.Error().Err(err).Uint("artistID", artistID).Msg("delete artist failed")
			h.responder.Flash(w, r, flashDanger, "An error occurred. Artist could not be deleted.")
			h.responder.Redirect(w, r, fmt.Sprintf("/artists/%d", artistID))
		}
	}
}
