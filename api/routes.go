package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes registers every page, form and JSON endpoint
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/", handlers.homeHandler.index())
	r.Get("/healthz", handlers.homeHandler.healthz())

	// Venue endpoints
	r.Route("/venues", func(r chi.Router) {
		r.Get("/", handlers.venueHandler.listVenues())
		r.Post("/search", handlers.venueHandler.searchVenues())
		r.Get("/create", handlers.venueHandler.createVenueForm())
		r.Post("/create", handlers.venueHandler.createVenue())
		r.Get("/{id}", handlers.venueHandler.getVenue())
		r.Get("/{id}/edit", handlers.venueHandler.editVenueForm())
		r.Post("/{id}/edit", handlers.venueHandler.editVenue())
		r.Delete("/{id}/delete", handlers.venueHandler.deleteVenue())
		r.Post("/{id}/delete", handlers.venueHandler.deleteVenueForm())
	})

	// Artist endpoints
	r.Route("/artists", func(r chi.Router) {
		r.Get("/", handlers.artistHandler.listArtists())
		r.Post("/search", handlers.artistHandler.searchArtists())
		r.Get("/create", handlers.artistHandler.createArtistForm())
		r.Post("/create", handlers.artistHandler.createArtist())
		r.Get("/{id}", handlers.artistHandler.getArtist())
		r.Get("/{id}/edit", handlers.artistHandler.editArtistForm())
		r.Post("/{id}/edit", handlers.artistHandler.editArtist())
		r.Delete("/{id}/delete", handlers.artistHandler.deleteArtist())
		r.Post("/{id}/delete", handlers.artistHandler.deleteArtistForm())
	})

	// Show endpoints
	r.Route("/shows", func(r chi.Router) {
		r.Get("/", handlers.showHandler.listShows())
		r.Get("/create", handlers.showHandler.createShowForm())
		r.Post("/create", handlers.showHandler.createShow())
	})
}
