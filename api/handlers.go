package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	homeHandler   homeHandler
	venueHandler  venueHandler
	artistHandler artistHandler
	showHandler   showHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(app *App) *routeHandlers {
	return &routeHandlers{
		homeHandler:   newHomeHandler(app),
		venueHandler:  newVenueHandler(app),
		artistHandler: newArtistHandler(app),
		showHandler:   newShowHandler(app),
	}
}
