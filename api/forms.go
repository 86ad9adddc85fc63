package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form/v4"
	"github.com/rpupo63/fyyur/errs"
	"github.com/rpupo63/fyyur/models"
)

var formDecoder = newFormDecoder()

func newFormDecoder() *form.Decoder {
	d := form.NewDecoder()
	// Checkboxes post "y"; anything ParseSeeking does not accept is false.
	d.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		return models.ParseSeeking(vals[0]), nil
	}, false)
	return d
}

// showForm is the raw show submission; ids stay strings until validated.
type showForm struct {
	ArtistID  string `form:"artist_id"`
	VenueID   string `form:"venue_id"`
	StartTime string `form:"start_time"`
}

// showFormView refills the show form after a failed submission.
type showFormView struct {
	ArtistID  uint
	VenueID   uint
	StartTime string
}

var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

func decodeVenue(r *http.Request) (*models.Venue, error) {
	if err := r.ParseForm(); err != nil {
		return nil, errs.Malformed("venue form")
	}
	var venue models.Venue
	if err := formDecoder.Decode(&venue, r.PostForm); err != nil {
		return nil, errs.Malformed("venue form")
	}
	return &venue, nil
}

func decodeArtist(r *http.Request) (*models.Artist, error) {
	if err := r.ParseForm(); err != nil {
		return nil, errs.Malformed("artist form")
	}
	var artist models.Artist
	if err := formDecoder.Decode(&artist, r.PostForm); err != nil {
		return nil, errs.Malformed("artist form")
	}
	return &artist, nil
}

// decodeShow returns the show to insert and the values to refill the form
// with. The view is usable even when err is not nil.
func decodeShow(r *http.Request) (*models.Show, showFormView, error) {
	var view showFormView
	if err := r.ParseForm(); err != nil {
		return nil, view, errs.Malformed("show form")
	}
	var raw showForm
	if err := formDecoder.Decode(&raw, r.PostForm); err != nil {
		return nil, view, errs.Malformed("show form")
	}
	view.StartTime = strings.TrimSpace(raw.StartTime)

	artistID, err := parseFormID("artist_id", raw.ArtistID)
	if err != nil {
		return nil, view, err
	}
	view.ArtistID = artistID

	venueID, err := parseFormID("venue_id", raw.VenueID)
	if err != nil {
		return nil, view, err
	}
	view.VenueID = venueID

	startTime, err := parseStartTime(view.StartTime)
	if err != nil {
		return nil, view, err
	}

	return &models.Show{ArtistID: artistID, VenueID: venueID, StartTime: startTime}, view, nil
}

func parseFormID(field, value string) (uint, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errs.NewMissingFieldError(field)
	}
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewInvalidFieldError(field, field+" must be a positive number")
	}
	return uint(id), nil
}

// parseStartTime accepts RFC 3339 and the browser datetime-local formats.
// Times without a zone are taken as UTC.
func parseStartTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errs.NewMissingFieldError("start_time")
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errs.NewInvalidFieldError("start_time", "start_time is not a valid date and time")
}

// pathID reads the {id} URL parameter. A non-numeric id reports false and
// callers answer 404.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
