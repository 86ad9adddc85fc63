package services

import (
	"context"
	"time"

	"github.com/rpupo63/fyyur/database"
	"github.com/rpupo63/fyyur/models"
)

// ArtistAppearance is a show seen from the venue side.
type ArtistAppearance struct {
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// VenueBooking is a show seen from the artist side.
type VenueBooking struct {
	VenueID        uint      `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// VenueDetail is a venue with its shows split around the reference time.
type VenueDetail struct {
	*models.Venue
	PastShows          []ArtistAppearance `json:"past_shows"`
	UpcomingShows      []ArtistAppearance `json:"upcoming_shows"`
	PastShowsCount     int                `json:"past_shows_count"`
	UpcomingShowsCount int                `json:"upcoming_shows_count"`
}

// ArtistDetail is an artist with its shows split around the reference time.
type ArtistDetail struct {
	*models.Artist
	PastShows          []VenueBooking `json:"past_shows"`
	UpcomingShows      []VenueBooking `json:"upcoming_shows"`
	PastShowsCount     int            `json:"past_shows_count"`
	UpcomingShowsCount int            `json:"upcoming_shows_count"`
}

// ShowListing is one row of the all-shows page.
type ShowListing struct {
	ID              uint      `json:"id"`
	VenueID         uint      `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ListShowsForVenue loads the venue and partitions its shows into past
// (strictly before now) and upcoming (strictly after now).
func (c *Catalog) ListShowsForVenue(ctx context.Context, venueID uint, now time.Time) (*VenueDetail, error) {
	venue, err := c.venues.FindByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	past, err := c.shows.FindForVenue(ctx, venueID, database.Past, now)
	if err != nil {
		return nil, err
	}
	upcoming, err := c.shows.FindForVenue(ctx, venueID, database.Upcoming, now)
	if err != nil {
		return nil, err
	}

	detail := &VenueDetail{
		Venue:         venue,
		PastShows:     toAppearances(past),
		UpcomingShows: toAppearances(upcoming),
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail, nil
}

// ListShowsForArtist is the artist-side counterpart of ListShowsForVenue.
func (c *Catalog) ListShowsForArtist(ctx context.Context, artistID uint, now time.Time) (*ArtistDetail, error) {
	artist, err := c.artists.FindByID(ctx, artistID)
	if err != nil {
		return nil, err
	}

	past, err := c.shows.FindForArtist(ctx, artistID, database.Past, now)
	if err != nil {
		return nil, err
	}
	upcoming, err := c.shows.FindForArtist(ctx, artistID, database.Upcoming, now)
	if err != nil {
		return nil, err
	}

	detail := &ArtistDetail{
		Artist:        artist,
		PastShows:     toBookings(past),
		UpcomingShows: toBookings(upcoming),
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail, nil
}

// ListShows returns every show with both sides' names, earliest first.
func (c *Catalog) ListShows(ctx context.Context) ([]ShowListing, error) {
	shows, err := c.shows.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]ShowListing, 0, len(shows))
	for _, s := range shows {
		listings = append(listings, ShowListing{
			ID:              s.ID,
			VenueID:         s.VenueID,
			VenueName:       s.Venue.Name,
			ArtistID:        s.ArtistID,
			ArtistName:      s.Artist.Name,
			ArtistImageLink: s.Artist.ImageLink,
			StartTime:       s.StartTime,
		})
	}
	return listings, nil
}

func toAppearances(shows []*models.Show) []ArtistAppearance {
	out := make([]ArtistAppearance, 0, len(shows))
	for _, s := range shows {
		out = append(out, ArtistAppearance{
			ArtistID:        s.ArtistID,
			ArtistName:      s.Artist.Name,
			ArtistImageLink: s.Artist.ImageLink,
			StartTime:       s.StartTime,
		})
	}
	return out
}

func toBookings(shows []*models.Show) []VenueBooking {
	out := make([]VenueBooking, 0, len(shows))
	for _, s := range shows {
		out = append(out, VenueBooking{
			VenueID:        s.VenueID,
			VenueName:      s.Venue.Name,
			VenueImageLink: s.Venue.ImageLink,
			StartTime:      s.StartTime,
		})
	}
	return out
}
