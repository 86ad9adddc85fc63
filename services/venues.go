package services

import (
	"context"
	"time"

	"github.com/rpupo63/fyyur/database"
)

// VenueSummary is a venue entry of the by-city listing.
type VenueSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// CityGroup holds the venues of one city.
type CityGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// GroupVenuesByCity groups every venue by (city, state). Groups come out in
// state then city order; venues inside a group keep name order.
func (c *Catalog) GroupVenuesByCity(ctx context.Context, now time.Time) ([]CityGroup, error) {
	venues, err := c.venues.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(venues))
	for _, v := range venues {
		ids = append(ids, v.ID)
	}
	counts, err := c.shows.CountUpcoming(ctx, database.ByVenue, ids, now)
	if err != nil {
		return nil, err
	}

	type cityKey struct{ city, state string }
	index := make(map[cityKey]int)
	var groups []CityGroup

	for _, v := range venues {
		key := cityKey{v.City, v.State}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, CityGroup{City: v.City, State: v.State})
		}
		groups[i].Venues = append(groups[i].Venues, VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}

	return groups, nil
}
