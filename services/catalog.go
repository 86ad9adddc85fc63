package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rpupo63/fyyur/database"
	"github.com/rpupo63/fyyur/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Kind selects the entity a name search runs against.
type Kind string

const (
	KindVenue  Kind = "venue"
	KindArtist Kind = "artist"
)

// ParseKind accepts singular or plural entity names in any case.
func ParseKind(s string) (Kind, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s") {
	case "venue":
		return KindVenue, nil
	case "artist":
		return KindArtist, nil
	}
	return "", errs.NewInvalidFieldError("kind", fmt.Sprintf("unknown kind %q", s))
}

// SearchItem is one match of a name search.
type SearchItem struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResult holds every match of a name search; Count equals len(Data).
type SearchResult struct {
	Count int          `json:"count"`
	Data  []SearchItem `json:"data"`
}

// Catalog answers the read-side questions of the booking site. Every method
// that compares show times takes the reference time explicitly.
type Catalog struct {
	logger  zerolog.Logger
	venues  *database.VenueRepo
	artists *database.ArtistRepo
	shows   *database.ShowRepo
}

func NewCatalog(db database.Database) *Catalog {
	return &Catalog{
		logger:  log.With().Str("service", "catalog").Logger(),
		venues:  db.VenueRepo(),
		artists: db.ArtistRepo(),
		shows:   db.ShowRepo(),
	}
}

// SearchByName matches term as a case-insensitive substring of the entity
// name. A blank term returns every entity of that kind.
func (c *Catalog) SearchByName(ctx context.Context, kind Kind, term string, now time.Time) (SearchResult, error) {
	var (
		ids   []uint
		names []string
		owner database.Owner
	)

	switch kind {
	case KindVenue:
		venues, err := c.venues.SearchByName(ctx, term)
		if err != nil {
			return SearchResult{}, err
		}
		for _, v := range venues {
			ids = append(ids, v.ID)
			names = append(names, v.Name)
		}
		owner = database.ByVenue
	case KindArtist:
		artists, err := c.artists.SearchByName(ctx, term)
		if err != nil {
			return SearchResult{}, err
		}
		for _, a := range artists {
			ids = append(ids, a.ID)
			names = append(names, a.Name)
		}
		owner = database.ByArtist
	default:
		return SearchResult{}, errs.NewInvalidFieldError("kind", fmt.Sprintf("unknown kind %q", kind))
	}

	counts, err := c.shows.CountUpcoming(ctx, owner, ids, now)
	if err != nil {
		return SearchResult{}, err
	}

	result := SearchResult{Count: len(ids), Data: make([]SearchItem, 0, len(ids))}
	for i, id := range ids {
		result.Data = append(result.Data, SearchItem{ID: id, Name: names[i], NumUpcomingShows: counts[id]})
	}

	c.logger.Debug().Str("kind", string(kind)).Str("term", term).Int("count", result.Count).Msg("search")
	return result, nil
}
