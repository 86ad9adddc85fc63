package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/rpupo63/fyyur/database"
	"github.com/rpupo63/fyyur/database/dbtest"
	"github.com/rpupo63/fyyur/errs"
	"github.com/rpupo63/fyyur/models"
	"github.com/rpupo63/fyyur/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, time.June, 15, 18, 0, 0, 0, time.UTC)

type fixture struct {
	db      database.Database
	catalog *services.Catalog
	venues  map[string]*models.Venue
	artists map[string]*models.Artist
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db := database.New(dbtest.New(t))
	f := &fixture{
		db:      db,
		catalog: services.NewCatalog(db),
		venues:  map[string]*models.Venue{},
		artists: map[string]*models.Artist{},
	}

	for _, v := range []*models.Venue{
		{Name: "The Musical Hop", City: "San Francisco", State: "CA", ImageLink: "hop.jpg"},
		{Name: "The Dueling Pianos Bar", City: "New York", State: "NY", ImageLink: "pianos.jpg"},
		{Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", ImageLink: "park.jpg"},
	} {
		require.NoError(t, db.VenueRepo().Add(ctx, v))
		f.venues[v.Name] = v
	}
	for _, a := range []*models.Artist{
		{Name: "Guns N Petals", ImageLink: "petals.jpg"},
		{Name: "Matt Quevado", ImageLink: "matt.jpg"},
		{Name: "The Wild Sax Band", ImageLink: "sax.jpg"},
	} {
		require.NoError(t, db.ArtistRepo().Add(ctx, a))
		f.artists[a.Name] = a
	}
	return f
}

func (f *fixture) show(t *testing.T, venue, artist string, start time.Time) {
	t.Helper()
	require.NoError(t, f.db.ShowRepo().Add(context.Background(), &models.Show{
		VenueID:   f.venues[venue].ID,
		ArtistID:  f.artists[artist].ID,
		StartTime: start,
	}))
}

func itemNames(r services.SearchResult) []string {
	names := make([]string, 0, len(r.Data))
	for _, item := range r.Data {
		names = append(names, item.Name)
	}
	return names
}

func TestSearchArtistsByName(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	result, err := f.catalog.SearchByName(ctx, services.KindArtist, "A", now)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Count)
	assert.ElementsMatch(t, []string{"Guns N Petals", "Matt Quevado", "The Wild Sax Band"}, itemNames(result))

	result, err = f.catalog.SearchByName(ctx, services.KindArtist, "band", now)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, []string{"The Wild Sax Band"}, itemNames(result))

	result, err = f.catalog.SearchByName(ctx, services.KindArtist, "BAND", now)
	require.NoError(t, err)
	assert.Equal(t, []string{"The Wild Sax Band"}, itemNames(result))
}

func TestSearchVenuesByName(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.show(t, "The Musical Hop", "Guns N Petals", now.Add(24*time.Hour))
	f.show(t, "The Musical Hop", "Matt Quevado", now.Add(-24*time.Hour))

	result, err := f.catalog.SearchByName(ctx, services.KindVenue, "hop", now)
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "The Musical Hop", result.Data[0].Name)
	assert.Equal(t, 1, result.Data[0].NumUpcomingShows)

	result, err = f.catalog.SearchByName(ctx, services.KindVenue, "Music", now)
	require.NoError(t, err)
	assert.Equal(t, []string{"Park Square Live Music & Coffee", "The Musical Hop"}, itemNames(result))
}

func TestSearchBlankTermReturnsEverything(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, term := range []string{"", "   "} {
		result, err := f.catalog.SearchByName(ctx, services.KindVenue, term, now)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Count)
		assert.Len(t, result.Data, 3)
	}
}

func TestSearchUnknownKind(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.SearchByName(context.Background(), services.Kind("stage"), "x", now)
	assert.True(t, errs.IsValidation(err))
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]services.Kind{"venue": services.KindVenue, "Venues": services.KindVenue, "ARTIST": services.KindArtist, "artists": services.KindArtist} {
		got, err := services.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := services.ParseKind("show")
	assert.True(t, errs.IsValidation(err))
}

func TestListShowsForVenuePartitionsAroundNow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.show(t, "The Musical Hop", "Guns N Petals", now.Add(-time.Hour))
	f.show(t, "The Musical Hop", "Matt Quevado", now.Add(time.Hour))
	f.show(t, "The Musical Hop", "The Wild Sax Band", now.Add(48*time.Hour))
	f.show(t, "The Musical Hop", "The Wild Sax Band", now)
	f.show(t, "The Dueling Pianos Bar", "Guns N Petals", now.Add(time.Hour))

	detail, err := f.catalog.ListShowsForVenue(ctx, f.venues["The Musical Hop"].ID, now)
	require.NoError(t, err)

	assert.Equal(t, "The Musical Hop", detail.Name)
	require.Len(t, detail.PastShows, 1)
	assert.Equal(t, detail.PastShowsCount, len(detail.PastShows))
	assert.Equal(t, "Guns N Petals", detail.PastShows[0].ArtistName)
	assert.Equal(t, "petals.jpg", detail.PastShows[0].ArtistImageLink)

	require.Len(t, detail.UpcomingShows, 2)
	assert.Equal(t, detail.UpcomingShowsCount, len(detail.UpcomingShows))
	assert.Equal(t, "Matt Quevado", detail.UpcomingShows[0].ArtistName)
	assert.Equal(t, "The Wild Sax Band", detail.UpcomingShows[1].ArtistName)

	// moving the reference clock moves shows between the lists
	later, err := f.catalog.ListShowsForVenue(ctx, f.venues["The Musical Hop"].ID, now.Add(72*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 4, later.PastShowsCount)
	assert.Zero(t, later.UpcomingShowsCount)
}

func TestListShowsForArtist(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.show(t, "The Musical Hop", "Guns N Petals", now.Add(-time.Hour))
	f.show(t, "The Dueling Pianos Bar", "Guns N Petals", now.Add(time.Hour))

	detail, err := f.catalog.ListShowsForArtist(ctx, f.artists["Guns N Petals"].ID, now)
	require.NoError(t, err)

	require.Len(t, detail.PastShows, 1)
	assert.Equal(t, "The Musical Hop", detail.PastShows[0].VenueName)
	assert.Equal(t, "hop.jpg", detail.PastShows[0].VenueImageLink)
	require.Len(t, detail.UpcomingShows, 1)
	assert.Equal(t, "The Dueling Pianos Bar", detail.UpcomingShows[0].VenueName)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
}

func TestListShowsForMissingEntity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.catalog.ListShowsForVenue(ctx, 999, now)
	assert.True(t, errs.IsNotFound(err))

	_, err = f.catalog.ListShowsForArtist(ctx, 999, now)
	assert.True(t, errs.IsNotFound(err))
}

func TestGroupVenuesByCity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.show(t, "The Musical Hop", "Guns N Petals", now.Add(time.Hour))
	f.show(t, "The Musical Hop", "Matt Quevado", now.Add(-time.Hour))

	groups, err := f.catalog.GroupVenuesByCity(ctx, now)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "San Francisco", groups[0].City)
	assert.Equal(t, "CA", groups[0].State)
	require.Len(t, groups[0].Venues, 2)
	assert.Equal(t, "Park Square Live Music & Coffee", groups[0].Venues[0].Name)
	assert.Equal(t, "The Musical Hop", groups[0].Venues[1].Name)
	assert.Equal(t, 1, groups[0].Venues[1].NumUpcomingShows)

	assert.Equal(t, "New York", groups[1].City)
	assert.Equal(t, "NY", groups[1].State)
	require.Len(t, groups[1].Venues, 1)
	assert.Equal(t, "The Dueling Pianos Bar", groups[1].Venues[0].Name)
}

func TestListShows(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.show(t, "The Musical Hop", "The Wild Sax Band", now.Add(2*time.Hour))
	f.show(t, "The Dueling Pianos Bar", "Guns N Petals", now.Add(time.Hour))

	listings, err := f.catalog.ListShows(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "The Dueling Pianos Bar", listings[0].VenueName)
	assert.Equal(t, "Guns N Petals", listings[0].ArtistName)
	assert.Equal(t, "sax.jpg", listings[1].ArtistImageLink)
}
