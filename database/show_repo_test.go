package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/rpupo63/fyyur/database"
	"github.com/rpupo63/fyyur/database/dbtest"
	"github.com/rpupo63/fyyur/errs"
	"github.com/rpupo63/fyyur/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func TestShowRepoAddChecksReferences(t *testing.T) {
	ctx := context.Background()
	db := database.New(dbtest.New(t))

	venue := &models.Venue{Name: "The Musical Hop"}
	require.NoError(t, db.VenueRepo().Add(ctx, venue))
	artist := &models.Artist{Name: "Guns N Petals"}
	require.NoError(t, db.ArtistRepo().Add(ctx, artist))
	start := mustTime(t, "2035-04-01T20:00:00Z")

	err := db.ShowRepo().Add(ctx, &models.Show{VenueID: venue.ID + 100, ArtistID: artist.ID, StartTime: start})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err), "got %v", err)

	err = db.ShowRepo().Add(ctx, &models.Show{VenueID: venue.ID, ArtistID: artist.ID + 100, StartTime: start})
	assert.True(t, errs.IsValidation(err), "got %v", err)

	err = db.ShowRepo().Add(ctx, &models.Show{VenueID: venue.ID, ArtistID: artist.ID})
	assert.True(t, errs.IsMissingRequiredField(err), "got %v", err)

	shows, err := db.ShowRepo().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, shows, "rejected shows write nothing")

	show := &models.Show{VenueID: venue.ID, ArtistID: artist.ID, StartTime: start}
	require.NoError(t, db.ShowRepo().Add(ctx, show))
	assert.NotZero(t, show.ID)

	// the same pairing may play more than once
	require.NoError(t, db.ShowRepo().Add(ctx, &models.Show{VenueID: venue.ID, ArtistID: artist.ID, StartTime: start.Add(24 * time.Hour)}))

	shows, err = db.ShowRepo().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, shows, 2)
	assert.Equal(t, "The Musical Hop", shows[0].Venue.Name)
	assert.Equal(t, "Guns N Petals", shows[0].Artist.Name)
	assert.True(t, shows[0].StartTime.Equal(start))
}

func TestShowRepoWindowsAndCounts(t *testing.T) {
	ctx := context.Background()
	db := database.New(dbtest.New(t))

	hop := &models.Venue{Name: "The Musical Hop"}
	park := &models.Venue{Name: "Park Square Live Music & Coffee"}
	require.NoError(t, db.VenueRepo().Add(ctx, hop))
	require.NoError(t, db.VenueRepo().Add(ctx, park))
	artist := &models.Artist{Name: "The Wild Sax Band"}
	require.NoError(t, db.ArtistRepo().Add(ctx, artist))

	now := mustTime(t, "2030-01-01T12:00:00Z")
	for _, s := range []struct {
		venue uint
		start time.Time
	}{
		{hop.ID, now.Add(-48 * time.Hour)},
		{hop.ID, now},
		{hop.ID, now.Add(time.Hour)},
		{hop.ID, now.Add(72 * time.Hour)},
		{park.ID, now.Add(-time.Hour)},
	} {
		require.NoError(t, db.ShowRepo().Add(ctx, &models.Show{VenueID: s.venue, ArtistID: artist.ID, StartTime: s.start}))
	}

	past, err := db.ShowRepo().FindForVenue(ctx, hop.ID, database.Past, now)
	require.NoError(t, err)
	require.Len(t, past, 1)
	assert.Equal(t, "The Wild Sax Band", past[0].Artist.Name)

	upcoming, err := db.ShowRepo().FindForVenue(ctx, hop.ID, database.Upcoming, now)
	require.NoError(t, err)
	assert.Len(t, upcoming, 2, "a show starting exactly now is neither past nor upcoming")

	artistPast, err := db.ShowRepo().FindForArtist(ctx, artist.ID, database.Past, now)
	require.NoError(t, err)
	assert.Len(t, artistPast, 2)

	counts, err := db.ShowRepo().CountUpcoming(ctx, database.ByVenue, []uint{hop.ID, park.ID}, now)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{hop.ID: 2}, counts)

	counts, err = db.ShowRepo().CountUpcoming(ctx, database.ByArtist, []uint{artist.ID}, now)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[artist.ID])

	counts, err = db.ShowRepo().CountUpcoming(ctx, database.ByVenue, nil, now)
	require.NoError(t, err)
	assert.Empty(t, counts)
}
