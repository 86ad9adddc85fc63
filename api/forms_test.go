package api

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rpupo63/fyyur/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStartTime(t *testing.T) {
	want := time.Date(2035, time.April, 1, 20, 0, 0, 0, time.UTC)

	for _, value := range []string{
		"2035-04-01T20:00:00Z",
		"2035-04-01T22:00:00+02:00",
		"2035-04-01 20:00:00",
		"2035-04-01T20:00",
	} {
		got, err := parseStartTime(value)
		require.NoError(t, err, value)
		assert.True(t, got.Equal(want), value)
		assert.Equal(t, time.UTC, got.Location(), value)
	}

	_, err := parseStartTime("")
	assert.True(t, errs.IsMissingRequiredField(err))

	_, err = parseStartTime("yesterday")
	assert.True(t, errs.IsInvalidField(err))
}

func TestDecodeVenue(t *testing.T) {
	form := url.Values{
		"name":           {"The Musical Hop"},
		"genres":         {"Jazz", "Folk"},
		"seeking_talent": {"y"},
		"website":        {"https://www.themusicalhop.com"},
	}
	req := httptest.NewRequest("POST", "/venues/create", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	venue, err := decodeVenue(req)

	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", venue.Name)
	assert.Equal(t, []string{"Jazz", "Folk"}, []string(venue.Genres))
	assert.True(t, venue.SeekingTalent)
	assert.Equal(t, "https://www.themusicalhop.com", venue.Website)
}

func TestDecodeShowKeepsView(t *testing.T) {
	form := url.Values{"artist_id": {"4"}, "venue_id": {"x"}, "start_time": {"2035-04-01T20:00"}}
	req := httptest.NewRequest("POST", "/shows/create", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	show, view, err := decodeShow(req)

	assert.Nil(t, show)
	assert.True(t, errs.IsInvalidField(err))
	assert.Equal(t, uint(4), view.ArtistID)
	assert.Equal(t, "2035-04-01T20:00", view.StartTime)
}
