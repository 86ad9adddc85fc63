package api

import (
	"bytes"
	"testing"
	"time"

	"github.com/rpupo63/fyyur/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererParsesEveryPage(t *testing.T) {
	r, err := NewRenderer(templates.FS)
	require.NoError(t, err)

	for _, page := range []string{
		"pages/home", "pages/venues", "pages/artists", "pages/shows",
		"pages/show_venue", "pages/show_artist",
		"pages/search_venues", "pages/search_artists",
		"forms/new_venue", "forms/edit_venue", "forms/new_artist",
		"forms/edit_artist", "forms/new_show",
		"errors/404", "errors/500",
	} {
		assert.True(t, r.Has(page), page)
	}
	assert.False(t, r.Has("forms/_venue_fields"))
}

func TestRendererShowsFlashes(t *testing.T) {
	r, err := NewRenderer(templates.FS)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Execute(&buf, "pages/home", map[string]any{
		"flashes": []Flash{{Kind: flashSuccess, Message: "Venue <Hop> was successfully listed!"}},
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `alert-success`)
	assert.Contains(t, buf.String(), "Venue &lt;Hop&gt; was successfully listed!")
}

func TestRendererUnknownPage(t *testing.T) {
	r, err := NewRenderer(templates.FS)
	require.NoError(t, err)

	assert.Error(t, r.Execute(&bytes.Buffer{}, "pages/missing", nil))
}

func TestFormatDatetime(t *testing.T) {
	ts := time.Date(2035, time.April, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "Sunday April, 1, 2035 at 8:00PM", formatDatetime(ts, "full"))
	assert.Equal(t, "Sun 04, 01, 2035 8:00PM", formatDatetime(ts, "medium"))
}

func TestContainsIgnoresCase(t *testing.T) {
	assert.True(t, contains([]string{"Jazz", "Folk"}, "jazz"))
	assert.False(t, contains(nil, "Jazz"))
}
