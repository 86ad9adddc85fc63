package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGenres(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"keeps order", []string{"Jazz", "Reggae", "Swing"}, []string{"Jazz", "Reggae", "Swing"}},
		{"multi word genre", []string{"Rock n Roll", "Hip-Hop"}, []string{"Rock n Roll", "Hip-Hop"}},
		{"drops blanks", []string{" ", "", "Folk "}, []string{"Folk"}},
		{"case-insensitive dedupe keeps first", []string{"jazz", "Blues", "JAZZ"}, []string{"jazz", "Blues"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeGenres(tt.in))
		})
	}
}

func TestParseSeeking(t *testing.T) {
	for _, v := range []string{"y", "Yes", "TRUE", "on", "1", " y "} {
		assert.True(t, ParseSeeking(v), v)
	}
	for _, v := range []string{"", "n", "no", "false", "off", "0", "maybe"} {
		assert.False(t, ParseSeeking(v), v)
	}
}

func TestVenueNormalize(t *testing.T) {
	v := Venue{
		Name:   "  The Musical Hop ",
		City:   " San Francisco",
		Genres: []string{"Jazz", " jazz", "Classical"},
	}
	v.Normalize()

	assert.Equal(t, "The Musical Hop", v.Name)
	assert.Equal(t, "San Francisco", v.City)
	assert.Equal(t, []string{"Jazz", "Classical"}, []string(v.Genres))
}
