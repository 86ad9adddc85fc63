package models

import "time"

// Show pairs one venue and one artist at a start time. Shows are never
// edited; they go away only with their venue or artist.
type Show struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	VenueID   uint      `json:"venue_id" gorm:"not null;index:idx_show_venue_artist,priority:1"`
	ArtistID  uint      `json:"artist_id" gorm:"not null;index:idx_show_venue_artist,priority:2;index:idx_show_artist_id"`
	StartTime time.Time `json:"start_time" gorm:"not null;index:idx_show_start_time"`

	Venue  Venue  `json:"venue,omitempty" gorm:"foreignKey:VenueID;references:ID"`
	Artist Artist `json:"artist,omitempty" gorm:"foreignKey:ArtistID;references:ID"`
}
