package models

import (
	"time"

	"gorm.io/datatypes"
)

// Artist is a performer who can play shows.
type Artist struct {
	ID                 uint                        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name               string                      `json:"name" form:"name" validate:"required" gorm:"type:text;not null;index:idx_artist_name"`
	City               string                      `json:"city" form:"city" gorm:"type:varchar(120)"`
	State              string                      `json:"state" form:"state" gorm:"type:varchar(120)"`
	Phone              string                      `json:"phone" form:"phone" gorm:"type:varchar(120)"`
	Genres             datatypes.JSONSlice[string] `json:"genres" form:"genres"`
	ImageLink          string                      `json:"image_link" form:"image_link" gorm:"type:varchar(500)"`
	FacebookLink       string                      `json:"facebook_link" form:"facebook_link" gorm:"type:varchar(120)"`
	Website            string                      `json:"website" form:"website" gorm:"type:varchar(120)"`
	SeekingVenue       bool                        `json:"seeking_venue" form:"seeking_venue" gorm:"not null;default:false"`
	SeekingDescription string                      `json:"seeking_description" form:"seeking_description" gorm:"type:text"`
	CreatedAt          time.Time                   `json:"created_at" form:"-"`
	UpdatedAt          time.Time                   `json:"updated_at" form:"-"`

	Shows []Show `json:"shows,omitempty" form:"-" gorm:"foreignKey:ArtistID;references:ID;constraint:OnDelete:CASCADE"`
}

// ArtistMutableColumns lists every column an edit replaces.
var ArtistMutableColumns = []string{
	"name", "city", "state", "phone", "genres", "image_link", "facebook_link",
	"website", "seeking_venue", "seeking_description", "updated_at",
}

func (a *Artist) Normalize() {
	a.Name = trim(a.Name)
	a.City = trim(a.City)
	a.State = trim(a.State)
	a.Phone = trim(a.Phone)
	a.ImageLink = trim(a.ImageLink)
	a.FacebookLink = trim(a.FacebookLink)
	a.Website = trim(a.Website)
	a.SeekingDescription = trim(a.SeekingDescription)
	a.Genres = NormalizeGenres(a.Genres)
}
