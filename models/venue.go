package models

import (
	"time"

	"gorm.io/datatypes"
)

// Venue is a place that can host shows.
type Venue struct {
	ID                 uint                        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name               string                      `json:"name" form:"name" validate:"required" gorm:"type:text;not null;index:idx_venue_name"`
	City               string                      `json:"city" form:"city" gorm:"type:varchar(120);index:idx_venue_city_state"`
	State              string                      `json:"state" form:"state" gorm:"type:varchar(120);index:idx_venue_city_state"`
	Address            string                      `json:"address" form:"address" gorm:"type:varchar(120)"`
	Phone              string                      `json:"phone" form:"phone" gorm:"type:varchar(120)"`
	ImageLink          string                      `json:"image_link" form:"image_link" gorm:"type:varchar(500)"`
	FacebookLink       string                      `json:"facebook_link" form:"facebook_link" gorm:"type:varchar(120)"`
	Website            string                      `json:"website" form:"website" gorm:"type:varchar(120)"`
	Genres             datatypes.JSONSlice[string] `json:"genres" form:"genres"`
	SeekingTalent      bool                        `json:"seeking_talent" form:"seeking_talent" gorm:"not null;default:false"`
	SeekingDescription string                      `json:"seeking_description" form:"seeking_description" gorm:"type:text"`
	CreatedAt          time.Time                   `json:"created_at" form:"-"`
	UpdatedAt          time.Time                   `json:"updated_at" form:"-"`

	Shows []Show `json:"shows,omitempty" form:"-" gorm:"foreignKey:VenueID;references:ID;constraint:OnDelete:CASCADE"`
}

// VenueMutableColumns lists every column an edit replaces.
var VenueMutableColumns = []string{
	"name", "city", "state", "address", "phone", "image_link", "facebook_link",
	"website", "genres", "seeking_talent", "seeking_description", "updated_at",
}

// Normalize trims free text and turns the genre list into an ordered set.
func (v *Venue) Normalize() {
	v.Name = trim(v.Name)
	v.City = trim(v.City)
	v.State = trim(v.State)
	v.Address = trim(v.Address)
	v.Phone = trim(v.Phone)
	v.ImageLink = trim(v.ImageLink)
	v.FacebookLink = trim(v.FacebookLink)
	v.Website = trim(v.Website)
	v.SeekingDescription = trim(v.SeekingDescription)
	v.Genres = NormalizeGenres(v.Genres)
}
