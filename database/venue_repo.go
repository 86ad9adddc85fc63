package database

import (
	"context"

	"github.com/rpupo63/fyyur/models"
	"gorm.io/gorm"
)

type VenueRepo struct {
	db *gorm.DB
}

func NewVenueRepo(db *gorm.DB) *VenueRepo {
	return &VenueRepo{db}
}

// FindAll returns all venues ordered by state, city and name
func (r *VenueRepo) FindAll(ctx context.Context) ([]*models.Venue, error) {
	var venues []*models.Venue
	err := r.db.WithContext(ctx).Order("state, city, name, id").Find(&venues).Error
	return venues, classify("find", "venues", nil, err)
}

// FindByID returns a venue by its ID
func (r *VenueRepo) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, classify("find", "venue", id, err)
	}
	return &venue, nil
}

// SearchByName returns venues whose name contains term, ignoring case
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]*models.Venue, error) {
	var venues []*models.Venue
	err := r.db.WithContext(ctx).Scopes(nameContains(term)).Order("name, id").Find(&venues).Error
	return venues, classify("search", "venues", nil, err)
}

// Add validates and inserts a new venue. On success venue carries its new ID.
func (r *VenueRepo) Add(ctx context.Context, venue *models.Venue) error {
	venue.Normalize()
	venue.ID = 0
	if err := validateEntity(venue); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Shows").Create(venue).Error
	})
	return classify("create", "venue", nil, err)
}

// Update replaces every mutable field of the venue with the given ID and
// reloads venue from the stored row. An unknown ID is reported as not found
// before the submitted fields are validated.
func (r *VenueRepo) Update(ctx context.Context, id uint, venue *models.Venue) error {
	venue.Normalize()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Venue{}, id).Error; err != nil {
			return classify("find", "venue", id, err)
		}
		if err := validateEntity(venue); err != nil {
			return err
		}

		venue.ID = id
		if err := tx.Model(venue).Select(models.VenueMutableColumns).Updates(venue).Error; err != nil {
			return err
		}

		return tx.First(venue, id).Error
	})
	return classify("update", "venue", id, err)
}

// Delete removes the venue with the given ID together with its shows
func (r *VenueRepo) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Venue{}, id).Error; err != nil {
			return classify("find", "venue", id, err)
		}

		if err := tx.Where("venue_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Venue{}, id).Error
	})
	return classify("delete", "venue", id, err)
}
