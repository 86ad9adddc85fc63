package database

import (
	"context"

	"github.com/rpupo63/fyyur/models"
	"gorm.io/gorm"
)

type ArtistRepo struct {
	db *gorm.DB
}

func NewArtistRepo(db *gorm.DB) *ArtistRepo {
	return &ArtistRepo{db}
}

// FindAll returns all artists ordered by name
func (r *ArtistRepo) FindAll(ctx context.Context) ([]*models.Artist, error) {
	var artists []*models.Artist
	err := r.db.WithContext(ctx).Order("name, id").Find(&artists).Error
	return artists, classify("find", "artists", nil, err)
}

// FindByID returns an artist by its ID
func (r *ArtistRepo) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.WithContext(ctx).First(&artist, id).Error; err != nil {
		return nil, classify("find", "artist", id, err)
	}
	return &artist, nil
}

// SearchByName returns artists whose name contains term, ignoring case
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]*models.Artist, error) {
	var artists []*models.Artist
	err := r.db.WithContext(ctx).Scopes(nameContains(term)).Order("name, id").Find(&artists).Error
	return artists, classify("search", "artists", nil, err)
}

// Add validates and inserts a new artist. On success artist carries its new ID.
func (r *ArtistRepo) Add(ctx context.Context, artist *models.Artist) error {
	artist.Normalize()
	artist.ID = 0
	if err := validateEntity(artist); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Shows").Create(artist).Error
	})
	return classify("create", "artist", nil, err)
}

// Update replaces every mutable field of the artist with the given ID and
// reloads artist from the stored row. An unknown ID is reported as not found
// before the submitted fields are validated.
func (r *ArtistRepo) Update(ctx context.Context, id uint, artist *models.Artist) error {
	artist.Normalize()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Artist{}, id).Error; err != nil {
			return classify("find", "artist", id, err)
		}
		if err := validateEntity(artist); err != nil {
			return err
		}

		artist.ID = id
		if err := tx.Model(artist).Select(models.ArtistMutableColumns).Updates(artist).Error; err != nil {
			return err
		}

		return tx.First(artist, id).Error
	})
	return classify("update", "artist", id, err)
}

// Delete removes the artist with the given ID together with its shows
func (r *ArtistRepo) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Artist{}, id).Error; err != nil {
			return classify("find", "artist", id, err)
		}

		if err := tx.Where("artist_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Artist{}, id).Error
	})
	return classify("delete", "artist", id, err)
}
