package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rpupo63/fyyur/errs"
	"github.com/rpupo63/fyyur/models"
	"gorm.io/gorm"
)

type ShowRepo struct {
	db *gorm.DB
}

func NewShowRepo(db *gorm.DB) *ShowRepo {
	return &ShowRepo{db}
}

// FindAll returns every show with its venue and artist, earliest first
func (r *ShowRepo) FindAll(ctx context.Context) ([]*models.Show, error) {
	var shows []*models.Show
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Artist").
		Order("start_time, id").
		Find(&shows).Error
	return shows, classify("find", "shows", nil, err)
}

// FindForVenue returns the shows of a venue inside window, with the artist loaded
func (r *ShowRepo) FindForVenue(ctx context.Context, venueID uint, window TimeWindow, now time.Time) ([]*models.Show, error) {
	var shows []*models.Show
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Scopes(inWindow(window, now)).
		Where("venue_id = ?", venueID).
		Order("start_time, id").
		Find(&shows).Error
	return shows, classify("find "+window.String(), "shows", nil, err)
}

// FindForArtist returns the shows of an artist inside window, with the venue loaded
func (r *ShowRepo) FindForArtist(ctx context.Context, artistID uint, window TimeWindow, now time.Time) ([]*models.Show, error) {
	var shows []*models.Show
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Scopes(inWindow(window, now)).
		Where("artist_id = ?", artistID).
		Order("start_time, id").
		Find(&shows).Error
	return shows, classify("find "+window.String(), "shows", nil, err)
}

// Owner names the side of a show that counts are grouped by.
type Owner string

const (
	ByVenue  Owner = "venue_id"
	ByArtist Owner = "artist_id"
)

type ownerCount struct {
	OwnerID uint
	Total   int
}

// CountUpcoming returns, per owner ID, the number of shows starting strictly
// after now. Owners without upcoming shows are absent from the map.
func (r *ShowRepo) CountUpcoming(ctx context.Context, owner Owner, ids []uint, now time.Time) (map[uint]int, error) {
	counts := make(map[uint]int, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}
	if owner != ByVenue && owner != ByArtist {
		return nil, fmt.Errorf("unknown show owner %q", owner)
	}

	var rows []ownerCount
	err := r.db.WithContext(ctx).
		Model(&models.Show{}).
		Select(string(owner)+" AS owner_id, COUNT(*) AS total").
		Scopes(inWindow(Upcoming, now)).
		Where(string(owner)+" IN ?", ids).
		Group(string(owner)).
		Scan(&rows).Error
	if err != nil {
		return nil, classify("count upcoming", "shows", nil, err)
	}

	for _, row := range rows {
		counts[row.OwnerID] = row.Total
	}
	return counts, nil
}

// Add inserts a show after checking, in the same transaction, that its
// venue and artist exist.
func (r *ShowRepo) Add(ctx context.Context, show *models.Show) error {
	if show.VenueID == 0 {
		return errs.NewMissingFieldError("venue_id")
	}
	if show.ArtistID == 0 {
		return errs.NewMissingFieldError("artist_id")
	}
	if show.StartTime.IsZero() {
		return errs.NewMissingFieldError("start_time")
	}

	show.ID = 0
	show.StartTime = show.StartTime.UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var found int64
		if err := tx.Model(&models.Venue{}).Where("id = ?", show.VenueID).Count(&found).Error; err != nil {
			return err
		}
		if found == 0 {
			return errs.NewInvalidFieldError("venue_id", fmt.Sprintf("venue %d does not exist", show.VenueID))
		}

		if err := tx.Model(&models.Artist{}).Where("id = ?", show.ArtistID).Count(&found).Error; err != nil {
			return err
		}
		if found == 0 {
			return errs.NewInvalidFieldError("artist_id", fmt.Sprintf("artist %d does not exist", show.ArtistID))
		}

		return tx.Omit("Venue", "Artist").Create(show).Error
	})
	return classify("create", "show", nil, err)
}
