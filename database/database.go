package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Database struct {
	db         *gorm.DB
	venueRepo  *VenueRepo
	artistRepo *ArtistRepo
	showRepo   *ShowRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:         db,
		venueRepo:  NewVenueRepo(db),
		artistRepo: NewArtistRepo(db),
		showRepo:   NewShowRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) VenueRepo() *VenueRepo {
	return d.venueRepo
}

func (d Database) ArtistRepo() *ArtistRepo {
	return d.artistRepo
}

func (d Database) ShowRepo() *ShowRepo {
	return d.showRepo
}

// Ping checks that the database answers within ctx.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("get sql handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases every pooled connection. It is called once at shutdown.
func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("get sql handle: %w", err)
	}
	return sqlDB.Close()
}
