package api

import (
	"fmt"
	"time"

	"github.com/rpupo63/fyyur/config"
	"github.com/rpupo63/fyyur/database"
	"github.com/rpupo63/fyyur/services"
	"github.com/rpupo63/fyyur/templates"
)

// App holds everything a request needs. It is built once in main and shared
// read-only by all handlers.
type App struct {
	Config   map[string]string
	Database database.Database
	Catalog  *services.Catalog
	Renderer *Renderer
	Flashes  *Flasher
	Clock    func() time.Time
}

// NewApp parses the templates and wires the catalog and session store around db.
func NewApp(c map[string]string, db database.Database) (*App, error) {
	renderer, err := NewRenderer(templates.FS)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	flashes, err := NewFlasher(config.GetString(c, "SESSION_SECRET", ""))
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}

	return &App{
		Config:   c,
		Database: db,
		Catalog:  services.NewCatalog(db),
		Renderer: renderer,
		Flashes:  flashes,
		Clock:    func() time.Time { return time.Now().UTC() },
	}, nil
}

// Close releases the database pool.
func (a *App) Close() error {
	return a.Database.Close()
}
