// Package app wires storage, the record store and the services for a session.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"medtrack/internal/config"
	"medtrack/internal/service"
	"medtrack/internal/storage"
	"medtrack/internal/storage/memory"
	"medtrack/internal/store"
)

// App holds the long-lived components shared by the presentation layers.
type App struct {
	db          *sql.DB // nil for the memory driver
	Store       *store.RecordStore
	Medications service.MedicationService
	Theme       service.ThemeService
}

// Open initializes storage for cfg.StorageDriver and builds the services on top of it.
func Open(cfg *config.Config) (*App, error) {
	var (
		db    *sql.DB
		meds  storage.MedicationStore
		prefs storage.PreferenceStore
	)

	switch cfg.StorageDriver {
	case config.DriverMemory:
		meds = memory.NewMedicationRepo()
		prefs = memory.NewPreferenceRepo()
		slog.Info("Using in-memory storage; nothing will be persisted")
	default:
		var err error
		db, err = storage.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := storage.Migrate(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		meds = storage.NewMedicationRepo(db)
		prefs = storage.NewPreferenceRepo(db)
		slog.Info("Database initialized", "path", cfg.DBPath)
	}

	records := store.New(meds)
	return &App{
		db:          db,
		Store:       records,
		Medications: service.NewMedicationService(records),
		Theme:       service.NewThemeService(prefs),
	}, nil
}

// Ping checks that the database is reachable. It always succeeds for the memory driver.
func (a *App) Ping(ctx context.Context) error {
	if a.db == nil {
		return nil
	}
	return a.db.PingContext(ctx)
}

// Close releases the database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
