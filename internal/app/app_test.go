package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"medtrack/internal/config"
	"medtrack/internal/medication"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name   string
		cfg    func(t *testing.T) *config.Config
		wantDB bool
	}{
		{
			name: "sqlite",
			cfg: func(t *testing.T) *config.Config {
				return &config.Config{StorageDriver: config.DriverSQLite, DBPath: filepath.Join(t.TempDir(), "medtrack.db")}
			},
			wantDB: true,
		},
		{
			name: "memory",
			cfg: func(t *testing.T) *config.Config {
				return &config.Config{StorageDriver: config.DriverMemory}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Open(tt.cfg(t))
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer func() { _ = a.Close() }()

			if (a.db != nil) != tt.wantDB {
				t.Errorf("db set = %v, want %v", a.db != nil, tt.wantDB)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := a.Ping(ctx); err != nil {
				t.Errorf("Ping() error = %v", err)
			}

			d := medication.NewDraft()
			d.Name = "Paracetamol"
			d.StartDate = "01/01/2024"
			d.Time = "08:00"
			id, err := a.Medications.Create(ctx, d)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if id != 1 {
				t.Errorf("Create() id = %d, want 1", id)
			}

			dark, err := a.Theme.DarkMode(ctx)
			if err != nil || !dark {
				t.Errorf("DarkMode() = %v, %v, want true, nil", dark, err)
			}
		})
	}
}

func TestOpen_BadPath(t *testing.T) {
	cfg := &config.Config{
		StorageDriver: config.DriverSQLite,
		DBPath:        filepath.Join(t.TempDir(), "missing", "dir", "medtrack.db"),
	}
	if a, err := Open(cfg); err == nil {
		_ = a.Close()
		t.Error("Open() expected error for unreachable path, got nil")
	}
}
