package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
)

// PreferenceStore defines the interface for key-value preference storage.
type PreferenceStore interface {
	// GetBool returns the stored flag for key, or def if it was never written.
	GetBool(ctx context.Context, key string, def bool) (bool, error)
	// SetBool persists the flag for key.
	SetBool(ctx context.Context, key string, value bool) error
}

// PreferenceRepo stores preferences in the preferences table.
// It implements the PreferenceStore interface.
type PreferenceRepo struct {
	db *sql.DB
}

// NewPreferenceRepo creates a new PreferenceRepo.
func NewPreferenceRepo(db *sql.DB) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// GetBool returns the flag stored under key, or def when the key is unset.
func (r *PreferenceRepo) GetBool(ctx context.Context, key string, def bool) (bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("failed to query preference %s: %w", key, err)
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return def, fmt.Errorf("failed to parse preference %s: %w", key, err)
	}
	return value, nil
}

// SetBool writes the flag under key, replacing any previous value.
func (r *PreferenceRepo) SetBool(ctx context.Context, key string, value bool) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, strconv.FormatBool(value),
	)
	if err != nil {
		return fmt.Errorf("failed to save preference %s: %w", key, err)
	}
	return nil
}
