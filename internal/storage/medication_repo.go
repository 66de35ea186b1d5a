package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_medication_store.go -package=mocks medtrack/internal/storage MedicationStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"medtrack/internal/medication"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// MedicationStore defines the interface for medication persistence.
type MedicationStore interface {
	// Insert stores a new medication and returns its assigned id.
	// Any id already set on the record is ignored.
	Insert(ctx context.Context, r medication.Record) (int64, error)
	// Update replaces the medication with r.ID.
	// Returns ErrNotFound if no such row exists.
	Update(ctx context.Context, r medication.Record) error
	// Delete removes the medication with the given id.
	// Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error
	// ListAll returns every medication ordered by name, then id.
	ListAll(ctx context.Context) ([]medication.Record, error)
}

// MedicationRepo provides methods for medication operations.
// It implements the MedicationStore interface.
type MedicationRepo struct {
	db *sql.DB
}

// NewMedicationRepo creates a new MedicationRepo.
func NewMedicationRepo(db *sql.DB) *MedicationRepo {
	return &MedicationRepo{db: db}
}

// Insert stores a new medication. SQLite assigns the id; AUTOINCREMENT
// guarantees ids of deleted rows are never handed out again.
func (r *MedicationRepo) Insert(ctx context.Context, m medication.Record) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO medications (name, start_date, time, frequency, end_date, description)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.Name, m.StartDate, m.Time, string(m.Frequency), m.EndDate, m.Description,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert medication: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted medication id: %w", err)
	}

	return id, nil
}

// Update replaces every column of the medication with m.ID.
func (r *MedicationRepo) Update(ctx context.Context, m medication.Record) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE medications
		 SET name = ?, start_date = ?, time = ?, frequency = ?, end_date = ?, description = ?
		 WHERE id = ?`,
		m.Name, m.StartDate, m.Time, string(m.Frequency), m.EndDate, m.Description, m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update medication: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the medication with the given id.
func (r *MedicationRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM medications WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete medication: %w", err)
	}
	return nil
}

// ListAll returns all medications ordered by name (byte-wise) then id.
// Returns an empty slice if there are none.
func (r *MedicationRepo) ListAll(ctx context.Context) ([]medication.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+medicationColumns+" FROM medications ORDER BY name COLLATE BINARY, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query medications: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records := []medication.Record{}
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan medication: %w", err)
		}
		records = append(records, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate medications: %w", err)
	}

	return records, nil
}
