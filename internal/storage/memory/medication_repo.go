// Package memory provides in-process implementations of the storage
// interfaces for ephemeral sessions and tests.
package memory

import (
	"context"
	"sync"

	"medtrack/internal/medication"
	"medtrack/internal/storage"
)

type medicationRepo struct {
	mu     sync.RWMutex
	byID   map[int64]medication.Record
	lastID int64
}

// NewMedicationRepo returns an empty in-memory medication store.
// Ids start at 1 and are never reused.
func NewMedicationRepo() storage.MedicationStore {
	return &medicationRepo{
		byID: make(map[int64]medication.Record),
	}
}

func (r *medicationRepo) Insert(ctx context.Context, m medication.Record) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	m.ID = r.lastID
	r.byID[m.ID] = m
	return m.ID, nil
}

func (r *medicationRepo) Update(ctx context.Context, m medication.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID]; !exists {
		return storage.ErrNotFound
	}
	r.byID[m.ID] = m
	return nil
}

func (r *medicationRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *medicationRepo) ListAll(ctx context.Context) ([]medication.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medication.Record, 0, len(r.byID))
	for _, m := range r.byID {
		out = append(out, m)
	}

	medication.SortByName(out)
	return out, nil
}
