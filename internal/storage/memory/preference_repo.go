package memory

import (
	"context"
	"sync"

	"medtrack/internal/storage"
)

type preferenceRepo struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewPreferenceRepo returns an empty in-memory preference store.
func NewPreferenceRepo() storage.PreferenceStore {
	return &preferenceRepo{
		flags: make(map[string]bool),
	}
}

func (r *preferenceRepo) GetBool(ctx context.Context, key string, def bool) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.flags[key]
	if !ok {
		return def, nil
	}
	return v, nil
}

func (r *preferenceRepo) SetBool(ctx context.Context, key string, value bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.flags[key] = value
	return nil
}
