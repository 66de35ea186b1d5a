// Package store provides the live medication record store: durable CRUD
// through a storage.MedicationStore plus subscriptions that receive the
// full ordered list after every mutation.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"medtrack/internal/medication"
	"medtrack/internal/storage"
)

// RecordStore owns the persisted medication records.
// Writes are serialized; the emission a write produces is published before
// the next write starts.
type RecordStore struct {
	mu     sync.Mutex
	repo   storage.MedicationStore
	subs   map[uint64]*Subscription
	nextID uint64
	logger *slog.Logger
}

// New creates a RecordStore backed by repo.
func New(repo storage.MedicationStore) *RecordStore {
	return &RecordStore{
		repo:   repo,
		subs:   make(map[uint64]*Subscription),
		logger: slog.Default(),
	}
}

// Insert persists r under a freshly assigned id and returns that id.
// Any id already set on r is ignored.
func (s *RecordStore) Insert(ctx context.Context, r medication.Record) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = 0
	id, err := s.repo.Insert(ctx, r)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to insert medication", "name", r.Name, "error", err)
		return 0, medication.WrapStorage("insert", err)
	}

	s.logger.DebugContext(ctx, "medication inserted", "id", id, "name", r.Name)
	s.publish(ctx)
	return id, nil
}

// Update replaces the record with r.ID.
// Returns medication.ErrNotFound if no record has that id.
func (s *RecordStore) Update(ctx context.Context, r medication.Record) error {
	if !r.Persisted() {
		return fmt.Errorf("update medication: %w", medication.ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Update(ctx, r); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.WarnContext(ctx, "update of unknown medication", "id", r.ID)
			return fmt.Errorf("update medication %d: %w", r.ID, medication.ErrNotFound)
		}
		s.logger.ErrorContext(ctx, "failed to update medication", "id", r.ID, "error", err)
		return medication.WrapStorage("update", err)
	}

	s.logger.DebugContext(ctx, "medication updated", "id", r.ID)
	s.publish(ctx)
	return nil
}

// Delete removes the record with the given id. Deleting an unknown id is a no-op.
func (s *RecordStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete medication", "id", id, "error", err)
		return medication.WrapStorage("delete", err)
	}

	s.logger.DebugContext(ctx, "medication deleted", "id", id)
	s.publish(ctx)
	return nil
}

// SubscribeAll registers a live query over all records. The current ordered
// list is available on Updates immediately; a new list follows every
// successful mutation. The subscription ends on Close or when ctx is done.
func (s *RecordStore) SubscribeAll(ctx context.Context) (*Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, medication.WrapStorage("list", err)
	}

	s.nextID++
	sub := &Subscription{
		id:      s.nextID,
		store:   s,
		updates: make(chan []medication.Record, 1),
		done:    make(chan struct{}),
	}
	s.subs[sub.id] = sub
	sub.deliver(records)

	go func() {
		select {
		case <-ctx.Done():
			sub.Close()
		case <-sub.done:
		}
	}()

	s.logger.DebugContext(ctx, "subscription opened", "subscription", sub.id, "records", len(records))
	return sub, nil
}

// Subscribers returns the number of open subscriptions.
func (s *RecordStore) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// publish sends the current list to every subscriber. Must hold s.mu.
func (s *RecordStore) publish(ctx context.Context) {
	if len(s.subs) == 0 {
		return
	}

	// The write already happened; a cancelled caller must not suppress the emission.
	records, err := s.repo.ListAll(context.WithoutCancel(ctx))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to refresh subscriptions", "error", err)
		return
	}

	for _, sub := range s.subs {
		sub.deliver(records)
	}
}

// unsubscribe removes sub and closes its channel.
func (s *RecordStore) unsubscribe(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subs[sub.id]; !ok {
		return
	}
	delete(s.subs, sub.id)
	close(sub.updates)
	s.logger.Debug("subscription closed", "subscription", sub.id)
}
