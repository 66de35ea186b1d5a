package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_medication_service.go -package=mocks -mock_names=MedicationService=MockMedicationService medtrack/internal/service MedicationService
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_subscription.go -package=mocks medtrack/internal/service Subscription

import (
	"context"
	"fmt"
	"log/slog"

	"medtrack/internal/contextutil"
	"medtrack/internal/medication"
	"medtrack/internal/store"
)

// Subscription delivers the full ordered medication list after every change.
type Subscription interface {
	// Updates returns the snapshot channel; it is closed when the subscription ends.
	Updates() <-chan []medication.Record
	// Close ends the subscription.
	Close()
}

// MedicationService is the command and query surface offered to presentation layers.
type MedicationService interface {
	// Create validates d and inserts it, returning the new id.
	Create(ctx context.Context, d medication.Draft) (int64, error)
	// Update validates d and replaces the record with id.
	Update(ctx context.Context, id int64, d medication.Draft) error
	// Delete removes the record with id. Unknown ids are a no-op.
	Delete(ctx context.Context, id int64) error
	// Subscribe opens a live query over all records ordered by name.
	Subscribe(ctx context.Context) (Subscription, error)
	// Snapshot returns the current ordered list (first emission of a subscription).
	Snapshot(ctx context.Context) ([]medication.Record, error)
}

// medicationService implements MedicationService.
type medicationService struct {
	store  *store.RecordStore
	logger *slog.Logger
}

// NewMedicationService creates a new MedicationService over the record store.
func NewMedicationService(s *store.RecordStore) MedicationService {
	return &medicationService{
		store:  s,
		logger: slog.Default(),
	}
}

func (s *medicationService) getLogger(ctx context.Context) *slog.Logger {
	if l := contextutil.LoggerFromContext(ctx); l != slog.Default() {
		return l
	}
	return s.logger
}

// Create validates and inserts a new record.
func (s *medicationService) Create(ctx context.Context, d medication.Draft) (int64, error) {
	logger := s.getLogger(ctx)

	if err := d.Validate(); err != nil {
		logger.WarnContext(ctx, "rejected medication draft", "error", err)
		return 0, err
	}

	id, err := s.store.Insert(ctx, d.Record(0))
	if err != nil {
		return 0, medication.WrapError(err, "failed to create medication")
	}

	logger.InfoContext(ctx, "medication created", "id", id)
	return id, nil
}

// Update validates d and replaces the record with id, preserving the id.
func (s *medicationService) Update(ctx context.Context, id int64, d medication.Draft) error {
	logger := s.getLogger(ctx)

	if err := d.Validate(); err != nil {
		logger.WarnContext(ctx, "rejected medication draft", "id", id, "error", err)
		return err
	}

	if err := s.store.Update(ctx, d.Record(id)); err != nil {
		return medication.WrapError(err, fmt.Sprintf("failed to update medication %d", id))
	}

	logger.InfoContext(ctx, "medication updated", "id", id)
	return nil
}

// Delete removes the record with id.
func (s *medicationService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return medication.WrapError(err, fmt.Sprintf("failed to delete medication %d", id))
	}

	s.getLogger(ctx).InfoContext(ctx, "medication deleted", "id", id)
	return nil
}

// Subscribe opens a live query over all records.
func (s *medicationService) Subscribe(ctx context.Context) (Subscription, error) {
	sub, err := s.store.SubscribeAll(ctx)
	if err != nil {
		return nil, medication.WrapError(err, "failed to subscribe to medications")
	}
	return sub, nil
}

// Snapshot returns the current ordered list.
func (s *medicationService) Snapshot(ctx context.Context) ([]medication.Record, error) {
	sub, err := s.Subscribe(ctx)
	if err != nil {
		return nil, err
	}
	defer sub.Close()

	select {
	case records := <-sub.Updates():
		return records, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
