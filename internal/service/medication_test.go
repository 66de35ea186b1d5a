package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"medtrack/internal/medication"
	"medtrack/internal/service"
	"medtrack/internal/storage/memory"
	"medtrack/internal/store"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// testContext returns a context for testing.
func testContext() context.Context {
	return context.Background()
}

func newService() service.MedicationService {
	return service.NewMedicationService(store.New(memory.NewMedicationRepo()))
}

func validDraft() medication.Draft {
	d := medication.NewDraft()
	d.Name = "Paracetamol"
	d.StartDate = "01/01/2024"
	d.Time = "08:00"
	return d
}

func TestNewMedicationService(t *testing.T) {
	if svc := newService(); svc == nil {
		t.Fatal("NewMedicationService() returned nil")
	}
}

func TestMedicationService_Create(t *testing.T) {
	tests := []struct {
		name      string
		draft     func() medication.Draft
		wantField string
	}{
		{
			name:  "valid draft",
			draft: validDraft,
		},
		{
			name: "empty name",
			draft: func() medication.Draft {
				d := validDraft()
				d.Name = ""
				return d
			},
			wantField: "name",
		},
		{
			name: "empty start date",
			draft: func() medication.Draft {
				d := validDraft()
				d.StartDate = ""
				return d
			},
			wantField: "start_date",
		},
		{
			name: "empty time",
			draft: func() medication.Draft {
				d := validDraft()
				d.Time = ""
				return d
			},
			wantField: "time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService()
			ctx := testContext()

			id, err := svc.Create(ctx, tt.draft())

			records, snapErr := svc.Snapshot(ctx)
			if snapErr != nil {
				t.Fatalf("Snapshot() error = %v", snapErr)
			}

			if tt.wantField != "" {
				var validationErr *medication.ValidationError
				if !errors.As(err, &validationErr) || validationErr.Field != tt.wantField {
					t.Errorf("Create() error = %v, want validation error on %s", err, tt.wantField)
				}
				if len(records) != 0 {
					t.Errorf("rejected draft changed the store: %+v", records)
				}
				return
			}

			if err != nil {
				t.Fatalf("Create() unexpected error: %v", err)
			}
			if id != 1 {
				t.Errorf("Create() id = %d, want 1", id)
			}
			want := tt.draft().Record(id)
			if len(records) != 1 || records[0] != want {
				t.Errorf("Snapshot() = %+v, want [%+v]", records, want)
			}
		})
	}
}

func TestMedicationService_Update(t *testing.T) {
	svc := newService()
	ctx := testContext()

	id, err := svc.Create(ctx, validDraft())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	edited := validDraft()
	edited.Description = "with water"
	if err := svc.Update(ctx, id, edited); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	records, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(records) != 1 || records[0].ID != id || records[0].Description != "with water" {
		t.Errorf("Snapshot() = %+v, want description updated on id %d", records, id)
	}

	invalid := edited
	invalid.Time = " "
	if err := svc.Update(ctx, id, invalid); !errors.Is(err, medication.ErrValidationRejected) {
		t.Errorf("Update() invalid draft error = %v, want ErrValidationRejected", err)
	}

	if err := svc.Update(ctx, id+10, edited); !errors.Is(err, medication.ErrNotFound) {
		t.Errorf("Update() unknown id error = %v, want ErrNotFound", err)
	}
}

func TestMedicationService_Delete(t *testing.T) {
	svc := newService()
	ctx := testContext()

	id, err := svc.Create(ctx, validDraft())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := svc.Delete(ctx, id); err != nil {
			t.Fatalf("Delete() call %d error = %v", i+1, err)
		}
	}

	records, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Snapshot() = %+v, want empty", records)
	}
}

func TestMedicationService_Subscribe(t *testing.T) {
	svc := newService()
	ctx, cancel := context.WithCancel(testContext())
	defer cancel()

	sub, err := svc.Subscribe(ctx)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	defer sub.Close()

	expect := func(n int) {
		t.Helper()
		select {
		case records := <-sub.Updates():
			if len(records) != n {
				t.Errorf("emission has %d records, want %d", len(records), n)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for emission")
		}
	}

	expect(0)

	id, err := svc.Create(ctx, validDraft())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	expect(1)

	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	expect(0)
}
