package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestPreferenceRepo_GetBool_Default(t *testing.T) {
	repo := NewPreferenceRepo(openTestDB(t))

	tests := []struct {
		name string
		def  bool
	}{
		{name: "default true", def: true},
		{name: "default false", def: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetBool(context.Background(), DarkModeKey, tt.def)
			if err != nil {
				t.Fatalf("GetBool() error = %v", err)
			}
			if got != tt.def {
				t.Errorf("GetBool() = %v, want %v", got, tt.def)
			}
		})
	}
}

func TestPreferenceRepo_SetBool_Overwrites(t *testing.T) {
	repo := NewPreferenceRepo(openTestDB(t))
	ctx := context.Background()

	for _, value := range []bool{false, true, false} {
		if err := repo.SetBool(ctx, DarkModeKey, value); err != nil {
			t.Fatalf("SetBool(%v) error = %v", value, err)
		}
		got, err := repo.GetBool(ctx, DarkModeKey, !value)
		if err != nil {
			t.Fatalf("GetBool() error = %v", err)
		}
		if got != value {
			t.Errorf("GetBool() = %v, want %v", got, value)
		}
	}
}

func TestPreferenceRepo_SurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if err := NewPreferenceRepo(db).SetBool(ctx, DarkModeKey, false); err != nil {
		t.Fatalf("SetBool() error = %v", err)
	}
	_ = db.Close()

	// Simulated restart
	db, err = New(dbPath)
	if err != nil {
		t.Fatalf("New() reopen error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() reopen error = %v", err)
	}

	got, err := NewPreferenceRepo(db).GetBool(ctx, DarkModeKey, true)
	if err != nil {
		t.Fatalf("GetBool() error = %v", err)
	}
	if got {
		t.Error("GetBool() after reopen = true, want false")
	}
}

func TestPreferenceRepo_GetBool_CorruptValue(t *testing.T) {
	db := openTestDB(t)
	repo := NewPreferenceRepo(db)

	if _, err := db.Exec("INSERT INTO preferences (key, value) VALUES (?, ?)", DarkModeKey, "maybe"); err != nil {
		t.Fatalf("seed error = %v", err)
	}

	got, err := repo.GetBool(context.Background(), DarkModeKey, true)
	if err == nil {
		t.Error("GetBool() with corrupt value should return error")
	}
	if !got {
		t.Error("GetBool() with corrupt value should return the default")
	}
}
