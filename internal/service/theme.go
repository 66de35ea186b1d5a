package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_theme_service.go -package=mocks -mock_names=ThemeService=MockThemeService medtrack/internal/service ThemeService

import (
	"context"
	"log/slog"

	"medtrack/internal/medication"
	"medtrack/internal/storage"
)

// DefaultDarkMode is the theme used until the user toggles it.
const DefaultDarkMode = true

// ThemeService reads and writes the dark mode preference.
type ThemeService interface {
	// DarkMode returns the stored flag, DefaultDarkMode when never set.
	DarkMode(ctx context.Context) (bool, error)
	// SetDarkMode persists the flag immediately.
	SetDarkMode(ctx context.Context, enabled bool) error
}

type themeService struct {
	prefs  storage.PreferenceStore
	logger *slog.Logger
}

// NewThemeService creates a ThemeService over a preference store.
func NewThemeService(prefs storage.PreferenceStore) ThemeService {
	return &themeService{
		prefs:  prefs,
		logger: slog.Default(),
	}
}

func (s *themeService) DarkMode(ctx context.Context) (bool, error) {
	enabled, err := s.prefs.GetBool(ctx, storage.DarkModeKey, DefaultDarkMode)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read theme preference", "error", err)
		return DefaultDarkMode, medication.WrapStorage("read theme", err)
	}
	return enabled, nil
}

func (s *themeService) SetDarkMode(ctx context.Context, enabled bool) error {
	if err := s.prefs.SetBool(ctx, storage.DarkModeKey, enabled); err != nil {
		s.logger.ErrorContext(ctx, "failed to save theme preference", "error", err)
		return medication.WrapStorage("write theme", err)
	}
	s.logger.InfoContext(ctx, "theme preference saved", "dark_mode", enabled)
	return nil
}
