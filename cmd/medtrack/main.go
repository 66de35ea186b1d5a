package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"medtrack/internal/app"
	"medtrack/internal/config"
	"medtrack/internal/controller"
	"medtrack/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The terminal belongs to the UI, so logs go to LOG_FILE.
	logOut, closeLog, err := cfg.OpenLogFile()
	if err != nil {
		return err
	}
	defer func() {
		_ = closeLog()
	}()
	slog.SetDefault(cfg.NewLogger(logOut))

	a, err := app.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctrl := controller.New(a.Medications, a.Theme)
	p := tea.NewProgram(tui.New(ctx, ctrl), tea.WithAltScreen(), tea.WithContext(ctx))

	slog.Info("Starting medtrack", "storage", cfg.StorageDriver)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}
