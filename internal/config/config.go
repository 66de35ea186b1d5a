package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// StderrLogFile is the LOG_FILE value that sends logs to stderr.
const StderrLogFile = "-"

// Config holds all configuration for the application.
type Config struct {
	DBPath        string
	StorageDriver string
	LogLevel      slog.Level
	LogFormat     string
	LogFile       string
	APIHost       string
	APIPort       string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or one of its parents, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		DBPath:        getEnv("DB_PATH", "./data/medtrack.db"),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", DriverSQLite)),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "text")),
		LogFile:       getEnv("LOG_FILE", "./data/medtrack.log"),
		APIHost:       getEnv("API_HOST", "127.0.0.1"),
		APIPort:       getEnv("API_PORT", "9000"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error: %w", err)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	port, err := strconv.Atoi(cfg.APIPort)
	if err != nil {
		return nil, fmt.Errorf("API_PORT must be a valid integer: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("API_PORT must be between 1 and 65535")
	}

	switch cfg.StorageDriver {
	case DriverSQLite:
		if cfg.DBPath == "" {
			return nil, fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
		// Create the database directory if it doesn't exist
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	case DriverMemory:
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER must be %s or %s, got %q", DriverSQLite, DriverMemory, cfg.StorageDriver)
	}

	return cfg, nil
}

// Addr returns the HTTP API listen address.
func (c *Config) Addr() string {
	return c.APIHost + ":" + c.APIPort
}

// NewLogger builds a structured logger writing to w with the configured level and format.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: c.LogLevel,
	}
	var handler slog.Handler
	if c.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// OpenLogFile opens LOG_FILE for appending. The returned closer is a no-op for stderr.
func (c *Config) OpenLogFile() (io.Writer, func() error, error) {
	if c.LogFile == StderrLogFile || c.LogFile == "" {
		return os.Stderr, func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f.Close, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
