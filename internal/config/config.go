package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// Entry store
	StorePath   string
	DataBackend string

	// Chart export
	ChartDir   string
	WindowDays int

	// Logging
	LogFile  string
	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		StorePath:   getEnv("STORE_PATH", "./data/entries.csv"),
		DataBackend: getEnv("DATA_BACKEND", "csv"),

		ChartDir:   getEnv("CHART_DIR", "./graphs"),
		WindowDays: getEnvInt("WINDOW_DAYS", 7),

		LogFile:  getEnv("LOG_FILE", ""),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate data backend
	validBackends := []string{"csv", "memory"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	// Validate store configuration if backend is csv
	if c.DataBackend == "csv" {
		if c.StorePath == "" {
			errors = append(errors, "store path cannot be empty when using csv backend")
		} else {
			// Check if directory exists or can be created
			dir := filepath.Dir(c.StorePath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create store directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	// Validate chart export directory
	if c.ChartDir == "" {
		errors = append(errors, "chart directory cannot be empty")
	}

	// Validate chart window
	if c.WindowDays < 1 {
		errors = append(errors, fmt.Sprintf("invalid window days %d: must be at least 1", c.WindowDays))
	} else if c.WindowDays > 365 {
		errors = append(errors, fmt.Sprintf("invalid window days %d: must be at most 365", c.WindowDays))
	}

	// Validate log level
	if _, err := c.SlogLevel(); err != nil {
		errors = append(errors, err.Error())
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// SlogLevel maps the configured log level onto a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
