package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid csv backend config",
			config: Config{
				DataBackend: "csv",
				StorePath:   filepath.Join(t.TempDir(), "entries.csv"),
				ChartDir:    "./graphs",
				WindowDays:  7,
				LogLevel:    "info",
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				DataBackend: "memory",
				ChartDir:    "./graphs",
				WindowDays:  7,
				LogLevel:    "debug",
			},
			wantErr: false,
		},
		{
			name: "invalid data backend",
			config: Config{
				DataBackend: "postgres",
				StorePath:   "./entries.csv",
				ChartDir:    "./graphs",
				WindowDays:  7,
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "invalid data backend 'postgres': must be one of [csv memory]",
		},
		{
			name: "csv backend missing store path",
			config: Config{
				DataBackend: "csv",
				StorePath:   "",
				ChartDir:    "./graphs",
				WindowDays:  7,
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "store path cannot be empty when using csv backend",
		},
		{
			name: "empty chart directory",
			config: Config{
				DataBackend: "memory",
				ChartDir:    "",
				WindowDays:  7,
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "chart directory cannot be empty",
		},
		{
			name: "window days too small",
			config: Config{
				DataBackend: "memory",
				ChartDir:    "./graphs",
				WindowDays:  0,
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "invalid window days 0: must be at least 1",
		},
		{
			name: "window days too large",
			config: Config{
				DataBackend: "memory",
				ChartDir:    "./graphs",
				WindowDays:  400,
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "invalid window days 400: must be at most 365",
		},
		{
			name: "invalid log level",
			config: Config{
				DataBackend: "memory",
				ChartDir:    "./graphs",
				WindowDays:  7,
				LogLevel:    "loud",
			},
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else {
				if err != nil {
					t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
			}
		})
	}
}

func TestConfig_ValidateCreatesStoreDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := Config{
		DataBackend: "csv",
		StorePath:   filepath.Join(dir, "entries.csv"),
		ChartDir:    "./graphs",
		WindowDays:  7,
		LogLevel:    "info",
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Config.Validate() error = %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected store directory to be created, got %v", err)
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"WARN", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}
	for i, tc := range cases {
		got, err := (&Config{LogLevel: tc.in}).SlogLevel()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, got)
		}
	}
}

func TestLoad(t *testing.T) {
	// Save original env vars
	originalVars := map[string]string{
		"STORE_PATH":   os.Getenv("STORE_PATH"),
		"DATA_BACKEND": os.Getenv("DATA_BACKEND"),
		"CHART_DIR":    os.Getenv("CHART_DIR"),
		"WINDOW_DAYS":  os.Getenv("WINDOW_DAYS"),
		"LOG_FILE":     os.Getenv("LOG_FILE"),
		"LOG_LEVEL":    os.Getenv("LOG_LEVEL"),
	}

	// Clean environment
	for key := range originalVars {
		os.Unsetenv(key)
	}

	// Restore env vars at end of test
	defer func() {
		for key, value := range originalVars {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	}()

	t.Run("default values", func(t *testing.T) {
		cfg := Load()

		if cfg.StorePath != "./data/entries.csv" {
			t.Errorf("Load() StorePath = %v, want ./data/entries.csv", cfg.StorePath)
		}
		if cfg.DataBackend != "csv" {
			t.Errorf("Load() DataBackend = %v, want csv", cfg.DataBackend)
		}
		if cfg.ChartDir != "./graphs" {
			t.Errorf("Load() ChartDir = %v, want ./graphs", cfg.ChartDir)
		}
		if cfg.WindowDays != 7 {
			t.Errorf("Load() WindowDays = %v, want 7", cfg.WindowDays)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("Load() LogLevel = %v, want info", cfg.LogLevel)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		os.Setenv("STORE_PATH", "/tmp/macros.csv")
		os.Setenv("DATA_BACKEND", "memory")
		os.Setenv("CHART_DIR", "/tmp/charts")
		os.Setenv("WINDOW_DAYS", "14")
		os.Setenv("LOG_LEVEL", "debug")

		cfg := Load()

		if cfg.StorePath != "/tmp/macros.csv" {
			t.Errorf("Load() StorePath = %v, want /tmp/macros.csv", cfg.StorePath)
		}
		if cfg.DataBackend != "memory" {
			t.Errorf("Load() DataBackend = %v, want memory", cfg.DataBackend)
		}
		if cfg.ChartDir != "/tmp/charts" {
			t.Errorf("Load() ChartDir = %v, want /tmp/charts", cfg.ChartDir)
		}
		if cfg.WindowDays != 14 {
			t.Errorf("Load() WindowDays = %v, want 14", cfg.WindowDays)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("Load() LogLevel = %v, want debug", cfg.LogLevel)
		}
	})

	t.Run("invalid environment variables use defaults", func(t *testing.T) {
		os.Setenv("WINDOW_DAYS", "invalid")

		cfg := Load()

		if cfg.WindowDays != 7 {
			t.Errorf("Load() WindowDays = %v, want 7 (default for invalid input)", cfg.WindowDays)
		}
	})
}
