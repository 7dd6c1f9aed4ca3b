package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("expected default driver %q, got %q", DriverPostgres, cfg.Database.Driver)
	}
	if cfg.Redis.URL != "" {
		t.Errorf("expected empty Redis URL by default, got %q", cfg.Redis.URL)
	}
	if cfg.Pagination.DefaultSize != 20 || cfg.Pagination.MaxSize != 100 {
		t.Errorf("unexpected pagination defaults: %+v", cfg.Pagination)
	}
	if cfg.I18n.DefaultLocale != "en" {
		t.Errorf("expected default locale en, got %q", cfg.I18n.DefaultLocale)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "not-a-number")
	t.Setenv("PAGINATION_MAX_SIZE", "50")

	cfg := Load()

	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("expected driver %q, got %q", DriverSQLite, cfg.Database.Driver)
	}
	if cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("expected window 30s, got %v", cfg.RateLimit.Window)
	}
	if cfg.RateLimit.MaxRequests != 100 {
		t.Errorf("expected invalid integer to fall back to 100, got %d", cfg.RateLimit.MaxRequests)
	}
	if cfg.Pagination.MaxSize != 50 {
		t.Errorf("expected max size 50, got %d", cfg.Pagination.MaxSize)
	}
}

func TestLogConfigSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := (LogConfig{Level: tt.level}).SlogLevel(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
