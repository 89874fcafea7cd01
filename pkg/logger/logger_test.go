package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

func TestScope(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		want  string
	}{
		{"basic scope", "contact", "contact"},
		{"nested scope", "handlers.roi", "handlers.roi"},
		{"empty scope", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Scope(tt.scope)
			if attr.Key != "scope" {
				t.Errorf("Scope() key = %q, want %q", attr.Key, "scope")
			}
			if attr.Value.String() != tt.want {
				t.Errorf("Scope() value = %q, want %q", attr.Value.String(), tt.want)
			}
		})
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"simple error", errors.New("something went wrong")},
		{"nil error", nil},
		{"joined error", errors.Join(errors.New("outer"), errors.New("inner"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Error(tt.err)
			if attr.Key != "error" {
				t.Errorf("Error() key = %q, want %q", attr.Key, "error")
			}
			if got := attr.Value.Any(); got != tt.err {
				t.Errorf("Error() value = %v, want %v", got, tt.err)
			}
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level      string
		enabled    slog.Level
		notEnabled slog.Level
		checkBelow bool
	}{
		{"", slog.LevelInfo, slog.LevelDebug, true},
		{"info", slog.LevelInfo, slog.LevelDebug, true},
		{"debug", slog.LevelDebug, 0, false},
		{"warn", slog.LevelWarn, slog.LevelInfo, true},
		{"warning", slog.LevelWarn, slog.LevelInfo, true},
		{"error", slog.LevelError, slog.LevelWarn, true},
		{"DEBUG", slog.LevelDebug, 0, false},
		{"  Warn ", slog.LevelWarn, slog.LevelInfo, true},
		{"verbose", slog.LevelInfo, slog.LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run("LOG_LEVEL="+tt.level, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.level)
			t.Setenv("GO_ENV", "development")

			log := NewLogger()
			if log == nil {
				t.Fatal("NewLogger() returned nil")
			}

			ctx := context.Background()
			if !log.Enabled(ctx, tt.enabled) {
				t.Errorf("level %v should be enabled for LOG_LEVEL=%q", tt.enabled, tt.level)
			}
			if tt.checkBelow && log.Enabled(ctx, tt.notEnabled) {
				t.Errorf("level %v should NOT be enabled for LOG_LEVEL=%q", tt.notEnabled, tt.level)
			}
		})
	}
}

func TestNewLogger_ProductionUsesJSON(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("LOG_LEVEL", "")

	log := NewLogger()
	if _, ok := log.Handler().(*slog.JSONHandler); !ok {
		t.Errorf("handler = %T, want *slog.JSONHandler", log.Handler())
	}
}

func TestNewLogger_DevelopmentUsesText(t *testing.T) {
	t.Setenv("GO_ENV", "development")

	log := NewLogger()
	if _, ok := log.Handler().(*slog.TextHandler); !ok {
		t.Errorf("handler = %T, want *slog.TextHandler", log.Handler())
	}
}
