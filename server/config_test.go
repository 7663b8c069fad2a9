package server

import (
	"log/slog"
	"os"
	"testing"
)

// clearGongEnv unsets all GONG_* variables, registering restoration via t.Setenv.
func clearGongEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GONG_ACCESS_KEY", "GONG_ACCESS_SECRET", "GONG_BASE_URL", "GONG_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearGongEnv(t)
	t.Setenv("GONG_ACCESS_KEY", "key")
	t.Setenv("GONG_ACCESS_SECRET", "secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.AccessKey != "key" || cfg.AccessSecret != "secret" {
		t.Errorf("credentials = %s/%s, want key/secret", cfg.AccessKey, cfg.AccessSecret)
	}
	if cfg.BaseURL != "https://api.gong.io/v2" {
		t.Errorf("BaseURL = %s, want the Gong v2 API root", cfg.BaseURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
}

func TestLoadConfig_MissingCredentials(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing key", map[string]string{"GONG_ACCESS_SECRET": "secret"}},
		{"missing secret", map[string]string{"GONG_ACCESS_KEY": "key"}},
		{"missing both", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearGongEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			if _, err := LoadConfig(); err == nil {
				t.Error("LoadConfig() returned nil error with missing credentials")
			}
		})
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
