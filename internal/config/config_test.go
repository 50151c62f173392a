package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LISTEN_ADDR", "LOG_LEVEL", "LOG_FORMAT", "ENV", "PORTAL_DATA_FILE",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.JSONLogs())
	assert.InDelta(t, 50, cfg.RateLimitRPS, 0)
	assert.Equal(t, 100, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.DataFile)
	assert.Empty(t, cfg.Warnings)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv_AllVarsSet(t *testing.T) {
	clearEnv(t)
	dataFile := filepath.Join(t.TempDir(), "portal.yaml")
	require.NoError(t, os.WriteFile(dataFile, []byte("{}\n"), 0o600))

	t.Setenv("LISTEN_ADDR", "127.0.0.1:9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "7")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("PORTAL_DATA_FILE", dataFile)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.ListenAddr)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.True(t, cfg.JSONLogs())
	assert.InDelta(t, 2.5, cfg.RateLimitRPS, 0)
	assert.Equal(t, 7, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, dataFile, cfg.DataFile)
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"RATE_LIMIT_RPS", "fast"},
		{"RATE_LIMIT_RPS", "-1"},
		{"RATE_LIMIT_BURST", "1.5"},
		{"RATE_LIMIT_RPS", "0"},
		{"RATE_LIMIT_BURST", "0"},
		{"RATE_LIMIT_BURST", "-3"},
		{"SHUTDOWN_TIMEOUT", "10"},
		{"PORTAL_DATA_FILE", "/nonexistent/portal.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := LoadFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadFromEnv_UnknownLogFormatWarns(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_FORMAT", "xml")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.LogFormat)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "LOG_FORMAT")
}

func TestLoadFromEnv_ProductionRejectsWildcardCORS(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CORS wildcard")

	t.Setenv("CORS_ALLOWED_ORIGINS", "https://portal.example")
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		assert.Equal(t, tt.want, cfg.SlogLevel(), tt.level)
	}
}

func TestLoadDotEnv_FileNotFound(t *testing.T) {
	err := LoadDotEnv("/nonexistent/.env")
	if err != nil {
		t.Errorf("expected no error for missing .env, got: %v", err)
	}
}

func TestLoadDotEnv_ParsesKeyValue(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")

	err := os.WriteFile(envFile, []byte("PORTAL_TEST_KEY=test_value\nexport PORTAL_TEST_QUOTED='quoted value'\n"), 0644)
	if err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Unsetenv("PORTAL_TEST_KEY")
		_ = os.Unsetenv("PORTAL_TEST_QUOTED")
	})

	if err := LoadDotEnv(envFile); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}

	if val := os.Getenv("PORTAL_TEST_KEY"); val != "test_value" {
		t.Errorf("PORTAL_TEST_KEY = %q, want %q", val, "test_value")
	}
	if val := os.Getenv("PORTAL_TEST_QUOTED"); val != "quoted value" {
		t.Errorf("PORTAL_TEST_QUOTED = %q, want %q", val, "quoted value")
	}
}

func TestLoadDotEnv_SkipsComments(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")

	err := os.WriteFile(envFile, []byte("# comment\nPORTAL_COMMENT_KEY=value\nnot a pair\n"), 0644)
	if err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("PORTAL_COMMENT_KEY") })

	if err := LoadDotEnv(envFile); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}

	if val := os.Getenv("PORTAL_COMMENT_KEY"); val != "value" {
		t.Errorf("PORTAL_COMMENT_KEY = %q, want %q", val, "value")
	}
}

func TestLoadDotEnv_EnvVarPrecedence(t *testing.T) {
	t.Setenv("PORTAL_PRECEDENCE_KEY", "from_env")

	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")

	err := os.WriteFile(envFile, []byte("PORTAL_PRECEDENCE_KEY=from_file\n"), 0644)
	if err != nil {
		t.Fatalf("write .env: %v", err)
	}

	if err := LoadDotEnv(envFile); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}

	if val := os.Getenv("PORTAL_PRECEDENCE_KEY"); val != "from_env" {
		t.Errorf("PORTAL_PRECEDENCE_KEY = %q, want %q (env precedence)", val, "from_env")
	}
}
