package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FOODDASH_API_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("FOODDASH_CONFIRM_DELETE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3333", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.ConfirmDelete)
	assert.Equal(t, "127.0.0.1:3333", cfg.ServerAddr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FOODDASH_API_URL", "http://api.local:9000")
	t.Setenv("FOODDASH_REQUEST_TIMEOUT", "3")
	t.Setenv("FOODDASH_CONFIRM_DELETE", "true")
	t.Setenv("READ_TIMEOUT", "250ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://api.local:9000", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.RequestTimeout)
	assert.True(t, cfg.ConfirmDelete)
	assert.Equal(t, 250*time.Millisecond, cfg.Server.ReadTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"relative api url", "FOODDASH_API_URL", "localhost"},
		{"bad log level", "LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	require.NoError(t, LoadEnvFile(""))
	require.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FOODDASH_TEST_FROM_DOTENV=yes\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("FOODDASH_TEST_FROM_DOTENV") })

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "yes", os.Getenv("FOODDASH_TEST_FROM_DOTENV"))
}
