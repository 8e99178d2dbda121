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
	t.Setenv("DEPTDASH_API_URL", "")
	t.Setenv("DEPTDASH_HTTP_TIMEOUT_SECONDS", "")
	t.Setenv("DEPTAPI_ADDR", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.Client.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Client.HTTPTimeout())
	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, time.Hour, cfg.Server.TokenTTL())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DEPTDASH_API_URL", "http://api.internal:8080")
	t.Setenv("DEPTDASH_HTTP_TIMEOUT_SECONDS", "0")
	t.Setenv("DEPTAPI_TOKEN_TTL_MINUTES", "not-a-number")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "http://api.internal:8080", cfg.Client.APIURL)
	assert.Equal(t, time.Duration(0), cfg.Client.HTTPTimeout())
	assert.Equal(t, 60, cfg.Server.TokenTTLMinutes)
}

func TestLoad_DotEnvFile(t *testing.T) {
	// godotenv never overrides variables that are already set, so make sure
	// this one is absent rather than empty.
	prev, had := os.LookupEnv("DEPTDASH_EMAIL")
	require.NoError(t, os.Unsetenv("DEPTDASH_EMAIL"))
	t.Cleanup(func() {
		if had {
			os.Setenv("DEPTDASH_EMAIL", prev)
		} else {
			os.Unsetenv("DEPTDASH_EMAIL")
		}
	})

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DEPTDASH_EMAIL=ops@example.com\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", cfg.Client.Email)
}
