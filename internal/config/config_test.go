package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvSpaceID, EnvAPIKey, EnvDomain, EnvBaseURL, EnvHTTPTimeout, EnvUserAgent, EnvLogLevel, EnvLogFormat, EnvValidate} {
		t.Setenv(k, "")
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSpaceID, "acme")
	t.Setenv(EnvAPIKey, "secret")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://acme.repsona.com/api", cfg.BaseURL())
	assert.Equal(t, "secret", cfg.Repsona.APIKey)
	assert.Equal(t, DefaultUserAgent, cfg.Repsona.UserAgent)
	assert.Zero(t, cfg.Repsona.HTTPTimeout)
}

func TestValidateMissingCredentials(t *testing.T) {
	cases := map[string][2]string{
		"both missing":  {"", ""},
		"space missing": {"", "secret"},
		"key missing":   {"acme", ""},
		"blank key":     {"acme", "   "},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvSpaceID, tc[0])
			t.Setenv(EnvAPIKey, tc[1])

			cfg, err := Load("")
			require.NoError(t, err)
			err = cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingCredentials))
			assert.Equal(t, "REPSONA_SPACE_ID and REPSONA_API_KEY environment variables are required", err.Error())
		})
	}
}

func TestLoadFileWithEnvOverride(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "repsona.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
repsona:
  space_id: from-file
  api_key: file-key
  domain: repsona.example
  http_timeout: 15s
log:
  level: debug
  format: json
tools:
  validate_args: true
`), 0o600))

	t.Setenv(EnvAPIKey, "env-key")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "from-file", cfg.Repsona.SpaceID)
	assert.Equal(t, "env-key", cfg.Repsona.APIKey)
	assert.Equal(t, 15*time.Second, cfg.Repsona.HTTPTimeout)
	assert.Equal(t, "https://from-file.repsona.example/api", cfg.BaseURL())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Tools.ValidateArgs)
}

func TestBaseURLOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSpaceID, "acme")
	t.Setenv(EnvAPIKey, "secret")
	t.Setenv(EnvBaseURL, "http://127.0.0.1:9999/api/")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999/api", cfg.BaseURL())
}

func TestBaseURLFallsBackToDefaultDomain(t *testing.T) {
	cfg := Default()
	cfg.Repsona.SpaceID = "acme"
	cfg.Repsona.Domain = "  "
	assert.Equal(t, "https://acme.repsona.com/api", cfg.BaseURL())

	cfg.Repsona.Domain = "example.org"
	assert.Equal(t, "https://acme.example.org/api", cfg.BaseURL())
}

func TestLoadRejectsBadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHTTPTimeout, "soon")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvHTTPTimeout)
}

func TestValidateLogSettings(t *testing.T) {
	cfg := Default()
	cfg.Repsona.SpaceID = "acme"
	cfg.Repsona.APIKey = "k"

	cfg.Log.Level = "loud"
	require.Error(t, cfg.Validate())

	cfg.Log.Level = "warn"
	cfg.Log.Format = "xml"
	require.Error(t, cfg.Validate())

	cfg.Log.Format = "json"
	require.NoError(t, cfg.Validate())
}

func TestLoadDotEnvKeepsExisting(t *testing.T) {
	// godotenv treats an empty but present variable as set.
	t.Setenv(EnvSpaceID, "")
	require.NoError(t, os.Unsetenv(EnvSpaceID))
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("REPSONA_SPACE_ID=dotenv-space\nREPSONA_API_KEY=dotenv-key\n"), 0o600))

	t.Setenv(EnvAPIKey, "already-set")

	found, err := LoadDotEnv(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
	assert.Equal(t, "dotenv-space", os.Getenv(EnvSpaceID))
	assert.Equal(t, "already-set", os.Getenv(EnvAPIKey))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	found, err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Empty(t, found)
}
