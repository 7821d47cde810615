package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golovatskygroup/repsona-mcp/internal/config"
	"github.com/golovatskygroup/repsona-mcp/internal/testutil"
)

func setEnv(t *testing.T, baseURL string) []string {
	t.Helper()
	for _, k := range []string{config.EnvDomain, config.EnvHTTPTimeout, config.EnvUserAgent, config.EnvLogLevel, config.EnvLogFormat, config.EnvValidate} {
		t.Setenv(k, "")
	}
	t.Setenv(config.EnvSpaceID, "acme")
	t.Setenv(config.EnvAPIKey, "secret")
	t.Setenv(config.EnvBaseURL, baseURL)
	return []string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}
}

func TestVersion(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"--version"}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, 0, code)
	assert.Equal(t, "repsona-mcp "+version+"\n", out.String())
}

func TestMissingCredentialsExitsBeforeNetwork(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	args := setEnv(t, api.BaseURL())
	t.Setenv(config.EnvAPIKey, "")

	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "REPSONA_SPACE_ID and REPSONA_API_KEY environment variables are required")
	assert.Empty(t, api.Requests())
	assert.Empty(t, out.String())
}

func TestBadLogFormatFlag(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	args := setEnv(t, api.BaseURL())

	var out, errOut bytes.Buffer
	code := run(append(args, "--log-format", "xml"), strings.NewReader(""), &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "unknown log format")
}

func TestCheckSucceeds(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	args := setEnv(t, api.BaseURL())

	var out, errOut bytes.Buffer
	code := run(append(args, "--check"), strings.NewReader(""), &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	var summary checkSummary
	require.NoError(t, json.Unmarshal(out.Bytes(), &summary))
	assert.True(t, summary.OK)
	require.Len(t, summary.Resources, 5)
	assert.Equal(t, "repsona://me", summary.Resources[0].URI)
	assert.Len(t, api.Requests(), 5)
	for _, r := range api.Requests() {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
	}
}

func TestCheckReportsFailures(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Respond(http.MethodGet, "/tag/all", http.StatusForbidden, `{}`)
	args := setEnv(t, api.BaseURL())

	var out, errOut bytes.Buffer
	code := run(append(args, "--check"), strings.NewReader(""), &out, &errOut)
	assert.Equal(t, 1, code)

	var summary checkSummary
	require.NoError(t, json.Unmarshal(out.Bytes(), &summary))
	assert.False(t, summary.OK)
	for _, r := range summary.Resources {
		if r.URI == "repsona://tags" {
			assert.False(t, r.OK)
			assert.Contains(t, r.Error, "403")
		} else {
			assert.True(t, r.OK, r.URI)
		}
	}
}

func TestServeUntilEOF(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	args := setEnv(t, api.BaseURL())

	in := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n")
	var out, errOut bytes.Buffer
	code := run(args, in, &out, &errOut)
	assert.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), `"id":1`)
	assert.Empty(t, api.Requests())
}
