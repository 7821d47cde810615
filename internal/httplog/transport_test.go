package httplog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestTransportSetsHeadersAndLogs(t *testing.T) {
	var gotUA, gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotID = r.Header.Get(RequestIDHeader)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	var logs bytes.Buffer
	cl := NewClient(Config{Logger: bufferLogger(&logs), UserAgent: "repsona-mcp/test"}, 0)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+"/api/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer super-secret")

	resp, err := cl.Do(req)
	require.NoError(t, err)
	_, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	assert.Equal(t, "repsona-mcp/test", gotUA)
	_, err = uuid.Parse(gotID)
	assert.NoError(t, err, "request id should be a uuid")
	assert.Empty(t, req.Header.Get(RequestIDHeader), "caller request must not be modified")

	out := logs.String()
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/api/me")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "request_id="+gotID)
	assert.NotContains(t, out, "super-secret")
}

func TestTransportKeepsCallerUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	t.Cleanup(srv.Close)

	cl := &http.Client{Transport: NewTransport(nil, Config{Logger: bufferLogger(&bytes.Buffer{}), UserAgent: "default"})}
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	req.Header.Set("User-Agent", "custom")
	resp, err := cl.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "custom", gotUA)
}

func TestTransportLogsErrorStatusAtWarn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	var logs bytes.Buffer
	cl := &http.Client{Transport: NewTransport(nil, Config{Logger: bufferLogger(&logs)})}
	resp, err := cl.Get(srv.URL + "/api/space/base")
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "status=401")
}

type failingRoundTripper struct{}

func (failingRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestTransportLogsTransportErrors(t *testing.T) {
	var logs bytes.Buffer
	tr := NewTransport(failingRoundTripper{}, Config{Logger: bufferLogger(&logs)})

	req, _ := http.NewRequest(http.MethodDelete, "http://repsona.invalid/api/file/abc", nil)
	_, err := tr.RoundTrip(req)
	require.Error(t, err)

	out := logs.String()
	assert.True(t, strings.Contains(out, "http request failed"), out)
	assert.Contains(t, out, "method=DELETE")
	assert.Contains(t, out, "connection refused")
}
