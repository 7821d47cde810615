// Package httplog wraps an http.RoundTripper with request logging.
package httplog

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

type Config struct {
	Logger    *slog.Logger
	UserAgent string
}

type Transport struct {
	base      http.RoundTripper
	logger    *slog.Logger
	userAgent string
}

func NewTransport(base http.RoundTripper, cfg Config) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Transport{base: base, logger: logger, userAgent: cfg.UserAgent}
}

// NewClient returns an http.Client using a Transport over the default
// transport. timeout 0 means no client-side limit.
func NewClient(cfg Config, timeout time.Duration) *http.Client {
	return &http.Client{Transport: NewTransport(nil, cfg), Timeout: timeout}
}

// RoundTrip logs method, path, status and duration. Headers are never
// logged, so credentials stay out of the log.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, fmt.Errorf("httplog: nil request")
	}

	// RoundTrippers must not modify the caller's request.
	req = req.Clone(req.Context())
	if t.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	id := req.Header.Get(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
		req.Header.Set(RequestIDHeader, id)
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		t.logger.Warn("http request failed",
			"request_id", id,
			"method", req.Method,
			"path", req.URL.Path,
			"duration", elapsed,
			"error", err)
		return nil, err
	}

	level := slog.LevelDebug
	if resp.StatusCode >= 400 {
		level = slog.LevelWarn
	}
	t.logger.Log(req.Context(), level, "http request",
		"request_id", id,
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", elapsed)
	return resp, nil
}
