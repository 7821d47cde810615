// Package repsona is a thin client for the Repsona REST API. Every method
// issues exactly one HTTP request and returns the decoded JSON body as-is.
package repsona

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Body is an untyped JSON object forwarded to the API without validation.
type Body = map[string]any

// Config configures a Client. BaseURL and APIKey are required.
type Config struct {
	// BaseURL is the API root, e.g. https://acme.repsona.com/api.
	BaseURL   string
	APIKey    string
	UserAgent string

	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client calls the Repsona REST API with a bearer token. It is safe for
// concurrent use.
type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	http      *http.Client
	logger    *slog.Logger
}

// New validates cfg and returns a Client. A nil HTTPClient or Logger falls
// back to a plain http.Client and slog.Default.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("repsona: base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("repsona: invalid base URL: %w", err)
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("repsona: API key is required")
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:   base,
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
		http:      hc,
		logger:    logger,
	}, nil
}

// DefaultDomain hosts every space unless configured otherwise.
const DefaultDomain = "repsona.com"

// BaseURLForSpace returns the API root of a Repsona space. An empty domain
// means DefaultDomain.
func BaseURLForSpace(spaceID, domain string) string {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		domain = DefaultDomain
	}
	return fmt.Sprintf("https://%s.%s/api", spaceID, domain)
}

func (c *Client) BaseURL() string { return c.baseURL }

// do sends one request. query may be nil; body is JSON encoded when non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	if m, ok := body.(Body); ok && m == nil {
		body = nil
	}
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body for %s %s: %w", method, path, err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused; the body is not reported.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Method:     method,
			Path:       path,
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: reading response: %w", method, path, err)
	}
	// 204-style replies to deletes and archive calls carry no body.
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		c.logger.Debug("repsona: undecodable response", "method", method, "path", path, "status", resp.StatusCode, "bytes", len(raw))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Method:     method,
			Path:       path,
			Err:        err,
		}
	}
	return out, nil
}

// statusText strips the numeric prefix net/http puts in resp.Status.
func statusText(resp *http.Response) string {
	s := strings.TrimSpace(resp.Status)
	if code := fmt.Sprintf("%d", resp.StatusCode); strings.HasPrefix(s, code) {
		s = strings.TrimSpace(strings.TrimPrefix(s, code))
	}
	if s == "" {
		s = http.StatusText(resp.StatusCode)
	}
	return s
}

// seg escapes one path segment.
func seg(s string) string {
	return url.PathEscape(s)
}

func (c *Client) get(ctx context.Context, path string, q url.Values) (any, error) {
	return c.do(ctx, http.MethodGet, path, q, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) patch(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body)
}

func (c *Client) put(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) delete(ctx context.Context, path string) (any, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
