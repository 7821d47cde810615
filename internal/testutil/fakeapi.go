// Package testutil provides a recording fake of the Repsona REST API for
// tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
)

// APIPrefix is the path prefix of the fake, matching the real service.
const APIPrefix = "/api"

// Request is one request seen by FakeAPI. Path and EscapedPath exclude
// APIPrefix.
type Request struct {
	Method      string
	Path        string
	EscapedPath string
	RawQuery    string
	Query       url.Values
	Header      http.Header
	Body        []byte
}

// URI returns the path plus query string, e.g. /project/42/task?is_closed=false.
func (r Request) URI() string {
	if r.RawQuery == "" {
		return r.Path
	}
	return r.Path + "?" + r.RawQuery
}

// JSON decodes the request body; it fails the test if the body is not JSON.
func (r Request) JSON(t testing.TB) any {
	t.Helper()
	var v any
	if err := json.Unmarshal(r.Body, &v); err != nil {
		t.Fatalf("request body is not JSON: %v (%q)", err, string(r.Body))
	}
	return v
}

type response struct {
	status int
	body   string
}

// FakeAPI records every request and answers from a route table keyed by
// "METHOD /path". Unrouted requests get 200 with DefaultBody.
type FakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
	routes   map[string]response

	DefaultBody string
}

func NewFakeAPI(t testing.TB) *FakeAPI {
	t.Helper()
	f := &FakeAPI{
		routes:      map[string]response{},
		DefaultBody: `{"ok":true}`,
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

// BaseURL is the value to configure as the client's API root.
func (f *FakeAPI) BaseURL() string {
	return f.URL + APIPrefix
}

// Respond registers a canned reply for method and path.
func (f *FakeAPI) Respond(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = response{status: status, body: body}
}

func (f *FakeAPI) Requests() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Request, len(f.requests))
	copy(out, f.requests)
	return out
}

// Last returns the most recent request and fails the test if there is none.
func (f *FakeAPI) Last(t testing.TB) Request {
	t.Helper()
	reqs := f.Requests()
	if len(reqs) == 0 {
		t.Fatalf("no requests recorded")
	}
	return reqs[len(reqs)-1]
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, APIPrefix)

	f.mu.Lock()
	f.requests = append(f.requests, Request{
		Method:      r.Method,
		Path:        path,
		EscapedPath: strings.TrimPrefix(r.URL.EscapedPath(), APIPrefix),
		RawQuery:    r.URL.RawQuery,
		Query:       r.URL.Query(),
		Header:      r.Header.Clone(),
		Body:        body,
	})
	resp, ok := f.routes[r.Method+" "+path]
	def := f.DefaultBody
	f.mu.Unlock()

	if !ok {
		resp = response{status: http.StatusOK, body: def}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}
