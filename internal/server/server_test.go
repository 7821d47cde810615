package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golovatskygroup/repsona-mcp/internal/repsona"
	"github.com/golovatskygroup/repsona-mcp/internal/testutil"
	"github.com/golovatskygroup/repsona-mcp/internal/tools"
)

type rpcReply struct {
	ID     any             `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestServer(t *testing.T) (*Server, *testutil.FakeAPI, *bytes.Buffer) {
	t.Helper()
	api := testutil.NewFakeAPI(t)
	c, err := repsona.New(repsona.Config{BaseURL: api.BaseURL(), APIKey: "k"})
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	gw, err := tools.NewGateway(c, tools.WithLogger(logger))
	require.NoError(t, err)
	return New(gw, Options{Logger: logger}), api, &logs
}

func call(t *testing.T, s *Server, id int, method string, params any) rpcReply {
	t.Helper()
	msg := map[string]any{"jsonrpc": "2.0", "id": id, "method": method}
	if params != nil {
		msg["params"] = params
	}
	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	out := s.Handle(context.Background(), raw)
	require.NotNil(t, out)
	b, err := json.Marshal(out)
	require.NoError(t, err)

	var reply rpcReply
	require.NoError(t, json.Unmarshal(b, &reply))
	return reply
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	s, _, _ := newTestServer(t)
	reply := call(t, s, 1, "initialize", map[string]any{
		"protocolVersion": "2024-11-05",
		"capabilities":    map[string]any{},
		"clientInfo":      map[string]any{"name": "test", "version": "0"},
	})
	require.Nil(t, reply.Error)

	var res struct {
		ServerInfo struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"serverInfo"`
		Capabilities struct {
			Tools     map[string]any `json:"tools"`
			Resources map[string]any `json:"resources"`
		} `json:"capabilities"`
		Instructions string `json:"instructions"`
	}
	require.NoError(t, json.Unmarshal(reply.Result, &res))
	assert.Equal(t, DefaultName, res.ServerInfo.Name)
	assert.Equal(t, DefaultVersion, res.ServerInfo.Version)
	assert.NotNil(t, res.Capabilities.Tools)
	assert.NotNil(t, res.Capabilities.Resources)
	assert.Contains(t, res.Instructions, "- tasks (")
	assert.Contains(t, res.Instructions, "Total tools: 52")
}

func TestToolsListKeepsCatalogOrder(t *testing.T) {
	s, _, _ := newTestServer(t)
	reply := call(t, s, 2, "tools/list", nil)
	require.Nil(t, reply.Error)

	var res struct {
		Tools []struct {
			Name        string          `json:"name"`
			InputSchema json.RawMessage `json:"inputSchema"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(reply.Result, &res))
	require.Len(t, res.Tools, 52)
	assert.Equal(t, "get_tasks", res.Tools[0].Name)
	assert.Equal(t, "get_task", res.Tools[1].Name)
	assert.Equal(t, "get_task_subtasks", res.Tools[51].Name)
	assert.Contains(t, string(res.Tools[0].InputSchema), "projectId")
}

func TestToolsCallRoundTrip(t *testing.T) {
	s, api, _ := newTestServer(t)
	api.Respond(http.MethodGet, "/me", http.StatusOK, `{"user":{"id":1,"name":"alice"}}`)

	reply := call(t, s, 3, "tools/call", map[string]any{"name": "get_me", "arguments": map[string]any{}})
	require.Nil(t, reply.Error)

	var res struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	}
	require.NoError(t, json.Unmarshal(reply.Result, &res))
	assert.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	assert.Equal(t, "text", res.Content[0].Type)
	assert.Contains(t, res.Content[0].Text, `"name": "alice"`)
}

func TestToolsCallFailureIsResult(t *testing.T) {
	s, api, _ := newTestServer(t)
	api.Respond(http.MethodGet, "/me", http.StatusUnauthorized, `{}`)

	reply := call(t, s, 4, "tools/call", map[string]any{"name": "get_me"})
	require.Nil(t, reply.Error)
	assert.Contains(t, string(reply.Result), `"isError":true`)
	assert.Contains(t, string(reply.Result), "Repsona API Error: 401")
}

func TestUnknownToolIsProtocolError(t *testing.T) {
	s, api, logs := newTestServer(t)
	reply := call(t, s, 5, "tools/call", map[string]any{"name": "get_tsk"})
	require.NotNil(t, reply.Error)
	assert.Contains(t, reply.Error.Message, "get_tsk")
	assert.Empty(t, api.Requests())
	assert.Contains(t, logs.String(), "get_task")
}

func TestResourcesListAndRead(t *testing.T) {
	s, api, _ := newTestServer(t)

	reply := call(t, s, 6, "resources/list", nil)
	require.Nil(t, reply.Error)
	var list struct {
		Resources []struct {
			URI string `json:"uri"`
		} `json:"resources"`
	}
	require.NoError(t, json.Unmarshal(reply.Result, &list))
	uris := make([]string, 0, len(list.Resources))
	for _, r := range list.Resources {
		uris = append(uris, r.URI)
	}
	assert.Equal(t, []string{
		"repsona://me",
		"repsona://projects",
		"repsona://space",
		"repsona://tags",
		"repsona://inbox-unread-count",
	}, uris)

	api.Respond(http.MethodGet, "/tag/all", http.StatusOK, `{"tags":[]}`)
	reply = call(t, s, 7, "resources/read", map[string]any{"uri": "repsona://tags"})
	require.Nil(t, reply.Error)
	var read struct {
		Contents []struct {
			URI      string `json:"uri"`
			MIMEType string `json:"mimeType"`
			Text     string `json:"text"`
		} `json:"contents"`
	}
	require.NoError(t, json.Unmarshal(reply.Result, &read))
	require.Len(t, read.Contents, 1)
	assert.Equal(t, "repsona://tags", read.Contents[0].URI)
	assert.Equal(t, "application/json", read.Contents[0].MIMEType)
	assert.Equal(t, "{\n  \"tags\": []\n}", read.Contents[0].Text)
}

func TestResourceReadFailureIsProtocolError(t *testing.T) {
	s, api, _ := newTestServer(t)
	api.Respond(http.MethodGet, "/space/base", http.StatusInternalServerError, `{}`)

	reply := call(t, s, 8, "resources/read", map[string]any{"uri": "repsona://space"})
	require.NotNil(t, reply.Error)
	assert.Contains(t, reply.Error.Message, "failed to read resource repsona://space")

	reply = call(t, s, 9, "resources/read", map[string]any{"uri": "repsona://nope"})
	require.NotNil(t, reply.Error)
}

func TestRunServesStdio(t *testing.T) {
	s, api, _ := newTestServer(t)
	api.Respond(http.MethodGet, "/inbox/unread_count", http.StatusOK, `{"count":2}`)

	inR, inW := io.Pipe()
	var out syncBuffer
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, inR, &out) }()

	_, err := fmt.Fprintln(inW, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"get_inbox_unread_count","arguments":{}}}`)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), `\"count\": 2`)
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	_ = inW.Close()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
