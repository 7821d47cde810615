// Package server exposes the tool gateway over MCP JSON-RPC on stdio.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/golovatskygroup/repsona-mcp/internal/tools"
)

// Identity reported in the initialize reply unless Options override it.
const (
	DefaultName    = "repsona-mcp-server"
	DefaultVersion = "1.0.0"
)

// Options configures a Server. Zero values fall back to the defaults.
type Options struct {
	Name    string
	Version string
	Logger  *slog.Logger
}

// Server is the MCP front of a Gateway.
type Server struct {
	gw     *tools.Gateway
	mcp    *mcpserver.MCPServer
	logger *slog.Logger

	toolPos     map[string]int
	resourcePos map[string]int
}

// New registers every gateway tool and resource on a fresh MCP server.
func New(gw *tools.Gateway, opts Options) *Server {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Server{
		gw:          gw,
		logger:      opts.Logger,
		toolPos:     make(map[string]int),
		resourcePos: make(map[string]int),
	}

	s.mcp = mcpserver.NewMCPServer(opts.Name, opts.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, true),
		mcpserver.WithRecovery(),
		mcpserver.WithInstructions(s.buildInstructions()),
		mcpserver.WithToolFilter(s.orderTools),
		mcpserver.WithHooks(s.hooks()),
	)

	for i, t := range gw.Tools() {
		s.toolPos[t.Name] = i
		s.mcp.AddTool(t, s.callTool(t.Name))
	}
	for i, r := range gw.Resources() {
		s.resourcePos[r.URI] = i
		s.mcp.AddResource(r, s.readResource)
	}
	return s
}

// Run serves newline-delimited JSON-RPC until in is exhausted or ctx is
// cancelled.
func (s *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := mcpserver.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(log.New(slogWriter{s.logger}, "", 0))
	s.logger.Info("serving MCP on stdio", "tools", len(s.toolPos), "resources", len(s.resourcePos))
	err := stdio.Listen(ctx, in, out)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("stdio server: %w", err)
}

// Handle processes one raw JSON-RPC message and returns the reply, or nil
// for notifications.
func (s *Server) Handle(ctx context.Context, raw json.RawMessage) mcp.JSONRPCMessage {
	return s.mcp.HandleMessage(ctx, raw)
}

func (s *Server) callTool(name string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return s.gw.Call(ctx, name, req.GetArguments())
	}
}

func (s *Server) readResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return s.gw.ReadResource(ctx, req.Params.URI)
}

// orderTools restores catalog order; the protocol server sorts by name.
func (s *Server) orderTools(_ context.Context, ts []mcp.Tool) []mcp.Tool {
	sort.SliceStable(ts, func(i, j int) bool {
		return s.toolPos[ts[i].Name] < s.toolPos[ts[j].Name]
	})
	return ts
}

func (s *Server) orderResources(rs []mcp.Resource) {
	sort.SliceStable(rs, func(i, j int) bool {
		return s.resourcePos[rs[i].URI] < s.resourcePos[rs[j].URI]
	})
}

func (s *Server) hooks() *mcpserver.Hooks {
	h := &mcpserver.Hooks{}
	h.AddAfterListResources(func(_ context.Context, _ any, _ *mcp.ListResourcesRequest, res *mcp.ListResourcesResult) {
		if res != nil {
			s.orderResources(res.Resources)
		}
	})
	h.AddBeforeCallTool(func(_ context.Context, id any, req *mcp.CallToolRequest) {
		s.logger.Debug("tools/call", "id", id, "tool", req.Params.Name)
	})
	h.AddAfterCallTool(func(_ context.Context, id any, req *mcp.CallToolRequest, res *mcp.CallToolResult) {
		if res != nil && res.IsError {
			s.logger.Info("tool returned error", "id", id, "tool", req.Params.Name)
		}
	})
	h.AddOnError(func(_ context.Context, id any, method mcp.MCPMethod, msg any, err error) {
		attrs := []any{"id", id, "method", method, "error", err}
		if errors.Is(err, mcpserver.ErrToolNotFound) {
			if req, ok := msg.(*mcp.CallToolRequest); ok {
				if sug := s.gw.Registry().Suggest(req.Params.Name, 3); len(sug) > 0 {
					attrs = append(attrs, "suggestions", sug)
				}
			}
		}
		s.logger.Warn("request failed", attrs...)
	})
	return h
}

func (s *Server) buildInstructions() string {
	reg := s.gw.Registry()
	var sb strings.Builder
	sb.WriteString("Repsona project management tools.\n\n")
	sb.WriteString("Read the repsona:// resources for the current user, projects, space, tags and unread inbox count.\n")
	sb.WriteString("Ids may be passed as strings or numbers. Update tools change only the fields given.\n\n")
	sb.WriteString("Tool categories:\n")
	for _, cat := range reg.ListCategories() {
		fmt.Fprintf(&sb, "- %s (%d): %s\n", cat.Name, len(cat.Tools), cat.Description)
	}
	fmt.Fprintf(&sb, "\nTotal tools: %d\n", reg.ToolCount())
	return sb.String()
}

// slogWriter adapts the stdio server's *log.Logger output to slog.
type slogWriter struct{ l *slog.Logger }

func (w slogWriter) Write(p []byte) (int, error) {
	w.l.Error(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
