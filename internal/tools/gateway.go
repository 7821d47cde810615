// Package tools maps MCP tool calls and resource reads onto the Repsona
// API client.
package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/golovatskygroup/repsona-mcp/internal/registry"
	"github.com/golovatskygroup/repsona-mcp/internal/repsona"
)

// Gateway owns the fixed tool and resource catalogs. It is immutable after
// NewGateway returns and safe for concurrent use.
type Gateway struct {
	client *repsona.Client
	logger *slog.Logger

	ops    []Operation
	byName map[string]*Operation

	resources []Resource
	byURI     map[string]*Resource

	registry *registry.Registry
	schemas  map[string]*jsonschema.Schema
	validate bool
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithLogger sets the logger for call outcomes. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithArgValidation rejects calls whose arguments do not match the tool's
// input schema before any request is sent. Off by default.
func WithArgValidation(on bool) Option {
	return func(g *Gateway) { g.validate = on }
}

// NewGateway builds the tool and resource catalogs around client. It fails
// on a nil client or an inconsistent catalog.
func NewGateway(client *repsona.Client, opts ...Option) (*Gateway, error) {
	if client == nil {
		return nil, errors.New("tools: nil Repsona client")
	}
	g := &Gateway{
		client:    client,
		logger:    slog.Default(),
		ops:       Catalog(),
		resources: ResourceCatalog(),
		registry:  registry.NewRegistry(Categories()),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.index(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Gateway) index() error {
	g.byName = make(map[string]*Operation, len(g.ops))
	g.schemas = make(map[string]*jsonschema.Schema, len(g.ops))
	for i := range g.ops {
		op := &g.ops[i]
		if op.Call == nil {
			return fmt.Errorf("tools: operation %s has no handler", op.Name)
		}
		if err := g.registry.Add(op.Name, op.Description, op.Category); err != nil {
			return err
		}
		s, err := compileSchema(op.Name, op.Schema)
		if err != nil {
			return err
		}
		g.byName[op.Name] = op
		g.schemas[op.Name] = s
	}

	g.byURI = make(map[string]*Resource, len(g.resources))
	for i := range g.resources {
		r := &g.resources[i]
		if _, dup := g.byURI[r.URI]; dup {
			return fmt.Errorf("tools: duplicate resource %s", r.URI)
		}
		g.byURI[r.URI] = r
	}
	return nil
}

// Tools returns the tool descriptors in catalog order.
func (g *Gateway) Tools() []mcp.Tool {
	out := make([]mcp.Tool, 0, len(g.ops))
	for _, op := range g.ops {
		out = append(out, op.Tool())
	}
	return out
}

// Registry exposes categories and name suggestions.
func (g *Gateway) Registry() *registry.Registry {
	return g.registry
}

// Tool builds the MCP descriptor of an operation.
func (op Operation) Tool() mcp.Tool {
	t := mcp.NewToolWithRawSchema(op.Name, op.Description, op.Schema)
	t.Annotations = mcp.ToolAnnotation{
		ReadOnlyHint:    mcp.ToBoolPtr(!op.Mutates),
		DestructiveHint: mcp.ToBoolPtr(op.Destructive),
		OpenWorldHint:   mcp.ToBoolPtr(true),
	}
	return t
}

// Call runs one tool. Failures of a known tool come back as a result with
// IsError set and a nil error; an unknown name is returned as an error.
func (g *Gateway) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	op, ok := g.byName[name]
	if !ok {
		return nil, &UnknownToolError{Name: name, Suggestions: g.registry.Suggest(name, 3)}
	}
	if args == nil {
		args = map[string]any{}
	}

	logger := g.logger.With("call_id", uuid.NewString(), "tool", name)

	if g.validate {
		if err := validateArgs(op.Name, g.schemas[op.Name], args); err != nil {
			logger.Info("tool arguments rejected", "error", err)
			return errorResult(err.Error()), nil
		}
	}

	in := newInput(args, op.Routing)
	start := time.Now()
	res, err := op.Call(ctx, g.client, in)
	if err != nil {
		logger.Warn("tool call failed", "duration", time.Since(start), "reason", failureReason(err), "error", err)
		return errorResult(err.Error()), nil
	}
	logger.Debug("tool call", "duration", time.Since(start))

	switch {
	case op.Confirm == nil:
		return jsonResult(res), nil
	case op.Quiet:
		return textResult(op.Confirm(in)), nil
	default:
		return confirmedResult(op.Confirm(in), res), nil
	}
}

// failureReason classifies a failed call for the log.
func failureReason(err error) string {
	var apiErr *repsona.APIError
	switch {
	case repsona.IsUnauthorized(err):
		return "unauthorized"
	case repsona.IsForbidden(err):
		return "forbidden"
	case repsona.IsNotFound(err):
		return "not_found"
	case errors.As(err, &apiErr):
		return "api"
	}
	return "transport"
}
