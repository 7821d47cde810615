package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/golovatskygroup/repsona-mcp/internal/repsona"
)

const jsonMIME = "application/json"

// Resource is a read-only singleton view backed by one API call.
type Resource struct {
	URI         string
	Name        string
	Description string
	MIMEType    string
	Read        func(ctx context.Context, c *repsona.Client) (any, error)
}

// ResourceCatalog returns the resource table in listing order.
func ResourceCatalog() []Resource {
	return []Resource{
		{
			URI:         "repsona://me",
			Name:        "Me",
			Description: "The authenticated user's profile",
			MIMEType:    jsonMIME,
			Read: func(ctx context.Context, c *repsona.Client) (any, error) {
				return c.GetMe(ctx)
			},
		},
		{
			URI:         "repsona://projects",
			Name:        "Projects",
			Description: "Projects the authenticated user belongs to",
			MIMEType:    jsonMIME,
			Read: func(ctx context.Context, c *repsona.Client) (any, error) {
				return c.GetProjects(ctx)
			},
		},
		{
			URI:         "repsona://space",
			Name:        "Space",
			Description: "Information about the Repsona space",
			MIMEType:    jsonMIME,
			Read: func(ctx context.Context, c *repsona.Client) (any, error) {
				return c.GetSpaceInfo(ctx)
			},
		},
		{
			URI:         "repsona://tags",
			Name:        "Tags",
			Description: "All tags in the space",
			MIMEType:    jsonMIME,
			Read: func(ctx context.Context, c *repsona.Client) (any, error) {
				return c.GetAllTags(ctx)
			},
		},
		{
			URI:         "repsona://inbox-unread-count",
			Name:        "Inbox unread count",
			Description: "Number of unread inbox items",
			MIMEType:    jsonMIME,
			Read: func(ctx context.Context, c *repsona.Client) (any, error) {
				return c.GetInboxUnreadCount(ctx)
			},
		},
	}
}

func (r Resource) Resource() mcp.Resource {
	return mcp.NewResource(r.URI, r.Name,
		mcp.WithResourceDescription(r.Description),
		mcp.WithMIMEType(r.MIMEType),
	)
}

// Resources returns the resource descriptors in catalog order.
func (g *Gateway) Resources() []mcp.Resource {
	out := make([]mcp.Resource, 0, len(g.resources))
	for _, r := range g.resources {
		out = append(out, r.Resource())
	}
	return out
}

// ReadResource fetches one resource. Unlike Call, every failure is
// returned as an error.
func (g *Gateway) ReadResource(ctx context.Context, uri string) ([]mcp.ResourceContents, error) {
	r, ok := g.byURI[uri]
	if !ok {
		return nil, &UnknownResourceError{URI: uri}
	}
	v, err := r.Read(ctx, g.client)
	if err != nil {
		g.logger.Warn("resource read failed", "uri", uri, "error", err)
		return nil, fmt.Errorf("failed to read resource %s: %w", uri, err)
	}
	text, err := prettyJSON(v)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: r.MIMEType,
			Text:     text,
		},
	}, nil
}
