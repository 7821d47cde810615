package repsona

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) GetInbox(ctx context.Context, status string) (any, error) {
	return c.get(ctx, "/inbox/"+seg(status), nil)
}

// UpdateInbox moves one inbox item. status always travels in the query
// string and the request has no body.
func (c *Client) UpdateInbox(ctx context.Context, id, status string) (any, error) {
	return c.do(ctx, http.MethodPatch, "/inbox/"+seg(id), url.Values{"status": {status}}, nil)
}

func (c *Client) ArchiveAllInbox(ctx context.Context) (any, error) {
	return c.post(ctx, "/inbox/archive_all", nil)
}

func (c *Client) GetInboxUnreadCount(ctx context.Context) (any, error) {
	return c.get(ctx, "/inbox/unread_count", nil)
}
