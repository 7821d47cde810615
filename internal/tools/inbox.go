package tools

import (
	"context"
	"encoding/json"

	"github.com/golovatskygroup/repsona-mcp/internal/repsona"
)

func inboxOperations() []Operation {
	return []Operation{
		{
			Name:        "get_inbox",
			Description: "List inbox items with the given status",
			Category:    catInbox,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "status": {"type": "string", "description": "Status, for example all, unread or read"}
  },
  "required": ["status"]
}`),
			Routing: []string{"status"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetInbox(ctx, in.Route("status"))
			},
		},
		{
			Name:        "update_inbox",
			Description: "Mark an inbox item unread or archived",
			Category:    catInbox,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "id": {"type": ["string", "number"], "description": "Inbox item ID"},
    "status": {"type": "string", "enum": ["unread", "archived"], "description": "New status"}
  },
  "required": ["id", "status"]
}`),
			Routing: []string{"id", "status"},
			Mutates: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.UpdateInbox(ctx, in.Route("id"), in.Route("status"))
			},
			Confirm: confirmf("Inbox item %s marked %s", "id", "status"),
		},
		{
			Name:        "archive_all_inbox",
			Description: "Archive every inbox item",
			Category:    catInbox,
			Schema:      emptySchema,
			Mutates:     true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.ArchiveAllInbox(ctx)
			},
			Confirm: confirm("Inbox archived"),
		},
		{
			Name:        "get_inbox_unread_count",
			Description: "Count unread inbox items",
			Category:    catInbox,
			Schema:      emptySchema,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetInboxUnreadCount(ctx)
			},
		},
	}
}
