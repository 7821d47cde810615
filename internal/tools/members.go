package tools

import (
	"context"
	"encoding/json"

	"github.com/golovatskygroup/repsona-mcp/internal/repsona"
)

var emptySchema = json.RawMessage(`{"type": "object", "properties": {}}`)

var myTasksSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "type": {"type": "string", "enum": ["responsible", "ballHolding", "following"], "description": "Which list: responsible, ballHolding or following"}
  },
  "required": ["type"]
}`)

var pageSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "page": {"type": "number", "description": "Page number, starting at 1"}
  }
}`)

func memberOperations() []Operation {
	return []Operation{
		{
			Name:        "update_user_role",
			Description: "Change a user's role. Requires owner or admin rights.",
			Category:    catMembers,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "userId": {"type": ["string", "number"], "description": "User ID"},
    "role": {"type": "string", "enum": ["owner", "admin", "member", "no-login"], "description": "New role"}
  },
  "required": ["userId", "role"]
}`),
			Routing: []string{"userId", "role"},
			Mutates: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.UpdateUserRole(ctx, in.Route("userId"), in.Route("role"))
			},
			Confirm: confirmf("Role of user %s set to %s", "userId", "role"),
		},
		{
			Name:        "invite_to_space",
			Description: "Invite a new member to the space. Requires owner or admin rights.",
			Category:    catSpace,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "email": {"type": "string", "description": "Email address"},
    "name": {"type": "string", "description": "User name"},
    "fullName": {"type": "string", "description": "Full name"},
    "projects": {"type": "array", "items": {"type": "string"}, "description": "IDs of projects to join"}
  },
  "required": ["email", "name"]
}`),
			Mutates: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.InviteToSpace(ctx, in.Payload)
			},
			Confirm: confirm("Member invited"),
		},
		{
			Name:        "get_me",
			Description: "Get the authenticated user's profile",
			Category:    catMe,
			Schema:      emptySchema,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetMe(ctx)
			},
		},
		{
			Name:        "update_me",
			Description: "Update the authenticated user's profile",
			Category:    catMe,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "name": {"type": "string", "description": "User name"},
    "fullName": {"type": "string", "description": "Full name"},
    "whatAreYouDoing": {"type": "string", "description": "Current status message"}
  }
}`),
			Mutates: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.UpdateMe(ctx, in.Payload)
			},
			Confirm: confirm("Profile updated"),
		},
		{
			Name:        "get_my_tasks",
			Description: "List the authenticated user's tasks of the given type",
			Category:    catMe,
			Schema:      myTasksSchema,
			Routing:     []string{"type"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetMyTasks(ctx, in.Route("type"))
			},
		},
		{
			Name:        "get_my_tasks_count",
			Description: "Count the authenticated user's tasks of the given type",
			Category:    catMe,
			Schema:      myTasksSchema,
			Routing:     []string{"type"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetMyTasksCount(ctx, in.Route("type"))
			},
		},
		{
			Name:        "get_my_projects",
			Description: "List the projects the authenticated user belongs to",
			Category:    catMe,
			Schema:      emptySchema,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetMyProjects(ctx)
			},
		},
		{
			Name:        "get_feed",
			Description: "Get the authenticated user's activity feed",
			Category:    catMe,
			Schema:      pageSchema,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				var p repsona.Page
				if err := in.Decode(&p); err != nil {
					return nil, err
				}
				return c.GetFeed(ctx, p)
			},
		},
		{
			// The API has no member listing; this returns the caller's profile.
			Name:        "get_members",
			Description: "List members",
			Category:    catMembers,
			Schema:      emptySchema,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetMembers(ctx)
			},
		},
	}
}

func spaceOperations() []Operation {
	return []Operation{
		{
			Name:        "get_space_info",
			Description: "Get information about the space",
			Category:    catSpace,
			Schema:      emptySchema,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetSpaceInfo(ctx)
			},
		},
		{
			Name:        "get_all_tags",
			Description: "List every tag in the space",
			Category:    catSpace,
			Schema:      emptySchema,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetAllTags(ctx)
			},
		},
	}
}
