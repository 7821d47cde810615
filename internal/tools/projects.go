package tools

import (
	"context"
	"encoding/json"

	"github.com/golovatskygroup/repsona-mcp/internal/repsona"
)

var projectIDSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"}
  },
  "required": ["projectId"]
}`)

func projectOperations() []Operation {
	return []Operation{
		{
			Name:        "get_projects",
			Description: "List projects",
			Category:    catProjects,
			Schema:      emptySchema,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetProjects(ctx)
			},
		},
		{
			Name:        "get_project",
			Description: "Get the details of a project",
			Category:    catProjects,
			Schema:      projectIDSchema,
			Routing:     []string{"projectId"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetProject(ctx, in.Route("projectId"))
			},
		},
		{
			Name:        "create_project",
			Description: "Create a new project",
			Category:    catProjects,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "name": {"type": "string", "description": "Project name"},
    "fullName": {"type": "string", "description": "Full project name"},
    "purpose": {"type": "string", "description": "Purpose of the project"}
  },
  "required": ["name"]
}`),
			Mutates: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.CreateProject(ctx, in.Payload)
			},
			Confirm: confirm("Project created"),
		},
		{
			Name:        "update_project",
			Description: "Update a project. Only the given fields change.",
			Category:    catProjects,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "name": {"type": "string", "description": "Project name"},
    "fullName": {"type": "string", "description": "Full project name"},
    "purpose": {"type": "string", "description": "Purpose of the project"}
  },
  "required": ["projectId"]
}`),
			Routing: []string{"projectId"},
			Mutates: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.UpdateProject(ctx, in.Route("projectId"), in.Payload)
			},
			Confirm: confirmf("Project %s updated", "projectId"),
		},
		{
			Name:        "get_project_users",
			Description: "List the users of a project",
			Category:    catProjects,
			Schema:      projectIDSchema,
			Routing:     []string{"projectId"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetProjectUsers(ctx, in.Route("projectId"))
			},
		},
		{
			Name:        "get_project_activity",
			Description: "Get the activity of a project",
			Category:    catProjects,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "page": {"type": "number", "description": "Page number, starting at 1"}
  },
  "required": ["projectId"]
}`),
			Routing: []string{"projectId"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				var p repsona.Page
				if err := in.Decode(&p); err != nil {
					return nil, err
				}
				return c.GetProjectActivity(ctx, in.Route("projectId"), p)
			},
		},
		{
			Name:        "get_project_statuses",
			Description: "List the task statuses of a project",
			Category:    catProjects,
			Schema:      projectIDSchema,
			Routing:     []string{"projectId"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetProjectStatuses(ctx, in.Route("projectId"))
			},
		},
		{
			Name:        "get_project_milestones",
			Description: "List the milestones of a project",
			Category:    catProjects,
			Schema:      projectIDSchema,
			Routing:     []string{"projectId"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetProjectMilestones(ctx, in.Route("projectId"))
			},
		},
	}
}
